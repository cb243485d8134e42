//go:build windows

package platform

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

var (
	shell32             = windows.NewLazySystemDLL("shell32.dll")
	procShellExecuteExW = shell32.NewProc("ShellExecuteExW")
)

const (
	seeMaskNoCloseProcess = 0x00000040
	seeMaskNoAsync        = 0x00000100
)

// shellExecuteInfo mirrors SHELLEXECUTEINFOW.
type shellExecuteInfo struct {
	size       uint32
	mask       uint32
	hwnd       windows.HWND
	verb       *uint16
	file       *uint16
	parameters *uint16
	directory  *uint16
	show       int32
	instApp    windows.Handle
	idList     uintptr
	class      *uint16
	keyClass   windows.Handle
	hotKey     uint32
	iconOrMon  windows.Handle
	process    windows.Handle
}

// Start launches cmd and returns a handle for Wait.
//
// The command runs through ShellExecuteEx with the "runas" verb, so Windows
// shows its UAC consent prompt. Test mode uses the "open" verb instead. The
// window is hidden. Returns ErrElevationDeclined if the user rejects the
// prompt.
func Start(cmd Command, testMode bool) (Handle, error) {
	if cmd.Path == "" {
		return nil, ErrEmptyCommand
	}

	verb := "runas"
	if testMode {
		verb = "open"
	}

	verbPtr, err := windows.UTF16PtrFromString(verb)
	if err != nil {
		return nil, err
	}
	filePtr, err := windows.UTF16PtrFromString(cmd.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	paramsPtr, err := windows.UTF16PtrFromString(JoinArgs(cmd.Args))
	if err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	// ShellExecuteEx may hand off to COM shell extensions, which need an
	// apartment on this thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if comInitialize() {
		defer ole.CoUninitialize()
	}

	info := shellExecuteInfo{
		mask:       seeMaskNoAsync | seeMaskNoCloseProcess,
		verb:       verbPtr,
		file:       filePtr,
		parameters: paramsPtr,
		show:       windows.SW_HIDE,
	}
	info.size = uint32(unsafe.Sizeof(info))

	ret, _, callErr := procShellExecuteExW.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		if errors.Is(callErr, windows.ERROR_CANCELLED) {
			return nil, ErrElevationDeclined
		}
		return nil, fmt.Errorf("ShellExecuteEx %s: %w", cmd.Path, callErr)
	}
	if info.process == 0 {
		return nil, fmt.Errorf("ShellExecuteEx %s: no process handle", cmd.Path)
	}

	return &ProcessHandle{Process: info.process}, nil
}

// comInitialize enters a single-threaded apartment. It reports whether the
// caller owns a matching CoUninitialize (S_OK or S_FALSE).
func comInitialize() bool {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED|ole.COINIT_DISABLE_OLE1DDE)
	if err == nil {
		return true
	}
	if oleErr, ok := err.(*ole.OleError); ok {
		code := oleErr.Code()
		return code == 0 || code == 1 // S_OK=0, S_FALSE=1
	}
	return false
}
