//go:build windows

package platform

import (
	"io"

	"golang.org/x/sys/windows"
)

// ProcessHandle is a Windows process handle returned by ShellExecuteEx.
type ProcessHandle struct {
	consumable
	Process windows.Handle
}

// Kind implements Handle.
func (h *ProcessHandle) Kind() string { return "process" }

// wait blocks until the process is signaled, then reads its exit code.
// The handle is closed afterwards.
func (h *ProcessHandle) wait(io.Writer) ExitCode {
	defer windows.CloseHandle(h.Process)

	if _, err := windows.WaitForSingleObject(h.Process, windows.INFINITE); err != nil {
		return ExitUnknown
	}

	var code uint32
	if err := windows.GetExitCodeProcess(h.Process, &code); err != nil {
		return ExitUnknown
	}
	return ExitCode(code)
}
