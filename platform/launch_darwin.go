//go:build darwin

package platform

/*
#cgo LDFLAGS: -framework Security
#include <stdio.h>
#include <stdlib.h>
#include <unistd.h>
#include <Security/Authorization.h>

// AuthorizationExecuteWithPrivileges is deprecated but remains the only way
// to run an arbitrary tool as root without installing a helper.
#pragma clang diagnostic push
#pragma clang diagnostic ignored "-Wdeprecated-declarations"
static OSStatus execute_with_privileges(AuthorizationRef ref, const char *path,
                                        char *const *argv, int *fd) {
    FILE *pipe = NULL;
    OSStatus status = AuthorizationExecuteWithPrivileges(
        ref, path, kAuthorizationFlagDefaults, argv, &pipe);
    if (status != errAuthorizationSuccess) {
        return status;
    }
    *fd = dup(fileno(pipe));
    fclose(pipe);
    return status;
}
#pragma clang diagnostic pop
*/
import "C"

import (
	"fmt"
	"os"
	"unsafe"
)

// Start launches cmd and returns a handle for Wait.
//
// In test mode the command runs as an ordinary child and the handle is its
// pid. Otherwise it runs through AuthorizationExecuteWithPrivileges using the
// cached credential (see DefaultAuthorization); the OS may prompt for an
// administrator password. The returned handle is the helper's output pipe.
//
// The helper's pid is not available, so waiting on that handle reaps the
// first child of this process to exit. Do not overlap an elevated wait with
// other children (test-mode launches, exec.Cmd) in the same process.
func Start(cmd Command, testMode bool) (Handle, error) {
	if cmd.Path == "" {
		return nil, ErrEmptyCommand
	}

	if testMode {
		return startDirect(cmd.Path, cmd.Args)
	}

	cpath := C.CString(cmd.Path)
	defer C.free(unsafe.Pointer(cpath))

	argv, freeArgv := cStringArray(cmd.Args)
	defer freeArgv()

	fd := C.int(-1)
	err := DefaultAuthorization().Use(func(cred Credential) error {
		ref, ok := cred.(C.AuthorizationRef)
		if !ok {
			return fmt.Errorf("unexpected credential type %T", cred)
		}

		switch status := C.execute_with_privileges(ref, cpath, argv, &fd); status {
		case errAuthorizationSuccess:
			return nil
		case errAuthorizationCanceled, errAuthorizationDenied:
			return ErrElevationDeclined
		default:
			return fmt.Errorf("AuthorizationExecuteWithPrivileges %s: OSStatus %d", cmd.Path, int(status))
		}
	})
	if err != nil {
		return nil, err
	}
	if fd < 0 {
		return nil, fmt.Errorf("AuthorizationExecuteWithPrivileges %s: no communications pipe", cmd.Path)
	}

	pipe := os.NewFile(uintptr(fd), "authorization-pipe")
	return NewPipeHandle(pipe, anyChild), nil
}

// cStringArray builds a NULL-terminated argv in C memory.
func cStringArray(args []string) (**C.char, func()) {
	size := C.size_t(len(args)+1) * C.size_t(unsafe.Sizeof(uintptr(0)))
	mem := C.malloc(size)
	argv := unsafe.Slice((**C.char)(mem), len(args)+1)

	for i, arg := range args {
		argv[i] = C.CString(arg)
	}
	argv[len(args)] = nil

	return (**C.char)(mem), func() {
		for i := range args {
			C.free(unsafe.Pointer(argv[i]))
		}
		C.free(mem)
	}
}
