//go:build linux

package platform

import (
	"fmt"
	"os/exec"
)

// Start launches cmd and returns a handle for Wait.
//
// In test mode the command runs as an ordinary child. Otherwise it runs
// through pkexec, which shows the PolicyKit authentication prompt; when the
// caller is already root the command is started directly. pkexec reports a
// dismissed prompt as exit code 126 and a refused authorization as 127.
func Start(cmd Command, testMode bool) (Handle, error) {
	if cmd.Path == "" {
		return nil, ErrEmptyCommand
	}

	if testMode || IsElevated() {
		return startDirect(cmd.Path, cmd.Args)
	}

	pkexec, err := exec.LookPath("pkexec")
	if err != nil {
		return nil, fmt.Errorf("%w: pkexec not found", ErrElevationUnavailable)
	}

	args := make([]string, 0, len(cmd.Args)+1)
	args = append(args, cmd.Path)
	args = append(args, cmd.Args...)
	return startDirect(pkexec, args)
}
