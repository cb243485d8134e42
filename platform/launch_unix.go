//go:build darwin || linux

package platform

import (
	"fmt"
	"os"
	"os/exec"
)

// startDirect spawns path as an ordinary child with inherited stdio and
// returns its pid. The os.Process is released so the pid is reaped by Wait
// alone.
func startDirect(path string, args []string) (Handle, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", path, err)
	}

	pid := cmd.Process.Pid
	cmd.Process.Release()
	return &PIDHandle{PID: pid}, nil
}
