//go:build darwin || linux

package platform

import "golang.org/x/sys/unix"

// IsElevated checks if the current process is running with root privileges.
func IsElevated() bool {
	return unix.Geteuid() == 0
}
