//go:build windows

package platform

import "golang.org/x/sys/windows"

// IsElevated checks if the current process is running with administrator privileges.
func IsElevated() bool {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return false
	}
	defer token.Close()
	return token.IsElevated()
}
