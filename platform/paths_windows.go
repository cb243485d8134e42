//go:build windows

package platform

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// UserConfigPath returns the directory for per-user spawnadmin settings.
// Example: C:\Users\<user>\AppData\Roaming\spawnadmin
func UserConfigPath() (string, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, 0)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// UserLogsPath returns the directory for session logs.
// Example: C:\Users\<user>\AppData\Local\spawnadmin\Logs
func UserLogsPath() (string, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, "Logs"), nil
}
