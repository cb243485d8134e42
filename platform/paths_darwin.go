//go:build darwin

package platform

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the directory for per-user spawnadmin settings.
// This is ~/Library/Application Support/spawnadmin on macOS.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Application Support", appDirName), nil
}

// UserLogsPath returns the directory for session logs.
// This is ~/Library/Logs/spawnadmin on macOS.
func UserLogsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Logs", appDirName), nil
}
