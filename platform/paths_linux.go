//go:build linux

package platform

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the directory for per-user spawnadmin settings.
// This is $XDG_CONFIG_HOME/spawnadmin, or ~/.config/spawnadmin by default.
func UserConfigPath() (string, error) {
	return xdgPath("XDG_CONFIG_HOME", ".config")
}

// UserLogsPath returns the directory for session logs.
// This is $XDG_STATE_HOME/spawnadmin, or ~/.local/state/spawnadmin by default.
func UserLogsPath() (string, error) {
	return xdgPath("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// xdgPath resolves an XDG base directory variable, falling back to
// fallback under the home directory.
func xdgPath(env, fallback string) (string, error) {
	if dir := os.Getenv(env); dir != "" && filepath.IsAbs(dir) {
		return filepath.Join(dir, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appDirName), nil
}
