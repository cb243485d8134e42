//go:build linux

package platform

import (
	"path/filepath"
	"testing"
)

func TestUserPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	if got, err := UserConfigPath(); err != nil || got != "/xdg/config/spawnadmin" {
		t.Errorf("UserConfigPath = %q, %v", got, err)
	}
	if got, err := UserLogsPath(); err != nil || got != "/xdg/state/spawnadmin" {
		t.Errorf("UserLogsPath = %q, %v", got, err)
	}
}

func TestUserPathsFallBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "relative/ignored")

	if got, _ := UserConfigPath(); got != filepath.Join(home, ".config", "spawnadmin") {
		t.Errorf("UserConfigPath = %q", got)
	}
	if got, _ := UserLogsPath(); got != filepath.Join(home, ".local", "state", "spawnadmin") {
		t.Errorf("UserLogsPath = %q", got)
	}
}
