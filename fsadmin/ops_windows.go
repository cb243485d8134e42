//go:build windows

package fsadmin

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/crafted-tech/spawnadmin"
)

//go:embed assets/copy-folder.cmd
var copyFolderScript []byte

// Symlink creates a directory junction at path pointing to target.
func (a *Admin) Symlink(ctx context.Context, target, path string) error {
	return a.run(ctx, "mklink", spawnadmin.NewCommand("cmd", "/c", "mklink", "/j", path, target))
}

// Unlink removes path. Directories are removed with their contents.
func (a *Admin) Unlink(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return a.run(ctx, "rmdir", spawnadmin.NewCommand("cmd", "/c", "rmdir", "/s", "/q", path))
	}
	return a.run(ctx, "del", spawnadmin.NewCommand("cmd", "/c", "del", "/f", "/q", path))
}

// MakeTree creates dir and any missing parents.
func (a *Admin) MakeTree(ctx context.Context, dir string) error {
	return a.run(ctx, "mkdir", spawnadmin.NewCommand("cmd", "/c", "mkdir", dir))
}

// RecursiveCopy mirrors src into dst with robocopy, removing anything in
// dst that src does not have.
func (a *Admin) RecursiveCopy(ctx context.Context, src, dst string) error {
	script, err := writeTempFile("spawnadmin-copy-folder", ".cmd", copyFolderScript)
	if err != nil {
		return fmt.Errorf("extract copy script: %w", err)
	}

	res, err := a.start("robocopy", spawnadmin.NewCommand("cmd", "/c", script, src, dst))
	if err != nil {
		os.Remove(script)
		return err
	}

	// cmd.exe reads batch files lazily; keep the script until the copy ends.
	go func() {
		<-res.Done()
		os.Remove(script)
	}()

	return a.await(ctx, "robocopy", res)
}
