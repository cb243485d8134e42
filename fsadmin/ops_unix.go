//go:build darwin || linux

package fsadmin

import (
	"context"

	"github.com/crafted-tech/spawnadmin"
)

// Symlink creates a symbolic link at path pointing to target.
func (a *Admin) Symlink(ctx context.Context, target, path string) error {
	return a.run(ctx, "ln", spawnadmin.NewCommand("/bin/ln", "-s", target, path))
}

// Unlink removes path. Directories are removed with their contents and a
// missing path is not an error.
func (a *Admin) Unlink(ctx context.Context, path string) error {
	return a.run(ctx, "rm", spawnadmin.NewCommand("/bin/rm", "-rf", path))
}

// MakeTree creates dir and any missing parents.
func (a *Admin) MakeTree(ctx context.Context, dir string) error {
	return a.run(ctx, "mkdir", spawnadmin.NewCommand("/bin/mkdir", "-p", dir))
}

// RecursiveCopy removes dst and copies src to it.
func (a *Admin) RecursiveCopy(ctx context.Context, src, dst string) error {
	steps := []Step{
		a.CommandStep("Remove "+dst, "rm", spawnadmin.NewCommand("/bin/rm", "-r", "-f", dst)),
		a.CommandStep("Copy "+src, "cp", spawnadmin.NewCommand("/bin/cp", "-r", src, dst)),
	}
	return RunSteps(ctx, steps, a.Logger)
}
