// Package fsadmin performs filesystem operations as the administrator.
//
// Each operation runs a system tool (ln, rm, mkdir, cp on macOS and Linux;
// cmd.exe built-ins and robocopy on Windows) through spawnadmin, so the user
// sees the platform's native elevation prompt.
//
//   - Symlink: create a symbolic link (a directory junction on Windows)
//   - Unlink: remove a file or directory tree
//   - MakeTree: create a directory and its parents
//   - RecursiveCopy: replace a directory with a copy of another
//   - CreateWriteStream: write a file through a privileged writer
//     (macOS and Linux)
//
// # Basic Usage
//
// The package-level functions use Default:
//
//	if err := fsadmin.MakeTree(ctx, "/Library/MyApp"); err != nil {
//	    return err
//	}
//
// Use an Admin value to enable test mode or logging:
//
//	log, err := fsadmin.NewLogger("myapp-admin")
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//
//	admin := &fsadmin.Admin{Logger: log}
//	err = admin.Symlink(ctx, target, "/usr/local/bin/myapp")
//
// A command that runs but exits non-zero yields an *ExitError:
//
//	var exitErr *fsadmin.ExitError
//	if errors.As(err, &exitErr) {
//	    log.Error("%s exited with %d", exitErr.Command, exitErr.Code)
//	}
//
// # Steps
//
// Multi-command operations are built from Steps and run with RunSteps, which
// stops at the first failure and logs every step:
//
//	steps := []fsadmin.Step{
//	    admin.CommandStep("Remove old copy", "rm", spawnadmin.NewCommand("/bin/rm", "-rf", dst)),
//	    admin.CommandStep("Copy", "cp", spawnadmin.NewCommand("/bin/cp", "-r", src, dst)),
//	}
//	return fsadmin.RunSteps(ctx, steps, log)
package fsadmin
