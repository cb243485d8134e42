package fsadmin

import (
	"context"
	"fmt"
	"io"

	"github.com/crafted-tech/spawnadmin"
)

// Admin runs filesystem operations with administrator privileges.
// The zero value runs real elevated commands without logging.
type Admin struct {
	// TestMode runs every command without elevation, for automated tests.
	TestMode bool

	// Logger receives one line per launch, exit and step (nil = no logging).
	Logger *Logger

	// Metrics records launches and exits (nil = not recorded).
	Metrics *spawnadmin.Metrics

	// Output receives output forwarded from the macOS privileged helper
	// (nil = discard).
	Output io.Writer
}

// Default is used by the package-level functions.
var Default = &Admin{}

// Symlink creates a symbolic link at path pointing to target, using Default.
func Symlink(ctx context.Context, target, path string) error {
	return Default.Symlink(ctx, target, path)
}

// Unlink removes path recursively, using Default.
func Unlink(ctx context.Context, path string) error {
	return Default.Unlink(ctx, path)
}

// MakeTree creates dir and any missing parents, using Default.
func MakeTree(ctx context.Context, dir string) error {
	return Default.MakeTree(ctx, dir)
}

// RecursiveCopy replaces dst with a copy of src, using Default.
func RecursiveCopy(ctx context.Context, src, dst string) error {
	return Default.RecursiveCopy(ctx, src, dst)
}

// CreateWriteStream opens path for privileged writing, using Default.
func CreateWriteStream(ctx context.Context, path string) (io.WriteCloser, error) {
	return Default.CreateWriteStream(ctx, path)
}

// ClearAuthorizationCache drops the cached administrator credential so the
// next operation prompts again.
func ClearAuthorizationCache() {
	spawnadmin.ClearAuthorizationCache()
}

// CommandStep creates a Step that runs cmd as administrator. name is the
// short tool name used in an *ExitError.
func (a *Admin) CommandStep(title, name string, cmd spawnadmin.Command) Step {
	return SimpleStep(title, func(ctx context.Context) error {
		return a.run(ctx, name, cmd)
	})
}

func (a *Admin) options() []spawnadmin.Option {
	opts := []spawnadmin.Option{
		spawnadmin.WithTestMode(a.TestMode),
		spawnadmin.WithOutput(a.Output),
		spawnadmin.WithMetrics(a.Metrics),
	}
	if a.Logger != nil {
		opts = append(opts, spawnadmin.WithLogger(a.Logger))
	}
	return opts
}

// start launches cmd; name identifies it in errors.
func (a *Admin) start(name string, cmd spawnadmin.Command) (*spawnadmin.Result, error) {
	res, err := spawnadmin.Start(cmd, a.options()...)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	return res, nil
}

// await waits for res and converts a non-zero exit into an *ExitError.
func (a *Admin) await(ctx context.Context, name string, res *spawnadmin.Result) error {
	code, err := res.Wait(ctx)
	if err != nil {
		return fmt.Errorf("wait %s: %w", name, err)
	}
	if code != 0 {
		return &ExitError{Command: name, Code: code}
	}
	return nil
}

func (a *Admin) run(ctx context.Context, name string, cmd spawnadmin.Command) error {
	res, err := a.start(name, cmd)
	if err != nil {
		return err
	}
	return a.await(ctx, name, res)
}
