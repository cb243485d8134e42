package spawnadmin

import (
	"context"
	"sync"

	"github.com/crafted-tech/spawnadmin/platform"
)

// Command is an executable plus its arguments.
type Command = platform.Command

// ExitCode is the status reported by a finished command.
type ExitCode = platform.ExitCode

// ExitUnknown is reported when the exit status could not be determined.
const ExitUnknown = platform.ExitUnknown

// Errors reported by Start and the authorization helpers. They can be
// checked with errors.Is.
var (
	ErrElevationDeclined    = platform.ErrElevationDeclined
	ErrElevationUnavailable = platform.ErrElevationUnavailable
	ErrEmptyCommand         = platform.ErrEmptyCommand
	ErrNoAuthorization      = platform.ErrNoAuthorization
)

// NewCommand builds a Command. The argument slice is copied so later
// changes by the caller do not affect the command.
func NewCommand(path string, args ...string) Command {
	return Command{Path: path, Args: append([]string(nil), args...)}
}

// Result is the pending outcome of a started command. It resolves exactly
// once, when the command exits.
type Result struct {
	id   string
	cmd  Command
	done chan struct{}
	once sync.Once
	code ExitCode
}

func newResult(id string, cmd Command) *Result {
	return &Result{
		id:   id,
		cmd:  cmd,
		done: make(chan struct{}),
		code: ExitUnknown,
	}
}

// ID returns the session id used in logs for this launch.
func (r *Result) ID() string {
	return r.id
}

// Command returns the command that was started.
func (r *Result) Command() Command {
	return r.cmd
}

// Done returns a channel that is closed when the command has exited.
func (r *Result) Done() <-chan struct{} {
	return r.done
}

// ExitCode returns the exit code once Done is closed, and ExitUnknown before.
func (r *Result) ExitCode() ExitCode {
	select {
	case <-r.done:
		return r.code
	default:
		return ExitUnknown
	}
}

// Wait blocks until the command exits or ctx is done. Giving up on ctx does
// not stop the command.
func (r *Result) Wait(ctx context.Context) (ExitCode, error) {
	select {
	case <-r.done:
		return r.code, nil
	case <-ctx.Done():
		return ExitUnknown, ctx.Err()
	}
}

// resolve records the exit code. Only the first call has any effect.
func (r *Result) resolve(code ExitCode) bool {
	resolved := false
	r.once.Do(func() {
		r.code = code
		close(r.done)
		resolved = true
	})
	return resolved
}
