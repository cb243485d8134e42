package platform

import (
	"io"
	"sync/atomic"
)

// Handle references a child started by Start. The concrete type depends on
// the platform and launch mode:
//
//   - *PIDHandle: a direct child process id (test mode, Linux pkexec)
//   - *PipeHandle: the output pipe of the macOS privileged helper
//   - *ProcessHandle: a Windows process handle from ShellExecuteEx
//
// A Handle is consumed by exactly one call to Wait.
type Handle interface {
	// Kind names the handle representation ("pid", "pipe", "process").
	Kind() string

	consume() bool
	wait(out io.Writer) ExitCode
}

// consumable marks a handle as used the first time it is waited on.
type consumable struct {
	used atomic.Bool
}

func (c *consumable) consume() bool {
	return c.used.CompareAndSwap(false, true)
}

// Wait blocks until the child behind h exits and returns its exit code.
// Output produced through a pipe handle is forwarded to out (nil discards it).
//
// Wait consumes h. Waiting on a nil or already consumed handle returns
// ExitUnknown without touching the underlying OS resource.
func Wait(h Handle, out io.Writer) ExitCode {
	if h == nil || !h.consume() {
		return ExitUnknown
	}
	return h.wait(out)
}
