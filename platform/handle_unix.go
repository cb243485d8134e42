//go:build darwin || linux

package platform

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// drainChunkSize is the read size used when draining a pipe handle.
const drainChunkSize = 512

// anyChild waits for whichever child exits first. The macOS privileged
// helper does not report its pid, so its pipe handle waits this way and may
// reap another child of this process instead.
const anyChild = -1

// PIDHandle is a child started directly by this process.
type PIDHandle struct {
	consumable
	PID int
}

// Kind implements Handle.
func (h *PIDHandle) Kind() string { return "pid" }

func (h *PIDHandle) wait(io.Writer) ExitCode {
	return waitPID(h.PID)
}

// PipeHandle is a readable stream connected to a child's output. The stream
// is drained to EOF and closed before the child is reaped.
type PipeHandle struct {
	consumable
	file *os.File
	pid  int
}

// NewPipeHandle wraps f, the read end of a child's output. pid identifies
// the child to reap once the stream closes; pass -1 to reap any child. With
// -1 no other child of the process may be running while the handle is
// waited on: whichever exits first is reaped, and its real owner then sees
// ExitUnknown.
func NewPipeHandle(f *os.File, pid int) *PipeHandle {
	return &PipeHandle{file: f, pid: pid}
}

// Kind implements Handle.
func (h *PipeHandle) Kind() string { return "pipe" }

func (h *PipeHandle) wait(out io.Writer) ExitCode {
	drain(h.file, out)
	h.file.Close()
	return waitPID(h.pid)
}

// drain copies r to out one chunk at a time until EOF or a read error.
// Write failures switch to discarding so the child never blocks on a full pipe.
func drain(r io.Reader, out io.Writer) {
	if out == nil {
		out = io.Discard
	}

	buf := make([]byte, drainChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				out = io.Discard
			}
		}
		if err != nil {
			return
		}
	}
}

// waitPID reaps pid and decodes its status.
func waitPID(pid int) ExitCode {
	var status unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &status, 0, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return ExitUnknown
		}
		return decodeStatus(status)
	}
}

// decodeStatus maps a wait status to an exit code. A child killed by a
// signal reports 128+signal, the shell convention.
func decodeStatus(status unix.WaitStatus) ExitCode {
	switch {
	case status.Exited():
		return ExitCode(status.ExitStatus())
	case status.Signaled():
		return ExitCode(128 + int(status.Signal()))
	default:
		return ExitUnknown
	}
}
