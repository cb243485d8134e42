//go:build darwin || linux

package fsadmin

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/crafted-tech/spawnadmin"
)

// writeStream feeds a privileged writer process through its stdin.
type writeStream struct {
	name  string
	cmd   *exec.Cmd
	stdin io.WriteCloser
	log   *Logger

	closeOnce sync.Once
	closeErr  error
}

// startWriter starts cmd and writes preamble to its stdin before any data.
func startWriter(name string, cmd *exec.Cmd, preamble []byte, log *Logger) (io.WriteCloser, error) {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	log.Info("Started %s (pid %d)", name, cmd.Process.Pid)

	w := &writeStream{name: name, cmd: cmd, stdin: stdin, log: log}
	if len(preamble) > 0 {
		if _, err := stdin.Write(preamble); err != nil {
			w.Close()
			return nil, fmt.Errorf("write %s preamble: %w", name, err)
		}
	}
	return w, nil
}

func (w *writeStream) Write(p []byte) (int, error) {
	return w.stdin.Write(p)
}

// Close ends the input and waits for the writer. A non-zero exit is
// reported as an *ExitError.
func (w *writeStream) Close() error {
	w.closeOnce.Do(func() {
		w.stdin.Close()
		w.closeErr = w.wait()
	})
	return w.closeErr
}

func (w *writeStream) wait() error {
	err := w.cmd.Wait()
	if err == nil {
		w.log.Info("%s finished", w.name)
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := spawnadmin.ExitCode(exitErr.ExitCode())
		w.log.Error("%s exited with code %d", w.name, code)
		return &ExitError{Command: w.name, Code: code}
	}
	return fmt.Errorf("wait %s: %w", w.name, err)
}
