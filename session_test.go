//go:build darwin || linux

package spawnadmin

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/crafted-tech/spawnadmin/platform"
)

// recordingLogger collects formatted lines.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...any)  { l.add("INFO", format, args...) }
func (l *recordingLogger) Warn(format string, args ...any)  { l.add("WARN", format, args...) }
func (l *recordingLogger) Error(format string, args ...any) { l.add("ERROR", format, args...) }

func (l *recordingLogger) contains(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func exitWith(code int) Command {
	return NewCommand("/bin/sh", "-c", fmt.Sprintf("exit %d", code))
}

const missingBinary = "/nonexistent/spawnadmin-missing-binary"

func waitResult(t *testing.T, r *Result) ExitCode {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	code, err := r.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	return code
}

// countWaits wraps waitProcess and reports how often it ran.
func countWaits(t *testing.T) *atomic.Int32 {
	t.Helper()
	var calls atomic.Int32
	orig := waitProcess
	waitProcess = func(h platform.Handle, out io.Writer) ExitCode {
		calls.Add(1)
		return orig(h, out)
	}
	t.Cleanup(func() { waitProcess = orig })
	return &calls
}

func TestStartTestModeRoundTrip(t *testing.T) {
	log := &recordingLogger{}
	res, err := Start(exitWith(7), WithTestMode(true), WithLogger(log))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if res.ID() == "" {
		t.Error("result has no session id")
	}

	if code := waitResult(t, res); code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
	if !log.contains(res.ID()) || !log.contains("exited with code 7") {
		t.Errorf("log lines missing session details: %v", log.lines)
	}
}

func TestStartMissingExecutable(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	res, err := Start(NewCommand(missingBinary), WithTestMode(true), WithMetrics(m))
	if err == nil {
		t.Fatal("expected launch failure")
	}
	if res != nil {
		t.Error("failed launch returned a result")
	}
	if got := testutil.ToFloat64(m.launches.WithLabelValues("test", "failed")); got != 1 {
		t.Errorf("failed launches = %v, want 1", got)
	}
}

func TestSpawnAsAdminMissingExecutable(t *testing.T) {
	fired := make(chan int, 1)
	ok := SpawnAsAdmin(missingBinary, nil, true, func(code int) { fired <- code })
	if ok {
		t.Fatal("SpawnAsAdmin reported success for a missing executable")
	}

	select {
	case code := <-fired:
		t.Fatalf("callback fired with %d after a failed launch", code)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSpawnAsAdminCallsBackExactlyOnce(t *testing.T) {
	waits := countWaits(t)

	var calls atomic.Int32
	fired := make(chan int, 4)
	ok := SpawnAsAdmin("/bin/sh", []string{"-c", "exit 7"}, true, func(code int) {
		calls.Add(1)
		fired <- code
	})
	if !ok {
		t.Fatal("SpawnAsAdmin failed to start")
	}

	select {
	case code := <-fired:
		if code != 7 {
			t.Errorf("callback code = %d, want 7", code)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("callback never fired")
	}

	time.Sleep(50 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("callback fired %d times, want 1", n)
	}
	if n := waits.Load(); n != 1 {
		t.Errorf("wait ran %d times, want 1", n)
	}
}

// pipedStart replaces startProcess with one that connects the child's
// stdout to a pipe handle, the way the macOS privileged helper reports.
func pipedStart(t *testing.T) {
	t.Helper()
	orig := startProcess
	startProcess = func(cmd Command, testMode bool) (platform.Handle, error) {
		r, w, err := os.Pipe()
		if err != nil {
			return nil, err
		}
		c := exec.Command(cmd.Path, cmd.Args...)
		c.Stdout = w
		if err := c.Start(); err != nil {
			r.Close()
			w.Close()
			return nil, err
		}
		w.Close()

		pid := c.Process.Pid
		c.Process.Release()
		return platform.NewPipeHandle(r, pid), nil
	}
	t.Cleanup(func() { startProcess = orig })
}

type byteCounter struct {
	n int
}

func (c *byteCounter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

func TestSpawnAsAdminDrainsPipeOutput(t *testing.T) {
	pipedStart(t)
	const size = 2000000

	var out byteCounter
	fired := make(chan int, 2)
	ok := SpawnAsAdmin("/bin/sh", []string{"-c", "head -c 2000000 /dev/zero; exit 4"}, true,
		func(code int) { fired <- code },
		WithOutput(&out),
	)
	if !ok {
		t.Fatal("SpawnAsAdmin failed to start")
	}

	select {
	case code := <-fired:
		if code != 4 {
			t.Errorf("callback code = %d, want 4", code)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("callback never fired")
	}
	if out.n != size {
		t.Errorf("forwarded %d bytes, want %d", out.n, size)
	}

	select {
	case <-fired:
		t.Error("callback fired twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSpawnAsAdminDispatcher(t *testing.T) {
	queue := make(chan func(), 1)
	dispatch := func(fn func()) { queue <- fn }

	var got atomic.Int32
	got.Store(-100)
	ok := SpawnAsAdmin("/bin/sh", []string{"-c", "exit 3"}, true,
		func(code int) { got.Store(int32(code)) },
		WithDispatcher(dispatch),
	)
	if !ok {
		t.Fatal("SpawnAsAdmin failed to start")
	}

	var fn func()
	select {
	case fn = <-queue:
	case <-time.After(10 * time.Second):
		t.Fatal("nothing dispatched")
	}
	if got.Load() != -100 {
		t.Fatal("callback ran before the dispatcher executed it")
	}

	fn()
	if got.Load() != 3 {
		t.Errorf("callback code = %d, want 3", got.Load())
	}
}

func TestSpawnAsAdminNilCallback(t *testing.T) {
	waits := countWaits(t)
	if !SpawnAsAdmin("/bin/sh", []string{"-c", "exit 0"}, true, nil) {
		t.Fatal("SpawnAsAdmin failed to start")
	}

	deadline := time.Now().Add(10 * time.Second)
	for waits.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if waits.Load() != 1 {
		t.Errorf("wait ran %d times, want 1", waits.Load())
	}
}

func TestMetricsRecordExit(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	res, err := Start(exitWith(2), WithTestMode(true), WithMetrics(m))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitResult(t, res)

	if got := testutil.ToFloat64(m.launches.WithLabelValues("test", "started")); got != 1 {
		t.Errorf("started launches = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.exits.WithLabelValues("test", "2")); got != 1 {
		t.Errorf("exits{code=2} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.running); got != 0 {
		t.Errorf("running = %v, want 0", got)
	}
	if n := testutil.CollectAndCount(m.waitSeconds); n != 1 {
		t.Errorf("wait histogram series = %d, want 1", n)
	}
}

func TestAuthorizationPassthrough(t *testing.T) {
	ClearAuthorizationCache()
	ClearAuthorizationCache()

	if runtime.GOOS != "darwin" {
		if form := GetAuthorizationForm(); len(form) != 0 {
			t.Errorf("GetAuthorizationForm = %v, want empty", form)
		}
	}
}
