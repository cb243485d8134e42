package spawnadmin

import (
	"time"

	"github.com/google/uuid"

	"github.com/crafted-tech/spawnadmin/platform"
)

// Launch and wait entry points. Tests replace them to observe the session.
var (
	startProcess = platform.Start
	waitProcess  = platform.Wait
)

// Start launches cmd with administrator privileges (or unprivileged in test
// mode) and returns a Result that resolves when the command exits.
//
// The launch itself runs on the calling goroutine; any elevation prompt is
// shown by the OS. Waiting happens on a separate goroutine. Returns
// ErrElevationDeclined if the user rejects the prompt. When Start returns an
// error nothing is running and no Result exists.
func Start(cmd Command, opts ...Option) (*Result, error) {
	return start(cmd, buildConfig(opts))
}

// SpawnAsAdmin launches command with args and calls onExit with its exit
// code once it finishes. It returns false if the command could not be
// started, in which case onExit is never called. Otherwise onExit is called
// exactly once, through the configured dispatcher.
func SpawnAsAdmin(command string, args []string, testMode bool, onExit func(exitCode int), opts ...Option) bool {
	cfg := buildConfig(opts)
	cfg.TestMode = testMode

	res, err := start(NewCommand(command, args...), cfg)
	if err != nil {
		return false
	}

	go func() {
		<-res.Done()
		code := int(res.ExitCode())
		cfg.Dispatch(func() {
			if onExit != nil {
				onExit(code)
			}
		})
	}()
	return true
}

// GetAuthorizationForm returns the serialized authorization credential,
// creating it if needed. It is empty on platforms without authorization
// credentials or when the credential cannot be created.
func GetAuthorizationForm() []byte {
	return platform.DefaultAuthorization().ExternalForm()
}

// ClearAuthorizationCache drops the cached credential so the next launch
// creates a fresh one. Calling it with nothing cached is a no-op.
func ClearAuthorizationCache() {
	platform.DefaultAuthorization().Clear()
}

// IsElevated reports whether the current process already has administrator
// privileges.
func IsElevated() bool {
	return platform.IsElevated()
}

func start(cmd Command, cfg Config) (*Result, error) {
	id := uuid.NewString()
	mode := modeName(cfg.TestMode)
	log := cfg.Logger

	log.Info("[%s] launching %s (%s mode)", id, cmd, mode)

	h, err := startProcess(cmd, cfg.TestMode)
	if err != nil {
		cfg.Metrics.launchFailed(mode)
		log.Error("[%s] launch failed: %v", id, err)
		return nil, err
	}
	cfg.Metrics.launched(mode)
	log.Info("[%s] started, waiting on %s handle", id, h.Kind())

	res := newResult(id, cmd)
	wait := waitProcess
	go func() {
		began := time.Now()
		code := wait(h, cfg.Output)
		cfg.Metrics.exited(mode, code, time.Since(began))

		if code == ExitUnknown {
			log.Warn("[%s] exit status unknown", id)
		} else {
			log.Info("[%s] exited with code %d", id, code)
		}
		res.resolve(code)
	}()

	return res, nil
}

func modeName(testMode bool) string {
	if testMode {
		return "test"
	}
	return "elevated"
}
