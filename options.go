package spawnadmin

import (
	"io"
	"os"
)

// Logger receives session log lines. *fsadmin.Logger satisfies it.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Config holds the settings for a launch.
type Config struct {
	TestMode bool         // Spawn without elevation (for automated tests)
	Output   io.Writer    // Receives output drained from pipe handles (nil = discard)
	Dispatch func(func()) // Runs completion callbacks (nil = on the waiting goroutine)
	Logger   Logger       // Session log (nil = no logging)
	Metrics  *Metrics     // Prometheus metrics (nil = not recorded)
}

// Option is a function that configures a launch.
type Option func(*Config)

// WithTestMode selects the unprivileged launch path.
// The same mode is used for launching and waiting.
func WithTestMode(testMode bool) Option {
	return func(c *Config) {
		c.TestMode = testMode
	}
}

// WithOutput sets where output from the macOS privileged helper is forwarded.
// Other launch paths let the child inherit the caller's stdio.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithDispatcher sets how SpawnAsAdmin callbacks are scheduled. Use it to
// deliver the exit code on the caller's own loop, for example by sending the
// function to a UI thread's queue.
func WithDispatcher(dispatch func(func())) Option {
	return func(c *Config) {
		c.Dispatch = dispatch
	}
}

// WithLogger sets the session logger.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithMetrics records launches and exits in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Output:   os.Stdout,
		Dispatch: func(fn func()) { fn() },
		Logger:   nopLogger{},
	}
}

func buildConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Dispatch == nil {
		cfg.Dispatch = func(fn func()) { fn() }
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	return cfg
}
