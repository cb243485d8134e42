package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/crafted-tech/spawnadmin"
	"github.com/crafted-tech/spawnadmin/fsadmin"
	"github.com/crafted-tech/spawnadmin/internal/config"
)

type rootOptions struct {
	ConfigPath string
	TestMode   bool
	LogDir     string
	LogFile    string
	Metrics    bool
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	opts rootOptions

	cfg      *config.Config
	log      *fsadmin.Logger
	registry *prometheus.Registry
	metrics  *spawnadmin.Metrics
	admin    *fsadmin.Admin

	exitCode int
}

// setup loads the config file and applies the flags the user set.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		return err
	}

	var o config.Overrides
	if cmd.Flags().Changed("test-mode") {
		o.TestMode = &a.opts.TestMode
	}
	if cmd.Flags().Changed("metrics") {
		o.Metrics = &a.opts.Metrics
	}
	o.LogDir = a.opts.LogDir
	o.LogFile = a.opts.LogFile
	cfg.Apply(o)
	a.cfg = cfg

	log, err := openLog(cfg)
	if err != nil {
		return err
	}
	a.log = log

	if cfg.Metrics {
		a.registry = prometheus.NewRegistry()
		a.metrics = spawnadmin.NewMetrics(a.registry)
	}

	a.admin = &fsadmin.Admin{
		TestMode: cfg.TestMode,
		Logger:   a.log,
		Metrics:  a.metrics,
		Output:   cmd.OutOrStdout(),
	}
	return nil
}

// openLog returns the session logger selected by cfg, or nil when logging to
// a file is disabled.
func openLog(cfg *config.Config) (*fsadmin.Logger, error) {
	if cfg.LogFile != "" {
		return fsadmin.NewLoggerToFile(cfg.LogFile)
	}

	dir, err := cfg.ResolveLogDir()
	if err != nil || dir == "" {
		return nil, err
	}
	return fsadmin.NewLoggerIn(dir, cfg.LogPrefix)
}

// teardown dumps metrics to w and closes the log. It is a no-op when setup
// never ran.
func (a *app) teardown(w io.Writer) error {
	defer a.log.Close()
	if a.registry == nil {
		return nil
	}
	return dumpMetrics(w, a.registry)
}

func (a *app) sessionOptions(out io.Writer) []spawnadmin.Option {
	opts := []spawnadmin.Option{
		spawnadmin.WithTestMode(a.cfg.TestMode),
		spawnadmin.WithOutput(out),
		spawnadmin.WithMetrics(a.metrics),
	}
	if a.log != nil {
		opts = append(opts, spawnadmin.WithLogger(a.log))
	}
	return opts
}

// dumpMetrics writes every gathered family in the Prometheus text format.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
