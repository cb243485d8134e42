// Package config loads the spawnadmin CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/crafted-tech/spawnadmin/platform"
)

// FileName is the configuration file looked up when no path is given.
const FileName = "spawnadmin.yaml"

// AutoLogDir as log_dir selects the per-user log directory.
const AutoLogDir = "auto"

type Config struct {
	TestMode  bool   `yaml:"test_mode"`
	LogPrefix string `yaml:"log_prefix"`
	LogDir    string `yaml:"log_dir"`  // empty = no per-run log file
	LogFile   string `yaml:"log_file"` // shared log appended to by every run; wins over LogDir
	Metrics   bool   `yaml:"metrics"`
}

// Overrides holds command-line values that replace file values when set.
type Overrides struct {
	TestMode *bool
	LogDir   string
	LogFile  string
	Metrics  *bool
}

func Default() *Config {
	return &Config{
		TestMode:  false,
		LogPrefix: "spawnadmin",
		LogDir:    "",
		LogFile:   "",
		Metrics:   false,
	}
}

// Load reads the configuration over the defaults. A non-empty path must
// exist. Otherwise FileName is looked up in the working directory and then
// in the per-user config directory; if neither exists the defaults are
// returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findFile()
		if path == "" {
			return cfg, nil
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.LogPrefix == "" {
		cfg.LogPrefix = Default().LogPrefix
	}
	if cfg.LogDir != "" && cfg.LogDir != AutoLogDir {
		cfg.LogDir = filepath.Clean(cfg.LogDir)
	}
	if cfg.LogFile != "" {
		cfg.LogFile = filepath.Clean(cfg.LogFile)
	}
	return cfg, nil
}

func findFile() string {
	candidates := []string{FileName}
	if dir, err := platform.UserConfigPath(); err == nil {
		candidates = append(candidates, filepath.Join(dir, FileName))
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		} else if !errors.Is(err, fs.ErrNotExist) {
			return p // let Load report it
		}
	}
	return ""
}

// Apply copies the set fields of o into cfg.
func (cfg *Config) Apply(o Overrides) {
	if o.TestMode != nil {
		cfg.TestMode = *o.TestMode
	}
	switch o.LogDir {
	case "":
	case AutoLogDir:
		cfg.LogDir = AutoLogDir
	default:
		cfg.LogDir = filepath.Clean(o.LogDir)
	}
	if o.LogFile != "" {
		cfg.LogFile = filepath.Clean(o.LogFile)
	}
	if o.Metrics != nil {
		cfg.Metrics = *o.Metrics
	}
}

// ResolveLogDir returns the directory for the session log, or "" when
// logging to a file is disabled.
func (cfg *Config) ResolveLogDir() (string, error) {
	if cfg.LogDir != AutoLogDir {
		return cfg.LogDir, nil
	}
	dir, err := platform.UserLogsPath()
	if err != nil {
		return "", fmt.Errorf("resolve log directory: %w", err)
	}
	return dir, nil
}
