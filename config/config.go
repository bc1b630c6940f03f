// Package config loads the moo tool settings from YAML, with environment
// overrides.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/moo/scan"
)

// Environment variables that override the file.
const (
	ENV_LOG_LEVEL  = "MOO_LOG_LEVEL"
	ENV_REVOCATION = "MOO_REVOCATION"
	ENV_WORKERS    = "MOO_WORKERS"
	ENV_LOCALE     = "MOO_LOCALE"
)

// Config is the full tool configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Revocation RevocationConfig `yaml:"revocation"`
	Scan       ScanConfig       `yaml:"scan"`
	Locale     string           `yaml:"locale"` // BCP 47 tag; empty uses the system locale
}

// LoggingConfig selects the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// RevocationConfig names the revocation list applied to every container.
type RevocationConfig struct {
	Path string `yaml:"path"`
}

// ScanConfig controls directory scans.
type ScanConfig struct {
	Workers int    `yaml:"workers"` // zero uses GOMAXPROCS
	Pattern string `yaml:"pattern"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
		Scan: ScanConfig{
			Pattern: scan.PATTERN_DEFAULT,
		},
	}
}

// Load reads a YAML configuration file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (cfg *Config, err error) {
	cfg = DefaultConfig()

	if len(path) != 0 {
		var data []byte
		data, err = os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			err = nil
		case err != nil:
			err = &ErrConfig{Path: path, Err: err}
			cfg = nil
			return
		default:
			err = yaml.Unmarshal(data, cfg)
			if err != nil {
				err = &ErrConfig{Path: path, Err: err}
				cfg = nil
				return
			}
		}
	}

	err = cfg.applyEnvOverrides()
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
		return
	}

	return
}

// Save writes the configuration as YAML.
func (cfg *Config) Save(path string) (err error) {
	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}

	err = os.WriteFile(path, data, 0644)

	return
}

func (cfg *Config) applyEnvOverrides() (err error) {
	if level := os.Getenv(ENV_LOG_LEVEL); level != "" {
		cfg.Logging.Level = level
	}
	if path := os.Getenv(ENV_REVOCATION); path != "" {
		cfg.Revocation.Path = path
	}
	if locale := os.Getenv(ENV_LOCALE); locale != "" {
		cfg.Locale = locale
	}
	if workers := os.Getenv(ENV_WORKERS); workers != "" {
		var n int
		n, err = strconv.Atoi(workers)
		if err != nil {
			err = &ErrSetting{Name: ENV_WORKERS, Value: workers}
			return
		}
		cfg.Scan.Workers = n
	}

	return
}

// Validate checks the settings that cannot be checked by their consumers.
func (cfg *Config) Validate() (err error) {
	_, err = cfg.Level()
	if err != nil {
		return
	}

	switch cfg.Logging.Encoding {
	case "json", "console":
	default:
		return &ErrSetting{Name: "logging.encoding", Value: cfg.Logging.Encoding}
	}

	if cfg.Scan.Workers < 0 {
		return &ErrSetting{Name: "scan.workers", Value: strconv.Itoa(cfg.Scan.Workers)}
	}

	return
}

// Level is the parsed logging level.
func (cfg *Config) Level() (level zapcore.Level, err error) {
	level, err = zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		err = &ErrSetting{Name: "logging.level", Value: cfg.Logging.Level}
	}
	return
}

// Logger builds a production zap logger from the logging settings.
// When verbose is set the level is lowered to debug.
func (cfg *Config) Logger(verbose bool) (logger *zap.Logger, err error) {
	level, err := cfg.Level()
	if err != nil {
		return
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = cfg.Logging.Encoding
	if zcfg.Encoding == "console" {
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zcfg.OutputPaths = []string{"stderr"}

	logger, err = zcfg.Build()

	return
}
