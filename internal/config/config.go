package config

import (
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vrec/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vrec.yaml"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultAddr is the default devserver listen address.
	DefaultAddr = "localhost:7070"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "vrec"

	// DefaultSnapshotDir is the default directory for disk snapshots.
	DefaultSnapshotDir = ".vrec/snapshots"
)

// Config represents the complete vrec.yaml configuration.
type Config struct {
	// Log contains logging configuration.
	Log LogConfig `yaml:"log"`

	// Reconciler contains reconciler options.
	Reconciler ReconcilerConfig `yaml:"reconciler"`

	// Devserver contains devtools server configuration.
	Devserver DevserverConfig `yaml:"devserver"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Snapshot contains snapshot store configuration.
	Snapshot SnapshotConfig `yaml:"snapshot"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}

// ReconcilerConfig contains reconciler settings.
type ReconcilerConfig struct {
	// Keyed enables key-based child matching.
	Keyed bool `yaml:"keyed,omitempty"`
}

// DevserverConfig contains devtools server settings.
type DevserverConfig struct {
	// Addr is the host:port to listen on.
	Addr string `yaml:"addr,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Namespace is the metrics namespace.
	Namespace string `yaml:"namespace,omitempty"`
}

// SnapshotConfig contains snapshot store settings.
type SnapshotConfig struct {
	// Dir is the directory used by the disk store.
	Dir string `yaml:"dir,omitempty"`

	// S3 selects the S3 store when Bucket is set.
	S3 S3Config `yaml:"s3,omitempty"`
}

// S3Config contains S3 snapshot store settings.
type S3Config struct {
	// Bucket is the target bucket.
	Bucket string `yaml:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `yaml:"prefix,omitempty"`

	// Region is the AWS region.
	Region string `yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (MinIO, LocalStack).
	Endpoint string `yaml:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadOptional reads vrec.yaml from dir if present. A missing file yields
// the defaults.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	cfg, err := LoadFile(path)
	if err != nil {
		if f, ok := errors.AsFault(err); ok && os.IsNotExist(f.Unwrap()) {
			return New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeConfigRead).
			WithDetail("Could not read " + path).
			Wrap(err)
	}
	return Parse(data, path)
}

// Parse decodes configuration from data. path is recorded for Save.
func Parse(data []byte, path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigParse).
			WithDetail(err.Error()).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New(errors.CodeConfigParse).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Devserver.Addr == "" {
		c.Devserver.Addr = DefaultAddr
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Snapshot.Dir == "" {
		c.Snapshot.Dir = DefaultSnapshotDir
	}
	if c.Snapshot.S3.Bucket != "" && c.Snapshot.S3.Region == "" {
		c.Snapshot.S3.Region = os.Getenv("AWS_REGION")
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := levels[c.Log.Level]; !ok {
		return errors.New(errors.CodeConfigInvalid).
			WithSubject("log.level %q", c.Log.Level).
			WithSuggestion("Use one of debug, info, warn, error.")
	}
	if _, _, err := net.SplitHostPort(c.Devserver.Addr); err != nil {
		return errors.New(errors.CodeConfigInvalid).
			WithSubject("devserver.addr %q", c.Devserver.Addr).
			Wrap(err)
	}
	if c.Snapshot.S3.Bucket != "" && c.Snapshot.S3.Region == "" {
		return errors.New(errors.CodeConfigInvalid).
			WithSubject("snapshot.s3.region").
			WithSuggestion("Set snapshot.s3.region or AWS_REGION.")
	}
	return nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	return levels[c.Log.Level]
}

// UseS3 reports whether snapshots go to S3 instead of disk.
func (c *Config) UseS3() bool {
	return c.Snapshot.S3.Bucket != ""
}
