// Package config loads the configuration of the zewif command.
//
// Configuration comes from a single YAML file named by the --config flag
// or, failing that, the ZEWIF_CONFIG environment variable. There is no
// discovery; without a file the defaults apply.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/iotaledger/hive.go/ierrors"
	"gopkg.in/yaml.v3"

	"github.com/suffix-labs/zewif/pkg/archive"
	"github.com/suffix-labs/zewif/pkg/zewif"
)

// EnvVar names the environment variable holding the config path.
const EnvVar = "ZEWIF_CONFIG"

// ErrInvalidConfig is returned when a loaded configuration fails
// validation.
var ErrInvalidConfig = ierrors.New("invalid configuration")

// Config is the configuration of the zewif command.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	Archive ArchiveConfig `yaml:"archive"`
	Inspect InspectConfig `yaml:"inspect"`
	Merkle  MerkleConfig  `yaml:"merkle"`
}

// ArchiveConfig controls how the pack command frames documents.
type ArchiveConfig struct {
	// Compression is one of none, lz4 or zstd.
	Compression string `yaml:"compression"`
	Checksum    bool   `yaml:"checksum"`
}

type InspectConfig struct {
	// Dump prints every decoded entity in full.
	Dump bool `yaml:"dump"`
}

type MerkleConfig struct {
	// Protocol is the default protocol of the witness command.
	Protocol string `yaml:"protocol"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Archive: ArchiveConfig{
			Compression: "zstd",
			Checksum:    true,
		},
		Merkle: MerkleConfig{
			Protocol: "sprout",
		},
	}
}

// Load loads the file at path, or the file named by ZEWIF_CONFIG when path
// is empty. With neither it returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile loads and validates the file at path. Fields the file omits
// keep their defaults; unknown fields are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !ierrors.Is(err, io.EOF) {
		return nil, ierrors.Wrapf(err, "config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, ierrors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// Validate checks every enumerated field and reports all failures.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if _, err := archive.ParseCompression(c.Archive.Compression); err != nil {
		errs = append(errs, ierrors.Wrap(err, "archive.compression"))
	}
	if _, err := zewif.ParseProtocol(c.Merkle.Protocol); err != nil {
		errs = append(errs, ierrors.Wrap(err, "merkle.protocol"))
	}

	if len(errs) > 0 {
		return ierrors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}

	return nil
}

// SlogLevel returns the log level as a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, ierrors.Errorf("log_level: unknown level %q", c.LogLevel)
	}
}

// ArchiveOptions returns the options the pack command writes with.
func (c *Config) ArchiveOptions() (archive.Options, error) {
	compression, err := archive.ParseCompression(c.Archive.Compression)
	if err != nil {
		return archive.Options{}, err
	}

	return archive.Options{Compression: compression, Checksum: c.Archive.Checksum}, nil
}

// Protocol returns the default witness protocol.
func (c *Config) Protocol() (zewif.Protocol, error) {
	return zewif.ParseProtocol(c.Merkle.Protocol)
}
