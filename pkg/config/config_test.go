package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/zewif/pkg/archive"
	"github.com/suffix-labs/zewif/pkg/zewif"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "zewif.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultsWithoutFile(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())

	opts, err := cfg.ArchiveOptions()
	require.NoError(t, err)
	assert.Equal(t, archive.Options{Compression: archive.CompressionZstd, Checksum: true}, opts)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
archive:
  compression: lz4
  checksum: false
inspect:
  dump: true
merkle:
  protocol: orchard
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.True(t, cfg.Inspect.Dump)

	opts, err := cfg.ArchiveOptions()
	require.NoError(t, err)
	assert.Equal(t, archive.Options{Compression: archive.CompressionLZ4}, opts)

	protocol, err := cfg.Protocol()
	require.NoError(t, err)
	assert.Equal(t, zewif.ProtocolOrchard, protocol)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvVar, writeConfig(t, "log_level: warn\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "zstd", cfg.Archive.Compression)
}

func TestEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidationRejectsUnknownValues(t *testing.T) {
	path := writeConfig(t, `
log_level: loud
archive:
  compression: gzip
merkle:
  protocol: bitcoin
`)

	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, archive.ErrUnknownCompression)
	require.ErrorIs(t, err, zewif.ErrProtocolMismatch)
	assert.Contains(t, err.Error(), "log_level")
}

func TestUnknownFieldRejected(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "log_levle: debug\n"))
	require.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
