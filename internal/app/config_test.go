package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hatermatic.yaml")
	body := "catalog: love\nseed: fixed\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "love", cfg.Catalog)
	assert.Equal(t, "fixed", cfg.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Encoding, "unset keys keep defaults")
	require.NoError(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hatermatic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [unterminated"), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HATERMATIC_CATALOG", "love")
	t.Setenv("HATERMATIC_CATALOG_FILE", "/tmp/x.yaml")
	t.Setenv("HATERMATIC_SEED", "env-seed")
	t.Setenv("HATERMATIC_LOG_LEVEL", "warn")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "love", cfg.Catalog)
	assert.Equal(t, "/tmp/x.yaml", cfg.CatalogFile)
	assert.Equal(t, "env-seed", cfg.Seed)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	t.Run("unknown catalog", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Catalog = "meh"
		require.Error(t, cfg.Validate())
	})
	t.Run("catalog file skips name check", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Catalog = "meh"
		cfg.CatalogFile = "office.yaml"
		require.NoError(t, cfg.Validate())
	})
	t.Run("bad level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "loud"
		require.Error(t, cfg.Validate())
	})
	t.Run("bad encoding", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Encoding = "xml"
		require.Error(t, cfg.Validate())
	})
}

func TestLoad_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hatermatic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalgo: love\n"), 0o600))
	_, err := Load(path)
	require.ErrorContains(t, err, "catalgo")
}

func TestLoad_EmptyFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hatermatic.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
