package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadingNonExistingConfigFile(t *testing.T) {
	cfg := Config{
		ConfigFile: "non-existing-file",
	}
	_, err := ReadConfigFile(&cfg)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	cfg := &Config{
		ConfigFile: filepath.Join(dir, "config.ini"),
	}
	content := "datadir = /tmp\n[Ledger]\nretarget-interval = 600\nallow-resubmission = true\n"
	err := os.WriteFile(cfg.ConfigFile, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err = ReadConfigFile(cfg)
	require.NoError(t, err)
	require.Equal(t, "/tmp", cfg.DataDir)
	require.Equal(t, int64(600), cfg.Ledger.RetargetInterval)
	require.True(t, cfg.Ledger.AllowResubmission)
}

func TestReadConfigFilePathNotSet(t *testing.T) {
	cfg, err := ReadConfigFile(&Config{})
	require.NoError(t, err)
	require.Equal(t, &Config{}, cfg)
}

func TestSetupConfig(t *testing.T) {
	t.Parallel()
	t.Run("paths follow a custom rpow dir", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.RpowDir = t.TempDir()

		cfg, err := SetupConfig(cfg)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(cfg.RpowDir, defaultDataDirname), cfg.DataDir)
		require.Equal(t, filepath.Join(cfg.RpowDir, defaultDbDirName), cfg.DbDir)
		require.Equal(t, filepath.Join(cfg.RpowDir, defaultLogDirname), cfg.LogDir)
	})
	t.Run("explicit paths are kept", func(t *testing.T) {
		t.Parallel()
		dbDir := filepath.Join(t.TempDir(), "ledger")
		cfg := DefaultConfig()
		cfg.RpowDir = t.TempDir()
		cfg.DbDir = dbDir

		cfg, err := SetupConfig(cfg)
		require.NoError(t, err)
		require.Equal(t, dbDir, cfg.DbDir)
	})
}

func TestCleanAndExpandPath(t *testing.T) {
	t.Setenv("RPOW_TEST_DIR", "/var/lib")
	require.Equal(t, "/var/lib/rpow", cleanAndExpandPath("$RPOW_TEST_DIR/rpow/"))
	require.Equal(t, "", cleanAndExpandPath(""))
}
