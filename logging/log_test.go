package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerFromContext(t *testing.T) {
	t.Parallel()
	logger := zap.NewExample()
	ctx := NewContext(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
	require.NotNil(t, FromContext(context.Background()))
}

func TestLoggerWritesFile(t *testing.T) {
	t.Parallel()
	filename := filepath.Join(t.TempDir(), "rpow.log")
	logger := New(zap.InfoLevel, FileConfig{Filename: filename, MaxBackups: 1, MaxSizeMB: 1}, true)
	logger.Debug("debug goes to file only")
	_ = logger.Sync()

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Contains(t, string(data), "debug goes to file only")
}
