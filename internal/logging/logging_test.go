package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAt_WritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, InitAt(dir))

	slog.Info("board loaded", "tasks", 3)

	data, err := os.ReadFile(filepath.Join(dir, "tablero.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "board loaded")
	assert.Contains(t, string(data), "tasks=3")
	assert.NotNil(t, Logger)
}
