package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/cli"
)

func TestRootCommands(t *testing.T) {
	want := []string{"task", "column", "stats", "export", "import", "clear", "serve", "tutorial"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}

func TestExecute_UnknownCommandIsUsageError(t *testing.T) {
	rootCmd.SetArgs([]string{"no-such-command"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := Execute()
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
