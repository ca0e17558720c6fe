package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the board and storage

	owned bool // App was opened here and is closed by Close
}

// NewCLI loads the config and opens the board
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize board: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// Close flushes pending writes and releases storage
func (c *CLI) Close() error {
	if !c.owned {
		// Writes still have to land before the command reports success
		return c.App.Writer.Flush(context.Background())
	}
	return c.App.Close()
}

// Open returns the CLI for a command, printing a formatted error when the
// board cannot be opened
func Open(cmd *cobra.Command, formatter *OutputFormatter) (*CLI, error) {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, formatter.Fail(ExitError, "INITIALIZATION_ERROR", err, "")
	}
	return cliInstance, nil
}

// CloseQuietly closes the CLI and logs a failure
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
