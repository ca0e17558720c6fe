package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/persist"
	"github.com/thenoetrevino/tablero/internal/tui/core"
)

// reportBuffer is how many failed writes can queue up before the board
// reads them
const reportBuffer = 16

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Only failed writes reach the screen
	reporter := persist.NewChanReporter(reportBuffer, true)

	application, err := app.New(ctx, cfg, app.WithReporter(reporter))
	if err != nil {
		return fmt.Errorf("failed to initialize board: %w", err)
	}

	// Pending writes land before storage is released
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing board", "error", err)
		}
	}()

	tuiApp := core.New(ctx, application, reporter.C)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("board closed")
	return nil
}
