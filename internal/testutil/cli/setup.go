package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/storage"
	"github.com/thenoetrevino/tablero/internal/types"
)

// SetupCLITest returns an App over an in-memory store with the default
// columns. Task ids are sequential ("task-0001", ...) so tests can predict
// them.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory

	n := 0
	appInstance, err := app.New(context.Background(), cfg,
		app.WithKV(storage.NewMemoryStore()),
		app.WithIDGenerator(func() types.TaskID {
			n++
			return types.TaskID(fmt.Sprintf("task-%04d", n))
		}),
	)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() {
		_ = appInstance.Close()
	})

	return appInstance
}

// CreateTestTask adds a task straight through the board store
func CreateTestTask(t *testing.T, a *app.App, title string, status types.ColumnID) models.Task {
	t.Helper()
	return a.Board.AddTask(models.TaskInput{Title: title, Status: status})
}
