package board

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
	"github.com/thenoetrevino/tablero/internal/transfer"
)

func TestStats(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, StatsCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "No tasks yet")
	})

	t.Run("counts per column", func(t *testing.T) {
		app := clitest.SetupCLITest(t)
		clitest.CreateTestTask(t, app, "A", models.ColumnTodo)
		clitest.CreateTestTask(t, app, "B", models.ColumnTodo)
		clitest.CreateTestTask(t, app, "C", models.ColumnDone)

		output, err := clitest.ExecuteCLICommand(t, app, StatsCmd(), []string{"--json"})
		require.NoError(t, err)

		stats := clitest.ParseJSON(t, output)["stats"].(map[string]any)
		assert.Equal(t, float64(3), stats["total"])

		perColumn := stats["perColumn"].([]any)
		require.Len(t, perColumn, 4)
		assert.Equal(t, float64(2), perColumn[0].(map[string]any)["count"])
		assert.Equal(t, float64(1), perColumn[3].(map[string]any)["count"])

		output, err = clitest.ExecuteCLICommand(t, app, StatsCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "3\n", output)
	})
}

func TestExportClearImport_RoundTrip(t *testing.T) {
	app := clitest.SetupCLITest(t)
	clitest.CreateTestTask(t, app, "Write spec", models.ColumnTodo)
	clitest.CreateTestTask(t, app, "Ship it", models.ColumnReview)
	title := "Backlog"
	app.Board.UpdateColumn(models.ColumnTodo, models.ColumnPatch{Title: &title})

	wantTasks := app.Board.Tasks()
	wantColumns := app.Board.Columns()

	file := filepath.Join(t.TempDir(), "backup.json")

	output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), []string{"--output", file})
	require.NoError(t, err)
	assert.Contains(t, output, "Exported 2 tasks and 4 columns")

	var doc transfer.Document
	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Tasks, 2)

	_, err = clitest.ExecuteCLICommand(t, app, ClearCmd(), []string{"--yes"})
	require.NoError(t, err)
	assert.Empty(t, app.Board.Tasks())
	assert.Equal(t, "To Do", app.Board.Columns()[0].Title)

	output, err = clitest.ExecuteCLICommand(t, app, ImportCmd(), []string{"--file", file, "--json"})
	require.NoError(t, err)
	result := clitest.ParseJSON(t, output)["result"].(map[string]any)
	assert.Equal(t, true, result["tasksReplaced"])
	assert.Equal(t, true, result["columnsReplaced"])

	got := app.Board.Tasks()
	require.Len(t, got, len(wantTasks))
	for i := range wantTasks {
		assert.Equal(t, wantTasks[i].ID, got[i].ID)
		assert.Equal(t, wantTasks[i].Title, got[i].Title)
		assert.Equal(t, wantTasks[i].Status, got[i].Status)
		assert.Equal(t, wantTasks[i].Priority, got[i].Priority)
		assert.True(t, wantTasks[i].CreatedAt.Equal(got[i].CreatedAt))
		assert.True(t, wantTasks[i].UpdatedAt.Equal(got[i].UpdatedAt))
	}
	assert.Equal(t, wantColumns, app.Board.Columns())
}

func TestExport_Stdout(t *testing.T) {
	app := clitest.SetupCLITest(t)
	clitest.CreateTestTask(t, app, "A", models.ColumnTodo)

	output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), []string{"--output", "-"})
	require.NoError(t, err)

	doc := clitest.ParseJSON(t, output)
	assert.Len(t, doc["tasks"], 1)
	assert.Contains(t, doc, "exportDate")
	assert.Contains(t, output, "\n  \"tasks\"")
}

func TestImport_Invalid(t *testing.T) {
	app := clitest.SetupCLITest(t)
	task := clitest.CreateTestTask(t, app, "Keep me", models.ColumnTodo)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o600))

	_, err := clitest.ExecuteCLICommand(t, app, ImportCmd(), []string{"--file", bad})
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, app, ImportCmd(), []string{"--file", filepath.Join(dir, "missing.json")})
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))

	_, ok := app.Board.Task(task.ID)
	assert.True(t, ok)
}

func TestImport_NonArrayFieldsIgnored(t *testing.T) {
	app := clitest.SetupCLITest(t)
	task := clitest.CreateTestTask(t, app, "Keep me", models.ColumnTodo)

	file := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"tasks": "nope", "columns": {"a": 1}}`), 0o600))

	output, err := clitest.ExecuteCLICommand(t, app, ImportCmd(), []string{"--file", file})
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing to import")

	_, ok := app.Board.Task(task.ID)
	assert.True(t, ok)
}

func TestClear_RequiresConfirmation(t *testing.T) {
	app := clitest.SetupCLITest(t)
	clitest.CreateTestTask(t, app, "A", models.ColumnTodo)

	_, err := clitest.ExecuteCLICommand(t, app, ClearCmd(), nil)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Len(t, app.Board.Tasks(), 1)
}
