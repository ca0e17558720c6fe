package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
	"github.com/thenoetrevino/tablero/internal/types"
)

func TestAddTask(t *testing.T) {
	app := clitest.SetupCLITest(t)

	t.Run("title only goes to the first column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--title", "  Write spec  ", "--quiet"})
		require.NoError(t, err)

		id := strings.TrimSpace(output)
		task, ok := app.Board.Task(types.TaskID(id))
		require.True(t, ok)
		assert.Equal(t, "task-0001", id)
		assert.Equal(t, "Write spec", task.Title)
		assert.Equal(t, models.ColumnTodo, task.Status)
		assert.Equal(t, models.PriorityMedium, task.Priority)
	})

	t.Run("all fields with column title", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--title", "Review docs",
			"--description", "Check the **README**",
			"--status", "in progress",
			"--priority", "HIGH",
			"--json",
		})
		require.NoError(t, err)

		result := clitest.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]any)
		assert.Equal(t, "Review docs", data["title"])
		assert.Equal(t, "in-progress", data["status"])
		assert.Equal(t, "high", data["priority"])
	})

	t.Run("newest first", func(t *testing.T) {
		tasks := app.Board.Tasks()
		require.Len(t, tasks, 2)
		assert.Equal(t, "Review docs", tasks[0].Title)
	})
}

func TestAddTask_Negative(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"blank title", []string{"--title", "   "}, cli.ExitValidation},
		{"long title", []string{"--title", strings.Repeat("x", 256)}, cli.ExitValidation},
		{"bad priority", []string{"--title", "A", "--priority", "urgent"}, cli.ExitValidation},
		{"unknown column", []string{"--title", "A", "--status", "backlog"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := clitest.SetupCLITest(t)

			_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, cli.ExitCode(err))
			assert.Empty(t, app.Board.Tasks())
		})
	}
}

func TestListTasks(t *testing.T) {
	app := clitest.SetupCLITest(t)
	clitest.CreateTestTask(t, app, "First", models.ColumnTodo)
	clitest.CreateTestTask(t, app, "Second", models.ColumnDone)

	t.Run("human output groups by column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Found 2 tasks")
		assert.Contains(t, output, "First")
		assert.Contains(t, output, "Second")
		assert.Less(t, strings.Index(output, "First"), strings.Index(output, "Second"))
	})

	t.Run("status filter", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "done", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "task-0002\n", output)
	})

	t.Run("json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		result := clitest.ParseJSON(t, output)
		assert.Len(t, result["tasks"], 2)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "nope"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestListTasks_Empty(t *testing.T) {
	app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks found")
}

func TestShowTask(t *testing.T) {
	app := clitest.SetupCLITest(t)
	task := app.Board.AddTask(models.TaskInput{Title: "Write spec", Description: "Some notes"})

	t.Run("by prefix", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "task-00"})
		require.NoError(t, err)
		assert.Contains(t, output, "Write spec")
		assert.Contains(t, output, "Some notes")
		assert.Contains(t, output, "To Do")
	})

	t.Run("json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", string(task.ID), "--json"})
		require.NoError(t, err)
		data := clitest.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, string(task.ID), data["id"])
	})

	t.Run("not found", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "missing"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestShowTask_AmbiguousPrefix(t *testing.T) {
	app := clitest.SetupCLITest(t)
	clitest.CreateTestTask(t, app, "A", models.ColumnTodo)
	clitest.CreateTestTask(t, app, "B", models.ColumnTodo)

	_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "task-"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestUpdateTask(t *testing.T) {
	app := clitest.SetupCLITest(t)
	task := clitest.CreateTestTask(t, app, "Old", models.ColumnTodo)

	t.Run("changes only given fields", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
			"--id", string(task.ID), "--title", "New", "--priority", "low",
		})
		require.NoError(t, err)

		got, _ := app.Board.Task(task.ID)
		assert.Equal(t, "New", got.Title)
		assert.Equal(t, models.PriorityLow, got.Priority)
		assert.Equal(t, models.ColumnTodo, got.Status)
		assert.True(t, got.UpdatedAt.After(task.UpdatedAt))
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", string(task.ID)})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("unknown status leaves task unchanged", func(t *testing.T) {
		before, _ := app.Board.Task(task.ID)

		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
			"--id", string(task.ID), "--title", "Other", "--status", "nope",
		})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

		after, _ := app.Board.Task(task.ID)
		assert.Equal(t, before, after)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", string(task.ID), "--title", " "})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestDeleteTask(t *testing.T) {
	app := clitest.SetupCLITest(t)
	keep := clitest.CreateTestTask(t, app, "Keep", models.ColumnTodo)
	drop := clitest.CreateTestTask(t, app, "Drop", models.ColumnTodo)

	output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", string(drop.ID), "--json"})
	require.NoError(t, err)
	assert.Equal(t, true, clitest.ParseJSON(t, output)["success"])

	tasks := app.Board.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)

	_, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", string(drop.ID)})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestMoveTask(t *testing.T) {
	app := clitest.SetupCLITest(t)
	task := clitest.CreateTestTask(t, app, "Write spec", models.ColumnTodo)

	output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", string(task.ID), "Done"})
	require.NoError(t, err)
	assert.Contains(t, output, "moved to 'Done'")

	got, _ := app.Board.Task(task.ID)
	assert.Equal(t, models.ColumnDone, got.Status)

	_, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", string(task.ID), "not-a-column"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	got, _ = app.Board.Task(task.ID)
	assert.Equal(t, models.ColumnDone, got.Status)
}

func TestDragTask(t *testing.T) {
	app := clitest.SetupCLITest(t)
	task := clitest.CreateTestTask(t, app, "Write spec", models.ColumnTodo)

	t.Run("task onto column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, DragCmd(), []string{
			"--id", cli.ShortID(task.ID), "--over", "done", "--json",
		})
		require.NoError(t, err)

		result := clitest.ParseJSON(t, output)
		assert.Equal(t, "task_moved", result["outcome"])

		stats := app.Board.Stats()
		assert.Equal(t, 0, stats.Count(models.ColumnTodo))
		assert.Equal(t, 1, stats.Count(models.ColumnDone))
	})

	t.Run("no target never mutates", func(t *testing.T) {
		before := app.Board.Tasks()

		output, err := clitest.ExecuteCLICommand(t, app, DragCmd(), []string{"--id", string(task.ID), "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "cancelled\n", output)
		assert.Equal(t, before, app.Board.Tasks())
	})

	t.Run("column onto column", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DragCmd(), []string{"--id", "done", "--over", "todo"})
		require.NoError(t, err)
		assert.Equal(t, models.ColumnDone, app.Board.Columns()[0].ID)
	})
}
