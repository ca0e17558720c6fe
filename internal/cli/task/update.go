package task

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task",
		Long: `Update one or more fields of a task. Only the flags given are changed.

Examples:
  tablero task update --id=3f2a9c1e --title="Better title"
  tablero task update --id=3f2a9c1e --priority=high --status=review --json
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID or unique prefix (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("status", "", "New column id or title")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	rawID, _ := cmd.Flags().GetString("id")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	b := cliInstance.App.Board
	columns := b.Columns()

	task, err := resolveTask(formatter, cliInstance, rawID)
	if err != nil {
		return err
	}

	var patch models.TaskPatch
	flags := cmd.Flags()
	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		v = strings.TrimSpace(v)
		patch.Title = &v
	}
	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		patch.Description = &v
	}
	if flags.Changed("status") {
		v, _ := flags.GetString("status")
		status, err := parseStatus(formatter, columns, v)
		if err != nil {
			return err
		}
		patch.Status = &status
	}
	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		p, err := models.ParsePriority(v)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err,
				"Valid priorities are: low, medium, high")
		}
		patch.Priority = &p
	}

	if patch.IsEmpty() {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES", errors.New("no fields to update"),
			"Pass at least one of --title, --description, --status, --priority")
	}

	if err := board.ValidateTaskPatch(patch, columns); err != nil {
		return failValidation(formatter, err, columns)
	}

	if !b.UpdateTask(task.ID, patch) {
		return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND", board.ErrTaskNotFound, "")
	}
	updated, _ := b.Task(task.ID)

	if formatter.Quiet {
		fmt.Println(updated.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(updated)
	}

	fmt.Printf("✓ Task %s updated successfully\n", cli.ShortID(updated.ID))
	return nil
}
