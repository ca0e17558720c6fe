package task

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/types"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DragCmd())

	return cmd
}

// failValidation maps a board validation error to the matching exit code
func failValidation(formatter *cli.OutputFormatter, err error, columns []models.Column) error {
	switch {
	case errors.Is(err, board.ErrUnknownColumn):
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", err,
			"Available columns: "+cli.ColumnNames(columns))
	case errors.Is(err, board.ErrInvalidPriority):
		return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err,
			"Valid priorities are: low, medium, high")
	default:
		return formatter.Fail(cli.ExitValidation, "INVALID_TASK", err, "")
	}
}

// resolveTask looks up the --id flag against the board
func resolveTask(formatter *cli.OutputFormatter, c *cli.CLI, raw string) (models.Task, error) {
	id, err := cli.ResolveTaskID(c.App.Board.Tasks(), raw)
	if err != nil {
		if errors.Is(err, cli.ErrAmbiguousID) {
			return models.Task{}, formatter.Fail(cli.ExitUsage, "AMBIGUOUS_ID", err,
				"Use more characters of the id")
		}
		return models.Task{}, formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND", err,
			"Use 'tablero task list' to see available tasks")
	}
	t, _ := c.App.Board.Task(id)
	return t, nil
}

// parseStatus resolves a column id or title to a status value
func parseStatus(formatter *cli.OutputFormatter, columns []models.Column, s string) (types.ColumnID, error) {
	col, ok := cli.ResolveColumn(columns, s)
	if !ok {
		return "", failValidation(formatter, board.ErrUnknownColumn, columns)
	}
	return col.ID, nil
}
