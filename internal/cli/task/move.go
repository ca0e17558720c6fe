package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column>",
		Short: "Move a task to another column",
		Long: `Move a task to a column, given by id or title (case-insensitive).

Examples:
  tablero task move --id=3f2a9c1e done
  tablero task move --id=3f2a9c1e "In Progress"
  tablero task move --id=3f2a9c1e review --json
`,
		RunE: runMove,
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().String("id", "", "Task ID or unique prefix (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	rawID, _ := cmd.Flags().GetString("id")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	b := cliInstance.App.Board

	task, err := resolveTask(formatter, cliInstance, rawID)
	if err != nil {
		return err
	}

	status, err := parseStatus(formatter, b.Columns(), args[0])
	if err != nil {
		return err
	}

	if !b.MoveTask(task.ID, status) {
		return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND", board.ErrTaskNotFound, "")
	}
	col, _ := b.Column(status)

	if formatter.Quiet {
		fmt.Println(task.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"task_id": task.ID,
			"status":  status,
		})
	}

	fmt.Printf("✓ Task %s moved to '%s'\n", cli.ShortID(task.ID), col.Title)
	return nil
}
