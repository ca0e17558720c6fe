package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task from the board.

Examples:
  tablero task delete --id=3f2a9c1e
  tablero task delete --id=3f2a9c1e --json
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Task ID or unique prefix (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	rawID, _ := cmd.Flags().GetString("id")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	task, err := resolveTask(formatter, cliInstance, rawID)
	if err != nil {
		return err
	}

	cliInstance.App.Board.DeleteTask(task.ID)

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"task_id": task.ID,
		})
	}

	fmt.Printf("✓ Task %s deleted successfully\n", cli.ShortID(task.ID))
	return nil
}
