package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/drag"
	"github.com/thenoetrevino/tablero/internal/types"
)

// DragCmd returns the task drag subcommand
func DragCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drag",
		Short: "Drop a card or column onto a target",
		Long: `Run one drag gesture: pick up --id and release it over --over.

A task dropped on a column moves there. A column dropped on a column
takes its place. Anything else leaves the board unchanged; --over=""
releases outside any target.

Examples:
  tablero task drag --id=3f2a9c1e --over=done
  tablero task drag --id=review --over=todo --json
`,
		RunE: runDrag,
	}

	cmd.Flags().String("id", "", "Task ID, unique task prefix, or column id being dragged (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("over", "", "Id the item is released over")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDrag(cmd *cobra.Command, args []string) error {
	active, _ := cmd.Flags().GetString("id")
	over, _ := cmd.Flags().GetString("over")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	b := cliInstance.App.Board

	// Short task ids are expanded; column ids pass through untouched
	if b.ColumnIndex(types.ColumnID(active)) < 0 {
		id, err := cli.ResolveTaskID(b.Tasks(), active)
		if err == nil {
			active = string(id)
		} else if errors.Is(err, cli.ErrAmbiguousID) {
			return formatter.Fail(cli.ExitUsage, "AMBIGUOUS_ID", err, "Use more characters of the id")
		}
	}
	if over != "" && b.ColumnIndex(types.ColumnID(over)) < 0 {
		if id, err := cli.ResolveTaskID(b.Tasks(), over); err == nil {
			over = string(id)
		}
	}

	outcome := cliInstance.App.Drag.Drop(active, over)

	if formatter.Quiet {
		fmt.Println(outcome)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"outcome": outcome.String(),
			"changed": outcome.Changed(),
		})
	}

	switch outcome {
	case drag.OutcomeTaskMoved:
		fmt.Printf("✓ Task moved to '%s'\n", over)
	case drag.OutcomeColumnsReordered:
		fmt.Printf("✓ Column '%s' moved to the position of '%s'\n", active, over)
	case drag.OutcomeCancelled:
		fmt.Println("Drag cancelled, nothing changed")
	default:
		fmt.Println("Nothing to drop there, board unchanged")
	}
	return nil
}
