package column

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// ReorderCmd returns the column reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Move a column to another position",
		Long: `Move the column at position --from to position --to. Positions
start at 1, as printed by 'tablero column list'. The other columns keep
their relative order.

Examples:
  tablero column reorder --from=4 --to=1
  tablero column reorder --from=1 --to=2 --json
`,
		RunE: runReorder,
	}

	cmd.Flags().Int("from", 0, "Current position (required)")
	cmd.Flags().Int("to", 0, "New position (required)")
	for _, name := range []string{"from", "to"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runReorder(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	b := cliInstance.App.Board
	n := len(b.Columns())

	if from < 1 || from > n || to < 1 || to > n {
		return formatter.Fail(cli.ExitValidation, "INVALID_POSITION",
			fmt.Errorf("positions must be between 1 and %d", n), "Use 'tablero column list' to see positions")
	}

	b.ReorderColumns(from-1, to-1)
	columns := b.Columns()

	if formatter.Quiet {
		for _, c := range columns {
			fmt.Println(c.ID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"columns": columns,
		})
	}

	fmt.Printf("✓ Column '%s' moved to position %d\n", columns[to-1].Title, to)
	return nil
}
