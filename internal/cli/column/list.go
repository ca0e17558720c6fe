package column

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/config/colors"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns in board order",
		Long: `List the board's columns with their positions and task counts.

Examples:
  tablero column list
  tablero column list --json
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	columns := cliInstance.App.Board.Columns()
	stats := cliInstance.App.Board.Stats()

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

	fmt.Printf("Found %d columns:\n\n", len(columns))
	for i, c := range columns {
		color := "-"
		if s, ok := colors.SwatchForColor(c.Color); ok {
			color = s.Name
		}
		fmt.Printf("  %d. %s [%s] %d tasks, color %s\n",
			i+1, styles.ColumnTitle(c), c.ID, stats.Count(c.ID), color)
	}

	return nil
}
