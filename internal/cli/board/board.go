// Package board holds the whole-board commands: stats, export, import and
// clear.
package board

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts per column",
		Long: `Show a read-only summary of the board.

Examples:
  tablero stats
  tablero stats --json
`,
		RunE: runStats,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	stats := cliInstance.App.Board.Stats()

	if formatter.Quiet {
		fmt.Println(stats.Total)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"stats":   stats,
		})
	}

	if stats.Total == 0 {
		fmt.Println(styles.RenderCard(styles.SubtitleStyle.Render(
			"No tasks yet. Add one with 'tablero task add --title=...'")))
		return nil
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Board summary"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Total:"), styles.ValueStyle.Render(fmt.Sprint(stats.Total)))
	for i, pc := range stats.PerColumn {
		col, _ := cliInstance.App.Board.Column(pc.ColumnID)
		fmt.Fprintf(&b, "%s %d", styles.ColumnTitle(col)+":", pc.Count)
		if i < len(stats.PerColumn)-1 {
			b.WriteString("\n")
		}
	}

	fmt.Println(styles.RenderCard(b.String()))
	return nil
}
