package board

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/transfer"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board to a backup file",
		Long: `Export all tasks and columns to a JSON backup.

Examples:
  # kanban-board-backup-YYYY-MM-DD.json in the current directory
  tablero export

  # Somewhere else, or - for stdout
  tablero export --output=backup.json
  tablero export --output=- | jq '.tasks | length'
`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default kanban-board-backup-<date>.json, - for stdout)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	doc, err := cliInstance.App.Export(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "EXPORT_ERROR", err, "")
	}

	if output == "-" {
		return transfer.WriteDocument(os.Stdout, doc)
	}
	if output == "" {
		output = transfer.DefaultFilename(cliInstance.App.Now())
	}

	f, err := os.Create(output)
	if err != nil {
		return formatter.Fail(cli.ExitError, "EXPORT_ERROR", fmt.Errorf("failed to create %s: %w", output, err), "")
	}
	if err := transfer.WriteDocument(f, doc); err != nil {
		_ = f.Close()
		return formatter.Fail(cli.ExitError, "EXPORT_ERROR", err, "")
	}
	if err := f.Close(); err != nil {
		return formatter.Fail(cli.ExitError, "EXPORT_ERROR", err, "")
	}

	if formatter.Quiet {
		fmt.Println(output)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"file":    output,
			"tasks":   len(doc.Tasks),
			"columns": len(doc.Columns),
		})
	}

	fmt.Printf("✓ Exported %d tasks and %d columns to %s\n", len(doc.Tasks), len(doc.Columns), output)
	return nil
}
