package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/transfer"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the board from a backup file",
		Long: `Import a JSON backup. A "tasks" or "columns" array in the file replaces
what is stored; a field that is missing or not an array is left alone.

Examples:
  tablero import --file=kanban-board-backup-2024-05-01.json
  cat backup.json | tablero import --file=- --json
`,
		RunE: runImport,
	}

	cmd.Flags().StringP("file", "f", "", "Backup file to import, - for stdin (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return formatter.Fail(cli.ExitDataErr, "READ_ERROR", fmt.Errorf("failed to read %s: %w", file, err), "")
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	res, err := cliInstance.App.Import(cmd.Context(), data)
	if err != nil {
		if errors.Is(err, transfer.ErrInvalidDocument) {
			return formatter.Fail(cli.ExitDataErr, "INVALID_BACKUP", err,
				"The file must be a JSON object with tasks and/or columns arrays")
		}
		return formatter.Fail(cli.ExitError, "IMPORT_ERROR", err, "")
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"result":  res,
		})
	}

	if !res.TasksReplaced && !res.ColumnsReplaced {
		fmt.Println("Nothing to import, board unchanged")
		return nil
	}
	if res.TasksReplaced {
		fmt.Printf("✓ Imported %d tasks\n", res.Tasks)
	}
	if res.ColumnsReplaced {
		fmt.Printf("✓ Imported %d columns\n", res.Columns)
	}
	return nil
}
