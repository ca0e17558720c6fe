package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// ClearCmd returns the clear command
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task and column customization",
		Long: `Remove all stored board data. This cannot be undone; export first.

Examples:
  tablero clear --yes
`,
		RunE: runClear,
	}

	cmd.Flags().Bool("yes", false, "Confirm deleting all data")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	if !yes {
		return formatter.Fail(cli.ExitUsage, "CONFIRMATION_REQUIRED",
			errors.New("refusing to clear the board without --yes"),
			"Run 'tablero export' first, then 'tablero clear --yes'")
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	if err := cliInstance.App.Clear(cmd.Context()); err != nil {
		return formatter.Fail(cli.ExitError, "CLEAR_ERROR", err, "")
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{"success": true})
	}

	fmt.Println("✓ All board data cleared")
	return nil
}
