package column

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

var errUnknownColor = errors.New("unknown palette color")

func errColumnNotFound(raw string) error {
	return fmt.Errorf("%w: %s", board.ErrColumnNotFound, raw)
}

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a column or change its color",
		Long: `Update a column's title or color. Colors are palette names.

Examples:
  tablero column update --id=review --title="QA"
  tablero column update --id=done --color=emerald --json
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Column id or title (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("title", "", "New column title")
	cmd.Flags().String("color", "", "Palette color name (e.g. blue, amber, green)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	rawID, _ := cmd.Flags().GetString("id")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	b := cliInstance.App.Board

	col, err := resolveColumn(formatter, b.Columns(), rawID)
	if err != nil {
		return err
	}

	var patch models.ColumnPatch
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		title = strings.TrimSpace(title)
		if err := board.ValidateColumnTitle(title); err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err, "")
		}
		patch.Title = &title
	}
	if cmd.Flags().Changed("color") {
		name, _ := cmd.Flags().GetString("color")
		swatch, ok := colors.SwatchByName(name)
		if !ok {
			names := make([]string, 0, len(colors.Palette()))
			for _, s := range colors.Palette() {
				names = append(names, strings.ToLower(s.Name))
			}
			return formatter.Fail(cli.ExitValidation, "INVALID_COLOR",
				fmt.Errorf("%w: %s", errUnknownColor, name),
				"Available colors: "+strings.Join(names, ", "))
		}
		patch.Color = &swatch.Color
		patch.BgColor = &swatch.BgColor
	}

	if patch.Title == nil && patch.Color == nil {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES", errors.New("no fields to update"),
			"Pass --title, --color or both")
	}

	if !b.UpdateColumn(col.ID, patch) {
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", errColumnNotFound(rawID), "")
	}
	updated, _ := b.Column(col.ID)

	if formatter.Quiet {
		fmt.Println(updated.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(updated)
	}

	fmt.Printf("✓ Column '%s' updated successfully\n", updated.Title)
	return nil
}
