package huhforms

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// CreateColumnForm creates a huh form for renaming a column and picking its
// color. The form saves on completion, without a confirmation field.
func CreateColumnForm(title *string, color *string) *huh.Form {
	swatches := colors.Palette()
	colorOptions := make([]huh.Option[string], 0, len(swatches))
	for _, s := range swatches {
		colorOptions = append(colorOptions, huh.NewOption(s.Name, s.Color))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Rename Column").
			Placeholder("Enter column name...").
			Validate(board.ValidateColumnTitle).
			Value(title),

		huh.NewSelect[string]().
			Key("color").
			Title("Color").
			Options(colorOptions...).
			Height(6).
			Value(color),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}
