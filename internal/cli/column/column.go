package column

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage board columns",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(ReorderCmd())

	return cmd
}

// resolveColumn looks up the --id flag, by id or title
func resolveColumn(formatter *cli.OutputFormatter, columns []models.Column, raw string) (models.Column, error) {
	col, ok := cli.ResolveColumn(columns, raw)
	if !ok {
		return models.Column{}, formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND",
			errColumnNotFound(raw), "Available columns: "+cli.ColumnNames(columns))
	}
	return col, nil
}
