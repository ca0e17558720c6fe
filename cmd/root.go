package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/column"
	"github.com/thenoetrevino/tablero/internal/cli/serve"
	"github.com/thenoetrevino/tablero/internal/cli/task"
	"github.com/thenoetrevino/tablero/internal/cli/tutorial"
	"github.com/thenoetrevino/tablero/internal/launcher"
	"github.com/thenoetrevino/tablero/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - A terminal kanban board",
	Long: `Tablero is a kanban board for one person: tasks in columns, moved by
drag and drop in the terminal, from the command line or over a local HTTP API.

Run without arguments to open the terminal board.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The terminal board sets up logging itself
		if cmd.Root() == cmd {
			return
		}
		if err := logging.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(board.StatsCmd())
	rootCmd.AddCommand(board.ExportCmd())
	rootCmd.AddCommand(board.ImportCmd())
	rootCmd.AddCommand(board.ClearCmd())
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
}

// Execute runs the root command. Errors from commands already carry an
// exit code and were printed by the command; anything else is a usage
// error from cobra itself.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var coded *cli.CodedError
	if errors.As(err, &coded) {
		return err
	}

	slog.Debug("command failed", "error", err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", rootCmd.CommandPath())
	return cli.Exit(cli.ExitUsage, err)
}
