package task

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to the board",
		Long: `Add a new task. It goes to the top of the board.

Examples:
  # Simple task in the first column
  tablero task add --title="Write spec"

  # JSON output for agents
  tablero task add --title="Fix bug" --status=review --json

  # Quiet mode for bash capture
  TASK_ID=$(tablero task add --title="Fix bug" --quiet)

  # Description from stdin
  cat notes.md | tablero task add --title="Release notes" --description=- --priority=high
`,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("status", "", "Column id or title (defaults to the first column)")
	cmd.Flags().String("priority", string(models.DefaultPriority), "Priority: low, medium, high")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	columns := cliInstance.App.Board.Columns()

	if description == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return formatter.Fail(cli.ExitError, "STDIN_READ_ERROR", err, "")
		}
		description = string(data)
	}

	in := models.TaskInput{Title: strings.TrimSpace(title), Description: description}

	if status != "" {
		if in.Status, err = parseStatus(formatter, columns, status); err != nil {
			return err
		}
	}

	if in.Priority, err = models.ParsePriority(priority); err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err,
			"Valid priorities are: low, medium, high")
	}

	if err := board.ValidateTaskInput(in, columns); err != nil {
		return failValidation(formatter, err, columns)
	}

	task := cliInstance.App.Board.AddTask(in)

	if formatter.Quiet {
		fmt.Println(task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(task)
	}

	col, _ := cliInstance.App.Board.Column(task.Status)
	fmt.Printf("✓ Task %s created successfully\n", cli.ShortID(task.ID))
	fmt.Printf("  Title: %s\n", task.Title)
	fmt.Printf("  Column: %s\n", col.Title)
	fmt.Printf("  Priority: %s\n", task.Priority)

	return nil
}
