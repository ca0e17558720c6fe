package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Long: `List the tasks on the board grouped by column.

Examples:
  # All tasks
  tablero task list

  # Only one column (id or title)
  tablero task list --status=done

  # JSON output for agents
  tablero task list --json

  # IDs only
  tablero task list --quiet
`,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only list tasks in this column")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	b := cliInstance.App.Board
	columns := b.Columns()

	tasks := b.Tasks()
	if status != "" {
		id, err := parseStatus(formatter, columns, status)
		if err != nil {
			return err
		}
		tasks = b.TasksByStatus(id)
	}

	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Println(t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"tasks":   tasks,
		})
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d tasks:\n", len(tasks))
	for _, col := range columns {
		var inColumn []models.Task
		for _, t := range tasks {
			if t.Status == col.ID {
				inColumn = append(inColumn, t)
			}
		}
		if len(inColumn) == 0 {
			continue
		}

		fmt.Printf("\n%s (%d)\n", styles.ColumnTitle(col), len(inColumn))
		for _, t := range inColumn {
			fmt.Printf("  [%s] %s  %s\n", cli.ShortID(t.ID), t.Title, styles.PriorityBadge(t.Priority))
		}
	}

	return nil
}
