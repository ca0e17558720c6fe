package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/tui/components"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a task's details",
		Long: `Show a task with its description rendered as markdown.

Examples:
  tablero task show --id=3f2a9c1e
  tablero task show --id=3f2a9c1e --json
`,
		RunE: runShow,
	}

	cmd.Flags().String("id", "", "Task ID or unique prefix (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	rawID, _ := cmd.Flags().GetString("id")

	formatter := cli.FormatterFromFlags(cmd.Flags())

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	task, err := resolveTask(formatter, cliInstance, rawID)
	if err != nil {
		return err
	}

	if formatter.Quiet {
		fmt.Println(task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(task)
	}

	col, _ := cliInstance.App.Board.Column(task.Status)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(task.Title))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(string(task.ID)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Column:"), styles.ColumnTitle(col))
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Priority:"), styles.PriorityBadge(task.Priority))
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Created:"),
		styles.ValueStyle.Render(task.CreatedAt.Local().Format("2006-01-02 15:04")))
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Updated:"),
		styles.ValueStyle.Render(task.UpdatedAt.Local().Format("2006-01-02 15:04")))
	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: task.Description,
		Width:       styles.CardWidth - 6,
	}))

	fmt.Println(styles.RenderCard(b.String()))
	return nil
}
