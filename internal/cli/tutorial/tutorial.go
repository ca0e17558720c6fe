package tutorial

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a quick start guide",
		Long: `Show a quick start guide for the board, the key bindings and the
command line.

The guide is rendered as styled markdown on a terminal. Use --raw to get
the markdown source, for example to pipe it into another tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			return outputTutorial(raw || !term.IsTerminal(int(os.Stdout.Fd())))
		},
	}

	cmd.Flags().Bool("raw", false, "Print the markdown source")

	return cmd
}

func outputTutorial(raw bool) error {
	if raw {
		fmt.Print(tutorialContent)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(tutorialContent)
	if err != nil {
		return fmt.Errorf("failed to render tutorial: %w", err)
	}
	fmt.Print(out)
	return nil
}
