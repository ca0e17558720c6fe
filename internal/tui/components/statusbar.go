package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// HeaderProps feeds the stats header
type HeaderProps struct {
	Stats models.Stats
	Width int
}

// RenderHeader renders the board title with task counts per column
func RenderHeader(props HeaderProps) string {
	title := TitleStyle.Foreground(lipgloss.Color(theme.Highlight)).Render("Tablero")

	var summary string
	if props.Stats.Total == 0 {
		summary = "No tasks yet. Press a to add one"
	} else {
		parts := make([]string, 0, len(props.Stats.PerColumn)+1)
		parts = append(parts, fmt.Sprintf("%d tasks", props.Stats.Total))
		for _, c := range props.Stats.PerColumn {
			parts = append(parts, fmt.Sprintf("%s %d", c.Title, c.Count))
		}
		summary = strings.Join(parts, " · ")
	}

	line := title + "  " + lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(summary)
	return lipgloss.NewStyle().MaxWidth(max(props.Width, 1)).Render(line)
}

type StatusBarProps struct {
	Width int
	// Holding describes the current drag, empty when idle
	Holding string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Tablero - Kanban Board"
	leftColor := theme.Subtle
	if props.Holding != "" {
		leftText = fmt.Sprintf("Holding %s: move to a column and press enter, esc to cancel", props.Holding)
		leftColor = theme.DragBorder
	}
	rightText := "press ? for help"

	leftRendered := lipgloss.NewStyle().Foreground(lipgloss.Color(leftColor)).Render(leftText)
	rightRendered := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
