package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// TaskCardHeight is the fixed height of a task card, borders included
const TaskCardHeight = 6

// descriptionLines is how much of the description a card shows
const descriptionLines = 2

// TaskProps controls how a card is drawn
type TaskProps struct {
	Task     models.Task
	Selected bool
	// Held marks the card that is being dragged
	Held bool
}

// RenderTask renders a single task as a card
//
//	╭──────────────────────────────────╮
//	│ {Task Title}                     │
//	│ ● priority                       │
//	│ {description, wrapped}           │
//	│ {second line}                    │
//	╰──────────────────────────────────╯
//
// This has a fixed width and height.
func RenderTask(props TaskProps) string {
	width := state.ColumnContentWidth

	title := props.Task.Title
	if props.Held {
		title = "✋ " + title
	}
	title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Render(truncate.StringWithTail(title, uint(width), "…"))

	lines := []string{title, PriorityLine(props.Task.Priority)}
	lines = append(lines, descriptionPreview(props.Task.Description, width)...)

	border := theme.TaskBorder
	switch {
	case props.Held:
		border = theme.DragBorder
	case props.Selected:
		border = theme.SelectedBorder
	}

	return TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		Render(strings.Join(lines, "\n"))
}

// PriorityLine renders a priority with its color
func PriorityLine(p models.Priority) string {
	color := theme.PriorityMedium
	switch p {
	case models.PriorityLow:
		color = theme.PriorityLow
	case models.PriorityHigh:
		color = theme.PriorityHigh
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("● " + p.String())
}

// descriptionPreview wraps the description to the card width and keeps
// the first lines, always returning exactly descriptionLines lines
func descriptionPreview(description string, width int) []string {
	preview := make([]string, 0, descriptionLines)

	text := strings.Join(strings.Fields(description), " ")
	if text != "" {
		wrapped := strings.Split(wordwrap.String(text, width), "\n")
		for i, line := range wrapped {
			if i == descriptionLines {
				break
			}
			if i == descriptionLines-1 && len(wrapped) > descriptionLines {
				line = truncate.StringWithTail(line+" …", uint(width), "…")
			}
			preview = append(preview, SubtleStyle.Italic(false).Render(truncate.String(line, uint(width))))
		}
	}

	for len(preview) < descriptionLines {
		preview = append(preview, "")
	}
	return preview
}
