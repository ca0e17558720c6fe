package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// ColumnProps controls how a column is drawn
type ColumnProps struct {
	Column models.Column
	Tasks  []models.Task
	// Selected marks the focused column, which is also the drop target
	// while something is held
	Selected bool
	// SelectedTask is the focused task index, -1 when another column has focus
	SelectedTask int
	// Held marks the column being dragged
	Held bool
	// HeldTask is the id of the task being dragged, if any
	HeldTask string
	// Dragging is true while any drag session is active
	Dragging bool
	// Height is the total box height
	Height int
	// ScrollOffset is the index of the first visible task
	ScrollOffset int
}

// columnOverhead is border and padding (2), header (1) and the top
// indicator line (1)
const columnOverhead = 4

// VisibleTasks returns how many cards fit in a column of the given height
func VisibleTasks(height int) int {
	return max((height-columnOverhead-1)/TaskCardHeight, 1)
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderColumn(props ColumnProps) string {
	titleColor := colors.TerminalColor(props.Column.Color, theme.Title)
	header := TitleStyle.
		Foreground(lipgloss.Color(titleColor)).
		Render(fmt.Sprintf("%s (%d)", props.Column.Title, len(props.Tasks)))
	if props.Held {
		header = "✋ " + header
	}
	content := header + "\n"

	if len(props.Tasks) == 0 {
		empty := "No tasks"
		if props.Dragging && props.Selected && props.HeldTask != "" {
			empty = "Drop here"
		}
		content += "\n" + SubtleStyle.Render(empty)
	} else {
		maxVisible := VisibleTasks(props.Height)
		offset := min(max(props.ScrollOffset, 0), len(props.Tasks)-1)

		if offset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		end := min(offset+maxVisible, len(props.Tasks))
		cards := make([]string, 0, end-offset)
		for i := offset; i < end; i++ {
			t := props.Tasks[i]
			cards = append(cards, RenderTask(TaskProps{
				Task:     t,
				Selected: props.Selected && i == props.SelectedTask,
				Held:     string(t.ID) == props.HeldTask,
			}))
		}
		content += strings.Join(cards, "\n")

		if end < len(props.Tasks) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	border := theme.ColumnBorder
	switch {
	case props.Held:
		border = theme.DragBorder
	case props.Selected && props.Dragging:
		border = theme.DragBorder
	case props.Selected:
		border = theme.SelectedBorder
	}

	style := ColumnStyle.BorderForeground(lipgloss.Color(border))
	if props.Height > 0 {
		style = style.Height(props.Height)
	}
	return style.Render(content)
}
