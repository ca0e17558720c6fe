package render

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/drag"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ViewBoard renders the header, the visible columns and the status bar
func ViewBoard(m *tui.Model) string {
	header := components.RenderHeader(components.HeaderProps{
		Stats: m.App.Board.Stats(),
		Width: m.UiState.Width(),
	})

	columns := m.Columns()
	ref, holding := m.App.Drag.Active()

	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:   m.UiState.Width(),
		Holding: holdingLabel(m, ref, holding),
	})

	if len(columns) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", "No columns configured.", "", footer)
	}

	offset := min(m.UiState.ViewportOffset(), len(columns)-1)
	end := min(offset+m.UiState.ViewportSize(), len(columns))
	height := m.UiState.ContentHeight()

	rendered := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		col := columns[i]
		selected := i == m.UiState.SelectedColumn()

		selectedTask := -1
		if selected {
			selectedTask = m.UiState.SelectedTask()
		}

		props := components.ColumnProps{
			Column:       col,
			Tasks:        m.TasksFor(i),
			Selected:     selected,
			SelectedTask: selectedTask,
			Dragging:     holding,
			Height:       height,
			ScrollOffset: m.UiState.TaskScrollOffset(col.ID),
		}
		if holding {
			props.Held = ref.Kind == drag.KindColumn && ref.ID == string(col.ID)
			if ref.Kind == drag.KindTask {
				props.HeldTask = ref.ID
			}
		}

		if i > offset {
			rendered = append(rendered, " ")
		}
		rendered = append(rendered, components.RenderColumn(props))
	}

	left, right := " ", " "
	if offset > 0 {
		left = "‹"
	}
	if end < len(columns) {
		right = "›"
	}

	board := lipgloss.JoinHorizontal(lipgloss.Center, left, " ", lipgloss.JoinHorizontal(lipgloss.Top, rendered...), " ", right)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", board, "", footer)
}

// holdingLabel names what is being dragged for the status bar
func holdingLabel(m *tui.Model, ref drag.Ref, holding bool) string {
	if !holding {
		return ""
	}
	switch ref.Kind {
	case drag.KindTask:
		if t, ok := m.App.Board.Task(types.TaskID(ref.ID)); ok {
			return fmt.Sprintf("task '%s'", t.Title)
		}
	case drag.KindColumn:
		if c, ok := m.App.Board.Column(types.ColumnID(ref.ID)); ok {
			return fmt.Sprintf("column '%s'", c.Title)
		}
	}
	return ref.Kind.String()
}
