package render

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layers"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// RenderTaskFormLayer renders the task creation/edit form modal as a layer
func RenderTaskFormLayer(m *tui.Model) *lipgloss.Layer {
	if m.FormState.TaskForm == nil {
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	formTitle := titleStyle.Render("Create New Task")
	if m.FormState.EditingTaskID != "" {
		formTitle = titleStyle.Render("Edit Task")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	helpText := helpStyle.Render("tab: next field  shift+enter: new line  esc: discard")

	content := lipgloss.JoinVertical(lipgloss.Left,
		formTitle,
		"",
		m.FormState.TaskForm.View(),
		"",
		helpText,
	)

	formBox := components.FormBoxStyle.
		Width(min(m.UiState.Width()*3/4, 90)).
		Render(content)

	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

// RenderColumnFormLayer renders the rename and color dialog as a layer
func RenderColumnFormLayer(m *tui.Model) *lipgloss.Layer {
	if m.FormState.ColumnForm == nil {
		return nil
	}

	formBox := components.EditInputBoxStyle.
		Width(50).
		Render("Edit Column\n\n" + m.FormState.ColumnForm.View())

	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

// RenderDeleteConfirmLayer asks whether to delete the pending task
func RenderDeleteConfirmLayer(m *tui.Model) *lipgloss.Layer {
	t, ok := m.App.Board.Task(m.FormState.DeletingTaskID)
	if !ok {
		return nil
	}

	confirmBox := components.DeleteConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("Delete task '%s'?\n\n[y]es  [n]o", t.Title))

	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// RenderHelpLayer renders the keyboard shortcuts help screen as a layer
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(50).
		Render(generateHelpText(m))

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// generateHelpText creates help text based on current key mappings
func generateHelpText(m *tui.Model) string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`TABLERO - Keyboard Shortcuts

TASKS
  %-7s Add new task
  %-7s Edit selected task
  %-7s Delete selected task

DRAG AND DROP
  %-7s Pick up selected task
  %-7s Pick up selected column
  %-7s Drop on the selected column
  %-7s Cancel the drag

COLUMNS
  %-7s Rename / recolor column

NAVIGATION
  %s / %s   Previous / next column
  %s / %s   Previous / next task

OTHER
  %-7s Show this help
  %-7s Quit

Press any key to close`,
		km.AddTask, km.EditTask, km.DeleteTask,
		km.PickUpTask, km.PickUpColumn, km.Drop, km.CancelDrag,
		km.EditColumn,
		km.PrevColumn, km.NextColumn, km.PrevTask, km.NextTask,
		km.ShowHelp, km.Quit,
	)
}
