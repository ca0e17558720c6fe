package handlers

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// HandleDeleteConfirm handles task deletion confirmation.
func HandleDeleteConfirm(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		return confirmDeleteTask(m)
	case "n", "N", "esc":
		m.FormState.DeletingTaskID = ""
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// confirmDeleteTask performs the actual task deletion.
func confirmDeleteTask(m *tui.Model) tea.Cmd {
	id := m.FormState.DeletingTaskID
	m.FormState.DeletingTaskID = ""
	m.UiState.SetMode(state.NormalMode)

	t, ok := m.App.Board.Task(id)
	if !ok || !m.App.Board.DeleteTask(id) {
		m.NotificationState.Add(state.LevelError, "Task no longer exists")
		m.ClampSelection()
		return nil
	}

	m.ClampSelection()
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Deleted '%s'", t.Title))
	return nil
}
