package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.ClampSelection()

	case tui.PersistResultMsg:
		if !msg.Result.OK() {
			slog.Warn("background write failed", "key", msg.Result.Key, "error", msg.Result.Err)
			m.NotificationState.Add(state.LevelError, "Failed to save changes, they are kept in memory")
		}
		return m.ListenForReports()
	}

	// Forms need ALL messages, not just keys
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		return HandleTaskForm(m, msg)
	case state.ColumnFormMode:
		return HandleColumnForm(m, msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch m.UiState.Mode() {
	case state.DeleteConfirmMode:
		return HandleDeleteConfirm(m, keyMsg)
	case state.HelpMode:
		return HandleHelpMode(m, keyMsg)
	default:
		return HandleNormalMode(m, keyMsg)
	}
}
