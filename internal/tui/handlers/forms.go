package handlers

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// FORM HANDLERS
// ============================================================================

// HandleTaskForm feeds a message to the task form and saves the task once
// the form completes. Esc closes the form without saving.
func HandleTaskForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	fs := m.FormState
	if fs.TaskForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		fs.ClearTaskForm()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	model, cmd := fs.TaskForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		fs.TaskForm = form
	}

	switch fs.TaskForm.State {
	case huh.StateCompleted:
		if fs.FormConfirm {
			saveTask(m)
		}
		fs.ClearTaskForm()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case huh.StateAborted:
		fs.ClearTaskForm()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	return cmd
}

// saveTask creates or updates a task from the completed form
func saveTask(m *tui.Model) {
	fs := m.FormState
	fs.FormTitle = strings.TrimSpace(fs.FormTitle)
	columns := m.Columns()

	if fs.EditingTaskID == "" {
		in := fs.TaskInput()
		if err := board.ValidateTaskInput(in, columns); err != nil {
			m.NotificationState.Add(state.LevelError, "Task not created: "+err.Error())
			return
		}
		t := m.App.Board.AddTask(in)
		slog.Info("task created", "id", t.ID, "status", t.Status)
		m.SelectTask(t)
		return
	}

	patch := fs.TaskPatch()
	if err := board.ValidateTaskPatch(patch, columns); err != nil {
		m.NotificationState.Add(state.LevelError, "Task not saved: "+err.Error())
		return
	}
	if !m.App.Board.UpdateTask(fs.EditingTaskID, patch) {
		m.NotificationState.Add(state.LevelError, "Task no longer exists")
		m.ClampSelection()
		return
	}
	if t, ok := m.App.Board.Task(fs.EditingTaskID); ok {
		m.SelectTask(t)
	}
}

// HandleColumnForm feeds a message to the column form and saves the
// column once the form completes. Esc closes the form without saving.
func HandleColumnForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	fs := m.FormState
	if fs.ColumnForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		fs.ClearColumnForm()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	model, cmd := fs.ColumnForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		fs.ColumnForm = form
	}

	switch fs.ColumnForm.State {
	case huh.StateCompleted:
		saveColumn(m)
		fs.ClearColumnForm()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case huh.StateAborted:
		fs.ClearColumnForm()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	return cmd
}

// saveColumn applies the completed column form
func saveColumn(m *tui.Model) {
	fs := m.FormState
	title := strings.TrimSpace(fs.FormColumnTitle)
	if err := board.ValidateColumnTitle(title); err != nil {
		m.NotificationState.Add(state.LevelError, "Column not saved: "+err.Error())
		return
	}

	patch := models.ColumnPatch{Title: &title}
	if swatch, ok := colors.SwatchForColor(fs.FormColumnColor); ok {
		color, bg := swatch.Color, swatch.BgColor
		patch.Color = &color
		patch.BgColor = &bg
	}

	if !m.App.Board.UpdateColumn(fs.EditingColumnID, patch) {
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Column '%s' no longer exists", fs.EditingColumnID))
		return
	}
	slog.Info("column updated", "id", fs.EditingColumnID)
}
