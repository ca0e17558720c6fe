package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/persist"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// PersistResultMsg carries a failed background write to the model
type PersistResultMsg struct {
	Result persist.Result
}

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState

	// Reports delivers persistence results; nil disables the subscription
	Reports <-chan persist.Result
}

// InitialModel creates the TUI model over an already loaded app
func InitialModel(ctx context.Context, a *app.App, reports <-chan persist.Result) Model {
	m := Model{
		Ctx:               ctx,
		App:               a,
		Config:            a.Config,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		Reports:           reports,
	}

	if a.KV.Degraded() && a.Config.Storage.Backend != config.BackendMemory {
		m.NotificationState.Add(state.LevelError, "Storage unavailable, changes are kept in memory only")
	}
	return m
}

// Init starts listening for persistence results
func (m Model) Init() tea.Cmd {
	return m.ListenForReports()
}

// ListenForReports waits for the next persistence result. It returns nil
// when there is nothing to listen to.
func (m Model) ListenForReports() tea.Cmd {
	if m.Reports == nil {
		return nil
	}
	reports := m.Reports
	ctx := m.Ctx
	return func() tea.Msg {
		select {
		case r, ok := <-reports:
			if !ok {
				return nil
			}
			return PersistResultMsg{Result: r}
		case <-ctx.Done():
			return nil
		}
	}
}

// Columns returns the columns in display order
func (m *Model) Columns() []models.Column {
	return m.App.Board.Columns()
}

// CurrentColumn returns the focused column, false on an empty board
func (m *Model) CurrentColumn() (models.Column, bool) {
	columns := m.Columns()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(columns) {
		return models.Column{}, false
	}
	return columns[idx], true
}

// TasksFor returns the tasks of the column at index, newest first
func (m *Model) TasksFor(idx int) []models.Task {
	columns := m.Columns()
	if idx < 0 || idx >= len(columns) {
		return []models.Task{}
	}
	return m.App.Board.TasksByStatus(columns[idx].ID)
}

// CurrentTasks returns the tasks of the focused column
func (m *Model) CurrentTasks() []models.Task {
	return m.TasksFor(m.UiState.SelectedColumn())
}

// CurrentTask returns the focused task, false when the column is empty
func (m *Model) CurrentTask() (models.Task, bool) {
	tasks := m.CurrentTasks()
	idx := m.UiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[idx], true
}

// ClampSelection keeps the selection on the board after a mutation
func (m *Model) ClampSelection() {
	m.UiState.Clamp(len(m.Columns()), func(col int) int {
		return len(m.TasksFor(col))
	})
}

// SelectTask focuses the given task wherever it is on the board
func (m *Model) SelectTask(t models.Task) {
	col := m.App.Board.ColumnIndex(t.Status)
	if col < 0 {
		return
	}
	m.UiState.SetSelectedColumn(col)
	for i, candidate := range m.TasksFor(col) {
		if candidate.ID == t.ID {
			m.UiState.SetSelectedTask(i)
			break
		}
	}
	m.ClampSelection()
}
