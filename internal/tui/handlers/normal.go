package handlers

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/tablero/internal/drag"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/huhforms"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode dispatches key events in NormalMode to specific handlers.
// While a card or column is held only navigation, drop, cancel and quit
// are active.
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings
	_, holding := m.App.Drag.Active()

	switch key {
	case km.Quit, "ctrl+c":
		return handleQuit(m)
	case km.PrevColumn, "left":
		return handleNavigateLeft(m)
	case km.NextColumn, "right":
		return handleNavigateRight(m)
	case km.NextTask, "down":
		return handleNavigateDown(m)
	case km.PrevTask, "up":
		return handleNavigateUp(m)
	}

	if holding {
		switch key {
		case km.Drop:
			return handleDrop(m)
		case km.CancelDrag:
			return handleCancelDrag(m)
		}
		return nil
	}

	switch key {
	case km.ShowHelp:
		return handleShowHelp(m)
	case km.AddTask:
		return handleAddTask(m)
	case km.EditTask:
		return handleEditTask(m)
	case km.DeleteTask:
		return handleDeleteTask(m)
	case km.EditColumn:
		return handleEditColumn(m)
	case km.PickUpTask:
		return handlePickUpTask(m)
	case km.PickUpColumn:
		return handlePickUpColumn(m)
	}

	return nil
}

// handleQuit exits the application. A drag in progress is dropped.
func handleQuit(m *tui.Model) tea.Cmd {
	m.App.Drag.Cancel()
	return tea.Quit
}

// handleShowHelp shows the help screen.
func handleShowHelp(m *tui.Model) tea.Cmd {
	m.UiState.SetMode(state.HelpMode)
	return nil
}

// handleNavigateLeft moves selection to the previous column.
func handleNavigateLeft(m *tui.Model) tea.Cmd {
	if m.UiState.SelectedColumn() > 0 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		m.UiState.SetSelectedTask(0)
		m.ClampSelection()
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
	}
	return nil
}

// handleNavigateRight moves selection to the next column.
func handleNavigateRight(m *tui.Model) tea.Cmd {
	if m.UiState.SelectedColumn() < len(m.Columns())-1 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		m.UiState.SetSelectedTask(0)
		m.ClampSelection()
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
	}
	return nil
}

// handleNavigateUp moves selection to the previous task.
func handleNavigateUp(m *tui.Model) tea.Cmd {
	if m.UiState.SelectedTask() > 0 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() - 1)
		ensureTaskVisible(m)
	}
	return nil
}

// handleNavigateDown moves selection to the next task.
func handleNavigateDown(m *tui.Model) tea.Cmd {
	if m.UiState.SelectedTask() < len(m.CurrentTasks())-1 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() + 1)
		ensureTaskVisible(m)
	}
	return nil
}

func ensureTaskVisible(m *tui.Model) {
	col, ok := m.CurrentColumn()
	if !ok {
		return
	}
	m.UiState.EnsureTaskVisible(col.ID, m.UiState.SelectedTask(), components.VisibleTasks(m.UiState.ContentHeight()))
}

// handlePickUpTask starts dragging the focused card.
func handlePickUpTask(m *tui.Model) tea.Cmd {
	t, ok := m.CurrentTask()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No task to pick up")
		return nil
	}
	if _, ok := m.App.Drag.Start(string(t.ID)); !ok {
		m.NotificationState.Add(state.LevelError, "Task no longer exists")
		m.ClampSelection()
	}
	return nil
}

// handlePickUpColumn starts dragging the focused column.
func handlePickUpColumn(m *tui.Model) tea.Cmd {
	col, ok := m.CurrentColumn()
	if !ok {
		return nil
	}
	m.App.Drag.Start(string(col.ID))
	return nil
}

// handleDrop ends the drag over the focused column.
func handleDrop(m *tui.Model) tea.Cmd {
	ref, _ := m.App.Drag.Active()
	col, ok := m.CurrentColumn()
	if !ok {
		return handleCancelDrag(m)
	}

	outcome := m.App.Drag.End(string(col.ID))
	slog.Debug("drop from keyboard", "kind", ref.Kind.String(), "active", ref.ID, "over", col.ID, "outcome", outcome.String())

	switch outcome {
	case drag.OutcomeTaskMoved:
		if t, ok := m.App.Board.Task(types.TaskID(ref.ID)); ok {
			m.SelectTask(t)
		}
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Moved to '%s'", col.Title))
	case drag.OutcomeColumnsReordered:
		// The moved column now sits at the focused index
		m.UiState.SetSelectedTask(0)
		m.ClampSelection()
	default:
		m.ClampSelection()
	}
	return nil
}

// handleCancelDrag drops whatever is held without a target.
func handleCancelDrag(m *tui.Model) tea.Cmd {
	m.App.Drag.End("")
	m.NotificationState.Add(state.LevelInfo, "Drag cancelled")
	return nil
}

// handleAddTask opens the task form for a new task in the focused column.
func handleAddTask(m *tui.Model) tea.Cmd {
	col, ok := m.CurrentColumn()
	if !ok {
		m.NotificationState.Add(state.LevelError, "The board has no columns")
		return nil
	}

	m.FormState.StartNewTask(col.ID)
	return openTaskForm(m, false)
}

// handleEditTask opens the task form for the focused task.
func handleEditTask(m *tui.Model) tea.Cmd {
	t, ok := m.CurrentTask()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No task to edit")
		return nil
	}

	m.FormState.StartEditTask(t)
	return openTaskForm(m, true)
}

func openTaskForm(m *tui.Model, isEdit bool) tea.Cmd {
	descriptionLines := max(m.UiState.Height()/4, 3)
	fs := m.FormState
	fs.TaskForm = huhforms.CreateTaskForm(huhforms.TaskFormValues{
		Title:       &fs.FormTitle,
		Description: &fs.FormDescription,
		Status:      &fs.FormStatus,
		Priority:    &fs.FormPriority,
		Confirm:     &fs.FormConfirm,
	}, m.Columns(), isEdit, descriptionLines).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme))

	m.UiState.SetMode(state.TaskFormMode)
	return fs.TaskForm.Init()
}

// handleDeleteTask asks for confirmation before deleting the focused task.
func handleDeleteTask(m *tui.Model) tea.Cmd {
	t, ok := m.CurrentTask()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No task to delete")
		return nil
	}

	m.FormState.DeletingTaskID = t.ID
	m.UiState.SetMode(state.DeleteConfirmMode)
	return nil
}

// handleEditColumn opens the column form for the focused column.
func handleEditColumn(m *tui.Model) tea.Cmd {
	col, ok := m.CurrentColumn()
	if !ok {
		return nil
	}

	m.FormState.StartEditColumn(col)
	fs := m.FormState
	fs.ColumnForm = huhforms.CreateColumnForm(&fs.FormColumnTitle, &fs.FormColumnColor).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme))

	m.UiState.SetMode(state.ColumnFormMode)
	return fs.ColumnForm.Init()
}
