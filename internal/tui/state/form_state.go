package state

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// FormState holds the open huh form and the values it writes into.
// huh fields bind to these pointers, so the struct must not be copied
// while a form is open.
type FormState struct {
	TaskForm   *huh.Form
	ColumnForm *huh.Form

	// EditingTaskID is empty when the task form creates a new task
	EditingTaskID types.TaskID

	FormTitle       string
	FormDescription string
	FormStatus      types.ColumnID
	FormPriority    models.Priority
	FormConfirm     bool

	// EditingColumnID is the column the column form updates
	EditingColumnID types.ColumnID
	FormColumnTitle string
	FormColumnColor string

	// DeletingTaskID is the task awaiting delete confirmation
	DeletingTaskID types.TaskID
}

// NewFormState returns an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// StartNewTask resets the task fields for a new task in the given column
func (s *FormState) StartNewTask(status types.ColumnID) {
	s.EditingTaskID = ""
	s.FormTitle = ""
	s.FormDescription = ""
	s.FormStatus = status
	s.FormPriority = models.DefaultPriority
	s.FormConfirm = true
}

// StartEditTask loads an existing task into the task fields
func (s *FormState) StartEditTask(t models.Task) {
	s.EditingTaskID = t.ID
	s.FormTitle = t.Title
	s.FormDescription = t.Description
	s.FormStatus = t.Status
	s.FormPriority = t.Priority
	s.FormConfirm = true
}

// StartEditColumn loads a column into the column fields
func (s *FormState) StartEditColumn(c models.Column) {
	s.EditingColumnID = c.ID
	s.FormColumnTitle = c.Title
	s.FormColumnColor = c.Color
}

// ClearTaskForm closes the task form
func (s *FormState) ClearTaskForm() {
	s.TaskForm = nil
	s.EditingTaskID = ""
	s.FormTitle = ""
	s.FormDescription = ""
	s.FormStatus = ""
	s.FormPriority = ""
	s.FormConfirm = false
}

// ClearColumnForm closes the column form
func (s *FormState) ClearColumnForm() {
	s.ColumnForm = nil
	s.EditingColumnID = ""
	s.FormColumnTitle = ""
	s.FormColumnColor = ""
}

// TaskInput returns the task fields as input for a new task
func (s *FormState) TaskInput() models.TaskInput {
	return models.TaskInput{
		Title:       s.FormTitle,
		Description: s.FormDescription,
		Status:      s.FormStatus,
		Priority:    s.FormPriority,
	}
}

// TaskPatch returns the task fields as a full patch
func (s *FormState) TaskPatch() models.TaskPatch {
	title, description := s.FormTitle, s.FormDescription
	status, priority := s.FormStatus, s.FormPriority
	return models.TaskPatch{
		Title:       &title,
		Description: &description,
		Status:      &status,
		Priority:    &priority,
	}
}
