package huhforms

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/types"
)

// TaskFormValues are the pointers a task form writes into
type TaskFormValues struct {
	Title       *string
	Description *string
	Status      *types.ColumnID
	Priority    *models.Priority
	Confirm     *bool
}

// CreateTaskForm creates a huh form for adding or editing a task.
// Status choices are the board's columns in display order.
func CreateTaskForm(values TaskFormValues, columns []models.Column, isEdit bool, descriptionLines int) *huh.Form {
	statusOptions := make([]huh.Option[types.ColumnID], 0, len(columns))
	for _, c := range columns {
		statusOptions = append(statusOptions, huh.NewOption(c.Title, c.ID))
	}

	priorityOptions := make([]huh.Option[models.Priority], 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		priorityOptions = append(priorityOptions, huh.NewOption(p.String(), p))
	}

	confirmTitle := "Create this task?"
	if isEdit {
		confirmTitle = "Save changes?"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Validate(board.ValidateTitle).
			Value(values.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is rendered on the card...").
			CharLimit(5000).
			Lines(max(descriptionLines, 3)).
			Value(values.Description),

		huh.NewSelect[types.ColumnID]().
			Key("status").
			Title("Column").
			Options(statusOptions...).
			Value(values.Status),

		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions...).
			Value(values.Priority),

		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(values.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(TaskFormKeyMap()).WithShowHelp(false)
}
