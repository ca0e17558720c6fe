package board

import (
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

const (
	maxTitleLength       = 255
	maxColumnTitleLength = 50
)

// ValidateTitle checks a task title
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// ValidateTaskInput checks a new task against the board's columns.
// An empty status or priority is allowed; the store fills in defaults.
func ValidateTaskInput(in models.TaskInput, columns []models.Column) error {
	if err := ValidateTitle(in.Title); err != nil {
		return err
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return ErrInvalidPriority
	}
	if in.Status != "" && !hasColumn(columns, in.Status) {
		return ErrUnknownColumn
	}
	return nil
}

// ValidateTaskPatch checks the fields a patch sets
func ValidateTaskPatch(p models.TaskPatch, columns []models.Column) error {
	if p.Title != nil {
		if err := ValidateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return ErrInvalidPriority
	}
	if p.Status != nil && !hasColumn(columns, *p.Status) {
		return ErrUnknownColumn
	}
	return nil
}

// ValidateColumnTitle checks a column title
func ValidateColumnTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyColumnTitle
	}
	if len(title) > maxColumnTitleLength {
		return ErrColumnTitleTooLong
	}
	return nil
}

func hasColumn(columns []models.Column, id types.ColumnID) bool {
	for _, c := range columns {
		if c.ID == id {
			return true
		}
	}
	return false
}
