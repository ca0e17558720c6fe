package models

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/types"
)

// Task represents a single card on the board.
// Status holds the ID of the column the card sits in.
type Task struct {
	ID          types.TaskID   `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      types.ColumnID `json:"status"`
	Priority    Priority       `json:"priority"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TaskInput carries the caller-supplied fields of a new task.
// ID and timestamps are assigned by the board store.
type TaskInput struct {
	Title       string
	Description string
	Status      types.ColumnID
	Priority    Priority
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *types.ColumnID
	Priority    *Priority
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Priority == nil
}

// GetID returns the task id as a plain string
func (t Task) GetID() string {
	return string(t.ID)
}
