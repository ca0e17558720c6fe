package types

import "github.com/google/uuid"

// ID types give the board's string identifiers a kind at compile time.
// Tasks and columns share one identifier space on the board, so keeping
// them apart in the type system matters when a drop target is resolved.

// TaskID identifies a task. It is generated once and never changes.
type TaskID string

// ColumnID identifies a column. A task's status is the ColumnID of the
// column it sits in.
type ColumnID string

// IDGenerator produces fresh task identifiers
type IDGenerator func() TaskID

// NewTaskID returns a random (v4) UUID as a TaskID
func NewTaskID() TaskID {
	return TaskID(uuid.NewString())
}

func (id TaskID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}
