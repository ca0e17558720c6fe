package board

import "errors"

// Validation errors. The store never returns these; surfaces validate
// input before calling it.
var (
	ErrEmptyTitle         = errors.New("task title cannot be empty")
	ErrTitleTooLong       = errors.New("task title cannot exceed 255 characters")
	ErrInvalidPriority    = errors.New("invalid priority (must be: low, medium, high)")
	ErrUnknownColumn      = errors.New("status does not name a column on the board")
	ErrEmptyColumnTitle   = errors.New("column title cannot be empty")
	ErrColumnTitleTooLong = errors.New("column title cannot exceed 50 characters")
)

// Lookup errors used by surfaces that need to tell "absent" apart from
// "nothing changed"
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrColumnNotFound = errors.New("column not found")
)
