package models

import "github.com/thenoetrevino/tablero/internal/types"

// Column is a named bucket on the board. Its ID doubles as the status
// value of every task inside it. Order is the column's position in the
// board's column slice, not a stored field.
type Column struct {
	ID      types.ColumnID `json:"id" yaml:"id"`
	Title   string         `json:"title" yaml:"title"`
	Color   string         `json:"color" yaml:"color"`
	BgColor string         `json:"bgColor" yaml:"bg_color"`
}

// ColumnPatch is a partial column update. Nil fields are left untouched.
type ColumnPatch struct {
	Title   *string
	Color   *string
	BgColor *string
}

// Default column identifiers
const (
	ColumnTodo       types.ColumnID = "todo"
	ColumnInProgress types.ColumnID = "in-progress"
	ColumnReview     types.ColumnID = "review"
	ColumnDone       types.ColumnID = "done"
)

// DefaultColumns returns a fresh copy of the board's seed columns
func DefaultColumns() []Column {
	return []Column{
		{ID: ColumnTodo, Title: "To Do", Color: "text-slate-700", BgColor: "bg-slate-50"},
		{ID: ColumnInProgress, Title: "In Progress", Color: "text-blue-700", BgColor: "bg-blue-50"},
		{ID: ColumnReview, Title: "Review", Color: "text-amber-700", BgColor: "bg-amber-50"},
		{ID: ColumnDone, Title: "Done", Color: "text-green-700", BgColor: "bg-green-50"},
	}
}

// CloneColumns copies a column slice
func CloneColumns(columns []Column) []Column {
	if columns == nil {
		return nil
	}
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}
