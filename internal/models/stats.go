package models

import "github.com/thenoetrevino/tablero/internal/types"

// ColumnCount is the number of tasks in one column
type ColumnCount struct {
	ColumnID types.ColumnID `json:"columnId"`
	Title    string         `json:"title"`
	Count    int            `json:"count"`
}

// Stats is a derived projection of the board. It is recomputed on every
// read and never stored.
type Stats struct {
	Total     int           `json:"total"`
	PerColumn []ColumnCount `json:"perColumn"`
}

// Count returns the number of tasks in the given column, or 0 when the
// column is not part of the board
func (s Stats) Count(id types.ColumnID) int {
	for _, c := range s.PerColumn {
		if c.ColumnID == id {
			return c.Count
		}
	}
	return 0
}

// ComputeStats counts tasks per column, in column order
func ComputeStats(columns []Column, tasks []Task) Stats {
	counts := make(map[types.ColumnID]int, len(columns))
	for _, t := range tasks {
		counts[t.Status]++
	}

	per := make([]ColumnCount, 0, len(columns))
	for _, c := range columns {
		per = append(per, ColumnCount{ColumnID: c.ID, Title: c.Title, Count: counts[c.ID]})
	}

	return Stats{Total: len(tasks), PerColumn: per}
}
