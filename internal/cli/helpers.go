package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ErrAmbiguousID is returned when a short id matches more than one task
var ErrAmbiguousID = errors.New("ambiguous task id")

const minPrefixLength = 4

// AddOutputFlags adds the agent-friendly flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// ResolveColumn finds a column by id or, case-insensitively, by title
func ResolveColumn(columns []models.Column, s string) (models.Column, bool) {
	s = strings.TrimSpace(s)
	for _, c := range columns {
		if string(c.ID) == s {
			return c, true
		}
	}
	for _, c := range columns {
		if strings.EqualFold(c.Title, s) {
			return c, true
		}
	}
	return models.Column{}, false
}

// ColumnNames lists "id (Title)" for every column, for suggestions
func ColumnNames(columns []models.Column) string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = fmt.Sprintf("%s (%s)", c.ID, c.Title)
	}
	return strings.Join(names, ", ")
}

// ResolveTaskID accepts a full task id or a unique prefix of at least
// four characters, as printed by `task list`
func ResolveTaskID(tasks []models.Task, s string) (types.TaskID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("task id is required")
	}

	var match types.TaskID
	matches := 0
	for _, t := range tasks {
		if string(t.ID) == s {
			return t.ID, nil
		}
		if len(s) >= minPrefixLength && strings.HasPrefix(string(t.ID), s) {
			match = t.ID
			matches++
		}
	}

	switch matches {
	case 0:
		return "", fmt.Errorf("task %s not found", s)
	case 1:
		return match, nil
	default:
		return "", fmt.Errorf("%w: %s matches %d tasks", ErrAmbiguousID, s, matches)
	}
}

// ShortID is the form `task list` prints
func ShortID(id types.TaskID) string {
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
