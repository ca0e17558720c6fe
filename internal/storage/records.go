package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Record keys
const (
	TasksKey   = "kanban-tasks"
	ColumnsKey = "kanban-columns"
)

// EncodeTasks serializes the task collection as stored under TasksKey.
// Timestamps are written as RFC 3339 strings.
func EncodeTasks(tasks []models.Task) (string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("failed to encode tasks: %w", err)
	}
	return string(b), nil
}

// EncodeColumns serializes the column sequence as stored under ColumnsKey
func EncodeColumns(columns []models.Column) (string, error) {
	if columns == nil {
		columns = []models.Column{}
	}
	b, err := json.Marshal(columns)
	if err != nil {
		return "", fmt.Errorf("failed to encode columns: %w", err)
	}
	return string(b), nil
}

// DecodeTasks parses a stored task collection
func DecodeTasks(raw string) ([]models.Task, error) {
	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse tasks: %w", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// DecodeColumns parses a stored column sequence
func DecodeColumns(raw string) ([]models.Column, error) {
	var columns []models.Column
	if err := json.Unmarshal([]byte(raw), &columns); err != nil {
		return nil, fmt.Errorf("failed to parse columns: %w", err)
	}
	return columns, nil
}

// LoadTasks reads the task record. A missing, unreadable or malformed
// record yields an empty collection; the problem is logged.
func LoadTasks(ctx context.Context, kv KV) []models.Task {
	raw, ok, err := kv.Get(ctx, TasksKey)
	if err != nil {
		slog.Error("error loading tasks", "error", err)
		return []models.Task{}
	}
	if !ok || raw == "" {
		return []models.Task{}
	}

	tasks, err := DecodeTasks(raw)
	if err != nil {
		slog.Error("error parsing tasks", "error", err)
		return []models.Task{}
	}
	return tasks
}

// LoadColumns reads the column record. ok is false when the record is
// missing, unreadable, malformed or empty, in which case the caller keeps
// its configured columns.
func LoadColumns(ctx context.Context, kv KV) ([]models.Column, bool) {
	raw, ok, err := kv.Get(ctx, ColumnsKey)
	if err != nil {
		slog.Error("error loading columns", "error", err)
		return nil, false
	}
	if !ok || raw == "" {
		return nil, false
	}

	columns, err := DecodeColumns(raw)
	if err != nil {
		slog.Error("error parsing columns", "error", err)
		return nil, false
	}
	if len(columns) == 0 {
		return nil, false
	}
	return columns, true
}
