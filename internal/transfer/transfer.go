// Package transfer moves a whole board in and out as a single JSON
// document.
package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/storage"
)

// ErrInvalidDocument is returned when an import is not a JSON object
var ErrInvalidDocument = errors.New("invalid backup file")

// Document is the export format
type Document struct {
	Tasks      []models.Task   `json:"tasks"`
	Columns    []models.Column `json:"columns"`
	ExportDate time.Time       `json:"exportDate"`
}

// Result summarizes an import
type Result struct {
	TasksReplaced   bool `json:"tasksReplaced"`
	ColumnsReplaced bool `json:"columnsReplaced"`
	Tasks           int  `json:"tasks"`
	Columns         int  `json:"columns"`

	// Decoded records, set only for the fields that were replaced
	TaskRecords   []models.Task   `json:"-"`
	ColumnRecords []models.Column `json:"-"`
}

// Export reads the persisted records. Missing records export as empty
// arrays.
func Export(ctx context.Context, kv storage.KV, now time.Time) Document {
	columns, ok := storage.LoadColumns(ctx, kv)
	if !ok {
		columns = []models.Column{}
	}
	return Document{
		Tasks:      storage.LoadTasks(ctx, kv),
		Columns:    columns,
		ExportDate: now.UTC(),
	}
}

// WriteDocument writes doc as indented JSON
func WriteDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// DefaultFilename names an export made at now
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("kanban-board-backup-%s.json", now.Format("2006-01-02"))
}

// Import reads a document and replaces each record whose field is present
// and decodes as an array. Other fields, including arrays whose elements
// do not decode, are logged and ignored. Only a document that is not a
// JSON object fails.
func Import(ctx context.Context, kv storage.KV, r io.Reader) (Result, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var res Result
	if raw, ok := arrayField(fields, "tasks"); ok {
		var tasks []models.Task
		if err := json.Unmarshal(raw, &tasks); err != nil {
			slog.Warn("skipping malformed tasks in backup", "error", err)
		} else {
			res.TasksReplaced = true
			res.Tasks = len(tasks)
			res.TaskRecords = tasks
		}
	}
	if raw, ok := arrayField(fields, "columns"); ok {
		var columns []models.Column
		if err := json.Unmarshal(raw, &columns); err != nil {
			slog.Warn("skipping malformed columns in backup", "error", err)
		} else {
			res.ColumnsReplaced = true
			res.Columns = len(columns)
			res.ColumnRecords = columns
		}
	}

	if res.TasksReplaced {
		raw, err := storage.EncodeTasks(res.TaskRecords)
		if err != nil {
			return Result{}, err
		}
		if err := kv.Set(ctx, storage.TasksKey, raw); err != nil {
			return Result{}, fmt.Errorf("failed to import tasks: %w", err)
		}
	}
	if res.ColumnsReplaced {
		raw, err := storage.EncodeColumns(res.ColumnRecords)
		if err != nil {
			return Result{}, err
		}
		if err := kv.Set(ctx, storage.ColumnsKey, raw); err != nil {
			return Result{}, fmt.Errorf("failed to import columns: %w", err)
		}
	}

	return res, nil
}

// Clear removes every persisted record
func Clear(ctx context.Context, kv storage.KV) error {
	if err := kv.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	return nil
}

func arrayField(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	raw, ok := fields[name]
	if !ok {
		return nil, false
	}
	var probe []json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil || probe == nil {
		return nil, false
	}
	return raw, true
}
