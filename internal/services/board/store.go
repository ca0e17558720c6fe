package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/persist"
	"github.com/thenoetrevino/tablero/internal/storage"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Store owns the board: the task collection and the ordered column
// sequence. Every mutation applies in memory first and then enqueues a
// write of the collection it touched. Mutations report whether anything
// changed; invalid requests are silent no-ops.
type Store struct {
	mu      sync.RWMutex
	tasks   []models.Task // newest first
	columns []models.Column

	writer persist.Enqueuer
	now    func() time.Time
	newID  types.IDGenerator
	logger *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithWriter sets where mutations are persisted. Without one the store is
// purely in memory.
func WithWriter(w persist.Enqueuer) Option {
	return func(s *Store) {
		s.writer = w
	}
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides task id generation
func WithIDGenerator(gen types.IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates an empty board with the given columns. A nil or empty
// column slice gets the default columns.
func NewStore(columns []models.Column, opts ...Option) *Store {
	if len(columns) == 0 {
		columns = models.DefaultColumns()
	}
	s := &Store{
		tasks:   []models.Task{},
		columns: models.CloneColumns(columns),
		now:     time.Now,
		newID:   types.NewTaskID,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted records once. Persisted columns replace the
// configured ones when present and non-empty. Tasks whose status names no
// column are moved to the first column; only then are tasks written back.
func (s *Store) Load(ctx context.Context, kv storage.KV) {
	tasks := storage.LoadTasks(ctx, kv)
	columns, ok := storage.LoadColumns(ctx, kv)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = tasks
	if ok {
		s.columns = columns
	}

	if s.rehomeOrphans() > 0 {
		s.persistTasks()
	}
	s.logger.Info("board loaded", "tasks", len(s.tasks), "columns", len(s.columns))
}

// Reset empties the task collection and restores the given columns
// without persisting anything. Nil columns restore the defaults.
func (s *Store) Reset(columns []models.Column) {
	if len(columns) == 0 {
		columns = models.DefaultColumns()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = []models.Task{}
	s.columns = models.CloneColumns(columns)
}

// Replace swaps both collections and persists them. Empty columns keep
// the current set. Tasks whose status names no column move to the first
// column.
func (s *Store) Replace(tasks []models.Task, columns []models.Column) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tasks == nil {
		tasks = []models.Task{}
	}
	s.tasks = cloneTasks(tasks)
	if len(columns) > 0 {
		s.columns = models.CloneColumns(columns)
	}
	s.rehomeOrphans()
	s.persistTasks()
	s.persistColumns()
}

// ============================================================================
// Task mutations
// ============================================================================

// AddTask creates a task and puts it at the front of the collection.
// An unknown or empty status places the task in the first column and an
// empty priority becomes medium.
func (s *Store) AddTask(in models.TaskInput) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if s.columnIndex(status) < 0 {
		status = s.columns[0].ID
	}
	priority := in.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}

	now := s.now()
	task := models.Task{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks = append([]models.Task{task}, s.tasks...)
	s.persistTasks()

	s.logger.Debug("task added", "task_id", task.ID, "status", task.Status)
	return task
}

// UpdateTask applies a patch. It returns false, changing nothing, when the
// task does not exist or the patch names an unknown status.
func (s *Store) UpdateTask(id types.TaskID, patch models.TaskPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return false
	}
	if patch.Status != nil && s.columnIndex(*patch.Status) < 0 {
		return false
	}

	t := s.tasks[i]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	t.UpdatedAt = s.after(t.UpdatedAt)

	s.tasks[i] = t
	s.persistTasks()
	return true
}

// MoveTask sets a task's status. Only column ids are accepted.
func (s *Store) MoveTask(id types.TaskID, status types.ColumnID) bool {
	return s.UpdateTask(id, models.TaskPatch{Status: &status})
}

// DeleteTask removes a task. Deleting a missing id is a no-op.
func (s *Store) DeleteTask(id types.TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return false
	}

	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.persistTasks()
	return true
}

// ============================================================================
// Column mutations
// ============================================================================

// UpdateColumn merges a patch into a column
func (s *Store) UpdateColumn(id types.ColumnID, patch models.ColumnPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.columnIndex(id)
	if i < 0 {
		return false
	}

	c := &s.columns[i]
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}
	if patch.BgColor != nil {
		c.BgColor = *patch.BgColor
	}

	s.persistColumns()
	return true
}

// ReorderColumns moves the column at index from to index to. The other
// columns keep their relative order.
func (s *Store) ReorderColumns(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.columns)
	if from == to || from < 0 || to < 0 || from >= n || to >= n {
		return false
	}

	moved := s.columns[from]
	rest := make([]models.Column, 0, n)
	rest = append(rest, s.columns[:from]...)
	rest = append(rest, s.columns[from+1:]...)

	out := make([]models.Column, 0, n)
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)

	s.columns = out
	s.persistColumns()
	return true
}

// ============================================================================
// Read views
// ============================================================================

// Tasks returns a copy of the task collection, newest first
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.tasks)
}

// Columns returns a copy of the column sequence
func (s *Store) Columns() []models.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneColumns(s.columns)
}

// TasksByStatus returns the tasks in one column, in collection order
func (s *Store) TasksByStatus(status types.ColumnID) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Task{}
	for _, t := range s.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Stats counts tasks per column
func (s *Store) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.ComputeStats(s.columns, s.tasks)
}

// Task looks a task up by id
func (s *Store) Task(id types.TaskID) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.taskIndex(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// HasTask reports whether a task exists
func (s *Store) HasTask(id types.TaskID) bool {
	_, ok := s.Task(id)
	return ok
}

// Column looks a column up by id
func (s *Store) Column(id types.ColumnID) (models.Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.columnIndex(id)
	if i < 0 {
		return models.Column{}, false
	}
	return s.columns[i], true
}

// ColumnIndex returns a column's position, or -1
func (s *Store) ColumnIndex(id types.ColumnID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.columnIndex(id)
}

// ============================================================================
// Internals (callers hold s.mu)
// ============================================================================

func (s *Store) taskIndex(id types.TaskID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) columnIndex(id types.ColumnID) int {
	for i, c := range s.columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// after returns the current time, nudged forward so it is strictly later
// than prev
func (s *Store) after(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

// rehomeOrphans moves every task whose status names no column into the
// first column and returns how many moved. Caller holds the lock.
func (s *Store) rehomeOrphans() int {
	if len(s.columns) == 0 {
		return 0
	}
	moved := 0
	for i, t := range s.tasks {
		if s.columnIndex(t.Status) >= 0 {
			continue
		}
		s.logger.Warn("task has unknown status, moving to first column",
			"task_id", t.ID, "status", t.Status, "column", s.columns[0].ID)
		t.Status = s.columns[0].ID
		t.UpdatedAt = s.after(t.UpdatedAt)
		s.tasks[i] = t
		moved++
	}
	return moved
}

func (s *Store) persistTasks() {
	if s.writer == nil {
		return
	}
	raw, err := storage.EncodeTasks(s.tasks)
	if err != nil {
		s.logger.Error("failed to encode tasks", "error", err)
		return
	}
	s.writer.Enqueue(storage.TasksKey, raw)
}

func (s *Store) persistColumns() {
	if s.writer == nil {
		return
	}
	raw, err := storage.EncodeColumns(s.columns)
	if err != nil {
		s.logger.Error("failed to encode columns", "error", err)
		return
	}
	s.writer.Enqueue(storage.ColumnsKey, raw)
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}
