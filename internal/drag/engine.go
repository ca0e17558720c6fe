// Package drag turns pointer-style drag gestures into board mutations.
//
// A drag starts on an identifier that is resolved, once, to a task or a
// column. Where it ends decides the mutation: a task dropped on a column
// moves there; a column dropped on another column takes its place. Every
// other drop is ignored.
package drag

import (
	"log/slog"
	"sync"

	"github.com/thenoetrevino/tablero/internal/types"
)

// Kind says what is being dragged
type Kind int

const (
	KindTask Kind = iota + 1
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Ref is a resolved drag subject
type Ref struct {
	Kind Kind
	ID   string
}

// Outcome is the result of ending a drag
type Outcome int

const (
	// OutcomeIgnored: no session, or the drop does not map to a mutation
	OutcomeIgnored Outcome = iota
	// OutcomeCancelled: the drag ended with no drop target
	OutcomeCancelled
	OutcomeColumnsReordered
	OutcomeTaskMoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeColumnsReordered:
		return "columns_reordered"
	case OutcomeTaskMoved:
		return "task_moved"
	default:
		return "ignored"
	}
}

// Changed reports whether the board was mutated
func (o Outcome) Changed() bool {
	return o == OutcomeColumnsReordered || o == OutcomeTaskMoved
}

// Board is the read side the engine needs
type Board interface {
	HasTask(id types.TaskID) bool
	ColumnIndex(id types.ColumnID) int
}

// Mutator is the write side the engine needs
type Mutator interface {
	MoveTask(id types.TaskID, status types.ColumnID) bool
	ReorderColumns(from, to int) bool
}

// BoardMutator is both sides, as provided by board.Store
type BoardMutator interface {
	Board
	Mutator
}

// Engine holds at most one drag session at a time
type Engine struct {
	board   Board
	mutator Mutator
	logger  *slog.Logger

	mu     sync.Mutex
	active *Ref
}

// New creates an idle engine over b
func New(b BoardMutator, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{board: b, mutator: b, logger: logger}
}

// Start begins a drag on activeID. Task ids take precedence over column
// ids. An unknown id leaves the engine idle. A session already in
// progress is replaced.
func (e *Engine) Start(activeID string) (Ref, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ref, ok := e.resolve(activeID)
	if !ok {
		e.active = nil
		return Ref{}, false
	}
	e.active = &ref
	return ref, true
}

// End finishes the current drag over overID. An empty overID means the
// drag was released outside any drop target. The engine is always idle
// afterwards.
func (e *Engine) End(overID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return OutcomeIgnored
	}
	ref := *e.active
	e.active = nil

	out := e.apply(ref, overID)
	e.logger.Debug("drag ended", "kind", ref.Kind.String(), "active", ref.ID, "over", overID, "outcome", out.String())
	return out
}

// Cancel drops the current session without mutating anything
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = nil
}

// Active returns the current session, if any
func (e *Engine) Active() (Ref, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return Ref{}, false
	}
	return *e.active, true
}

// Drop runs a whole gesture, start to end, in one call. Any session in
// progress is discarded.
func (e *Engine) Drop(activeID, overID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.active = nil
	ref, ok := e.resolve(activeID)
	if !ok {
		return OutcomeIgnored
	}

	out := e.apply(ref, overID)
	e.logger.Debug("drop", "kind", ref.Kind.String(), "active", ref.ID, "over", overID, "outcome", out.String())
	return out
}

func (e *Engine) resolve(id string) (Ref, bool) {
	if id == "" {
		return Ref{}, false
	}
	if e.board.HasTask(types.TaskID(id)) {
		return Ref{Kind: KindTask, ID: id}, true
	}
	if e.board.ColumnIndex(types.ColumnID(id)) >= 0 {
		return Ref{Kind: KindColumn, ID: id}, true
	}
	return Ref{}, false
}

func (e *Engine) apply(ref Ref, overID string) Outcome {
	if overID == "" {
		return OutcomeCancelled
	}

	dst := e.board.ColumnIndex(types.ColumnID(overID))

	switch ref.Kind {
	case KindColumn:
		src := e.board.ColumnIndex(types.ColumnID(ref.ID))
		if src < 0 || dst < 0 || src == dst {
			return OutcomeIgnored
		}
		if e.mutator.ReorderColumns(src, dst) {
			return OutcomeColumnsReordered
		}

	case KindTask:
		// Dropping on another task has no effect: there is no
		// within-column ordering to change.
		if dst < 0 {
			return OutcomeIgnored
		}
		if e.mutator.MoveTask(types.TaskID(ref.ID), types.ColumnID(overID)) {
			return OutcomeTaskMoved
		}
	}

	return OutcomeIgnored
}
