package web

import (
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/tablero/internal/drag"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal atomic.Int64
	RequestErrors atomic.Int64
	TasksMoved    atomic.Int64
	ColumnsMoved  atomic.Int64
	DropsIgnored  atomic.Int64
	DragsCanceled atomic.Int64
	StartTime     time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// ObserveRequest counts a served request. Statuses of 500 and above also
// count as errors.
func (m *Metrics) ObserveRequest(status int) {
	m.RequestsTotal.Add(1)
	if status >= 500 {
		m.RequestErrors.Add(1)
	}
}

// ObserveDrop counts the outcome of a drag gesture
func (m *Metrics) ObserveDrop(out drag.Outcome) {
	switch out {
	case drag.OutcomeTaskMoved:
		m.TasksMoved.Add(1)
	case drag.OutcomeColumnsReordered:
		m.ColumnsMoved.Add(1)
	case drag.OutcomeCancelled:
		m.DragsCanceled.Add(1)
	default:
		m.DropsIgnored.Add(1)
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal int64     `json:"requests_total"`
	RequestErrors int64     `json:"request_errors"`
	TasksMoved    int64     `json:"tasks_moved"`
	ColumnsMoved  int64     `json:"columns_moved"`
	DropsIgnored  int64     `json:"drops_ignored"`
	DragsCanceled int64     `json:"drags_canceled"`
	StartTime     time.Time `json:"start_time"`
	Uptime        string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal: m.RequestsTotal.Load(),
		RequestErrors: m.RequestErrors.Load(),
		TasksMoved:    m.TasksMoved.Load(),
		ColumnsMoved:  m.ColumnsMoved.Load(),
		DropsIgnored:  m.DropsIgnored.Load(),
		DragsCanceled: m.DragsCanceled.Load(),
		StartTime:     m.StartTime,
		Uptime:        time.Since(m.StartTime).Round(time.Second).String(),
	}
}
