package web

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/tablero/internal/drag"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	snapshot := m.GetSnapshot()
	assert.Zero(t, snapshot.RequestsTotal)
	assert.Zero(t, snapshot.TasksMoved)
	assert.WithinDuration(t, time.Now(), m.StartTime, time.Second)
}

func TestObserveRequest(t *testing.T) {
	m := NewMetrics()

	m.ObserveRequest(200)
	m.ObserveRequest(404)
	m.ObserveRequest(500)

	assert.Equal(t, int64(3), m.RequestsTotal.Load())
	assert.Equal(t, int64(1), m.RequestErrors.Load(), "only 5xx count as errors")
}

func TestObserveDrop(t *testing.T) {
	m := NewMetrics()

	for _, out := range []drag.Outcome{
		drag.OutcomeTaskMoved,
		drag.OutcomeTaskMoved,
		drag.OutcomeColumnsReordered,
		drag.OutcomeCancelled,
		drag.OutcomeIgnored,
	} {
		m.ObserveDrop(out)
	}

	snapshot := m.GetSnapshot()
	assert.Equal(t, int64(2), snapshot.TasksMoved)
	assert.Equal(t, int64(1), snapshot.ColumnsMoved)
	assert.Equal(t, int64(1), snapshot.DragsCanceled)
	assert.Equal(t, int64(1), snapshot.DropsIgnored)
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m.ObserveRequest(200)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(5000), m.RequestsTotal.Load())
}
