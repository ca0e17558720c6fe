package persist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/storage"
)

// recordingKV records every Set in order and can be made to fail or stall
type recordingKV struct {
	*storage.MemoryStore

	mu    sync.Mutex
	sets  []string
	fail  error
	block chan struct{}
}

func newRecordingKV() *recordingKV {
	return &recordingKV{MemoryStore: storage.NewMemoryStore()}
}

func (r *recordingKV) Set(ctx context.Context, key, value string) error {
	if r.block != nil {
		select {
		case <-r.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r.mu.Lock()
	r.sets = append(r.sets, key+"="+value)
	fail := r.fail
	r.mu.Unlock()

	if fail != nil {
		return fail
	}
	return r.MemoryStore.Set(ctx, key, value)
}

func (r *recordingKV) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.sets...)
}

func TestWriter_WritesInOrder(t *testing.T) {
	kv := newRecordingKV()
	w := NewWriter(kv)
	defer w.Close()

	w.Enqueue("tasks", "1")
	w.Enqueue("columns", "a")
	w.Enqueue("tasks", "2")

	require.NoError(t, w.Flush(context.Background()))

	assert.Equal(t, []string{"tasks=1", "columns=a", "tasks=2"}, kv.recorded())

	v, ok, err := kv.Get(context.Background(), "tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v, "last write wins")
}

func TestWriter_EnqueueDoesNotBlock(t *testing.T) {
	kv := newRecordingKV()
	kv.block = make(chan struct{})
	w := NewWriter(kv)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			w.Enqueue("tasks", "x")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked while the backend was stalled")
	}

	close(kv.block)
	require.NoError(t, w.Close())
	assert.Len(t, kv.recorded(), 1000)
}

func TestWriter_ReportsFailures(t *testing.T) {
	kv := newRecordingKV()
	kv.fail = errors.New("quota exceeded")

	reporter := NewChanReporter(4, true)
	w := NewWriter(kv, WithReporter(reporter))
	defer w.Close()

	w.Enqueue("tasks", "[]")
	require.NoError(t, w.Flush(context.Background()))

	select {
	case res := <-reporter.C:
		assert.Equal(t, "tasks", res.Key)
		assert.False(t, res.OK())
		assert.EqualError(t, res.Err, "quota exceeded")
	default:
		t.Fatal("expected a failure report")
	}
}

func TestWriter_ReporterFuncSeesSuccess(t *testing.T) {
	var mu sync.Mutex
	var got []Result

	w := NewWriter(newRecordingKV(), WithReporter(ReporterFunc(func(r Result) {
		mu.Lock()
		got = append(got, r)
		mu.Unlock()
	})))
	defer w.Close()

	w.Enqueue("columns", "[]")
	require.NoError(t, w.Flush(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.True(t, got[0].OK())
	assert.Equal(t, "columns", got[0].Key)
}

func TestWriter_TimeoutAppliesPerWrite(t *testing.T) {
	kv := newRecordingKV()
	kv.block = make(chan struct{}) // never released

	reporter := NewChanReporter(2, false)
	w := NewWriter(kv, WithTimeout(20*time.Millisecond), WithReporter(reporter))
	defer w.Close()

	w.Enqueue("tasks", "[]")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Flush(ctx))

	res := <-reporter.C
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestWriter_FlushHonorsContext(t *testing.T) {
	kv := newRecordingKV()
	kv.block = make(chan struct{})
	w := NewWriter(kv)

	w.Enqueue("tasks", "[]")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Flush(ctx), context.DeadlineExceeded)

	close(kv.block)
	require.NoError(t, w.Close())
}

func TestWriter_CloseDrainsAndIgnoresLaterWrites(t *testing.T) {
	kv := newRecordingKV()
	w := NewWriter(kv)

	w.Enqueue("tasks", "1")
	w.Enqueue("tasks", "2")
	require.NoError(t, w.Close())
	assert.Len(t, kv.recorded(), 2)

	w.Enqueue("tasks", "3")
	assert.Equal(t, 0, w.Pending())
	assert.NoError(t, w.Flush(context.Background()))
	assert.NoError(t, w.Close(), "second close is a no-op")
	assert.Len(t, kv.recorded(), 2)
}

func TestWriter_FlushWaitsForCloseToDrain(t *testing.T) {
	kv := newRecordingKV()
	kv.block = make(chan struct{})
	w := NewWriter(kv)

	w.Enqueue("tasks", "1")
	w.Enqueue("tasks", "2")
	w.Enqueue("tasks", "3")

	closed := make(chan error, 1)
	go func() { closed <- w.Close() }()
	require.Eventually(t, func() bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		return w.closed
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Flush(ctx), context.DeadlineExceeded, "writes are still pending")

	flushed := make(chan error, 1)
	go func() { flushed <- w.Flush(context.Background()) }()
	close(kv.block)

	require.NoError(t, <-flushed)
	assert.Len(t, kv.recorded(), 3)
	require.NoError(t, <-closed)
}

func TestChanReporter_DropsWhenFull(t *testing.T) {
	r := NewChanReporter(1, false)
	r.Report(Result{Key: "a"})
	r.Report(Result{Key: "b"})

	assert.Len(t, r.C, 1)
	assert.Equal(t, "a", (<-r.C).Key)
}
