package persist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/tablero/internal/storage"
)

// DefaultTimeout bounds a single write
const DefaultTimeout = 5 * time.Second

// Enqueuer is the write side the board store depends on
type Enqueuer interface {
	Enqueue(key, value string)
}

type op struct {
	key   string
	value string
	done  chan struct{} // set for flush markers
}

// Writer persists records in the background. Writes run one at a time in
// the order they were enqueued. Enqueue never blocks.
type Writer struct {
	kv       storage.KV
	timeout  time.Duration
	reporter Reporter
	logger   *slog.Logger

	mu     sync.Mutex
	queue  []op
	closed bool
	wake   chan struct{}

	// Context for graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc

	workerDone chan struct{}
}

// Option configures a Writer
type Option func(*Writer)

// WithTimeout sets the per-write timeout
func WithTimeout(d time.Duration) Option {
	return func(w *Writer) {
		if d > 0 {
			w.timeout = d
		}
	}
}

// WithReporter sets where write results are sent
func WithReporter(r Reporter) Option {
	return func(w *Writer) {
		if r != nil {
			w.reporter = r
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(w *Writer) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWriter creates a Writer over kv and starts its worker goroutine.
func NewWriter(kv storage.KV, opts ...Option) *Writer {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Writer{
		kv:         kv,
		timeout:    DefaultTimeout,
		reporter:   NopReporter{},
		logger:     slog.Default(),
		wake:       make(chan struct{}, 1),
		ctx:        ctx,
		cancel:     cancel,
		workerDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w
}

// Enqueue schedules value to be written under key
func (w *Writer) Enqueue(key, value string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Warn("write after close dropped", "key", key)
		return
	}
	w.queue = append(w.queue, op{key: key, value: value})
	w.mu.Unlock()

	w.signal()
}

// Pending returns the number of queued operations not yet attempted
func (w *Writer) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queue)
}

// Flush blocks until every write enqueued before the call has been
// attempted, or ctx is done. On a closed writer it waits for Close to
// finish draining.
func (w *Writer) Flush(ctx context.Context) error {
	done := make(chan struct{})

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		select {
		case <-w.workerDone:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	w.queue = append(w.queue, op{done: done})
	w.mu.Unlock()

	w.signal()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting writes, drains the queue and waits for the worker
// to exit. It is safe to call more than once.
func (w *Writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.workerDone
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	w.cancel()
	<-w.workerDone
	return nil
}

func (w *Writer) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Writer) next() (op, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.queue) == 0 {
		return op{}, false
	}
	o := w.queue[0]
	w.queue[0] = op{}
	w.queue = w.queue[1:]
	return o, true
}

func (w *Writer) run() {
	defer close(w.workerDone)

	for {
		w.drain()

		select {
		case <-w.wake:
		case <-w.ctx.Done():
			// Anything enqueued before Close still gets written
			w.drain()
			return
		}
	}
}

func (w *Writer) drain() {
	for {
		o, ok := w.next()
		if !ok {
			return
		}
		if o.done != nil {
			close(o.done)
			continue
		}
		w.write(o)
	}
}

func (w *Writer) write(o op) {
	// Writes are not tied to w.ctx so that Close can drain
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	start := time.Now()
	err := w.kv.Set(ctx, o.key, o.value)
	res := Result{Key: o.key, Err: err, Duration: time.Since(start)}

	if err != nil {
		w.logger.Warn("failed to persist record", "key", o.key, "error", err)
	} else {
		w.logger.Debug("persisted record", "key", o.key, "bytes", len(o.value), "duration", res.Duration)
	}

	w.reporter.Report(res)
}
