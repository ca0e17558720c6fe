package persist

import "time"

// Result describes one attempted write
type Result struct {
	Key      string
	Err      error
	Duration time.Duration
}

// OK reports whether the write succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Reporter receives the outcome of every write the Writer attempts.
// Implementations are called from the writer goroutine and must not block.
type Reporter interface {
	Report(Result)
}

// ReporterFunc adapts a function to a Reporter
type ReporterFunc func(Result)

func (f ReporterFunc) Report(r Result) {
	f(r)
}

// NopReporter discards results
type NopReporter struct{}

func (NopReporter) Report(Result) {}

// ChanReporter forwards results to a buffered channel. Results are dropped
// when the buffer is full.
type ChanReporter struct {
	C          chan Result
	failedOnly bool
}

// NewChanReporter creates a ChanReporter with the given buffer size.
// With failedOnly set, successful writes are not forwarded.
func NewChanReporter(size int, failedOnly bool) *ChanReporter {
	if size < 1 {
		size = 1
	}
	return &ChanReporter{C: make(chan Result, size), failedOnly: failedOnly}
}

func (c *ChanReporter) Report(r Result) {
	if c.failedOnly && r.OK() {
		return
	}
	select {
	case c.C <- r:
	default:
	}
}
