package storage

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Fallback fails soft: every operation goes to the primary store and, if
// that errors, is logged and repeated against the secondary store.
// A nil primary means the backend was unavailable and only the secondary
// is used. Errors reach the caller only when both stores fail.
//
// A key whose latest write only reached the secondary is read from the
// secondary until a later write to the primary succeeds.
type Fallback struct {
	primary   KV
	secondary KV
	logger    *slog.Logger

	mu       sync.Mutex
	diverted map[string]struct{}
	// set when a clear missed the primary; every key on it is stale
	allDiverted bool
}

// NewFallback builds a Fallback. A nil secondary gets a fresh MemoryStore.
func NewFallback(primary, secondary KV, logger *slog.Logger) *Fallback {
	if secondary == nil {
		secondary = NewMemoryStore()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fallback{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
		diverted:  make(map[string]struct{}),
	}
}

// Degraded reports whether there is no primary store
func (f *Fallback) Degraded() bool {
	return f.primary == nil
}

func (f *Fallback) Get(ctx context.Context, key string) (string, bool, error) {
	if f.primary != nil && !f.isDiverted(key) {
		v, ok, err := f.primary.Get(ctx, key)
		if err == nil {
			return v, ok, nil
		}
		f.logger.Error("storage get error", "key", key, "error", err)
	}
	return f.secondary.Get(ctx, key)
}

func (f *Fallback) Set(ctx context.Context, key, value string) error {
	return f.do(ctx, "set", key, func(kv KV) error { return kv.Set(ctx, key, value) })
}

func (f *Fallback) Remove(ctx context.Context, key string) error {
	return f.do(ctx, "remove", key, func(kv KV) error { return kv.Remove(ctx, key) })
}

func (f *Fallback) Clear(ctx context.Context) error {
	return f.do(ctx, "clear", "", func(kv KV) error { return kv.Clear(ctx) })
}

// Close closes both stores
func (f *Fallback) Close() error {
	var errs []error
	if f.primary != nil {
		errs = append(errs, f.primary.Close())
	}
	errs = append(errs, f.secondary.Close())
	return errors.Join(errs...)
}

func (f *Fallback) do(ctx context.Context, op, key string, fn func(KV) error) error {
	if f.primary != nil {
		err := fn(f.primary)
		if err == nil {
			f.settle(ctx, op, key, fn)
			return nil
		}
		f.logger.Error("storage "+op+" error", "key", key, "error", err)
	}

	if err := fn(f.secondary); err != nil {
		f.logger.Error("fallback storage "+op+" error", "key", key, "error", err)
		return err
	}
	if f.primary != nil {
		f.divert(op, key)
	}
	return nil
}

func (f *Fallback) isDiverted(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.allDiverted {
		return true
	}
	_, ok := f.diverted[key]
	return ok
}

// divert records that the secondary holds the latest state for key
func (f *Fallback) divert(op, key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if op == "clear" {
		f.allDiverted = true
		return
	}
	f.diverted[key] = struct{}{}
}

// settle runs after the primary accepted an operation. The secondary is
// kept in step while it still serves reads for the key.
func (f *Fallback) settle(ctx context.Context, op, key string, fn func(KV) error) {
	f.mu.Lock()
	all := f.allDiverted
	_, one := f.diverted[key]
	if op == "clear" {
		f.allDiverted = false
		f.diverted = make(map[string]struct{})
	} else if !all {
		delete(f.diverted, key)
	}
	f.mu.Unlock()

	var err error
	switch {
	case op == "clear":
		err = f.secondary.Clear(ctx)
	case all:
		err = fn(f.secondary)
	case one:
		err = f.secondary.Remove(ctx, key)
	}
	if err != nil {
		f.logger.Warn("fallback storage "+op+" error", "key", key, "error", err)
	}
}
