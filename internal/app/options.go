package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/tablero/internal/persist"
	"github.com/thenoetrevino/tablero/internal/storage"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	kv       storage.KV
	reporter persist.Reporter
	logger   *slog.Logger
	clock    func() time.Time
	newID    types.IDGenerator
}

// WithKV uses kv as the primary store instead of opening the configured
// backend
func WithKV(kv storage.KV) Option {
	return func(cfg *appConfig) {
		cfg.kv = kv
	}
}

// WithReporter receives the outcome of background writes
func WithReporter(r persist.Reporter) Option {
	return func(cfg *appConfig) {
		cfg.reporter = r
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock overrides time.Now for the board store
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = now
	}
}

// WithIDGenerator overrides task id generation
func WithIDGenerator(gen types.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.newID = gen
	}
}
