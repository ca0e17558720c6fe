package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/drag"
	"github.com/thenoetrevino/tablero/internal/persist"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/storage"
	"github.com/thenoetrevino/tablero/internal/transfer"
)

// App holds the board and everything it persists through.
// This is the main application container that manages component lifecycles.
type App struct {
	Config *config.Config

	// KV is the fail-soft store every record goes through
	KV *storage.Fallback

	// Writer persists board mutations in the background
	Writer *persist.Writer

	Board *board.Store
	Drag  *drag.Engine

	logger *slog.Logger
	clock  func() time.Time
}

// New opens the configured backend, loads the persisted board and starts
// the background writer. A backend that cannot be opened is logged and
// replaced by memory-only storage.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}
	if ac.clock == nil {
		ac.clock = time.Now
	}

	primary := ac.kv
	if primary == nil {
		var err error
		primary, err = OpenBackend(ctx, cfg.Storage)
		if err != nil {
			ac.logger.Warn("storage backend unavailable, using memory only",
				"backend", cfg.Storage.Backend, "error", err)
			primary = nil
		}
		if primary == nil {
			ac.logger.Info("board is not persisted across runs", "backend", cfg.Storage.Backend)
		}
	}

	kv := storage.NewFallback(primary, storage.NewMemoryStore(), ac.logger)

	writerOpts := []persist.Option{
		persist.WithTimeout(cfg.Storage.WriteTimeout),
		persist.WithLogger(ac.logger),
	}
	if ac.reporter != nil {
		writerOpts = append(writerOpts, persist.WithReporter(ac.reporter))
	}
	writer := persist.NewWriter(kv, writerOpts...)

	boardOpts := []board.Option{
		board.WithWriter(writer),
		board.WithClock(ac.clock),
		board.WithLogger(ac.logger),
	}
	if ac.newID != nil {
		boardOpts = append(boardOpts, board.WithIDGenerator(ac.newID))
	}
	store := board.NewStore(cfg.Columns, boardOpts...)
	store.Load(ctx, kv)

	return &App{
		Config: cfg,
		KV:     kv,
		Writer: writer,
		Board:  store,
		Drag:   drag.New(store, ac.logger),
		logger: ac.logger,
		clock:  ac.clock,
	}, nil
}

// OpenBackend opens the primary store named by the storage config. The
// memory backend has no primary store and returns nil.
func OpenBackend(ctx context.Context, sc config.StorageConfig) (storage.KV, error) {
	switch sc.Backend {
	case config.BackendMemory:
		return nil, nil
	case config.BackendRedis:
		if sc.RedisURL == "" {
			return nil, errors.New("storage.redis_url is not set")
		}
		rs, err := storage.OpenRedis(ctx, sc.RedisURL, sc.RedisPrefix)
		if err != nil {
			return nil, err
		}
		return rs, nil
	case config.BackendSQLite, "":
		path := sc.Path
		if path == "" {
			var err error
			if path, err = database.DefaultPath(); err != nil {
				return nil, err
			}
		}
		db, err := database.InitDB(ctx, path)
		if err != nil {
			return nil, err
		}
		return database.NewKVRepository(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, sc.Backend)
	}
}

// Now returns the app clock's current time
func (a *App) Now() time.Time {
	return a.clock()
}

// Export flushes pending writes and returns the persisted board
func (a *App) Export(ctx context.Context) (transfer.Document, error) {
	if err := a.Writer.Flush(ctx); err != nil {
		return transfer.Document{}, fmt.Errorf("failed to flush pending writes: %w", err)
	}
	return transfer.Export(ctx, a.KV, a.Now()), nil
}

// Import replaces the persisted records from a backup and swaps the
// imported collections into the running board. A collection the backup
// does not replace keeps its current contents.
func (a *App) Import(ctx context.Context, doc []byte) (transfer.Result, error) {
	if err := a.Writer.Flush(ctx); err != nil {
		return transfer.Result{}, fmt.Errorf("failed to flush pending writes: %w", err)
	}
	res, err := transfer.Import(ctx, a.KV, bytes.NewReader(doc))
	if err != nil {
		return res, err
	}

	tasks := a.Board.Tasks()
	if res.TasksReplaced {
		tasks = res.TaskRecords
	}
	a.Board.Replace(tasks, res.ColumnRecords)
	if err := a.Writer.Flush(ctx); err != nil {
		return res, fmt.Errorf("failed to flush imported board: %w", err)
	}
	return res, nil
}

// Clear removes all persisted data and empties the board
func (a *App) Clear(ctx context.Context) error {
	if err := a.Writer.Flush(ctx); err != nil {
		return fmt.Errorf("failed to flush pending writes: %w", err)
	}
	if err := transfer.Clear(ctx, a.KV); err != nil {
		return err
	}
	a.reload(ctx)
	return nil
}

// reload resets the board to the configured columns and reads storage
// again
func (a *App) reload(ctx context.Context) {
	a.Board.Reset(a.Config.Columns)
	a.Board.Load(ctx, a.KV)
}

// Close flushes pending writes and closes storage
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.Config.Storage.WriteTimeout+time.Second)
	defer cancel()

	if err := a.Writer.Flush(ctx); err != nil {
		a.logger.Warn("pending writes not flushed", "error", err)
	}
	return errors.Join(a.Writer.Close(), a.KV.Close())
}
