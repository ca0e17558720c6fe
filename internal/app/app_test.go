package app

import (
	"context"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/persist"
	"github.com/thenoetrevino/tablero/internal/storage"
)

func memoryConfig() *config.Config {
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory
	return cfg
}

func TestNew_MemoryBackend(t *testing.T) {
	a, err := New(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer a.Close()

	assert.True(t, a.KV.Degraded())
	assert.Equal(t, models.DefaultColumns(), a.Board.Columns())
	assert.NotNil(t, a.Drag)
}

func TestNew_SQLitePersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "board.db")

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, a.KV.Degraded())

	task := a.Board.AddTask(models.TaskInput{Title: "Write spec", Status: models.ColumnTodo})
	a.Board.ReorderColumns(0, 3)
	require.NoError(t, a.Close())

	b, err := New(ctx, cfg)
	require.NoError(t, err)
	defer b.Close()

	got, ok := b.Board.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Write spec", got.Title)
	assert.Equal(t, models.ColumnTodo, b.Board.Columns()[3].ID)
}

func TestNew_RedisBackend(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendRedis
	cfg.Storage.RedisURL = "redis://" + mr.Addr()

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)

	a.Board.AddTask(models.TaskInput{Title: "x"})
	require.NoError(t, a.Close())

	assert.True(t, mr.Exists("tablero:"+storage.TasksKey))
}

func TestNew_UnreachableBackendFallsBackToMemory(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendRedis
	cfg.Storage.RedisURL = "redis://127.0.0.1:1"

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.True(t, a.KV.Degraded())
	a.Board.AddTask(models.TaskInput{Title: "still works"})
	assert.Len(t, a.Board.Tasks(), 1)
}

func TestReporterSeesWrites(t *testing.T) {
	reporter := persist.NewChanReporter(8, false)
	a, err := New(context.Background(), memoryConfig(), WithReporter(reporter))
	require.NoError(t, err)
	defer a.Close()

	a.Board.AddTask(models.TaskInput{Title: "x"})
	require.NoError(t, a.Writer.Flush(context.Background()))

	res := <-reporter.C
	assert.Equal(t, storage.TasksKey, res.Key)
	assert.True(t, res.OK())
}

func TestExportClearImport(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, memoryConfig(), WithKV(storage.NewMemoryStore()))
	require.NoError(t, err)
	defer a.Close()

	a.Board.AddTask(models.TaskInput{Title: "keep me", Status: models.ColumnReview})
	doc, err := a.Export(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Tasks, 1)

	require.NoError(t, a.Clear(ctx))
	assert.Empty(t, a.Board.Tasks())

	raw := []byte(`{"tasks":[{"id":"t1","title":"keep me","status":"review","priority":"medium",` +
		`"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}]}`)
	res, err := a.Import(ctx, raw)
	require.NoError(t, err)
	assert.True(t, res.TasksReplaced)
	assert.False(t, res.ColumnsReplaced)

	require.Len(t, a.Board.Tasks(), 1)
	assert.Equal(t, 1, a.Board.Stats().Count(models.ColumnReview))
}

func TestImport_ColumnsOnlyKeepsTasksAndRehomesOrphans(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	a, err := New(ctx, memoryConfig(), WithKV(kv))
	require.NoError(t, err)
	defer a.Close()

	kept := a.Board.AddTask(models.TaskInput{Title: "kept", Status: models.ColumnDone})
	moved := a.Board.AddTask(models.TaskInput{Title: "moved", Status: models.ColumnReview})

	raw := []byte(`{"columns":[{"id":"backlog","title":"Backlog"},{"id":"done","title":"Done"}]}`)
	res, err := a.Import(ctx, raw)
	require.NoError(t, err)
	assert.False(t, res.TasksReplaced)
	assert.True(t, res.ColumnsReplaced)

	require.Len(t, a.Board.Columns(), 2)
	require.Len(t, a.Board.Tasks(), 2)
	got, _ := a.Board.Task(kept.ID)
	assert.Equal(t, models.ColumnDone, got.Status)
	got, _ = a.Board.Task(moved.ID)
	assert.EqualValues(t, "backlog", got.Status)

	stored := storage.LoadTasks(ctx, kv)
	require.Len(t, stored, 2)
	for _, task := range stored {
		assert.NotEqual(t, models.ColumnReview, task.Status, "storage matches the running board")
	}
}

func TestClose(t *testing.T) {
	a, err := New(context.Background(), memoryConfig())
	require.NoError(t, err)

	assert.NoError(t, a.Close())
}
