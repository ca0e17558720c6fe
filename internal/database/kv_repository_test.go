package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo opens an in-memory database with the full schema
func setupTestRepo(t *testing.T) *KVRepository {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	require.NoError(t, err)

	repo := NewKVRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestKVRepository_GetMissing(t *testing.T) {
	repo := setupTestRepo(t)

	value, ok, err := repo.Get(context.Background(), "kanban-tasks")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestKVRepository_SetThenGet(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "kanban-tasks", `[]`))

	value, ok, err := repo.Get(ctx, "kanban-tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)
}

func TestKVRepository_SetOverwrites(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "one"))
	require.NoError(t, repo.Set(ctx, "k", "two"))

	value, _, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", value)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
}

func TestKVRepository_Remove(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "v"))
	require.NoError(t, repo.Remove(ctx, "k"))
	require.NoError(t, repo.Remove(ctx, "k"), "removing an absent key is not an error")

	_, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVRepository_Clear(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "kanban-tasks", "[]"))
	require.NoError(t, repo.Set(ctx, "kanban-columns", "[]"))
	require.NoError(t, repo.Clear(ctx))

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

// Values must survive closing and reopening the file
func TestKVRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "board.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	repo := NewKVRepository(db)
	require.NoError(t, repo.Set(ctx, "kanban-columns", `[{"id":"todo"}]`))
	require.NoError(t, repo.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	repo = NewKVRepository(db)
	defer repo.Close()

	value, ok, err := repo.Get(ctx, "kanban-columns")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"todo"}]`, value)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := InitDB(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, runMigrations(ctx, db))

	var version int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, schemaVersion, version)
}
