package board

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/storage"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// fakeWriter records enqueued writes synchronously
type fakeWriter struct {
	mu     sync.Mutex
	writes []write
}

type write struct {
	key   string
	value string
}

func (f *fakeWriter) Enqueue(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, write{key, value})
}

func (f *fakeWriter) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.writes))
	for _, w := range f.writes {
		out = append(out, w.key)
	}
	return out
}

func (f *fakeWriter) last(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.writes) - 1; i >= 0; i-- {
		if f.writes[i].key == key {
			return f.writes[i].value
		}
	}
	return ""
}

// fixedClock never advances unless told to
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time { return c.t }

func sequentialIDs() types.IDGenerator {
	n := 0
	return func() types.TaskID {
		n++
		return types.TaskID(fmt.Sprintf("task-%d", n))
	}
}

func setupStore(t *testing.T) (*Store, *fakeWriter, *fixedClock) {
	t.Helper()
	w := &fakeWriter{}
	clock := &fixedClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	s := NewStore(models.DefaultColumns(),
		WithWriter(w),
		WithClock(clock.now),
		WithIDGenerator(sequentialIDs()),
	)
	return s, w, clock
}

func ptr[T any](v T) *T { return &v }

// ============================================================================
// AddTask
// ============================================================================

func TestAddTask_NewestFirstWithUniqueIDs(t *testing.T) {
	s := NewStore(nil)

	const n = 25
	for i := 0; i < n; i++ {
		s.AddTask(models.TaskInput{Title: fmt.Sprintf("t%d", i), Status: models.ColumnTodo})
	}

	tasks := s.Tasks()
	require.Len(t, tasks, n)

	seen := map[types.TaskID]bool{}
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
	assert.Equal(t, fmt.Sprintf("t%d", n-1), tasks[0].Title)
	assert.Equal(t, "t0", tasks[n-1].Title)
}

func TestAddTask_SetsTimestampsAndPersists(t *testing.T) {
	s, w, clock := setupStore(t)

	task := s.AddTask(models.TaskInput{Title: "Write spec", Status: models.ColumnTodo, Priority: models.PriorityHigh})

	assert.Equal(t, types.TaskID("task-1"), task.ID)
	assert.Equal(t, clock.t, task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, []string{storage.TasksKey}, w.keys())

	stored, err := storage.DecodeTasks(w.last(storage.TasksKey))
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Write spec", stored[0].Title)
}

func TestAddTask_Defaults(t *testing.T) {
	s, _, _ := setupStore(t)

	task := s.AddTask(models.TaskInput{Title: "x", Status: "nowhere"})

	assert.Equal(t, models.ColumnTodo, task.Status, "unknown status lands in the first column")
	assert.Equal(t, models.PriorityMedium, task.Priority)
}

// ============================================================================
// UpdateTask / MoveTask / DeleteTask
// ============================================================================

func TestUpdateTask_TitleAndTimestamp(t *testing.T) {
	s, _, clock := setupStore(t)
	task := s.AddTask(models.TaskInput{Title: "old", Status: models.ColumnTodo})

	clock.t = clock.t.Add(time.Minute)
	ok := s.UpdateTask(task.ID, models.TaskPatch{Title: ptr("X")})
	require.True(t, ok)

	got, _ := s.Task(task.ID)
	assert.Equal(t, "X", got.Title)
	assert.True(t, got.UpdatedAt.After(task.UpdatedAt))
	assert.Equal(t, task.CreatedAt, got.CreatedAt)
}

func TestUpdateTask_StrictlyLaterEvenWithStoppedClock(t *testing.T) {
	s, _, _ := setupStore(t)
	task := s.AddTask(models.TaskInput{Title: "a"})

	require.True(t, s.UpdateTask(task.ID, models.TaskPatch{Description: ptr("d")}))

	got, _ := s.Task(task.ID)
	assert.True(t, got.UpdatedAt.After(task.UpdatedAt))
}

func TestUpdateTask_UnknownIDIsNoOp(t *testing.T) {
	s, w, _ := setupStore(t)
	s.AddTask(models.TaskInput{Title: "a"})
	before := s.Tasks()
	writes := len(w.keys())

	assert.False(t, s.UpdateTask("missing", models.TaskPatch{Title: ptr("X")}))

	assert.Equal(t, before, s.Tasks())
	assert.Len(t, w.keys(), writes, "no-op must not persist")
}

func TestUpdateTask_UnknownStatusRejectsWholePatch(t *testing.T) {
	s, _, _ := setupStore(t)
	task := s.AddTask(models.TaskInput{Title: "a"})

	status := types.ColumnID("archive")
	assert.False(t, s.UpdateTask(task.ID, models.TaskPatch{Title: ptr("B"), Status: &status}))

	got, _ := s.Task(task.ID)
	assert.Equal(t, "a", got.Title)
}

func TestMoveTask(t *testing.T) {
	s, _, _ := setupStore(t)
	task := s.AddTask(models.TaskInput{Title: "a", Status: models.ColumnTodo})

	assert.True(t, s.MoveTask(task.ID, models.ColumnReview))
	got, _ := s.Task(task.ID)
	assert.Equal(t, models.ColumnReview, got.Status)

	assert.False(t, s.MoveTask(task.ID, "not-a-column"))
	got, _ = s.Task(task.ID)
	assert.Equal(t, models.ColumnReview, got.Status)
}

func TestDeleteTask_RemovesExactlyOneAndIsIdempotent(t *testing.T) {
	s, _, _ := setupStore(t)
	a := s.AddTask(models.TaskInput{Title: "a"})
	b := s.AddTask(models.TaskInput{Title: "b"})
	c := s.AddTask(models.TaskInput{Title: "c"})

	assert.True(t, s.DeleteTask(b.ID))
	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, c.ID, tasks[0].ID)
	assert.Equal(t, a.ID, tasks[1].ID)

	assert.False(t, s.DeleteTask(b.ID))
	assert.Len(t, s.Tasks(), 2)
}

func TestDeleteTask_DoesNotAliasEarlierViews(t *testing.T) {
	s, _, _ := setupStore(t)
	a := s.AddTask(models.TaskInput{Title: "a"})
	s.AddTask(models.TaskInput{Title: "b"})

	view := s.Tasks()
	s.DeleteTask(view[0].ID)

	assert.Equal(t, "b", view[0].Title)
	assert.Equal(t, a.ID, view[1].ID)
}

// ============================================================================
// Columns
// ============================================================================

func TestUpdateColumn(t *testing.T) {
	s, w, _ := setupStore(t)

	assert.True(t, s.UpdateColumn(models.ColumnTodo, models.ColumnPatch{Title: ptr("Backlog"), Color: ptr("text-red-700")}))
	col, ok := s.Column(models.ColumnTodo)
	require.True(t, ok)
	assert.Equal(t, "Backlog", col.Title)
	assert.Equal(t, "text-red-700", col.Color)
	assert.Equal(t, "bg-slate-50", col.BgColor)
	assert.Equal(t, []string{storage.ColumnsKey}, w.keys())

	assert.False(t, s.UpdateColumn("missing", models.ColumnPatch{Title: ptr("x")}))
}

func TestReorderColumns(t *testing.T) {
	ids := func(cols []models.Column) []types.ColumnID {
		out := make([]types.ColumnID, len(cols))
		for i, c := range cols {
			out[i] = c.ID
		}
		return out
	}

	tests := []struct {
		name     string
		from, to int
		want     []types.ColumnID
		applied  bool
	}{
		{"same index", 1, 1, []types.ColumnID{"todo", "in-progress", "review", "done"}, false},
		{"forward", 0, 2, []types.ColumnID{"in-progress", "review", "todo", "done"}, true},
		{"backward", 3, 0, []types.ColumnID{"done", "todo", "in-progress", "review"}, true},
		{"adjacent", 1, 2, []types.ColumnID{"todo", "review", "in-progress", "done"}, true},
		{"out of range", 0, 4, []types.ColumnID{"todo", "in-progress", "review", "done"}, false},
		{"negative", -1, 0, []types.ColumnID{"todo", "in-progress", "review", "done"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := setupStore(t)
			assert.Equal(t, tt.applied, s.ReorderColumns(tt.from, tt.to))
			assert.Equal(t, tt.want, ids(s.Columns()))
		})
	}
}

func TestColumnIndex(t *testing.T) {
	s, _, _ := setupStore(t)
	assert.Equal(t, 0, s.ColumnIndex(models.ColumnTodo))
	assert.Equal(t, 3, s.ColumnIndex(models.ColumnDone))
	assert.Equal(t, -1, s.ColumnIndex("missing"))
}

// ============================================================================
// Views
// ============================================================================

func TestTasksByStatus_PreservesOrder(t *testing.T) {
	s, _, _ := setupStore(t)
	s.AddTask(models.TaskInput{Title: "1", Status: models.ColumnTodo})
	s.AddTask(models.TaskInput{Title: "2", Status: models.ColumnDone})
	s.AddTask(models.TaskInput{Title: "3", Status: models.ColumnTodo})

	todo := s.TasksByStatus(models.ColumnTodo)
	require.Len(t, todo, 2)
	assert.Equal(t, "3", todo[0].Title)
	assert.Equal(t, "1", todo[1].Title)

	assert.NotNil(t, s.TasksByStatus(models.ColumnReview))
	assert.Empty(t, s.TasksByStatus(models.ColumnReview))
}

func TestStats_FollowsColumnOrder(t *testing.T) {
	s, _, _ := setupStore(t)
	s.AddTask(models.TaskInput{Title: "1", Status: models.ColumnDone})
	s.ReorderColumns(3, 0)

	stats := s.Stats()
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, models.ColumnDone, stats.PerColumn[0].ColumnID)
	assert.Equal(t, 1, stats.PerColumn[0].Count)
}

func TestViews_AreCopies(t *testing.T) {
	s, _, _ := setupStore(t)
	s.AddTask(models.TaskInput{Title: "a"})

	tasks := s.Tasks()
	tasks[0].Title = "mutated"
	cols := s.Columns()
	cols[0].Title = "mutated"

	assert.Equal(t, "a", s.Tasks()[0].Title)
	assert.Equal(t, "To Do", s.Columns()[0].Title)
}

// ============================================================================
// Load / Replace
// ============================================================================

func TestLoad_PersistedColumnsOverrideDefaults(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	cols := []models.Column{{ID: "backlog", Title: "Backlog"}, {ID: "shipped", Title: "Shipped"}}
	rawCols, err := storage.EncodeColumns(cols)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, storage.ColumnsKey, rawCols))

	rawTasks, err := storage.EncodeTasks([]models.Task{{ID: "t1", Title: "x", Status: "shipped", Priority: models.PriorityLow}})
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, storage.TasksKey, rawTasks))

	w := &fakeWriter{}
	s := NewStore(nil, WithWriter(w))
	s.Load(ctx, kv)

	assert.Equal(t, cols, s.Columns())
	assert.True(t, s.HasTask("t1"))
	assert.Equal(t, 1, s.Stats().Count("shipped"))
	assert.Empty(t, w.keys(), "loading never writes back")
}

func TestLoad_MalformedDataGivesEmptyBoard(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, storage.TasksKey, "garbage"))
	require.NoError(t, kv.Set(ctx, storage.ColumnsKey, "garbage"))

	s := NewStore(nil)
	s.Load(ctx, kv)

	assert.Empty(t, s.Tasks())
	assert.Equal(t, models.DefaultColumns(), s.Columns())
}

func TestLoad_UnknownStatusMovesToFirstColumn(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rawTasks, err := storage.EncodeTasks([]models.Task{
		{ID: "t1", Title: "lost", Status: "archived", Priority: models.PriorityLow, CreatedAt: stamp, UpdatedAt: stamp},
		{ID: "t2", Title: "fine", Status: models.ColumnDone, Priority: models.PriorityLow, CreatedAt: stamp, UpdatedAt: stamp},
	})
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, storage.TasksKey, rawTasks))

	w := &fakeWriter{}
	s := NewStore(nil, WithWriter(w))
	s.Load(ctx, kv)

	lost, ok := s.Task("t1")
	require.True(t, ok)
	assert.Equal(t, models.ColumnTodo, lost.Status)
	assert.True(t, lost.UpdatedAt.After(stamp))

	fine, _ := s.Task("t2")
	assert.Equal(t, stamp, fine.UpdatedAt)

	stats := s.Stats()
	sum := 0
	for _, c := range stats.PerColumn {
		sum += c.Count
	}
	assert.Equal(t, stats.Total, sum)
	assert.Equal(t, []string{storage.TasksKey}, w.keys(), "the corrected tasks are written back")
	assert.Contains(t, w.last(storage.TasksKey), `"status":"todo"`)
}

func TestReplace_UnknownStatusMovesToFirstColumn(t *testing.T) {
	s, _, _ := setupStore(t)
	cols := []models.Column{{ID: "backlog", Title: "Backlog"}, {ID: "shipped", Title: "Shipped"}}

	s.Replace([]models.Task{
		{ID: "a", Title: "a", Status: models.ColumnTodo},
		{ID: "b", Title: "b", Status: "shipped"},
	}, cols)

	a, _ := s.Task("a")
	b, _ := s.Task("b")
	assert.Equal(t, types.ColumnID("backlog"), a.Status)
	assert.Equal(t, types.ColumnID("shipped"), b.Status)
	assert.Equal(t, 1, s.Stats().Count("backlog"))
}

func TestReplace_PersistsBoth(t *testing.T) {
	s, w, _ := setupStore(t)
	s.AddTask(models.TaskInput{Title: "gone"})

	s.Replace([]models.Task{{ID: "n", Title: "new", Status: "todo"}}, nil)

	require.Len(t, s.Tasks(), 1)
	assert.Equal(t, "new", s.Tasks()[0].Title)
	assert.Equal(t, models.DefaultColumns(), s.Columns(), "empty columns keep the current set")
	assert.Equal(t, []string{storage.TasksKey, storage.TasksKey, storage.ColumnsKey}, w.keys())
}

// ============================================================================
// Concurrency
// ============================================================================

func TestStore_ConcurrentMutations(t *testing.T) {
	s := NewStore(nil, WithWriter(&fakeWriter{}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			task := s.AddTask(models.TaskInput{Title: fmt.Sprintf("t%d", i)})
			s.MoveTask(task.ID, models.ColumnDone)
			_ = s.Stats()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, s.Stats().Count(models.ColumnDone))
}

func TestReset_DoesNotPersist(t *testing.T) {
	s, w, _ := setupStore(t)
	s.AddTask(models.TaskInput{Title: "a"})
	s.ReorderColumns(0, 1)
	writes := len(w.keys())

	s.Reset(nil)

	assert.Empty(t, s.Tasks())
	assert.Equal(t, models.DefaultColumns(), s.Columns())
	assert.Len(t, w.keys(), writes)
}
