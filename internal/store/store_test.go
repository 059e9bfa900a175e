package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/mytodo/internal/model"
	"github.com/sandeepkv93/mytodo/internal/storage"
)

var fixedNow = time.Date(2026, 2, 9, 14, 5, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore, *storage.TaskPersistence) {
	t.Helper()
	kv := storage.NewMemoryStore()
	p := storage.NewTaskPersistence(kv, nil)
	seq := 0
	s := New(context.Background(), p,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	return s, kv, p
}

func TestAddPrependsAndPersists(t *testing.T) {
	s, _, p := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "Buy milk", "2%")
	require.NoError(t, err)
	tasks, err := s.Add(ctx, "Walk dog", "park")
	require.NoError(t, err)

	require.Len(t, tasks, 2)
	assert.Equal(t, "Walk dog", tasks[0].Name)
	assert.Equal(t, "Buy milk", tasks[1].Name)

	loaded := p.Load(ctx)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Buy milk", loaded[1].Name)
	assert.Equal(t, "2%", loaded[1].Description)
	assert.False(t, loaded[1].Completed)
	assert.False(t, loaded[1].Edited)
	assert.Equal(t, "id-1", loaded[1].ID)
	assert.Equal(t, model.NewStamp(fixedNow), loaded[1].Stamp)
}

func TestAddValidation(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "  ", "desc")
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = s.Add(ctx, "name", "   ")
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Empty(t, s.Tasks())
}

func TestAddDuplicateIsRejected(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "Task A", "first")
	require.NoError(t, err)
	tasks, err := s.Add(ctx, "task a ", "second")

	var dup *model.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "task a", dup.Name)
	assert.Len(t, tasks, 1)
	assert.Len(t, s.Tasks(), 1)
}

func TestEditUpdatesInPlace(t *testing.T) {
	s, _, p := newTestStore(t)
	ctx := context.Background()
	_, _ = s.Add(ctx, "one", "a")
	_, _ = s.Add(ctx, "two", "b")
	_, _ = s.Add(ctx, "three", "c")

	tasks, err := s.Edit(ctx, "two", "two v2", "b2")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "two v2", tasks[1].Name)
	assert.Equal(t, "b2", tasks[1].Description)
	assert.True(t, tasks[1].Edited)
	assert.Equal(t, "id-2", tasks[1].ID)
	assert.Equal(t, model.NewStamp(fixedNow), tasks[1].Stamp)

	assert.Equal(t, tasks, p.Load(ctx))
}

func TestEditSameNameAndCaseChangeAllowed(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	_, _ = s.Add(ctx, "Report", "draft")

	_, err := s.Edit(ctx, "Report", "Report", "final")
	require.NoError(t, err)
	tasks, err := s.Edit(ctx, "Report", "REPORT", "final")
	require.NoError(t, err)
	assert.Equal(t, "REPORT", tasks[0].Name)
}

func TestEditIsIdempotentExceptEdited(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	_, _ = s.Add(ctx, "Report", "draft")

	first, err := s.Edit(ctx, "Report", "Report v2", "final")
	require.NoError(t, err)
	second, err := s.Edit(ctx, "Report v2", "Report v2", "final")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, second[0].Edited)
}

func TestEditRejectsCollisionWithOtherTask(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	_, _ = s.Add(ctx, "alpha", "a")
	_, _ = s.Add(ctx, "beta", "b")

	_, err := s.Edit(ctx, "beta", " ALPHA", "b")
	assert.ErrorIs(t, err, model.ErrDuplicate)
	got, ok := s.Find("beta")
	require.True(t, ok)
	assert.False(t, got.Edited)
}

func TestEditErrors(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	_, _ = s.Add(ctx, "alpha", "a")

	_, err := s.Edit(ctx, "missing", "x", "y")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = s.Edit(ctx, "alpha", "", "y")
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = s.EditByID(ctx, "nope", "x", "y")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestEditByIDSurvivesRename(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	_, _ = s.Add(ctx, "alpha", "a")
	_, err := s.Edit(ctx, "alpha", "alpha renamed", "a")
	require.NoError(t, err)

	tasks, err := s.EditByID(ctx, "id-1", "alpha final", "done")
	require.NoError(t, err)
	assert.Equal(t, "alpha final", tasks[0].Name)
}

func TestCompletedTaskCannotBeEdited(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	_, _ = s.Add(ctx, "Buy milk", "2%")

	tasks, err := s.ToggleComplete(ctx, "Buy milk")
	require.NoError(t, err)
	assert.True(t, tasks[0].Completed)

	_, err = s.BeginEdit("Buy milk")
	assert.ErrorIs(t, err, model.ErrCompleted)
	_, err = s.Edit(ctx, "Buy milk", "Buy oat milk", "2%")
	assert.ErrorIs(t, err, model.ErrCompleted)

	tasks, err = s.Delete(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestBeginEdit(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	_, _ = s.Add(ctx, "alpha", "a")

	task, err := s.BeginEdit("alpha")
	require.NoError(t, err)
	assert.Equal(t, "a", task.Description)

	_, err = s.BeginEdit("beta")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestToggleCompleteIsItsOwnInverse(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	_, _ = s.Add(ctx, "alpha", "a")

	_, _ = s.ToggleComplete(ctx, "alpha")
	tasks, err := s.ToggleComplete(ctx, "alpha")
	require.NoError(t, err)
	assert.False(t, tasks[0].Completed)

	tasks, err = s.ToggleComplete(ctx, "missing")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestDeleteRemovesOnlyMatching(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	_, _ = s.Add(ctx, "alpha", "a")
	_, _ = s.Add(ctx, "beta", "b")

	tasks, err := s.Delete(ctx, "ALPHA")
	require.NoError(t, err)
	assert.Len(t, tasks, 2, "delete matches the exact stored name")

	tasks, err = s.Delete(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "beta", tasks[0].Name)

	tasks, err = s.Delete(ctx, "gamma")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestSaveFailureKeepsChangeAndReportsPersistenceError(t *testing.T) {
	s, kv, _ := newTestStore(t)
	ctx := context.Background()
	kv.FailWrites = errors.New("quota exceeded")

	tasks, err := s.Add(ctx, "alpha", "a")
	assert.ErrorIs(t, err, model.ErrPersistence)
	assert.Len(t, tasks, 1)
	assert.Len(t, s.Tasks(), 1)

	kv.FailWrites = nil
	_, err = s.Add(ctx, "beta", "b")
	require.NoError(t, err)
}

type plainFailPersistence struct{}

func (plainFailPersistence) Load(context.Context) []model.Task { return nil }
func (plainFailPersistence) Save(context.Context, []model.Task) error {
	return errors.New("boom")
}

func TestSaveFailureFromForeignPersistenceIsWrapped(t *testing.T) {
	s := New(context.Background(), plainFailPersistence{})
	_, err := s.Add(context.Background(), "alpha", "a")
	assert.ErrorIs(t, err, model.ErrPersistence)
}

func TestNewBackfillsMissingIDs(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.SetItem(ctx, storage.TasksKey, `[{"name":"legacy","description":"d","completed":false},{"id":"keep","name":"kept","description":"d"}]`))

	s := New(ctx, storage.NewTaskPersistence(kv, nil), WithIDGenerator(func() string { return "fresh" }))
	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "fresh", tasks[0].ID)
	assert.Equal(t, "keep", tasks[1].ID)
}

func TestDefaultIDsAreUnique(t *testing.T) {
	s := New(context.Background(), storage.NewTaskPersistence(storage.NewMemoryStore(), nil))
	ctx := context.Background()
	_, _ = s.Add(ctx, "a", "a")
	tasks, _ := s.Add(ctx, "b", "b")
	assert.NotEmpty(t, tasks[0].ID)
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
}

func TestTasksReturnsCopy(t *testing.T) {
	s, _, _ := newTestStore(t)
	_, _ = s.Add(context.Background(), "alpha", "a")
	tasks := s.Tasks()
	tasks[0].Name = "mutated"
	got, ok := s.FindByID("id-1")
	require.True(t, ok)
	assert.Equal(t, "alpha", got.Name)
}

func TestScenarioBuyMilk(t *testing.T) {
	s, _, p := newTestStore(t)
	ctx := context.Background()

	tasks, err := s.Add(ctx, "Buy milk", "2%")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].Completed)

	tasks, err = s.ToggleComplete(ctx, "Buy milk")
	require.NoError(t, err)
	assert.True(t, tasks[0].Completed)

	_, err = s.BeginEdit("Buy milk")
	assert.ErrorIs(t, err, model.ErrCompleted)

	tasks, err = s.Delete(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Empty(t, p.Load(ctx))
}
