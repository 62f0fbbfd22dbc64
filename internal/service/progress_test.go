package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fittrack/internal/model"
	"fittrack/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctx      context.Context
	store    *store.Mem
	progress *ProgressService
	workouts *WorkoutService
	user     *model.User
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ctx:   context.Background(),
		store: store.NewMem(),
		now:   time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local),
	}
	f.progress = NewProgressService(f.store)
	f.progress.now = func() time.Time { return f.now }
	f.workouts = NewWorkoutService(f.store)

	f.user = &model.User{Username: "ana", Password: "x", Name: "Ana"}
	require.NoError(t, f.store.CreateUser(f.ctx, f.user))
	return f
}

func (f *fixture) createWorkout(t *testing.T, dayKey string, exercises int) *model.Workout {
	t.Helper()
	req := model.CreateWorkoutRequest{DayKey: dayKey, Title: "Push Day", Focus: "chest"}
	for i := 0; i < exercises; i++ {
		req.Exercises = append(req.Exercises, model.CreateExerciseRequest{
			Name: fmt.Sprintf("exercise %d", i+1), Category: "workout", Sets: 3, Reps: "10",
		})
	}
	w, err := f.workouts.CreateWorkout(f.ctx, f.user.ID, req)
	require.NoError(t, err)
	return w
}

func TestMarkCompleteCascade(t *testing.T) {
	f := newFixture(t)
	w := f.createWorkout(t, "day1", 3)

	p, err := f.progress.WorkoutProgress(f.ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, &model.ProgressSummary{Total: 3, Completed: 0, Percentage: 0}, p)

	_, err = f.progress.MarkExerciseComplete(f.ctx, w.Exercises[0].ID)
	require.NoError(t, err)
	p, err = f.progress.WorkoutProgress(f.ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, &model.ProgressSummary{Total: 3, Completed: 1, Percentage: 33}, p)

	for _, ex := range w.Exercises {
		_, err = f.progress.MarkExerciseComplete(f.ctx, ex.ID)
		require.NoError(t, err)
	}
	got, err := f.store.GetWorkout(f.ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)

	// One exercise back to incomplete reverts the workout.
	_, err = f.progress.MarkExerciseIncomplete(f.ctx, w.Exercises[1].ID)
	require.NoError(t, err)
	got, err = f.store.GetWorkout(f.ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedAt)
}

func TestMarkCompleteIdempotent(t *testing.T) {
	f := newFixture(t)
	w := f.createWorkout(t, "day1", 2)

	first, err := f.progress.MarkExerciseComplete(f.ctx, w.Exercises[0].ID)
	require.NoError(t, err)

	// Advance the clock; a repeated call must not move any timestamp or count.
	f.now = f.now.Add(3 * time.Hour)
	second, err := f.progress.MarkExerciseComplete(f.ctx, w.Exercises[0].ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	snap, err := f.store.GetDailyProgress(f.ctx, f.user.ID, f.now.Format(store.DateLayout))
	require.NoError(t, err)
	assert.Equal(t, 2, snap.TotalExercises)
	assert.Equal(t, 1, snap.CompletedExercises)
}

func TestWorkoutCompletedAtStableOnRecompute(t *testing.T) {
	f := newFixture(t)
	w := f.createWorkout(t, "day1", 1)

	_, err := f.progress.MarkExerciseComplete(f.ctx, w.Exercises[0].ID)
	require.NoError(t, err)
	done, err := f.store.GetWorkout(f.ctx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)

	f.now = f.now.Add(2 * time.Hour)
	_, err = f.progress.RecomputeWorkoutCompletion(f.ctx, w.ID)
	require.NoError(t, err)
	again, err := f.store.GetWorkout(f.ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, done.CompletedAt, again.CompletedAt)
}

func TestZeroExerciseWorkoutNeverCompletes(t *testing.T) {
	f := newFixture(t)
	w := f.createWorkout(t, "day1", 0)

	got, err := f.progress.RecomputeWorkoutCompletion(f.ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedAt)
}

func TestMarkCompleteBadInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.progress.MarkExerciseComplete(f.ctx, 0)
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
	_, err = f.progress.MarkExerciseComplete(f.ctx, -7)
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
	_, err = f.progress.MarkExerciseComplete(f.ctx, 12345)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSnapshotMatchesExerciseRows(t *testing.T) {
	f := newFixture(t)
	w1 := f.createWorkout(t, "day1", 3)
	w2 := f.createWorkout(t, "day2", 2)

	_, err := f.progress.MarkExerciseComplete(f.ctx, w1.Exercises[0].ID)
	require.NoError(t, err)
	_, err = f.progress.MarkExerciseComplete(f.ctx, w1.Exercises[2].ID)
	require.NoError(t, err)
	_, err = f.progress.MarkExerciseComplete(f.ctx, w2.Exercises[1].ID)
	require.NoError(t, err)
	_, err = f.progress.MarkExerciseIncomplete(f.ctx, w1.Exercises[0].ID)
	require.NoError(t, err)

	today := f.now.Format(store.DateLayout)
	snap, err := f.store.GetDailyProgress(f.ctx, f.user.ID, today)
	require.NoError(t, err)

	// Independent recount straight from exercise rows.
	total, err := f.store.CountUserExercises(f.ctx, f.user.ID)
	require.NoError(t, err)
	completed, err := f.store.CountUserCompletedOn(f.ctx, f.user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, total, snap.TotalExercises)
	assert.Equal(t, completed, snap.CompletedExercises)
	assert.Equal(t, 5, snap.TotalExercises)
	assert.Equal(t, 2, snap.CompletedExercises)
}

func TestDailyProgressFor(t *testing.T) {
	f := newFixture(t)
	w := f.createWorkout(t, "day1", 4)
	_, err := f.progress.MarkExerciseComplete(f.ctx, w.Exercises[0].ID)
	require.NoError(t, err)

	today := f.now.Format(store.DateLayout)
	p, err := f.progress.DailyProgressFor(f.ctx, f.user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, &model.ProgressSummary{Total: 4, Completed: 1, Percentage: 25}, p)

	// No snapshot for other days: zero-filled, not an error.
	p, err = f.progress.DailyProgressFor(f.ctx, f.user.ID, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, &model.ProgressSummary{}, p)

	_, err = f.progress.DailyProgressFor(f.ctx, f.user.ID, "junk")
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
}

func TestRefreshTodayUnknownUser(t *testing.T) {
	f := newFixture(t)
	err := f.progress.RefreshToday(f.ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// vanishingStore drops the workout between the exercise read and the
// cascade, simulating a concurrent delete.
type vanishingStore struct {
	*store.Mem
}

func (v *vanishingStore) GetWorkout(ctx context.Context, id int) (*model.Workout, error) {
	return nil, fmt.Errorf("workout %d: %w", id, store.ErrNotFound)
}

func TestCascadeOnVanishedWorkout(t *testing.T) {
	f := newFixture(t)
	w := f.createWorkout(t, "day1", 1)

	svc := NewProgressService(&vanishingStore{Mem: f.store})
	svc.now = func() time.Time { return f.now }
	_, err := svc.MarkExerciseComplete(f.ctx, w.Exercises[0].ID)
	assert.ErrorIs(t, err, store.ErrConsistency)
}

// shrunkenStore reports fewer total exercises than completed ones,
// simulating corrupted upstream state.
type shrunkenStore struct {
	*store.Mem
}

func (s *shrunkenStore) CountUserExercises(ctx context.Context, userID int) (int, error) {
	return 0, nil
}

func TestRefreshTodayConsistencyFault(t *testing.T) {
	f := newFixture(t)
	w := f.createWorkout(t, "day1", 1)
	_, err := f.progress.MarkExerciseComplete(f.ctx, w.Exercises[0].ID)
	require.NoError(t, err)

	svc := NewProgressService(&shrunkenStore{Mem: f.store})
	svc.now = func() time.Time { return f.now }
	err = svc.RefreshToday(f.ctx, f.user.ID)
	assert.ErrorIs(t, err, store.ErrConsistency)
}
