package service

import (
	"testing"

	"fittrack/internal/model"
	"fittrack/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkoutWithExercises(t *testing.T) {
	f := newFixture(t)

	w, err := f.workouts.CreateWorkout(f.ctx, f.user.ID, model.CreateWorkoutRequest{
		DayKey: "day3",
		Title:  "Leg Day",
		Focus:  "quads",
		Exercises: []model.CreateExerciseRequest{
			{Name: "Back squat", Category: "workout", Sets: 4, Reps: "6"},
			{Name: "Leg swings", Category: "warmup", Sets: 2, Reps: "10"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, w.UserID)
	assert.False(t, w.Completed)
	require.Len(t, w.Exercises, 2)
	for _, ex := range w.Exercises {
		assert.Equal(t, w.ID, ex.WorkoutID)
		assert.False(t, ex.Completed)
		assert.Nil(t, ex.CompletedAt)
	}
}

func TestCreateWorkoutDayKeyRules(t *testing.T) {
	f := newFixture(t)
	f.createWorkout(t, "day2", 1)

	_, err := f.workouts.CreateWorkout(f.ctx, f.user.ID, model.CreateWorkoutRequest{
		DayKey: "day2", Title: "Another",
	})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	for _, key := range []string{"day8", "monday", ""} {
		_, err := f.workouts.CreateWorkout(f.ctx, f.user.ID, model.CreateWorkoutRequest{
			DayKey: key, Title: "Bad",
		})
		assert.ErrorIs(t, err, store.ErrInvalidArgument, "day key %q", key)
	}
}

func TestWeekPlanOrdered(t *testing.T) {
	f := newFixture(t)
	f.createWorkout(t, "day5", 1)
	f.createWorkout(t, "day1", 1)
	f.createWorkout(t, "day3", 1)

	ws, err := f.workouts.WeekPlan(f.ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, ws, 3)
	assert.Equal(t, "day1", ws[0].DayKey)
	assert.Equal(t, "day3", ws[1].DayKey)
	assert.Equal(t, "day5", ws[2].DayKey)
}

func TestDeleteWorkoutCascades(t *testing.T) {
	f := newFixture(t)
	w := f.createWorkout(t, "day1", 2)

	require.NoError(t, f.workouts.DeleteWorkout(f.ctx, f.user.ID, w.ID))

	_, err := f.store.GetWorkout(f.ctx, w.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	for _, ex := range w.Exercises {
		_, err := f.store.GetExercise(f.ctx, ex.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	}
}

func TestDeleteWorkoutOwnership(t *testing.T) {
	f := newFixture(t)
	w := f.createWorkout(t, "day1", 1)

	other := &model.User{Username: "niko", Password: "x", Name: "Niko"}
	require.NoError(t, f.store.CreateUser(f.ctx, other))

	err := f.workouts.DeleteWorkout(f.ctx, other.ID, w.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Still there for the owner.
	_, err = f.store.GetWorkout(f.ctx, w.ID)
	require.NoError(t, err)
}
