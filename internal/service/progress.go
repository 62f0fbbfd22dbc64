package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"fittrack/internal/logger"
	"fittrack/internal/model"
	"fittrack/internal/store"
)

// ProgressService owns the completion write path: toggling an exercise,
// cascading the result into the owning workout's completed flag, and
// refreshing the owner's daily snapshot. All three steps run inside one
// call, in that order, and every derived value is a full recompute from
// exercise rows, so repeated or interleaved calls converge to the same
// state.
type ProgressService struct {
	store store.Store
	now   func() time.Time
}

func NewProgressService(st store.Store) *ProgressService {
	return &ProgressService{store: st, now: time.Now}
}

// MarkExerciseComplete sets the exercise completed and runs the cascade.
// An already-complete exercise keeps its original completion timestamp so
// a repeated call is a pure no-op state transition.
func (s *ProgressService) MarkExerciseComplete(ctx context.Context, exerciseID int) (*model.Exercise, error) {
	return s.toggle(ctx, exerciseID, true)
}

// MarkExerciseIncomplete clears the completed flag and timestamp and runs
// the same cascade.
func (s *ProgressService) MarkExerciseIncomplete(ctx context.Context, exerciseID int) (*model.Exercise, error) {
	return s.toggle(ctx, exerciseID, false)
}

func (s *ProgressService) toggle(ctx context.Context, exerciseID int, completed bool) (*model.Exercise, error) {
	if exerciseID <= 0 {
		return nil, fmt.Errorf("exercise id %d: %w", exerciseID, store.ErrInvalidArgument)
	}
	ex, err := s.store.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	switch {
	case completed && !ex.Completed:
		now := s.now()
		ex.Completed = true
		ex.CompletedAt = &now
	case !completed:
		ex.Completed = false
		ex.CompletedAt = nil
	}
	if err := s.store.SetExerciseCompletion(ctx, ex.ID, ex.Completed, ex.CompletedAt); err != nil {
		return nil, err
	}

	// The cascade runs even when the flag did not change, so drifted
	// derived state heals on the next toggle.
	w, err := s.RecomputeWorkoutCompletion(ctx, ex.WorkoutID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The exercise existed a moment ago, so its workout must too.
			return nil, fmt.Errorf("workout %d vanished mid-cascade: %w", ex.WorkoutID, store.ErrConsistency)
		}
		return nil, err
	}
	if err := s.RefreshToday(ctx, w.UserID); err != nil {
		return nil, err
	}
	return ex, nil
}

// RecomputeWorkoutCompletion derives the workout's completed state from its
// exercise rows and persists it. A workout is complete only when it has at
// least one exercise and every one of them is complete; zero exercises never
// count as done.
func (s *ProgressService) RecomputeWorkoutCompletion(ctx context.Context, workoutID int) (*model.Workout, error) {
	w, err := s.store.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	total, completed, err := s.store.CountWorkoutExercises(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	done := total > 0 && completed == total
	var doneAt *time.Time
	if done {
		if w.Completed && w.CompletedAt != nil {
			doneAt = w.CompletedAt
		} else {
			now := s.now()
			doneAt = &now
		}
	}
	if err := s.store.SetWorkoutCompletion(ctx, workoutID, done, doneAt); err != nil {
		return nil, err
	}
	if done != w.Completed {
		logger.Info("workout.completion", "workout_id", workoutID, "completed", done)
	}
	w.Completed = done
	w.CompletedAt = doneAt
	return w, nil
}

// RefreshToday recomputes and upserts the user's snapshot for today's local
// date. Counts come from exercise rows, never from the previous snapshot.
func (s *ProgressService) RefreshToday(ctx context.Context, userID int) error {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return err
	}
	date := s.now().Format(store.DateLayout)
	total, err := s.store.CountUserExercises(ctx, userID)
	if err != nil {
		return err
	}
	completed, err := s.store.CountUserCompletedOn(ctx, userID, date)
	if err != nil {
		return err
	}
	if completed > total {
		return fmt.Errorf("user %d on %s: completed %d exceeds total %d: %w",
			userID, date, completed, total, store.ErrConsistency)
	}
	return s.store.UpsertDailyProgress(ctx, userID, date, total, completed)
}

// WorkoutProgress reports the workout's completion counts.
func (s *ProgressService) WorkoutProgress(ctx context.Context, workoutID int) (*model.ProgressSummary, error) {
	if workoutID <= 0 {
		return nil, fmt.Errorf("workout id %d: %w", workoutID, store.ErrInvalidArgument)
	}
	if _, err := s.store.GetWorkout(ctx, workoutID); err != nil {
		return nil, err
	}
	total, completed, err := s.store.CountWorkoutExercises(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	return &model.ProgressSummary{
		Total:      total,
		Completed:  completed,
		Percentage: percentage(completed, total),
	}, nil
}

// DailyProgressFor reports the snapshot for the given date, zero-filled
// when no snapshot exists.
func (s *ProgressService) DailyProgressFor(ctx context.Context, userID int, date string) (*model.ProgressSummary, error) {
	if _, err := time.Parse(store.DateLayout, date); err != nil {
		return nil, fmt.Errorf("date %q: %w", date, store.ErrInvalidArgument)
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	p, err := s.store.GetDailyProgress(ctx, userID, date)
	if errors.Is(err, store.ErrNotFound) {
		return &model.ProgressSummary{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.ProgressSummary{
		Total:      p.TotalExercises,
		Completed:  p.CompletedExercises,
		Percentage: percentage(p.CompletedExercises, p.TotalExercises),
	}, nil
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
