package service

import (
	"context"
	"fmt"

	"fittrack/internal/model"
	"fittrack/internal/store"
)

// DayKeys are the seven recurring weekday slots a workout can occupy.
var DayKeys = []string{"day1", "day2", "day3", "day4", "day5", "day6", "day7"}

func validDayKey(key string) bool {
	for _, k := range DayKeys {
		if k == key {
			return true
		}
	}
	return false
}

// WorkoutService manages the workout lifecycle: creation with exercises,
// lookup, the week plan, and cascade deletion. Completion fields are never
// taken from the caller; only the progress cascade writes them.
type WorkoutService struct {
	store store.Store
}

func NewWorkoutService(st store.Store) *WorkoutService {
	return &WorkoutService{store: st}
}

// CreateWorkout creates the workout and its exercises in one step. Each
// user gets at most one workout per day key.
func (s *WorkoutService) CreateWorkout(ctx context.Context, userID int, req model.CreateWorkoutRequest) (*model.Workout, error) {
	if !validDayKey(req.DayKey) {
		return nil, fmt.Errorf("day key %q: %w", req.DayKey, store.ErrInvalidArgument)
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetWorkoutByUserDay(ctx, userID, req.DayKey); err == nil {
		return nil, fmt.Errorf("workout for %s: %w", req.DayKey, store.ErrAlreadyExists)
	}

	w := &model.Workout{
		UserID: userID,
		DayKey: req.DayKey,
		Title:  req.Title,
		Focus:  req.Focus,
	}
	for _, e := range req.Exercises {
		w.Exercises = append(w.Exercises, model.Exercise{
			Name:     e.Name,
			Category: e.Category,
			Sets:     e.Sets,
			Reps:     e.Reps,
		})
	}
	if err := s.store.CreateWorkout(ctx, w); err != nil {
		return nil, err
	}
	return s.store.GetWorkout(ctx, w.ID)
}

func (s *WorkoutService) GetWorkout(ctx context.Context, workoutID int) (*model.Workout, error) {
	if workoutID <= 0 {
		return nil, fmt.Errorf("workout id %d: %w", workoutID, store.ErrInvalidArgument)
	}
	return s.store.GetWorkout(ctx, workoutID)
}

// WeekPlan returns the user's workouts ordered by day key.
func (s *WorkoutService) WeekPlan(ctx context.Context, userID int) ([]model.Workout, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListWorkouts(ctx, userID)
}

// DeleteWorkout removes the workout and its exercises. The owner check
// keeps one user from deleting another's plan.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID, workoutID int) error {
	w, err := s.store.GetWorkout(ctx, workoutID)
	if err != nil {
		return err
	}
	if w.UserID != userID {
		return fmt.Errorf("workout %d: %w", workoutID, store.ErrNotFound)
	}
	return s.store.DeleteWorkout(ctx, workoutID)
}
