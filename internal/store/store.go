package store

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/model"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	// ErrConsistency marks derived state that contradicts its source rows.
	// It is a data-corruption signal, never a normal outcome.
	ErrConsistency = errors.New("consistency fault")
)

// DateLayout is the calendar-date key format used by DailyProgress rows.
const DateLayout = "2006-01-02"

// Store is the record-store adapter the services are built against. The
// production implementation is Gorm; tests use Mem.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// CreateWorkout persists the workout together with its exercises.
	CreateWorkout(ctx context.Context, w *model.Workout) error
	// GetWorkout returns the workout with its exercises loaded.
	GetWorkout(ctx context.Context, id int) (*model.Workout, error)
	GetWorkoutByUserDay(ctx context.Context, userID int, dayKey string) (*model.Workout, error)
	ListWorkouts(ctx context.Context, userID int) ([]model.Workout, error)
	SetWorkoutCompletion(ctx context.Context, id int, completed bool, completedAt *time.Time) error
	// DeleteWorkout removes the workout and all of its exercises.
	DeleteWorkout(ctx context.Context, id int) error

	GetExercise(ctx context.Context, id int) (*model.Exercise, error)
	SetExerciseCompletion(ctx context.Context, id int, completed bool, completedAt *time.Time) error
	CountWorkoutExercises(ctx context.Context, workoutID int) (total, completed int, err error)
	CountUserExercises(ctx context.Context, userID int) (int, error)
	// CountUserCompletedOn counts the user's exercises whose completion
	// timestamp falls on the given calendar date.
	CountUserCompletedOn(ctx context.Context, userID int, date string) (int, error)

	// UpsertDailyProgress overwrites the (user, date) snapshot row, creating
	// it when absent.
	UpsertDailyProgress(ctx context.Context, userID int, date string, total, completed int) error
	GetDailyProgress(ctx context.Context, userID int, date string) (*model.DailyProgress, error)
	// ListDailyProgress returns rows with from <= date <= to, ascending.
	ListDailyProgress(ctx context.Context, userID int, from, to string) ([]model.DailyProgress, error)
}
