package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fittrack/internal/model"

	"gorm.io/gorm"
)

// Gorm is the MySQL-backed store. Boolean columns live as tinyint on the
// wire; the driver does the coercion so everything above this layer sees
// real bools.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm { return &Gorm{db: db} }

// Migrate creates or updates the four tables.
func (g *Gorm) Migrate() error {
	return g.db.AutoMigrate(
		&model.User{},
		&model.Workout{},
		&model.Exercise{},
		&model.DailyProgress{},
	)
}

func (g *Gorm) CreateUser(ctx context.Context, u *model.User) error {
	err := g.db.WithContext(ctx).Create(u).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("user %q: %w", u.Username, ErrAlreadyExists)
	}
	return err
}

func (g *Gorm) GetUser(ctx context.Context, id int) (*model.User, error) {
	var u model.User
	if err := g.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, "user %d", id)
	}
	return &u, nil
}

func (g *Gorm) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := g.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, notFound(err, "user %q", username)
	}
	return &u, nil
}

func (g *Gorm) CreateWorkout(ctx context.Context, w *model.Workout) error {
	err := g.db.WithContext(ctx).Create(w).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("workout for %s: %w", w.DayKey, ErrAlreadyExists)
	}
	return err
}

func (g *Gorm) GetWorkout(ctx context.Context, id int) (*model.Workout, error) {
	var w model.Workout
	err := g.db.WithContext(ctx).Preload("Exercises").First(&w, id).Error
	if err != nil {
		return nil, notFound(err, "workout %d", id)
	}
	return &w, nil
}

func (g *Gorm) GetWorkoutByUserDay(ctx context.Context, userID int, dayKey string) (*model.Workout, error) {
	var w model.Workout
	err := g.db.WithContext(ctx).Preload("Exercises").
		Where("user_id = ? AND day_key = ?", userID, dayKey).
		First(&w).Error
	if err != nil {
		return nil, notFound(err, "workout %d/%s", userID, dayKey)
	}
	return &w, nil
}

func (g *Gorm) ListWorkouts(ctx context.Context, userID int) ([]model.Workout, error) {
	var ws []model.Workout
	err := g.db.WithContext(ctx).Preload("Exercises").
		Where("user_id = ?", userID).
		Order("day_key").Find(&ws).Error
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return ws, nil
}

func (g *Gorm) SetWorkoutCompletion(ctx context.Context, id int, completed bool, completedAt *time.Time) error {
	res := g.db.WithContext(ctx).Model(&model.Workout{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"completed":    completed,
			"completed_at": completedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update workout %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	return nil
}

func (g *Gorm) DeleteWorkout(ctx context.Context, id int) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", id).Delete(&model.Exercise{}).Error; err != nil {
			return fmt.Errorf("delete exercises of workout %d: %w", id, err)
		}
		res := tx.Delete(&model.Workout{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete workout %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("workout %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

func (g *Gorm) GetExercise(ctx context.Context, id int) (*model.Exercise, error) {
	var e model.Exercise
	if err := g.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, notFound(err, "exercise %d", id)
	}
	return &e, nil
}

func (g *Gorm) SetExerciseCompletion(ctx context.Context, id int, completed bool, completedAt *time.Time) error {
	res := g.db.WithContext(ctx).Model(&model.Exercise{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"completed":    completed,
			"completed_at": completedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update exercise %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("exercise %d: %w", id, ErrNotFound)
	}
	return nil
}

func (g *Gorm) CountWorkoutExercises(ctx context.Context, workoutID int) (int, int, error) {
	var total, completed int64
	db := g.db.WithContext(ctx).Model(&model.Exercise{})
	if err := db.Where("workout_id = ?", workoutID).Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("count exercises: %w", err)
	}
	err := g.db.WithContext(ctx).Model(&model.Exercise{}).
		Where("workout_id = ? AND completed = ?", workoutID, true).
		Count(&completed).Error
	if err != nil {
		return 0, 0, fmt.Errorf("count completed exercises: %w", err)
	}
	return int(total), int(completed), nil
}

func (g *Gorm) CountUserExercises(ctx context.Context, userID int) (int, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&model.Exercise{}).
		Joins("JOIN workouts ON workouts.id = exercises.workout_id").
		Where("workouts.user_id = ?", userID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count user exercises: %w", err)
	}
	return int(n), nil
}

func (g *Gorm) CountUserCompletedOn(ctx context.Context, userID int, date string) (int, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&model.Exercise{}).
		Joins("JOIN workouts ON workouts.id = exercises.workout_id").
		Where("workouts.user_id = ? AND exercises.completed = ? AND DATE(exercises.completed_at) = ?",
			userID, true, date).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count completed on %s: %w", date, err)
	}
	return int(n), nil
}

func (g *Gorm) UpsertDailyProgress(ctx context.Context, userID int, date string, total, completed int) error {
	var existing model.DailyProgress
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return g.db.WithContext(ctx).Create(&model.DailyProgress{
			UserID: userID, Date: date,
			TotalExercises: total, CompletedExercises: completed,
		}).Error
	}
	if err != nil {
		return fmt.Errorf("query snapshot: %w", err)
	}

	return g.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
		"total_exercises":     total,
		"completed_exercises": completed,
	}).Error
}

func (g *Gorm) GetDailyProgress(ctx context.Context, userID int, date string) (*model.DailyProgress, error) {
	var p model.DailyProgress
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&p).Error
	if err != nil {
		return nil, notFound(err, "progress %d/%s", userID, date)
	}
	return &p, nil
}

func (g *Gorm) ListDailyProgress(ctx context.Context, userID int, from, to string) ([]model.DailyProgress, error) {
	var rows []model.DailyProgress
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return rows, nil
}

func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
