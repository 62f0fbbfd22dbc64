package main

import (
	"context"
	"flag"
	"log"

	"fittrack/internal/config"
	"fittrack/internal/logger"
	"fittrack/internal/model"
	"fittrack/internal/service"
	"fittrack/internal/store"
)

// Seeds a demo account with a week plan so a fresh install has something
// to toggle.
func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	username := flag.String("user", "demo", "demo account username")
	password := flag.String("pass", "demo1234", "demo account password")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}
	st := store.NewGorm(db)
	if err := st.Migrate(); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	ctx := context.Background()
	auth := service.NewAuthService(st)
	workouts := service.NewWorkoutService(st)

	u, err := auth.Register(ctx, *username, *password, "Demo")
	if err != nil {
		log.Fatal("create demo user failed: ", err)
	}

	for _, plan := range weekPlan() {
		if _, err := workouts.CreateWorkout(ctx, u.ID, plan); err != nil {
			log.Fatal("create workout failed: ", err)
		}
	}

	logger.Info("=== all done ===", "uid", u.ID)
}

func weekPlan() []model.CreateWorkoutRequest {
	return []model.CreateWorkoutRequest{
		{
			DayKey: "day1", Title: "Push Day", Focus: "chest, shoulders, triceps",
			Exercises: []model.CreateExerciseRequest{
				{Name: "Arm circles", Category: "warmup", Sets: 2, Reps: "15"},
				{Name: "Bench press", Category: "workout", Sets: 4, Reps: "8"},
				{Name: "Overhead press", Category: "workout", Sets: 3, Reps: "10"},
				{Name: "Chest stretch", Category: "cooldown", Sets: 1, Reps: "60s"},
			},
		},
		{
			DayKey: "day2", Title: "Pull Day", Focus: "back, biceps",
			Exercises: []model.CreateExerciseRequest{
				{Name: "Band pull-aparts", Category: "warmup", Sets: 2, Reps: "15"},
				{Name: "Deadlift", Category: "workout", Sets: 3, Reps: "5"},
				{Name: "Barbell row", Category: "workout", Sets: 4, Reps: "8"},
				{Name: "Lat stretch", Category: "cooldown", Sets: 1, Reps: "60s"},
			},
		},
		{
			DayKey: "day3", Title: "Leg Day", Focus: "quads, hamstrings, calves",
			Exercises: []model.CreateExerciseRequest{
				{Name: "Leg swings", Category: "warmup", Sets: 2, Reps: "10"},
				{Name: "Back squat", Category: "workout", Sets: 4, Reps: "6"},
				{Name: "Romanian deadlift", Category: "workout", Sets: 3, Reps: "10"},
				{Name: "Calf raises", Category: "workout", Sets: 3, Reps: "15"},
			},
		},
		{
			DayKey: "day5", Title: "Conditioning", Focus: "cardio, core",
			Exercises: []model.CreateExerciseRequest{
				{Name: "Jumping jacks", Category: "warmup", Sets: 2, Reps: "30"},
				{Name: "Rowing intervals", Category: "workout", Sets: 6, Reps: "250m"},
				{Name: "Plank", Category: "workout", Sets: 3, Reps: "45s"},
			},
		},
	}
}
