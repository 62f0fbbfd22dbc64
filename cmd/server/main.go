package main

import (
	"flag"
	"log/slog"
	"os"

	"fittrack/internal/config"
	"fittrack/internal/handler"
	"fittrack/internal/logger"
	"fittrack/internal/middleware"
	"fittrack/internal/service"
	"fittrack/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	st := store.NewGorm(db)
	if err := st.Migrate(); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	authSvc := service.NewAuthService(st)
	workoutSvc := service.NewWorkoutService(st)
	progressSvc := service.NewProgressService(st)
	streakSvc := service.NewStreakService(st)
	calendarSvc := service.NewCalendarService(st)

	authH := handler.NewAuthHandler(authSvc)
	workoutH := handler.NewWorkoutHandler(workoutSvc)
	progressH := handler.NewProgressHandler(progressSvc, streakSvc, calendarSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/register", authH.Register)
	r.POST("/api/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/workouts", workoutH.WeekPlan)
	api.POST("/workouts", workoutH.Create)
	api.GET("/workouts/:id", workoutH.Get)
	api.DELETE("/workouts/:id", workoutH.Delete)
	api.GET("/workouts/:id/progress", progressH.WorkoutProgress)
	api.POST("/exercises/:id/complete", progressH.Complete)
	api.POST("/exercises/:id/incomplete", progressH.Incomplete)
	api.GET("/progress/daily", progressH.Daily)
	api.GET("/streaks", progressH.Streaks)
	api.GET("/calendar", progressH.Calendar)
	api.GET("/stats", progressH.Stats)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
