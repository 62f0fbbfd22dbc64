package model

import "time"

type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
}

type Workout struct {
	ID          int        `gorm:"primaryKey" json:"id"`
	UserID      int        `gorm:"uniqueIndex:uk_user_day" json:"user_id"`
	DayKey      string     `gorm:"uniqueIndex:uk_user_day;size:8" json:"day_key"`
	Title       string     `json:"title"`
	Focus       string     `json:"focus"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	Exercises   []Exercise `gorm:"constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

type Exercise struct {
	ID          int        `gorm:"primaryKey" json:"id"`
	WorkoutID   int        `gorm:"index" json:"workout_id"`
	Name        string     `json:"name"`
	Category    string     `gorm:"size:16" json:"category"`
	Sets        int        `json:"sets"`
	Reps        string     `json:"reps"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

type DailyProgress struct {
	ID                 int    `gorm:"primaryKey" json:"id"`
	UserID             int    `gorm:"uniqueIndex:uk_user_date" json:"user_id"`
	Date               string `gorm:"type:date;uniqueIndex:uk_user_date" json:"date"`
	TotalExercises     int    `json:"total_exercises"`
	CompletedExercises int    `json:"completed_exercises"`
}

func (User) TableName() string          { return "users" }
func (Workout) TableName() string       { return "workouts" }
func (Exercise) TableName() string      { return "exercises" }
func (DailyProgress) TableName() string { return "daily_progress" }
