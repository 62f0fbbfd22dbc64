package model

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateExerciseRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Sets     int    `json:"sets"`
	Reps     string `json:"reps"`
}

type CreateWorkoutRequest struct {
	DayKey    string                  `json:"day_key" binding:"required"`
	Title     string                  `json:"title" binding:"required"`
	Focus     string                  `json:"focus"`
	Exercises []CreateExerciseRequest `json:"exercises"`
}

// ProgressSummary is the {total, completed, percentage} triple returned by
// both the workout-level and day-level progress reads.
type ProgressSummary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}

type StreakResult struct {
	CurrentStreak   int     `json:"current_streak"`
	LongestStreak   int     `json:"longest_streak"`
	LastWorkoutDate *string `json:"last_workout_date"`
}

// CalendarCell is one day of the month grid. Leading and trailing cells from
// adjacent months carry IsCurrentMonth=false.
type CalendarCell struct {
	Date           string  `json:"date"`
	IsToday        bool    `json:"is_today"`
	IsCurrentMonth bool    `json:"is_current_month"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Percentage     float64 `json:"percentage"`
}

type WindowStats struct {
	TotalExercises     int     `json:"total_exercises"`
	CompletedExercises int     `json:"completed_exercises"`
	WorkoutDays        int     `json:"workout_days"`
	CompletionRate     float64 `json:"completion_rate"`
	WorkoutsPerWeek    float64 `json:"workouts_per_week"`
}

type StatsResult struct {
	CurrentMonth  WindowStats `json:"current_month"`
	RollingWindow WindowStats `json:"rolling_window"`
}
