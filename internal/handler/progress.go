package handler

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/service"
	"fittrack/internal/store"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progress *service.ProgressService
	streaks  *service.StreakService
	calendar *service.CalendarService
}

func NewProgressHandler(progress *service.ProgressService, streaks *service.StreakService, calendar *service.CalendarService) *ProgressHandler {
	return &ProgressHandler{progress: progress, streaks: streaks, calendar: calendar}
}

// POST /api/exercises/:id/complete
func (h *ProgressHandler) Complete(c *gin.Context) {
	h.toggle(c, true)
}

// POST /api/exercises/:id/incomplete
func (h *ProgressHandler) Incomplete(c *gin.Context) {
	h.toggle(c, false)
}

func (h *ProgressHandler) toggle(c *gin.Context, completed bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	mark := h.progress.MarkExerciseIncomplete
	if completed {
		mark = h.progress.MarkExerciseComplete
	}
	ex, err := mark(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

// GET /api/workouts/:id/progress
func (h *ProgressHandler) WorkoutProgress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.progress.WorkoutProgress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/progress/daily?date=YYYY-MM-DD
func (h *ProgressHandler) Daily(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(store.DateLayout)
	}
	userID := c.GetInt("user_id")
	p, err := h.progress.DailyProgressFor(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/streaks
func (h *ProgressHandler) Streaks(c *gin.Context) {
	userID := c.GetInt("user_id")
	res, err := h.streaks.ComputeStreaks(c.Request.Context(), userID, service.DefaultLookbackDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/calendar?year=2024&month=2
func (h *ProgressHandler) Calendar(c *gin.Context) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		month = n
	}
	userID := c.GetInt("user_id")
	cells, err := h.calendar.BuildCalendar(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cells)
}

// GET /api/stats?date=YYYY-MM-DD
func (h *ProgressHandler) Stats(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(store.DateLayout)
	}
	userID := c.GetInt("user_id")
	res, err := h.calendar.BuildStats(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
