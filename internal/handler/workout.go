package handler

import (
	"net/http"
	"strconv"

	"fittrack/internal/model"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workouts *service.WorkoutService
}

func NewWorkoutHandler(workouts *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// GET /api/workouts
func (h *WorkoutHandler) WeekPlan(c *gin.Context) {
	userID := c.GetInt("user_id")
	ws, err := h.workouts.WeekPlan(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if ws == nil {
		ws = []model.Workout{}
	}
	c.JSON(http.StatusOK, ws)
}

// POST /api/workouts
func (h *WorkoutHandler) Create(c *gin.Context) {
	var req model.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	userID := c.GetInt("user_id")
	w, err := h.workouts.CreateWorkout(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// GET /api/workouts/:id
func (h *WorkoutHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	w, err := h.workouts.GetWorkout(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// DELETE /api/workouts/:id
func (h *WorkoutHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	userID := c.GetInt("user_id")
	if err := h.workouts.DeleteWorkout(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
