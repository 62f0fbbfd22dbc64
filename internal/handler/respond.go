package handler

import (
	"errors"
	"net/http"

	"fittrack/internal/logger"
	"fittrack/internal/store"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Consistency faults
// and anything unexpected log their detail server-side and surface only a
// generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("internal error", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
