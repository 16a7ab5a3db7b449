package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AbortWithError logs err and answers 503 when the request deadline passed
// (pool exhausted or query too slow), 500 otherwise.
func AbortWithError(c *gin.Context, op string, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		slog.Error(op+" timed out", "source", "http", "path", c.FullPath(), "error", err.Error())
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"detail": "Database unavailable"})
		return
	}
	slog.Error(op+" failed", "source", "http", "path", c.FullPath(), "error", err.Error())
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}
