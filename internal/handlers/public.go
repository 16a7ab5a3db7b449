package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) PublicLogs(c *gin.Context) {
	logs, err := h.store.PublicLogs(c.Request.Context())
	if err != nil {
		internalError(c, "list public logs", err)
		return
	}
	c.JSON(http.StatusOK, renderLogs(logs, false))
}

func (h *Handler) PublicStats(c *gin.Context) {
	st, err := h.store.Stats(c.Request.Context())
	if err != nil {
		internalError(c, "compute stats", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
