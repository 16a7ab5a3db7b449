package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"impact-log/internal/models"
	"impact-log/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

type createLogRequest struct {
	Name         string          `json:"name" binding:"required,notblank,max=255"`
	Locality     string          `json:"locality" binding:"required,notblank,max=255"`
	GPSLatitude  *float64        `json:"gps_latitude" binding:"required,gte=-90,lte=90"`
	GPSLongitude *float64        `json:"gps_longitude" binding:"required,gte=-180,lte=180"`
	ImpactDate   string          `json:"impact_date" binding:"required,datetime=2006-01-02"`
	Category     models.Category `json:"category" binding:"required,oneof=Road Water Sanitation Electricity Other"`
	Description  *string         `json:"description" binding:"required"`
}

func (h *Handler) CreateLog(c *gin.Context) {
	var req createLogRequest
	if !bindJSON(c, &req) {
		return
	}

	date, err := time.Parse(dateLayout, req.ImpactDate)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "impact_date must be a date in YYYY-MM-DD format")
		return
	}

	owner := account(c)
	entry := models.ImpactLog{
		AccountID:    owner.ID,
		Name:         strings.TrimSpace(req.Name),
		Locality:     strings.TrimSpace(req.Locality),
		GPSLatitude:  *req.GPSLatitude,
		GPSLongitude: *req.GPSLongitude,
		ImpactDate:   datatypes.Date(date),
		Category:     req.Category,
		Description:  *req.Description,
		Status:       models.StatusSolving,
	}
	if err := h.store.CreateLog(c.Request.Context(), &entry); err != nil {
		internalError(c, "create log", err)
		return
	}

	slog.Info("impact log created", "source", "impact_logs", "user_id", owner.ID.String(), "log_id", entry.ID.String())
	c.JSON(http.StatusOK, renderLog(&entry, false))
}

func (h *Handler) MyLogs(c *gin.Context) {
	logs, err := h.store.LogsByOwner(c.Request.Context(), account(c).ID)
	if err != nil {
		internalError(c, "list own logs", err)
		return
	}
	c.JSON(http.StatusOK, renderLogs(logs, false))
}

// AllLogs lists every log with its owner's name and email. Admin only.
func (h *Handler) AllLogs(c *gin.Context) {
	logs, err := h.store.AllLogs(c.Request.Context())
	if err != nil {
		internalError(c, "list all logs", err)
		return
	}
	c.JSON(http.StatusOK, renderLogs(logs, true))
}

type statusRequest struct {
	Status models.Status `json:"status" binding:"required,oneof=Solving Solved Fake"`
}

// UpdateStatus sets a log's status. Admin only.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid log id")
		return
	}

	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}

	admin := account(c)
	entry, err := h.store.UpdateLogStatus(c.Request.Context(), id, req.Status, admin.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "Log not found")
			return
		}
		internalError(c, "update log status", err)
		return
	}

	slog.Info("impact log status changed", "source", "impact_logs", "user_id", admin.ID.String(), "log_id", id.String(), "status", string(req.Status))
	c.JSON(http.StatusOK, renderLog(entry, false))
}
