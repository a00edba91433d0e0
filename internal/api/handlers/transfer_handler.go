package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/Gajendran57/GoalGrid/internal/domain/transfer"
	"github.com/gin-gonic/gin"
)

// TransferHandler moves habit snapshots in and out of an account
type TransferHandler struct {
	service transfer.Service
}

// NewTransferHandler creates a new TransferHandler instance
func NewTransferHandler(service transfer.Service) *TransferHandler {
	return &TransferHandler{service: service}
}

// Export godoc
// @Summary Export all habit data
// @Description Download every habit and record the user owns as a portable snapshot
// @Tags transfer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transfer.Snapshot "Snapshot built successfully"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/transfer/export [get]
func (h *TransferHandler) Export(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	snapshot, err := h.service.Export(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("goalgrid-export-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, snapshot)
}

// Import godoc
// @Summary Import a habit snapshot
// @Description Create fresh habits and records from a previously exported snapshot
// @Tags transfer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param snapshot body transfer.Snapshot true "Snapshot to import"
// @Success 200 {object} transfer.ImportSummary "Import finished"
// @Failure 400 {object} map[string]string "Unsupported version or empty snapshot"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/transfer/import [post]
func (h *TransferHandler) Import(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var snapshot transfer.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.service.Import(c.Request.Context(), userID, &snapshot)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, transfer.ErrUnsupportedVersion) || errors.Is(err, transfer.ErrEmptySnapshot) {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summary})
}
