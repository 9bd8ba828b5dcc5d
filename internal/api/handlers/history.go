package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eronmosele95/electrical-dashboard/internal/api/models"
	"github.com/Eronmosele95/electrical-dashboard/internal/history"
	"github.com/Eronmosele95/electrical-dashboard/internal/metrics"
	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/validate"
)

// HistoryHandler handles saved calculation requests
type HistoryHandler struct {
	store    *history.Store
	defaults model.Defaults
	limits   validate.Limits
	logger   *zap.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(store *history.Store, defaults model.Defaults, limits validate.Limits, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{store: store, defaults: defaults, limits: limits, logger: logger}
}

// List handles GET /api/v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	items, err := h.store.List()
	if err != nil {
		respondStorageError(c, h.logger, "list history", err)
		return
	}
	metrics.RecordHistoryOp("list")

	c.JSON(http.StatusOK, models.HistoryListResponse{
		Items: items,
		Count: len(items),
	})
}

// Save handles POST /api/v1/history. The result is recomputed server-side
// from the submitted inputs, so a stale or tampered client result can never
// enter the store.
func (h *HistoryHandler) Save(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inputs, err := inputsFromRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PHASE",
				Message: err.Error(),
			},
		})
		return
	}

	if v := validate.Check(inputs, h.limits); !v.Valid {
		respondValidationFailed(c, v)
		return
	}

	resolved := model.Resolve(inputs, h.defaults)
	result := model.Calculate(resolved)
	metrics.RecordCalculation(resolved.Phase.String())

	item := history.NewItem(resolved, result)
	if err := h.store.Save(item); err != nil {
		respondStorageError(c, h.logger, "save history item", err)
		return
	}
	metrics.RecordHistoryOp("save")

	c.JSON(http.StatusCreated, item)
}

// GetItem handles GET /api/v1/history/:id
func (h *HistoryHandler) GetItem(c *gin.Context) {
	id := c.Param("id")

	item, err := h.store.Load(id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "NOT_FOUND",
					Message: "No history item with id " + id,
				},
			})
			return
		}
		respondStorageError(c, h.logger, "load history item", err)
		return
	}
	metrics.RecordHistoryOp("load")

	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/v1/history/:id
func (h *HistoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "NOT_FOUND",
					Message: "No history item with id " + id,
				},
			})
			return
		}
		respondStorageError(c, h.logger, "delete history item", err)
		return
	}
	metrics.RecordHistoryOp("delete")

	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/v1/history
func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.store.Clear(); err != nil {
		respondStorageError(c, h.logger, "clear history", err)
		return
	}
	metrics.RecordHistoryOp("clear")

	c.Status(http.StatusNoContent)
}

func respondStorageError(c *gin.Context, logger *zap.Logger, op string, err error) {
	logger.Error("storage operation failed", zap.String("op", op), zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "STORAGE_ERROR",
			Message: "Could not " + op,
		},
	})
}
