package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eronmosele95/electrical-dashboard/internal/api/models"
	"github.com/Eronmosele95/electrical-dashboard/internal/theme"
)

// ThemeHandler handles theme preference requests
type ThemeHandler struct {
	manager *theme.Manager
	logger  *zap.Logger
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(manager *theme.Manager, logger *zap.Logger) *ThemeHandler {
	return &ThemeHandler{manager: manager, logger: logger}
}

// GetTheme handles GET /api/v1/theme
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	current, err := h.manager.Get()
	if err != nil {
		respondStorageError(c, h.logger, "load theme", err)
		return
	}
	c.JSON(http.StatusOK, models.ThemeResponse{Theme: string(current)})
}

// SetTheme handles PUT /api/v1/theme
func (h *ThemeHandler) SetTheme(c *gin.Context) {
	var req models.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	next := theme.Theme(req.Theme)
	if !next.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_THEME",
				Message: fmt.Sprintf("invalid theme %q, expected %q or %q", req.Theme, theme.Light, theme.Dark),
			},
		})
		return
	}

	if err := h.manager.Set(next); err != nil {
		respondStorageError(c, h.logger, "save theme", err)
		return
	}

	c.JSON(http.StatusOK, models.ThemeResponse{Theme: req.Theme})
}

// Toggle handles POST /api/v1/theme/toggle
func (h *ThemeHandler) Toggle(c *gin.Context) {
	next, err := h.manager.Toggle()
	if err != nil {
		respondStorageError(c, h.logger, "toggle theme", err)
		return
	}
	c.JSON(http.StatusOK, models.ThemeResponse{Theme: string(next)})
}
