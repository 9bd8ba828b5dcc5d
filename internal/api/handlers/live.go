package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Eronmosele95/electrical-dashboard/internal/api/models"
	"github.com/Eronmosele95/electrical-dashboard/internal/metrics"
	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/validate"
)

// LiveHandler recalculates over a websocket as the user types, so the panel
// updates without a POST per keystroke.
type LiveHandler struct {
	defaults model.Defaults
	limits   validate.Limits
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewLiveHandler creates a new live calculation handler
func NewLiveHandler(defaults model.Defaults, limits validate.Limits, logger *zap.Logger) *LiveHandler {
	return &LiveHandler{
		defaults: defaults,
		limits:   limits,
		logger:   logger,
		upgrader: websocket.Upgrader{
			// Origin policy is enforced by the CORS layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Live handles GET /api/v1/live. Every message received is a calculation
// request; every message sent is the outcome for the most recent request.
func (h *LiveHandler) Live(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written its own error response.
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var req models.CalculateRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("live socket closed unexpectedly", zap.Error(err))
			}
			return
		}

		if err := conn.WriteJSON(h.answer(req)); err != nil {
			h.logger.Warn("live socket write failed", zap.Error(err))
			return
		}
	}
}

func (h *LiveHandler) answer(req models.CalculateRequest) models.LiveMessage {
	inputs, err := inputsFromRequest(req)
	if err != nil {
		return models.LiveMessage{Type: "error", Message: err.Error()}
	}

	schedule, err := parseTOU(req.TOU)
	if err != nil {
		return models.LiveMessage{Type: "error", Message: err.Error()}
	}

	if v := validate.Check(inputs, h.limits); !v.Valid {
		metrics.RecordValidationFailure()
		return models.LiveMessage{Type: "validation_error", Errors: v.Errors}
	}

	resolved := model.Resolve(inputs, h.defaults)
	result := model.Calculate(resolved)
	metrics.RecordCalculation(resolved.Phase.String())

	return models.LiveMessage{
		Type:   "result",
		Result: &result,
		TOU:    touPayload(schedule, result.AdjustedPowerKW),
	}
}
