// Package http exposes the calculation engine over a JSON API.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/soulatlas/blueprint/internal/blueprint"
	"github.com/soulatlas/blueprint/internal/logging"
	"github.com/soulatlas/blueprint/internal/shared/errs"
)

// Handlers holds the HTTP handler dependencies.
type Handlers struct {
	engine  *blueprint.Assembler
	logger  *logging.Logger
	started time.Time
}

// NewHandlers creates the handler set.
func NewHandlers(engine *blueprint.Assembler, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		engine:  engine,
		logger:  logger,
		started: time.Now(),
	}
}

// CreateBlueprint computes a blueprint from posted birth data.
func (h *Handlers) CreateBlueprint(c *gin.Context) {
	var input blueprint.BirthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request body: " + err.Error(),
		})
		return
	}

	bp, err := h.engine.Assemble(c.Request.Context(), input)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("blueprint computation failed", zap.Error(err))
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
			"kind":    errs.KindOf(err).String(),
		})
		return
	}

	fingerprint, err := bp.Fingerprint()
	if err != nil {
		h.logger.Error("blueprint fingerprint failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to encode blueprint",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"blueprint":   bp,
		"fingerprint": fingerprint,
	})
}

// Health reports service liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"service":        "blueprint-engine",
		"engine_version": blueprint.EngineVersion,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}

// statusFor maps the error taxonomy onto HTTP status codes. Bad input is the
// caller's fault; a failing upstream is a bad gateway; everything else is
// internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInputValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
