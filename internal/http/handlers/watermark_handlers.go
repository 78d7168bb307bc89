package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/watermark-removal/internal/config"
	"github.com/phambaophuc/watermark-removal/internal/http/middleware"
	"github.com/phambaophuc/watermark-removal/internal/models"
	"github.com/phambaophuc/watermark-removal/internal/services/remover"
	"github.com/phambaophuc/watermark-removal/internal/services/storage"
	"go.uber.org/zap"
)

// ModelPinger reports whether the inpainting model server is reachable.
type ModelPinger interface {
	Ping(ctx context.Context) error
}

type WatermarkHandler struct {
	remover *remover.Service
	model   ModelPinger
	cache   *storage.CacheService
	logger  *zap.Logger
	config  *config.Config
}

func NewWatermarkHandler(
	removerService *remover.Service,
	model ModelPinger,
	cache *storage.CacheService,
	logger *zap.Logger,
	config *config.Config,
) *WatermarkHandler {
	return &WatermarkHandler{
		remover: removerService,
		model:   model,
		cache:   cache,
		logger:  logger,
		config:  config,
	}
}

// === MAIN API ENDPOINTS ===

func (h *WatermarkHandler) RemoveWatermark(c *gin.Context) {
	var req models.RemovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	req.ApplyDefaults(h.config.Inpaint.Device)

	h.logger.Info("Removal request",
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.Int("images", len(req.Images)),
		zap.String("device", req.Device),
		zap.String("response_format", req.ResponseFormat),
	)

	results := h.remover.Process(c.Request.Context(), req.Images, *req.Watermark, req.Device)

	if req.ResponseFormat == models.FormatFile {
		h.respondFile(c, results)
		return
	}

	h.respondBase64(c, results)
}

// HealthCheck
func (h *WatermarkHandler) HealthCheck(c *gin.Context) {
	services := map[string]string{
		"cache": h.cache.HealthCheck(c.Request.Context()),
	}

	if err := h.model.Ping(c.Request.Context()); err != nil {
		services["model"] = "unhealthy: " + err.Error()
	} else {
		services["model"] = "healthy"
	}

	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}
