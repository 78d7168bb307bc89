package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/watermark-removal/internal/models"
	"github.com/phambaophuc/watermark-removal/internal/services/inpaint"
	"github.com/phambaophuc/watermark-removal/internal/services/remover"
	"go.uber.org/zap"
)

// === RESPONSE HANDLING ===

func (h *WatermarkHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

// respondBase64 reports every image individually; a failed download or
// inference shows up as a per-item error next to its source URL.
func (h *WatermarkHandler) respondBase64(c *gin.Context, results []remover.Result) {
	response := models.RemovalResponse{
		Results: make([]models.ImageResult, 0, len(results)),
	}

	failed := 0
	for _, result := range results {
		item := models.ImageResult{SourceURL: result.SourceURL}
		if result.Err != nil {
			item.Error = result.Err.Error()
			failed++
		} else {
			item.CleanedImageBase64 = remover.EncodeBase64(result.PNG)
		}
		response.Results = append(response.Results, item)
	}

	if failed > 0 {
		h.logger.Warn("Removal completed with failures",
			zap.Int("total", len(results)),
			zap.Int("failed", failed),
		)
	}

	c.JSON(http.StatusOK, response)
}

// respondFile streams a single PNG, or a ZIP archive when the request
// carried several images. A failure in any item fails the whole
// download with one aggregate error.
func (h *WatermarkHandler) respondFile(c *gin.Context, results []remover.Result) {
	var failures []string
	inferenceFailure := false

	for _, result := range results {
		if result.Err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", result.SourceURL, result.Err))
			if errors.Is(result.Err, inpaint.ErrInference) {
				inferenceFailure = true
			}
		}
	}

	if len(failures) > 0 {
		statusCode := http.StatusBadRequest
		if inferenceFailure {
			statusCode = http.StatusBadGateway
		}
		h.respondError(c, statusCode, "Failed to clean images: "+strings.Join(failures, "; "))
		return
	}

	if len(results) == 1 {
		c.Header("Content-Disposition", `attachment; filename=cleaned.png`)
		c.Data(http.StatusOK, "image/png", results[0].PNG)
		return
	}

	pngs := make([][]byte, 0, len(results))
	for _, result := range results {
		pngs = append(pngs, result.PNG)
	}

	archive, err := remover.BuildZip(pngs)
	if err != nil {
		h.logger.Error("Failed to build archive", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to build archive")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=cleaned_images.zip`)
	c.Data(http.StatusOK, "application/zip", archive)
}

// === UTILITY METHODS ===

func (h *WatermarkHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" && status != "not configured" {
			return "unhealthy"
		}
	}
	return "healthy"
}
