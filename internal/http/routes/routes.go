package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/watermark-removal/internal/http/handlers"
	"github.com/phambaophuc/watermark-removal/internal/http/middleware"
	"go.uber.org/zap"
)

type Router struct {
	watermarkHandler *handlers.WatermarkHandler
	logger           *zap.Logger
}

func NewRouter(
	watermarkHandler *handlers.WatermarkHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		watermarkHandler: watermarkHandler,
		logger:           logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())

	v1 := router.Group("/v1")
	{
		v1.POST("/remove-watermark", r.watermarkHandler.RemoveWatermark)
	}

	router.GET("/healthz", r.watermarkHandler.HealthCheck)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Watermark removal is running",
		})
	})

	return router
}
