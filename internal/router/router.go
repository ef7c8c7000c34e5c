package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"docextractor/docs"
	"docextractor/internal/config"
	"docextractor/internal/handler"
	"docextractor/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log *zap.Logger,
	extractionH *handler.ExtractionHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log, cfg.Server.IsDevelopment()))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks and info
	r.GET("/", healthH.Health)
	r.GET("/health", healthH.Health)
	r.GET("/info", healthH.Info)

	api := r.Group("/api")
	api.GET("/health", healthH.Health)
	api.GET("/info", healthH.Info)

	// Extraction
	api.POST("/extract/", extractionH.Extract)
	api.POST("/extract", extractionH.Extract)
	api.GET("/extract/test", extractionH.Test)

	// Export
	api.POST("/export/:format", exportH.Export)

	// API docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))

	return r
}
