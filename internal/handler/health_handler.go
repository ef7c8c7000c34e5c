package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docextractor/internal/config"
	"docextractor/internal/domain"
)

// HealthHandler handles health and info endpoints.
type HealthHandler struct {
	environment string
	upload      config.UploadConfig
	providers   func() []domain.Provider
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(environment string, upload config.UploadConfig, providers func() []domain.Provider) *HealthHandler {
	return &HealthHandler{environment: environment, upload: upload, providers: providers}
}

// Health handles GET /, /health and /api/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} domain.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, domain.NewHealthResponse(h.environment))
}

// InfoResponse describes the API.
type InfoResponse struct {
	Name        string        `json:"name" example:"Document Extractor API"`
	Version     string        `json:"version" example:"1.0.0"`
	Environment string        `json:"environment" example:"development"`
	Features    InfoFeatures  `json:"features"`
	Endpoints   InfoEndpoints `json:"endpoints"`
}

// InfoFeatures lists what the running instance accepts.
type InfoFeatures struct {
	Providers     []domain.Provider `json:"providers"`
	FileTypes     []string          `json:"file_types"`
	MaxFileSizeMB int64             `json:"max_file_size_mb" example:"10"`
}

// InfoEndpoints points at the main routes.
type InfoEndpoints struct {
	Docs    string `json:"docs" example:"/docs"`
	Health  string `json:"health" example:"/api/health"`
	Extract string `json:"extract" example:"/api/extract/"`
	Info    string `json:"info" example:"/api/info"`
}

// Info handles GET /info and /api/info
// @Summary API information
// @Tags health
// @Produce json
// @Success 200 {object} InfoResponse
// @Router /info [get]
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Name:        "Document Extractor API",
		Version:     domain.APIVersion,
		Environment: h.environment,
		Features: InfoFeatures{
			Providers:     h.providers(),
			FileTypes:     h.upload.AllowedFileTypes,
			MaxFileSizeMB: h.upload.MaxFileSizeMB,
		},
		Endpoints: InfoEndpoints{
			Docs:    "/docs",
			Health:  "/api/health",
			Extract: "/api/extract/",
			Info:    "/api/info",
		},
	})
}
