package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docextractor/internal/domain"
	"docextractor/internal/service"
)

// ExtractionHandler handles document extraction endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
	maxFileSizeMB     int64
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService, maxFileSizeMB int64) *ExtractionHandler {
	return &ExtractionHandler{
		extractionService: extractionService,
		maxFileSizeMB:     maxFileSizeMB,
	}
}

// Extract handles POST /api/extract/
// @Summary Extract data from an identification document
// @Description Sends a base64-encoded image or PDF to the chosen provider and returns the extracted fields.
// @Description Provider and parsing failures are reported with HTTP 200 and success=false.
// @Tags extraction
// @Accept json
// @Produce json
// @Param request body domain.ExtractionRequest true "Document and provider credentials"
// @Success 200 {object} domain.ExtractionResponse "Extraction outcome"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 415 {object} ErrorResponse "Unsupported file type"
// @Failure 422 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /extract/ [post]
func (h *ExtractionHandler) Extract(c *gin.Context) {
	var req domain.ExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "INVALID_REQUEST",
			"provider, api_key, file_content, file_type and file_name are required", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		HandleError(c, err)
		return
	}

	resp, err := h.extractionService.Extract(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TestResponse is returned by GET /api/extract/test.
type TestResponse struct {
	Message       string            `json:"message" example:"extraction API is up"`
	Providers     []domain.Provider `json:"providers"`
	MaxFileSizeMB int64             `json:"max_file_size_mb" example:"10"`
}

// Test handles GET /api/extract/test
// @Summary Extraction smoke test
// @Description Reports the configured providers and upload limit without calling any provider.
// @Tags extraction
// @Produce json
// @Success 200 {object} TestResponse
// @Router /extract/test [get]
func (h *ExtractionHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, TestResponse{
		Message:       "extraction API is up",
		Providers:     h.extractionService.Providers(),
		MaxFileSizeMB: h.maxFileSizeMB,
	})
}
