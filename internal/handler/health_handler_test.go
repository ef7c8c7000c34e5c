package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docextractor/internal/config"
	"docextractor/internal/domain"
	"docextractor/internal/handler"
)

func newHealthHandler() *handler.HealthHandler {
	upload := config.UploadConfig{
		MaxFileSizeMB:    10,
		AllowedFileTypes: []string{"image/jpeg", "application/pdf"},
	}
	return handler.NewHealthHandler("development", upload, func() []domain.Provider {
		return []domain.Provider{domain.ProviderClaude, domain.ProviderGemini}
	})
}

func TestHealthHandler_Health(t *testing.T) {
	h := newHealthHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/health", http.NoBody)
	h.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp domain.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "development", resp.Environment)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestHealthHandler_Info(t *testing.T) {
	h := newHealthHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/info", http.NoBody)
	h.Info(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.InfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Document Extractor API", resp.Name)
	assert.Equal(t, domain.APIVersion, resp.Version)
	assert.Equal(t, []domain.Provider{"claude", "gemini"}, resp.Features.Providers)
	assert.Equal(t, []string{"image/jpeg", "application/pdf"}, resp.Features.FileTypes)
	assert.Equal(t, int64(10), resp.Features.MaxFileSizeMB)
	assert.Equal(t, "/docs", resp.Endpoints.Docs)
	assert.Equal(t, "/api/health", resp.Endpoints.Health)
	assert.Equal(t, "/api/extract/", resp.Endpoints.Extract)
	assert.Equal(t, "/api/info", resp.Endpoints.Info)
}
