package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"docextractor/internal/config"
	"docextractor/internal/domain"
	"docextractor/internal/extractor"
	"docextractor/internal/port"
	"docextractor/internal/service"
	"docextractor/mocks"
)

const claudeKey = "sk-ant-api03-secret-value"

type fixture struct {
	claude *mocks.MockDocumentExtractor
	gemini *mocks.MockDocumentExtractor
	svc    service.ExtractionService
	logs   *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	claude := new(mocks.MockDocumentExtractor)
	gemini := new(mocks.MockDocumentExtractor)
	registry := extractor.NewRegistry(map[domain.Provider]port.DocumentExtractor{
		domain.ProviderClaude: claude,
		domain.ProviderGemini: gemini,
	})
	upload := config.UploadConfig{
		MaxFileSizeMB:    10,
		AllowedFileTypes: []string{"image/jpeg", "image/jpg", "image/png", "application/pdf"},
	}

	core, logs := observer.New(zapcore.DebugLevel)

	// Each call to the clock advances it by 1.234s.
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now = now.Add(1234 * time.Millisecond)
		return now
	}

	return &fixture{
		claude: claude,
		gemini: gemini,
		svc:    service.NewExtractionServiceWithClock(registry, upload, zap.New(core), clock),
		logs:   logs,
	}
}

func validRequest(provider domain.Provider) *domain.ExtractionRequest {
	return &domain.ExtractionRequest{
		Provider:    provider,
		APIKey:      claudeKey,
		FileContent: "aGVsbG8gd29ybGQh",
		FileType:    "image/jpeg",
		FileName:    "rg.jpg",
	}
}

func TestExtractionService_Extract_Success(t *testing.T) {
	f := newFixture(t)
	req := validRequest(domain.ProviderClaude)
	nome := "Maria Silva"
	data := &domain.DocumentData{TipoDocumento: "RG", Nome: &nome}

	f.claude.On("Extract", mock.Anything, port.ExtractInput{
		APIKey:      claudeKey,
		FileContent: req.FileContent,
		MimeType:    "image/jpeg",
	}).Return(data, nil).Once()

	resp, err := f.svc.Extract(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, data, resp.Data)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "claude", resp.Provider)
	assert.Equal(t, 1.23, resp.ProcessingTime)
	assert.False(t, resp.Timestamp.IsZero())
	f.claude.AssertExpectations(t)
	f.gemini.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestExtractionService_Extract_DispatchesToGemini(t *testing.T) {
	f := newFixture(t)
	req := validRequest(domain.ProviderGemini)
	req.APIKey = "AIzaSyExample"
	req.FileType = "application/pdf"

	f.gemini.On("Extract", mock.Anything, mock.MatchedBy(func(in port.ExtractInput) bool {
		return in.APIKey == "AIzaSyExample" && in.MimeType == "application/pdf"
	})).Return(&domain.DocumentData{TipoDocumento: "CNH"}, nil).Once()

	resp, err := f.svc.Extract(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "gemini", resp.Provider)
	f.gemini.AssertExpectations(t)
	f.claude.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestExtractionService_Extract_FileTooLarge(t *testing.T) {
	f := newFixture(t)
	req := validRequest(domain.ProviderClaude)
	// 15 MiB of base64 text is roughly 11.25 MiB decoded.
	req.FileContent = strings.Repeat("A", 15*1024*1024)

	resp, err := f.svc.Extract(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	f.claude.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestExtractionService_Extract_SizeAtLimitIsAccepted(t *testing.T) {
	f := newFixture(t)
	req := validRequest(domain.ProviderClaude)
	// Exactly 10 MiB estimated.
	req.FileContent = strings.Repeat("A", 10*1024*1024*4/3)
	f.claude.On("Extract", mock.Anything, mock.Anything).Return(&domain.DocumentData{TipoDocumento: "RG"}, nil).Once()

	resp, err := f.svc.Extract(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestExtractionService_Extract_UnsupportedFileType(t *testing.T) {
	f := newFixture(t)
	req := validRequest(domain.ProviderClaude)
	req.FileType = "application/zip"

	resp, err := f.svc.Extract(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	assert.Contains(t, err.Error(), "application/zip")
	f.claude.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestExtractionService_Extract_UnknownProvider(t *testing.T) {
	f := newFixture(t)
	req := validRequest("openai")

	resp, err := f.svc.Extract(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestExtractionService_Extract_UpstreamError(t *testing.T) {
	f := newFixture(t)
	upstream := extractor.NewUpstreamError(domain.ProviderClaude, http.StatusUnauthorized, "invalid x-api-key")
	f.claude.On("Extract", mock.Anything, mock.Anything).Return(nil, upstream).Once()

	resp, err := f.svc.Extract(context.Background(), validRequest(domain.ProviderClaude))

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Claude API error: invalid x-api-key", *resp.Error)
	assert.Equal(t, "claude", resp.Provider)
	assert.Equal(t, 1, f.logs.FilterMessage("provider rejected request").Len())
}

func TestExtractionService_Extract_NormalizationError(t *testing.T) {
	f := newFixture(t)
	_, normErr := extractor.Normalize(domain.ProviderGemini, "Sorry, I can't help with that.")
	require.Error(t, normErr)
	f.gemini.On("Extract", mock.Anything, mock.Anything).Return(nil, normErr).Once()

	req := validRequest(domain.ProviderGemini)
	req.APIKey = "AIzaSyExample"
	resp, err := f.svc.Extract(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Contains(t, *resp.Error, "invalid response from Gemini API")
}

func TestExtractionService_Extract_UnexpectedErrorIsHidden(t *testing.T) {
	f := newFixture(t)
	f.claude.On("Extract", mock.Anything, mock.Anything).
		Return(nil, errors.New("calling anthropic API: dial tcp: connection refused")).Once()

	resp, err := f.svc.Extract(context.Background(), validRequest(domain.ProviderClaude))

	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "internal server error", *resp.Error)

	entries := f.logs.FilterMessage("extraction failed unexpectedly").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["error"], "connection refused")
}

func TestExtractionService_Extract_NeverLogsAPIKey(t *testing.T) {
	f := newFixture(t)
	f.claude.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := f.svc.Extract(context.Background(), validRequest(domain.ProviderClaude))
	require.NoError(t, err)

	require.NotZero(t, f.logs.Len())
	for _, entry := range f.logs.All() {
		assert.NotContains(t, entry.Message, claudeKey)
		for _, v := range entry.ContextMap() {
			if s, ok := v.(string); ok {
				assert.NotContains(t, s, claudeKey)
			}
		}
	}
}

func TestExtractionService_Extract_PropagatesContext(t *testing.T) {
	f := newFixture(t)
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "request-42")

	f.claude.On("Extract", mock.MatchedBy(func(c context.Context) bool {
		return c.Value(ctxKey{}) == "request-42"
	}), mock.Anything).Return(&domain.DocumentData{TipoDocumento: "RG"}, nil).Once()

	_, err := f.svc.Extract(ctx, validRequest(domain.ProviderClaude))

	require.NoError(t, err)
	f.claude.AssertExpectations(t)
}

func TestExtractionService_Providers(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []domain.Provider{domain.ProviderClaude, domain.ProviderGemini}, f.svc.Providers())
}
