package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"docextractor/internal/config"
	"docextractor/internal/domain"
	"docextractor/internal/extractor"
	"docextractor/internal/port"
)

// internalErrorMessage is the only detail callers see for unclassified failures.
const internalErrorMessage = "internal server error"

// ExtractionService validates an extraction request against the upload limits,
// dispatches it to the chosen provider and wraps the outcome in an envelope.
type ExtractionService interface {
	Extract(ctx context.Context, req *domain.ExtractionRequest) (*domain.ExtractionResponse, error)
	Providers() []domain.Provider
}

// ExtractorRegistry resolves a provider tag to its adapter.
type ExtractorRegistry interface {
	Get(provider domain.Provider) (port.DocumentExtractor, error)
	Providers() []domain.Provider
}

type extractionService struct {
	registry ExtractorRegistry
	upload   config.UploadConfig
	log      *zap.Logger
	now      func() time.Time
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(registry ExtractorRegistry, upload config.UploadConfig, log *zap.Logger) ExtractionService {
	return newExtractionService(registry, upload, log, time.Now)
}

// NewExtractionServiceWithClock is NewExtractionService with an injectable clock (for testing).
func NewExtractionServiceWithClock(registry ExtractorRegistry, upload config.UploadConfig, log *zap.Logger, now func() time.Time) ExtractionService {
	return newExtractionService(registry, upload, log, now)
}

func newExtractionService(registry ExtractorRegistry, upload config.UploadConfig, log *zap.Logger, now func() time.Time) *extractionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &extractionService{
		registry: registry,
		upload:   upload,
		log:      log.Named("extraction"),
		now:      now,
	}
}

func (s *extractionService) Providers() []domain.Provider {
	return s.registry.Providers()
}

// Extract returns an error only for boundary failures (size, type, unknown
// provider). Provider and normalization failures come back as an unsuccessful
// envelope with a nil error.
func (s *extractionService) Extract(ctx context.Context, req *domain.ExtractionRequest) (*domain.ExtractionResponse, error) {
	start := s.now()

	if req.EstimatedSize() > float64(s.upload.MaxFileSizeBytes()) {
		return nil, fmt.Errorf("%w: maximum is %dMB", domain.ErrFileTooLarge, s.upload.MaxFileSizeMB)
	}
	if !s.upload.IsAllowedFileType(req.FileType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, req.FileType)
	}

	adapter, err := s.registry.Get(req.Provider)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.String("provider", string(req.Provider)),
		zap.String("file_name", req.FileName),
		zap.String("file_type", req.FileType),
	}
	s.log.Info("extraction started", fields...)

	data, err := adapter.Extract(ctx, port.ExtractInput{
		APIKey:      req.APIKey,
		FileContent: req.FileContent,
		MimeType:    req.FileType,
	})
	elapsed := s.now().Sub(start)
	if err != nil {
		return domain.NewFailureResponse(req.Provider, s.failureMessage(err, fields), elapsed), nil
	}

	s.log.Info("extraction completed",
		append(fields, zap.String("tipo_documento", data.TipoDocumento), zap.Duration("elapsed", elapsed))...)
	return domain.NewSuccessResponse(req.Provider, data, elapsed), nil
}

func (s *extractionService) failureMessage(err error, fields []zap.Field) string {
	var extErr *extractor.ExtractionError
	if !errors.As(err, &extErr) {
		s.log.Error("extraction failed unexpectedly", append(fields, zap.Error(err))...)
		return internalErrorMessage
	}

	switch extErr.Kind {
	case extractor.KindUpstream:
		s.log.Warn("provider rejected request",
			append(fields, zap.Int("status", extErr.StatusCode), zap.String("error", extErr.Message))...)
		return extErr.Message
	case extractor.KindNormalization:
		s.log.Warn("provider reply not usable", append(fields, zap.String("error", extErr.Message))...)
		return extErr.Message
	default:
		s.log.Error("extraction failed with unclassified kind",
			append(fields, zap.Stringer("kind", extErr.Kind), zap.Error(err))...)
		return internalErrorMessage
	}
}
