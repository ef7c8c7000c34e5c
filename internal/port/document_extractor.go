package port

import (
	"context"

	"docextractor/internal/domain"
)

// ExtractInput carries the document sent to a provider.
type ExtractInput struct {
	APIKey      string
	FileContent string // base64-encoded
	MimeType    string
}

// DocumentExtractor abstracts one upstream document-understanding provider.
type DocumentExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.DocumentData, error)
}
