package extractor

import (
	"fmt"

	"docextractor/internal/domain"
)

// ErrorKind classifies failures that are reported to the caller as a normal
// unsuccessful extraction rather than as an internal error.
type ErrorKind int

const (
	// KindUpstream means the provider answered with a non-2xx status.
	KindUpstream ErrorKind = iota + 1
	// KindNormalization means the provider's reply could not be turned into DocumentData.
	KindNormalization
)

func (k ErrorKind) String() string {
	switch k {
	case KindUpstream:
		return "upstream"
	case KindNormalization:
		return "normalization"
	default:
		return "unknown"
	}
}

// ExtractionError is returned by adapters and the normalizer for failures the
// caller should see as success=false with Message.
type ExtractionError struct {
	Kind       ErrorKind
	Provider   domain.Provider
	StatusCode int
	Message    string
	Err        error
}

func (e *ExtractionError) Error() string {
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// unknownUpstreamMessage is used when a provider error body carries no message.
const unknownUpstreamMessage = "unknown error"

// NewUpstreamError builds the error for a non-2xx provider reply. An empty
// providerMessage falls back to a generic one.
func NewUpstreamError(provider domain.Provider, statusCode int, providerMessage string) *ExtractionError {
	if providerMessage == "" {
		providerMessage = unknownUpstreamMessage
	}
	return &ExtractionError{
		Kind:       KindUpstream,
		Provider:   provider,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("%s API error: %s", provider.DisplayName(), providerMessage),
	}
}

// NewNormalizationError builds the error for a reply that is not valid DocumentData.
func NewNormalizationError(provider domain.Provider, err error) *ExtractionError {
	return &ExtractionError{
		Kind:     KindNormalization,
		Provider: provider,
		Message:  fmt.Sprintf("invalid response from %s API: %v", provider.DisplayName(), err),
		Err:      err,
	}
}
