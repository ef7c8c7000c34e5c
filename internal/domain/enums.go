package domain

import "strings"

// Provider identifies an upstream document-understanding service.
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderGemini Provider = "gemini"
)

// Providers lists every supported provider in display order.
var Providers = []Provider{ProviderClaude, ProviderGemini}

// APIKeyPrefixes maps each provider to the literal prefix its API keys carry.
var APIKeyPrefixes = map[Provider]string{
	ProviderClaude: "sk-ant-api",
	ProviderGemini: "AIza",
}

// IsValid reports whether p is a supported provider.
func (p Provider) IsValid() bool {
	_, ok := APIKeyPrefixes[p]
	return ok
}

// DisplayName returns the provider name as used in user-facing messages.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderClaude:
		return "Claude"
	case ProviderGemini:
		return "Gemini"
	default:
		return string(p)
	}
}

// ContentTypePDF is the only MIME type sent to providers as a document rather than an image.
const ContentTypePDF = "application/pdf"

// DefaultAllowedFileTypes are the MIME types accepted when configuration does not override them.
var DefaultAllowedFileTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	ContentTypePDF,
}

// IsPDF reports whether mimeType denotes a PDF document.
func IsPDF(mimeType string) bool {
	return strings.EqualFold(mimeType, ContentTypePDF)
}
