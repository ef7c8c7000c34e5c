package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"docextractor/internal/config"
	"docextractor/internal/domain"
	"docextractor/internal/extractor"
	"docextractor/internal/port"
)

const (
	apiURL       = "https://api.anthropic.com/v1/messages"
	apiVersion   = "2023-06-01"
	defaultModel = "claude-3-5-sonnet-20241022"
	maxTokens    = 3000
)

// Extractor implements port.DocumentExtractor using the Anthropic Messages API.
type Extractor struct {
	model    string
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

var _ port.DocumentExtractor = (*Extractor)(nil)

// NewExtractor creates a Claude-based document extractor.
func NewExtractor(cfg *config.ProviderConfig, log *zap.Logger) *Extractor {
	return newExtractor(cfg, apiURL, log)
}

// NewExtractorWithEndpoint creates an extractor pointing at a custom API endpoint (for testing).
func NewExtractorWithEndpoint(cfg *config.ProviderConfig, endpoint string, log *zap.Logger) *Extractor {
	return newExtractor(cfg, endpoint, log)
}

func newExtractor(cfg *config.ProviderConfig, endpoint string, log *zap.Logger) *Extractor {
	model := cfg.ClaudeModel
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout()
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      log.Named("claude"),
	}
}

// Extract sends the document to Claude and normalizes the reply.
func (e *Extractor) Extract(ctx context.Context, input port.ExtractInput) (*domain.DocumentData, error) {
	bodyBytes, err := json.Marshal(BuildRequest(e.model, input))
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", input.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	e.log.Info("sending request to anthropic API",
		zap.String("model", e.model),
		zap.String("mime_type", input.MimeType),
	)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling anthropic API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e.log.Error("anthropic API error", zap.Int("status", resp.StatusCode))
		return nil, extractor.NewUpstreamError(domain.ProviderClaude, resp.StatusCode, extractor.UpstreamErrorMessage(respBody))
	}

	text, err := ReplyText(respBody)
	if err != nil {
		return nil, extractor.NewNormalizationError(domain.ProviderClaude, err)
	}

	data, err := extractor.Normalize(domain.ProviderClaude, text)
	if err != nil {
		e.log.Warn("anthropic reply could not be normalized",
			zap.Error(err),
			zap.String("raw", extractor.Truncate(text, 500)),
		)
		return nil, err
	}
	return data, nil
}

// Request is the Anthropic Messages API request body.
type Request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// Message is a single conversation turn.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock is either a document/image block with Source or a text block with Text.
type ContentBlock struct {
	Type   string  `json:"type"`
	Source *Source `json:"source,omitempty"`
	Text   string  `json:"text,omitempty"`
}

// Source embeds base64 file data.
type Source struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// BuildRequest assembles the request body: the file block first, then the prompt.
// PDFs go in a "document" block, everything else in an "image" block.
func BuildRequest(model string, input port.ExtractInput) Request {
	blockType := "image"
	if domain.IsPDF(input.MimeType) {
		blockType = "document"
	}
	return Request{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []Message{{
			Role: "user",
			Content: []ContentBlock{
				{
					Type: blockType,
					Source: &Source{
						Type:      "base64",
						MediaType: input.MimeType,
						Data:      input.FileContent,
					},
				},
				{
					Type: "text",
					Text: extractor.ExtractionPrompt,
				},
			},
		}},
	}
}

// apiResponse models the Anthropic Messages API response.
type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// ReplyText returns content[0].text, or "" when the reply has no content.
func ReplyText(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", nil
	}
	return resp.Content[0].Text, nil
}
