package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"docextractor/internal/config"
	"docextractor/internal/domain"
	"docextractor/internal/extractor"
	"docextractor/internal/port"
)

const (
	apiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel = "gemini-2.0-flash"
)

// Generation settings biased toward deterministic, bounded output.
const (
	temperature     = 0.1
	topK            = 1
	topP            = 0.8
	maxOutputTokens = 2048
)

// Extractor implements port.DocumentExtractor using Google's Gemini API.
type Extractor struct {
	model    string
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

var _ port.DocumentExtractor = (*Extractor)(nil)

// NewExtractor creates a Gemini-based document extractor.
func NewExtractor(cfg *config.ProviderConfig, log *zap.Logger) *Extractor {
	return newExtractor(cfg, "", log)
}

// NewExtractorWithEndpoint creates an extractor pointing at a custom API endpoint (for testing).
func NewExtractorWithEndpoint(cfg *config.ProviderConfig, endpoint string, log *zap.Logger) *Extractor {
	return newExtractor(cfg, endpoint, log)
}

func newExtractor(cfg *config.ProviderConfig, endpoint string, log *zap.Logger) *Extractor {
	model := cfg.GeminiModel
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout()
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      log.Named("gemini"),
	}
}

// Extract sends the document to Gemini and normalizes the reply.
func (e *Extractor) Extract(ctx context.Context, input port.ExtractInput) (*domain.DocumentData, error) {
	bodyBytes, err := json.Marshal(BuildRequest(input))
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint, err := withAPIKey(e.endpoint, input.APIKey)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", extractor.StripURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	e.log.Info("sending request to gemini API",
		zap.String("model", e.model),
		zap.String("mime_type", input.MimeType),
	)

	resp, err := e.client.Do(req)
	if err != nil {
		// The URL carries the API key, so it must not end up in the error.
		return nil, fmt.Errorf("calling gemini API: %w", extractor.StripURL(err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e.log.Error("gemini API error", zap.Int("status", resp.StatusCode))
		return nil, extractor.NewUpstreamError(domain.ProviderGemini, resp.StatusCode, extractor.UpstreamErrorMessage(respBody))
	}

	text, err := ReplyText(respBody)
	if err != nil {
		return nil, extractor.NewNormalizationError(domain.ProviderGemini, err)
	}

	data, err := extractor.Normalize(domain.ProviderGemini, text)
	if err != nil {
		e.log.Warn("gemini reply could not be normalized",
			zap.Error(err),
			zap.String("raw", extractor.Truncate(text, 500)),
		)
		return nil, err
	}
	return data, nil
}

func withAPIKey(endpoint, apiKey string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing gemini endpoint: %w", extractor.StripURL(err))
	}
	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Request is the generateContent request body.
type Request struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Content is one turn made of parts.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is either a text part or an inline-data part.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData embeds base64 file data.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// GenerationConfig bounds the model output.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// BuildRequest assembles the request body: the prompt part first, then the file.
func BuildRequest(input port.ExtractInput) Request {
	return Request{
		Contents: []Content{{
			Parts: []Part{
				{Text: extractor.ExtractionPrompt},
				{InlineData: &InlineData{
					MimeType: input.MimeType,
					Data:     input.FileContent,
				}},
			},
		}},
		GenerationConfig: GenerationConfig{
			Temperature:     temperature,
			TopK:            topK,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
	}
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// ReplyText returns candidates[0].content.parts[0].text, or "" when absent.
func ReplyText(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
