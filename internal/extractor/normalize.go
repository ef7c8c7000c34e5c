package extractor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"docextractor/internal/domain"
)

const (
	codeFence   = "```"
	languageTag = "json"
)

// StripCodeFence removes markdown fencing around a model reply. Only a fence at
// the very start of the trimmed text is recognised; prose before a fence is
// left alone and will fail JSON parsing.
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, codeFence) {
		text = strings.Split(text, codeFence)[1]
		if strings.HasPrefix(text, languageTag) {
			text = text[len(languageTag):]
		}
	}
	return strings.TrimSpace(text)
}

// Normalize converts a provider's raw reply text into DocumentData. Every
// failure is a KindNormalization ExtractionError.
func Normalize(provider domain.Provider, raw string) (*domain.DocumentData, error) {
	text := StripCodeFence(raw)

	value, err := decodeSingleValue(text)
	if err != nil {
		return nil, NewNormalizationError(provider, err)
	}

	if err := documentSchema.Validate(value); err != nil {
		return nil, NewNormalizationError(provider, fmt.Errorf("reply does not match document schema: %w", err))
	}

	var data domain.DocumentData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, NewNormalizationError(provider, err)
	}
	return &data, nil
}

// decodeSingleValue parses text as exactly one JSON value.
func decodeSingleValue(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty reply")
		}
		return nil, fmt.Errorf("parsing reply as JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parsing reply as JSON: unexpected data after top-level value")
	}
	return v, nil
}
