package extractor

import (
	"encoding/json"
	"errors"
	"net/url"
)

// UpstreamErrorMessage pulls error.message out of a provider error body. Both
// supported providers use this shape. It returns "" when the body has none.
func UpstreamErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Error.Message
}

// StripURL drops the request URL from a transport error so query-string
// credentials never reach logs or callers.
func StripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// Truncate shortens s to maxLen bytes for log output.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
