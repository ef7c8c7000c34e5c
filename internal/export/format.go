package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"docextractor/internal/domain"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, s)
	}
}

// ContentType returns the MIME type sent with the attachment.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Write renders docs in format f.
func (f Format) Write(out io.Writer, docs []domain.DocumentData) error {
	if f == FormatXLSX {
		return WriteXLSX(out, docs)
	}
	return WriteCSV(out, docs)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {sanitized_name}_{YYYY-MM-DD}.{ext}. The extension of
// the source file, if any, is dropped; an empty name becomes "documento".
func BuildFilename(sourceName string, f Format, now time.Time) string {
	if i := strings.LastIndex(sourceName, "."); i > 0 {
		sourceName = sourceName[:i]
	}
	sanitized := SanitizeFilename(sourceName)
	if sanitized == "" {
		sanitized = "documento"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, now.Format("2006-01-02"), f)
}
