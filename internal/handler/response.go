package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docextractor/internal/domain"
	"docextractor/internal/middleware"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"file exceeds maximum allowed size"`
	Code    string `json:"code" example:"FILE_TOO_LARGE"`
	Detail  string `json:"detail,omitempty" example:"maximum is 10MB"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg, detail string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   msg,
		Code:    code,
		Detail:  detail,
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusUnprocessableEntity, "INVALID_REQUEST", "invalid request"
	case errors.Is(err, domain.ErrInvalidAPIKey):
		return http.StatusUnprocessableEntity, "INVALID_REQUEST", "invalid api key format"
	case errors.Is(err, domain.ErrInvalidBase64):
		return http.StatusUnprocessableEntity, "INVALID_REQUEST", "file content is not valid base64"
	case errors.Is(err, domain.ErrUnknownProvider):
		return http.StatusUnprocessableEntity, "INVALID_REQUEST", "unknown provider; allowed: claude, gemini"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "unsupported file type"
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "UNSUPPORTED_EXPORT_FORMAT", "unsupported export format; allowed: csv, xlsx"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Client errors carry err's text as detail; server errors are logged instead.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	detail := err.Error()
	if status >= 500 {
		middleware.GetLogger(c, nil).Error("internal error", zap.Error(err))
		detail = ""
	}
	RespondError(c, status, code, msg, detail)
}
