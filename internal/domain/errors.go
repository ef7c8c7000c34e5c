package domain

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInvalidAPIKey       = errors.New("api key does not match the provider's key format")
	ErrInvalidBase64       = errors.New("file content is not valid base64")
	ErrUnknownProvider     = errors.New("unknown provider")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")

	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
