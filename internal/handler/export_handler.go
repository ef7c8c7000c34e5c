package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docextractor/internal/domain"
	"docextractor/internal/export"
	"docextractor/internal/middleware"
)

// ExportHandler renders extracted documents as downloadable files.
type ExportHandler struct {
	now func() time.Time
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{now: time.Now}
}

// ExportRequest is the body of POST /api/export/:format.
type ExportRequest struct {
	FileName  string                `json:"file_name" example:"rg_frente.jpg"`
	Documents []domain.DocumentData `json:"documents" binding:"required,min=1,dive"`
}

// Export handles POST /api/export/:format
// @Summary Export extracted documents
// @Description Renders one or more extracted documents as a CSV (UTF-8 with BOM) or XLSX attachment.
// @Tags export
// @Accept json
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format path string true "Export format" Enums(csv, xlsx)
// @Param request body ExportRequest true "Documents to export"
// @Success 200 {file} file "Export file"
// @Failure 400 {object} ErrorResponse "Unsupported format"
// @Failure 422 {object} ErrorResponse "Invalid request"
// @Router /export/{format} [post]
func (h *ExportHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "INVALID_REQUEST",
			"documents must contain at least one document with tipoDocumento", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := format.Write(&buf, req.Documents); err != nil {
		HandleError(c, fmt.Errorf("rendering %s export: %w", format, err))
		return
	}

	filename := export.BuildFilename(req.FileName, format, h.now())
	middleware.GetLogger(c, nil).Info("export rendered",
		zap.String("format", string(format)),
		zap.Int("documents", len(req.Documents)),
		zap.Int("bytes", buf.Len()),
	)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
