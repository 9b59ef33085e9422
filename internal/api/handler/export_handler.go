package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlexandreJustinRepia/dtr-denr/internal/service"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/response"
)

// ExportHandler serves the DTR form downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportExcel downloads one employee month as an xlsx workbook.
// GET /api/v1/export/dtr.xlsx
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	employee, month, year, ok := h.bindExportQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportExcel(c.Request.Context(), employee, month, year)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	h.writeAttachment(c, buf, filename,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// ExportPDF downloads one employee month as a printable DTR form.
// GET /api/v1/export/dtr.pdf
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	employee, month, year, ok := h.bindExportQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportPDF(c.Request.Context(), employee, month, year)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	h.writeAttachment(c, buf, filename, "application/pdf")
}

// ExportICS downloads one employee month as a calendar feed.
// GET /api/v1/export/dtr.ics
func (h *ExportHandler) ExportICS(c *gin.Context) {
	employee, month, year, ok := h.bindExportQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportICS(c.Request.Context(), employee, month, year)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	h.writeAttachment(c, buf, filename, "text/calendar")
}

func (h *ExportHandler) bindExportQuery(c *gin.Context) (employee string, month, year int, ok bool) {
	employee = c.Query("employee")
	if employee == "" {
		response.BadRequest(c, 10001, "employee must not be empty")
		return "", 0, 0, false
	}
	month, _ = strconv.Atoi(c.Query("month"))
	year, _ = strconv.Atoi(c.Query("year"))
	if month < 1 || month > 12 || year < 1 {
		response.BadRequest(c, 10001, "month and year are required")
		return "", 0, 0, false
	}
	return employee, month, year, true
}

func (h *ExportHandler) writeAttachment(c *gin.Context, buf *bytes.Buffer, filename, contentType string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// handleExportError maps export errors to HTTP responses.
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportTimeout):
		response.Error(c, http.StatusGatewayTimeout, 30002, "export rendering timed out")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.Error(c, http.StatusInternalServerError, 30001, "failed to generate export")
	default:
		response.InternalError(c)
	}
}
