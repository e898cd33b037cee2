package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// ExportHandler file downloads: the progress workbook and batch calendars.
type ExportHandler struct {
	exportSvc   service.ExportService
	calendarSvc service.CalendarService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService, calendarSvc service.CalendarService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, calendarSvc: calendarSvc}
}

// ExportProgress downloads the caller-visible progress records as xlsx.
// Accepts the progress-records filters.
// GET /api/progress-records/export
func (h *ExportHandler) ExportProgress(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	q, ok := bindList(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportProgress(c.Request.Context(), q, caller)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// BatchCalendar downloads a batch as an iCalendar file.
// GET /api/batches/:id/calendar
func (h *ExportHandler) BatchCalendar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	body, filename, err := h.calendarSvc.BatchCalendar(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, icsContentType, []byte(body))
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	if renderFieldError(c, err, 27001) {
		return
	}
	switch {
	case errors.Is(err, service.ErrBatchNotFound):
		response.NotFound(c, 22002, "batch not found")
	case errors.Is(err, service.ErrBatchNoStartDate):
		response.BadRequest(c, 27002, "batch has no start date")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
