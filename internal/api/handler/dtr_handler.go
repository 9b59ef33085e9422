package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlexandreJustinRepia/dtr-denr/internal/dto"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/service"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/response"
)

// DTRHandler exposes the attendance-log endpoints.
type DTRHandler struct {
	dtrSvc service.DTRService
}

// NewDTRHandler creates a DTRHandler.
func NewDTRHandler(dtrSvc service.DTRService) *DTRHandler {
	return &DTRHandler{dtrSvc: dtrSvc}
}

// Generate ingests one raw attendance dump.
// POST /api/v1/dtr/generate
func (h *DTRHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.dtrSvc.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handleDTRError(c, err)
		return
	}

	response.OK(c, result)
}

// ListBatches pages through upload history.
// GET /api/v1/dtr/batches
func (h *DTRHandler) ListBatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "15"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 15
	}

	batches, total, err := h.dtrSvc.ListBatches(c.Request.Context(), page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, batches, total, page, pageSize)
}

// GetBatchRaw returns a batch's original text for reprocessing.
// GET /api/v1/dtr/batches/:id/raw
func (h *DTRHandler) GetBatchRaw(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "batch id must not be empty")
		return
	}

	raw, err := h.dtrSvc.GetBatchRaw(c.Request.Context(), id)
	if err != nil {
		h.handleDTRError(c, err)
		return
	}

	response.OK(c, raw)
}

// GetEmployeeCalendar returns the dense month view of one employee.
// GET /api/v1/dtr/employees/:name/calendar
func (h *DTRHandler) GetEmployeeCalendar(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, 10001, "employee name must not be empty")
		return
	}

	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	status := c.Query("status")

	cal, err := h.dtrSvc.GetEmployeeCalendar(c.Request.Context(), name, month, year, status)
	if err != nil {
		h.handleDTRError(c, err)
		return
	}

	response.OK(c, cal)
}

// ListEmployees pages through distinct employees with their calendars.
// GET /api/v1/dtr/employees
func (h *DTRHandler) ListEmployees(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	entries, total, err := h.dtrSvc.ListEmployees(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 15
	}
	response.OKPage(c, entries, total, page, pageSize)
}

// handleDTRError maps DTR business errors to HTTP responses.
func (h *DTRHandler) handleDTRError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyLogText):
		response.BadRequest(c, 20001, "no log text provided")
	case errors.Is(err, service.ErrEmptyBatchName):
		response.BadRequest(c, 20001, "no batch name provided")
	case errors.Is(err, service.ErrBatchNotFound):
		response.NotFound(c, 20002, "batch not found")
	default:
		response.InternalError(c)
	}
}
