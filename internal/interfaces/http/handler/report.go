package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/travelworks/backend/internal/application/report"
)

// ReportHandler handles financial report HTTP requests
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ProfitLoss returns per-booking profit and loss rows, optionally
// restricted to a creation-date window
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	var filter reportapp.ProfitLossFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	results, err := h.reportService.ProfitLoss(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// OutstandingInvoices returns bookings still awaiting payment
func (h *ReportHandler) OutstandingInvoices(c *gin.Context) {
	results, err := h.reportService.OutstandingInvoices(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// HotelRecap returns hotel usage aggregates for a stay window
func (h *ReportHandler) HotelRecap(c *gin.Context) {
	var filter reportapp.HotelRecapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Start and end dates are required in YYYY-MM-DD format")
		return
	}

	results, err := h.reportService.HotelRecap(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}
