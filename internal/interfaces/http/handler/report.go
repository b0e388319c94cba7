package handler

import (
	"github.com/fleetledger/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles read-only reporting endpoints
type ReportHandler struct {
	BaseHandler
	service *report.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *report.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetTripReport returns trips matching the filter plus aggregate totals
func (h *ReportHandler) GetTripReport(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var filter report.TripReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetTripReport(c.Request.Context(), orgID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetBalanceSheet returns current balances for every master grouped by kind
func (h *ReportHandler) GetBalanceSheet(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	resp, err := h.service.GetBalanceSheet(c.Request.Context(), orgID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetDashboardStats returns headline counts, totals, and recent trips
func (h *ReportHandler) GetDashboardStats(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	resp, err := h.service.GetDashboardStats(c.Request.Context(), orgID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
