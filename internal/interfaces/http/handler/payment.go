package handler

import (
	appledger "github.com/fleetledger/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// PartyPaymentHandler handles received-payment endpoints
type PartyPaymentHandler struct {
	BaseHandler
	service *appledger.PartyPaymentService
}

// NewPartyPaymentHandler creates a new PartyPaymentHandler
func NewPartyPaymentHandler(service *appledger.PartyPaymentService) *PartyPaymentHandler {
	return &PartyPaymentHandler{service: service}
}

// Create records a payment received from a billing party
func (h *PartyPaymentHandler) Create(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req appledger.CreatePartyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), orgID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID returns a party payment by ID
func (h *PartyPaymentHandler) GetByID(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns party payments, optionally for one billing party
func (h *PartyPaymentHandler) List(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var filter appledger.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	partyID, err := parseUUIDQuery(c, "party_id")
	if err != nil {
		h.BadRequest(c, "Invalid party_id")
		return
	}

	payments, total, err := h.service.List(c.Request.Context(), orgID, filter, partyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, payments, total, filter.PageOrDefault(), filter.PageSizeOrDefault())
}

// Update applies a partial update and rebalances the touched parties
func (h *PartyPaymentHandler) Update(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	var req appledger.UpdatePartyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a party payment and reverses its contribution
func (h *PartyPaymentHandler) Delete(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DriverAdvanceHandler handles driver advance endpoints
type DriverAdvanceHandler struct {
	BaseHandler
	service *appledger.DriverAdvanceService
}

// NewDriverAdvanceHandler creates a new DriverAdvanceHandler
func NewDriverAdvanceHandler(service *appledger.DriverAdvanceService) *DriverAdvanceHandler {
	return &DriverAdvanceHandler{service: service}
}

// Create records an advance paid to a driver
func (h *DriverAdvanceHandler) Create(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req appledger.CreateDriverAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), orgID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID returns a driver advance by ID
func (h *DriverAdvanceHandler) GetByID(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns driver advances, optionally filtered by driver name
func (h *DriverAdvanceHandler) List(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var filter appledger.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	advances, total, err := h.service.List(c.Request.Context(), orgID, filter, c.Query("driver_name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, advances, total, filter.PageOrDefault(), filter.PageSizeOrDefault())
}

// Update applies a partial update and rebalances the touched drivers
func (h *DriverAdvanceHandler) Update(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	var req appledger.UpdateDriverAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a driver advance and reverses its contribution
func (h *DriverAdvanceHandler) Delete(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// MarketVehPaymentHandler handles hired-vehicle payment endpoints
type MarketVehPaymentHandler struct {
	BaseHandler
	service *appledger.MarketVehPaymentService
}

// NewMarketVehPaymentHandler creates a new MarketVehPaymentHandler
func NewMarketVehPaymentHandler(service *appledger.MarketVehPaymentService) *MarketVehPaymentHandler {
	return &MarketVehPaymentHandler{service: service}
}

// Create records a payment made to a transporter
func (h *MarketVehPaymentHandler) Create(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req appledger.CreateMarketVehPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), orgID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID returns a market vehicle payment by ID
func (h *MarketVehPaymentHandler) GetByID(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns market vehicle payments, optionally for one transporter
func (h *MarketVehPaymentHandler) List(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var filter appledger.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	transporterID, err := parseUUIDQuery(c, "transporter_id")
	if err != nil {
		h.BadRequest(c, "Invalid transporter_id")
		return
	}

	payments, total, err := h.service.List(c.Request.Context(), orgID, filter, transporterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, payments, total, filter.PageOrDefault(), filter.PageSizeOrDefault())
}

// Update applies a partial update and rebalances the touched transporters
func (h *MarketVehPaymentHandler) Update(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	var req appledger.UpdateMarketVehPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a market vehicle payment and reverses its contribution
func (h *MarketVehPaymentHandler) Delete(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
