package handler

import (
	appledger "github.com/fleetledger/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// TripBookHandler handles trip book (billing ledger) endpoints
type TripBookHandler struct {
	BaseHandler
	service *appledger.TripBookService
}

// NewTripBookHandler creates a new TripBookHandler
func NewTripBookHandler(service *appledger.TripBookService) *TripBookHandler {
	return &TripBookHandler{service: service}
}

// Create records a trip book entry and propagates its party and transporter balances
func (h *TripBookHandler) Create(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req appledger.CreateTripBookRequest
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

// GetByID returns a trip book entry by ID
func (h *TripBookHandler) GetByID(c *gin.Context) {
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

// List returns trip book entries, optionally for one billing party
func (h *TripBookHandler) List(c *gin.Context) {
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

	books, total, err := h.service.List(c.Request.Context(), orgID, filter, partyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, books, total, filter.PageOrDefault(), filter.PageSizeOrDefault())
}

// Update applies a partial update and rebalances the touched masters
func (h *TripBookHandler) Update(c *gin.Context) {
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

	var req appledger.UpdateTripBookRequest
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

// Delete removes a trip book entry and reverses its contributions
func (h *TripBookHandler) Delete(c *gin.Context) {
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

// ReturnTripHandler handles return trip endpoints
type ReturnTripHandler struct {
	BaseHandler
	service *appledger.ReturnTripService
}

// NewReturnTripHandler creates a new ReturnTripHandler
func NewReturnTripHandler(service *appledger.ReturnTripService) *ReturnTripHandler {
	return &ReturnTripHandler{service: service}
}

// Create records a return trip and propagates its party balance
func (h *ReturnTripHandler) Create(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req appledger.CreateReturnTripRequest
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

// GetByID returns a return trip by ID
func (h *ReturnTripHandler) GetByID(c *gin.Context) {
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

// List returns return trips, optionally for one billing party
func (h *ReturnTripHandler) List(c *gin.Context) {
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

	rts, total, err := h.service.List(c.Request.Context(), orgID, filter, partyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, rts, total, filter.PageOrDefault(), filter.PageSizeOrDefault())
}

// Update applies a partial update and rebalances the touched parties
func (h *ReturnTripHandler) Update(c *gin.Context) {
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

	var req appledger.UpdateReturnTripRequest
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

// Delete removes a return trip and reverses its contribution
func (h *ReturnTripHandler) Delete(c *gin.Context) {
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

// StockEntryHandler handles stock movement endpoints
type StockEntryHandler struct {
	BaseHandler
	service *appledger.StockEntryService
}

// NewStockEntryHandler creates a new StockEntryHandler
func NewStockEntryHandler(service *appledger.StockEntryService) *StockEntryHandler {
	return &StockEntryHandler{service: service}
}

// Create records a stock movement and propagates the item quantity
func (h *StockEntryHandler) Create(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req appledger.CreateStockEntryRequest
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

// GetByID returns a stock entry by ID
func (h *StockEntryHandler) GetByID(c *gin.Context) {
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

// List returns stock entries, optionally for one stock item
func (h *StockEntryHandler) List(c *gin.Context) {
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
	itemID, err := parseUUIDQuery(c, "item_id")
	if err != nil {
		h.BadRequest(c, "Invalid item_id")
		return
	}

	entries, total, err := h.service.List(c.Request.Context(), orgID, filter, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, entries, total, filter.PageOrDefault(), filter.PageSizeOrDefault())
}

// Update applies a partial update and rebalances the touched items
func (h *StockEntryHandler) Update(c *gin.Context) {
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

	var req appledger.UpdateStockEntryRequest
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

// Delete removes a stock entry and reverses its contribution
func (h *StockEntryHandler) Delete(c *gin.Context) {
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
