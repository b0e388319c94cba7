package handler

import (
	appledger "github.com/fleetledger/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// TripHandler handles trip endpoints
type TripHandler struct {
	BaseHandler
	service *appledger.TripService
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(service *appledger.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// Create records a trip. An empty trip number is auto-assigned.
func (h *TripHandler) Create(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req appledger.CreateTripRequest
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

// GetByID returns a trip by ID
func (h *TripHandler) GetByID(c *gin.Context) {
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

// GetByTripNo returns a trip by its trip number
func (h *TripHandler) GetByTripNo(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	resp, err := h.service.GetByTripNo(c.Request.Context(), orgID, c.Param("trip_no"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns trips matching the filter, newest trip number first
func (h *TripHandler) List(c *gin.Context) {
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

	trips, total, err := h.service.List(c.Request.Context(), orgID, filter,
		c.Query("veh_no"), c.Query("driver_name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, trips, total, filter.PageOrDefault(), filter.PageSizeOrDefault())
}

// NextTripNo returns the next free trip number
func (h *TripHandler) NextTripNo(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	tripNo, err := h.service.NextTripNo(c.Request.Context(), orgID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"trip_no": tripNo})
}

// Update applies a partial update to an unlocked trip
func (h *TripHandler) Update(c *gin.Context) {
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

	var req appledger.UpdateTripRequest
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

// Delete removes an unlocked trip and reverses its vehicle contribution
func (h *TripHandler) Delete(c *gin.Context) {
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
