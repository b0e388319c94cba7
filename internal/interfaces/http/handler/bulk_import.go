package handler

import (
	"strings"

	"github.com/fleetledger/backend/internal/application/bulkimport"
	"github.com/gin-gonic/gin"
)

// IdempotencyHeader carries the client-chosen replay key for imports.
const IdempotencyHeader = "Idempotency-Key"

// BulkImportHandler handles batched trip and expense imports
type BulkImportHandler struct {
	BaseHandler
	service *bulkimport.BulkImportService
}

// NewBulkImportHandler creates a new BulkImportHandler
func NewBulkImportHandler(service *bulkimport.BulkImportService) *BulkImportHandler {
	return &BulkImportHandler{service: service}
}

// Import ingests a batch of categories, trips, and expenses in one request.
// A non-empty Idempotency-Key header makes the request replay-safe.
func (h *BulkImportHandler) Import(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req bulkimport.BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	key := strings.TrimSpace(c.GetHeader(IdempotencyHeader))
	result, err := h.service.Import(c.Request.Context(), orgID, key, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
