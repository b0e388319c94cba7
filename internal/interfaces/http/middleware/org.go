package middleware

import (
	"net/http"

	"github.com/fleetledger/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrgIDKey is the gin context key holding the verified organization ID
const OrgIDKey = "org_id"

// OrgHeader is the header the upstream gateway sets after verifying the caller
const OrgHeader = "X-Org-ID"

// OrgContext extracts the organization ID from the X-Org-ID header and stores
// it in the request context. Every route under it requires the header; a
// missing or malformed value is rejected before any handler runs.
func OrgContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(OrgHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "Missing X-Org-ID header"))
			return
		}
		orgID, err := uuid.Parse(raw)
		if err != nil || orgID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "Invalid X-Org-ID header"))
			return
		}
		c.Set(OrgIDKey, orgID)
		c.Next()
	}
}

// GetOrgID returns the organization ID stored by OrgContext.
// The second return is false when the middleware did not run.
func GetOrgID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(OrgIDKey)
	if !ok {
		return uuid.Nil, false
	}
	orgID, ok := v.(uuid.UUID)
	return orgID, ok
}
