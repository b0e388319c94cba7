// Package orgscope provides organization-level database scoping for GORM.
//
// Every ledger table carries an org_id column; applying the scope keeps a
// repository query from ever seeing another organization's rows. Missing rows
// and cross-org rows are indistinguishable to callers.
package orgscope

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOrgIDRequired is returned when an organization ID is required but absent
var ErrOrgIDRequired = errors.New("org_id is required")

// Scope applies organization filtering to GORM queries
func Scope(orgID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if orgID == uuid.Nil {
			_ = db.AddError(ErrOrgIDRequired)
			return db
		}
		return db.Where("org_id = ?", orgID)
	}
}
