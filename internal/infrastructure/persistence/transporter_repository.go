package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/infrastructure/persistence/orgscope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransporterRepository implements TransporterRepository using GORM
type GormTransporterRepository struct {
	db *gorm.DB
}

// NewGormTransporterRepository creates a new GormTransporterRepository
func NewGormTransporterRepository(db *gorm.DB) *GormTransporterRepository {
	return &GormTransporterRepository{db: db}
}

// FindByID finds a transporter by ID within an organization
func (r *GormTransporterRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.Transporter, error) {
	var transporter ledger.Transporter
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&transporter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &transporter, nil
}

// FindByName finds a transporter by name within an organization
func (r *GormTransporterRepository) FindByName(ctx context.Context, orgID uuid.UUID, name string) (*ledger.Transporter, error) {
	var transporter ledger.Transporter
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&transporter, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &transporter, nil
}

// FindAll finds all transporters matching the filter
func (r *GormTransporterRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.Transporter, error) {
	var transporters []ledger.Transporter
	query := r.db.WithContext(ctx).
		Model(&ledger.Transporter{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(veh_no) LIKE LOWER(?)", pattern, pattern)
	}
	query = applyFilter(query, filter, MasterSortFields, "created_at DESC")
	if err := query.Find(&transporters).Error; err != nil {
		return nil, err
	}
	return transporters, nil
}

// Count counts transporters matching the filter
func (r *GormTransporterRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&ledger.Transporter{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(veh_no) LIKE LOWER(?)", pattern, pattern)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a transporter
func (r *GormTransporterRepository) Save(ctx context.Context, transporter *ledger.Transporter) error {
	return r.db.WithContext(ctx).Save(transporter).Error
}

// SaveDetails updates only the editable columns of an existing transporter,
// recomputing the close balance from the stored bill/paid accumulators
func (r *GormTransporterRepository) SaveDetails(ctx context.Context, transporter *ledger.Transporter) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Transporter{}).
		Scopes(orgscope.Scope(transporter.OrgID)).
		Where("id = ?", transporter.ID).
		UpdateColumns(map[string]interface{}{
			"name":       transporter.Name,
			"veh_no":     transporter.VehNo,
			"contact_no": transporter.ContactNo,
			"remark":     transporter.Remark,
			"open_bal":   transporter.OpenBal,
			"close_bal":  gorm.Expr("? + bill_amt - paid_amt", transporter.OpenBal),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a transporter within an organization
func (r *GormTransporterRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.Transporter{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ApplyDelta atomically increments bill/paid and recomputes the close balance
// in the same UPDATE
func (r *GormTransporterRepository) ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta ledger.TransporterDelta) error {
	if delta.IsZero() {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&ledger.Transporter{}).
		Scopes(orgscope.Scope(orgID)).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"bill_amt":   gorm.Expr("bill_amt + ?", delta.Bill),
			"paid_amt":   gorm.Expr("paid_amt + ?", delta.Paid),
			"close_bal":  gorm.Expr("open_bal + bill_amt + ? - paid_amt - ?", delta.Bill, delta.Paid),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTransporterRepository implements TransporterRepository
var _ ledger.TransporterRepository = (*GormTransporterRepository)(nil)
