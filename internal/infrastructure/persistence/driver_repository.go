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

// GormDriverRepository implements DriverRepository using GORM
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GormDriverRepository
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// FindByID finds a driver by ID within an organization
func (r *GormDriverRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.Driver, error) {
	var driver ledger.Driver
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&driver, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// FindByName finds a driver by name within an organization
func (r *GormDriverRepository) FindByName(ctx context.Context, orgID uuid.UUID, name string) (*ledger.Driver, error) {
	var driver ledger.Driver
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&driver, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// FindAll finds all drivers matching the filter
func (r *GormDriverRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.Driver, error) {
	var drivers []ledger.Driver
	query := r.db.WithContext(ctx).
		Model(&ledger.Driver{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	query = applyFilter(query, filter, MasterSortFields, "created_at DESC")
	if err := query.Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

// Count counts drivers matching the filter
func (r *GormDriverRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&ledger.Driver{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a driver
func (r *GormDriverRepository) Save(ctx context.Context, driver *ledger.Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

// SaveDetails updates only the editable columns of an existing driver,
// recomputing the close balance from the stored debit/credit accumulators
func (r *GormDriverRepository) SaveDetails(ctx context.Context, driver *ledger.Driver) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Driver{}).
		Scopes(orgscope.Scope(driver.OrgID)).
		Where("id = ?", driver.ID).
		UpdateColumns(map[string]interface{}{
			"name":       driver.Name,
			"contact_no": driver.ContactNo,
			"dr_cr":      driver.DrCr,
			"remark":     driver.Remark,
			"open_bal":   driver.OpenBal,
			"close_bal":  gorm.Expr("? + debit - credit", driver.OpenBal),
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

// Delete deletes a driver within an organization
func (r *GormDriverRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.Driver{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ApplyDelta atomically increments debit/credit and recomputes the close
// balance in the same UPDATE
func (r *GormDriverRepository) ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta ledger.DriverDelta) error {
	if delta.IsZero() {
		return nil
	}
	query := r.db.WithContext(ctx).
		Model(&ledger.Driver{}).
		Scopes(orgscope.Scope(orgID)).
		Where("id = ?", id)
	return r.runDelta(query, delta, true)
}

// ApplyDeltaByName applies a delta to the driver addressed by name.
// A missing driver is not an error; the delta is silently dropped.
func (r *GormDriverRepository) ApplyDeltaByName(ctx context.Context, orgID uuid.UUID, name string, delta ledger.DriverDelta) error {
	if delta.IsZero() || name == "" {
		return nil
	}
	query := r.db.WithContext(ctx).
		Model(&ledger.Driver{}).
		Scopes(orgscope.Scope(orgID)).
		Where("name = ?", name)
	return r.runDelta(query, delta, false)
}

func (r *GormDriverRepository) runDelta(query *gorm.DB, delta ledger.DriverDelta, requireRow bool) error {
	result := query.UpdateColumns(map[string]interface{}{
		"debit":      gorm.Expr("debit + ?", delta.Debit),
		"credit":     gorm.Expr("credit + ?", delta.Credit),
		"close_bal":  gorm.Expr("open_bal + debit + ? - credit - ?", delta.Debit, delta.Credit),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if requireRow && result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormDriverRepository implements DriverRepository
var _ ledger.DriverRepository = (*GormDriverRepository)(nil)
