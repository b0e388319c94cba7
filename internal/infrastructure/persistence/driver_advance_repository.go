package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/infrastructure/persistence/orgscope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDriverAdvanceRepository implements DriverAdvanceRepository using GORM
type GormDriverAdvanceRepository struct {
	db *gorm.DB
}

// NewGormDriverAdvanceRepository creates a new GormDriverAdvanceRepository
func NewGormDriverAdvanceRepository(db *gorm.DB) *GormDriverAdvanceRepository {
	return &GormDriverAdvanceRepository{db: db}
}

// FindByID finds a driver advance by ID within an organization
func (r *GormDriverAdvanceRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.DriverAdvance, error) {
	var advance ledger.DriverAdvance
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&advance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &advance, nil
}

// FindAll finds all driver advances matching the filter
func (r *GormDriverAdvanceRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.DriverAdvance, error) {
	var advances []ledger.DriverAdvance
	query := r.applyAdvanceFilters(r.db.WithContext(ctx).
		Model(&ledger.DriverAdvance{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilter(query, filter, TransactionSortFields, "date DESC, created_at DESC")
	if err := query.Find(&advances).Error; err != nil {
		return nil, err
	}
	return advances, nil
}

// Count counts driver advances matching the filter
func (r *GormDriverAdvanceRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyAdvanceFilters(r.db.WithContext(ctx).
		Model(&ledger.DriverAdvance{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilterWithoutPagination(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormDriverAdvanceRepository) applyAdvanceFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(driver_name) LIKE LOWER(?) OR LOWER(trip_no) LIKE LOWER(?)",
			pattern, pattern,
		)
	}
	for key, value := range filter.Filters {
		switch key {
		case "driver_name":
			query = query.Where("driver_name = ?", value)
		case "mode":
			query = query.Where("mode = ?", value)
		}
	}
	return query
}

// Save creates or updates a driver advance
func (r *GormDriverAdvanceRepository) Save(ctx context.Context, advance *ledger.DriverAdvance) error {
	return r.db.WithContext(ctx).Save(advance).Error
}

// Delete deletes a driver advance within an organization
func (r *GormDriverAdvanceRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.DriverAdvance{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByDriverName checks if any advance references the driver name
func (r *GormDriverAdvanceRepository) ExistsByDriverName(ctx context.Context, orgID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.DriverAdvance{}).
		Scopes(orgscope.Scope(orgID)).
		Where("driver_name = ?", strings.TrimSpace(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormDriverAdvanceRepository implements DriverAdvanceRepository
var _ ledger.DriverAdvanceRepository = (*GormDriverAdvanceRepository)(nil)
