package persistence

import (
	"context"
	"errors"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/infrastructure/persistence/orgscope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReturnTripRepository implements ReturnTripRepository using GORM
type GormReturnTripRepository struct {
	db *gorm.DB
}

// NewGormReturnTripRepository creates a new GormReturnTripRepository
func NewGormReturnTripRepository(db *gorm.DB) *GormReturnTripRepository {
	return &GormReturnTripRepository{db: db}
}

// FindByID finds a return trip by ID within an organization
func (r *GormReturnTripRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.ReturnTrip, error) {
	var rt ledger.ReturnTrip
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&rt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rt, nil
}

// FindAll finds all return trips matching the filter
func (r *GormReturnTripRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.ReturnTrip, error) {
	var rts []ledger.ReturnTrip
	query := r.applyReturnTripFilters(r.db.WithContext(ctx).
		Model(&ledger.ReturnTrip{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilter(query, filter, TransactionSortFields, "date DESC, trip_no DESC")
	if err := query.Find(&rts).Error; err != nil {
		return nil, err
	}
	return rts, nil
}

// Count counts return trips matching the filter
func (r *GormReturnTripRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyReturnTripFilters(r.db.WithContext(ctx).
		Model(&ledger.ReturnTrip{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilterWithoutPagination(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormReturnTripRepository) applyReturnTripFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(trip_no) LIKE LOWER(?) OR LOWER(billing_party_name) LIKE LOWER(?) OR LOWER(lr_no) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	for key, value := range filter.Filters {
		switch key {
		case "billing_party_id":
			query = query.Where("billing_party_id = ?", value)
		case "trip_no":
			query = query.Where("trip_no = ?", value)
		}
	}
	return query
}

// Save creates or updates a return trip
func (r *GormReturnTripRepository) Save(ctx context.Context, rt *ledger.ReturnTrip) error {
	return r.db.WithContext(ctx).Save(rt).Error
}

// Delete deletes a return trip within an organization
func (r *GormReturnTripRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.ReturnTrip{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByBillingParty checks if any return trip references the billing party
func (r *GormReturnTripRepository) ExistsByBillingParty(ctx context.Context, orgID, partyID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.ReturnTrip{}).
		Scopes(orgscope.Scope(orgID)).
		Where("billing_party_id = ?", partyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormReturnTripRepository implements ReturnTripRepository
var _ ledger.ReturnTripRepository = (*GormReturnTripRepository)(nil)
