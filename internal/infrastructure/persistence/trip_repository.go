package persistence

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/infrastructure/persistence/orgscope"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tripInsertBatchSize is the chunk size for bulk trip inserts
const tripInsertBatchSize = 200

// GormTripRepository implements TripRepository using GORM
type GormTripRepository struct {
	db *gorm.DB
}

// NewGormTripRepository creates a new GormTripRepository
func NewGormTripRepository(db *gorm.DB) *GormTripRepository {
	return &GormTripRepository{db: db}
}

// FindByID finds a trip by ID within an organization
func (r *GormTripRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.Trip, error) {
	var trip ledger.Trip
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&trip, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &trip, nil
}

// FindByTripNo finds a trip by its natural key within an organization
func (r *GormTripRepository) FindByTripNo(ctx context.Context, orgID uuid.UUID, tripNo string) (*ledger.Trip, error) {
	var trip ledger.Trip
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&trip, "trip_no = ?", tripNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &trip, nil
}

// FindAll finds all trips matching the filter, ordered by trip number descending
func (r *GormTripRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.Trip, error) {
	var trips []ledger.Trip
	query := r.applyTripFilters(r.db.WithContext(ctx).
		Model(&ledger.Trip{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilter(query, filter, TripSortFields, "trip_no DESC")
	if err := query.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

// Count counts trips matching the filter
func (r *GormTripRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyTripFilters(r.db.WithContext(ctx).
		Model(&ledger.Trip{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilterWithoutPagination(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTripRepository) applyTripFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(trip_no) LIKE LOWER(?) OR LOWER(veh_no) LIKE LOWER(?) OR LOWER(driver_name) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	for key, value := range filter.Filters {
		switch key {
		case "veh_no":
			query = query.Where("veh_no = ?", value)
		case "driver_name":
			query = query.Where("driver_name = ?", value)
		case "is_market_trip":
			query = query.Where("is_market_trip = ?", value)
		}
	}
	return query
}

// Save creates or updates a trip
func (r *GormTripRepository) Save(ctx context.Context, trip *ledger.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

// CreateBatch inserts trips in batches, skipping natural-key conflicts.
// Returns the number of rows actually inserted.
func (r *GormTripRepository) CreateBatch(ctx context.Context, trips []*ledger.Trip) (int64, error) {
	if len(trips) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "org_id"}, {Name: "trip_no"}},
			DoNothing: true,
		}).
		CreateInBatches(trips, tripInsertBatchSize)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete deletes a trip within an organization
func (r *GormTripRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.Trip{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByTripNo checks if a trip with the given number exists
func (r *GormTripRepository) ExistsByTripNo(ctx context.Context, orgID uuid.UUID, tripNo string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.Trip{}).
		Scopes(orgscope.Scope(orgID)).
		Where("trip_no = ?", tripNo).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByVehNo checks if any trip references the given vehicle number
func (r *GormTripRepository) ExistsByVehNo(ctx context.Context, orgID uuid.UUID, vehNo string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.Trip{}).
		Scopes(orgscope.Scope(orgID)).
		Where("veh_no = ?", strings.ToUpper(strings.TrimSpace(vehNo))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistingIDs returns which of the given trip IDs exist in the organization
func (r *GormTripRepository) ExistingIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&ledger.Trip{}).
		Scopes(orgscope.Scope(orgID)).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// ListTripNos returns every trip number in the organization
func (r *GormTripRepository) ListTripNos(ctx context.Context, orgID uuid.UUID) ([]string, error) {
	var tripNos []string
	if err := r.db.WithContext(ctx).
		Model(&ledger.Trip{}).
		Scopes(orgscope.Scope(orgID)).
		Pluck("trip_no", &tripNos).Error; err != nil {
		return nil, err
	}
	return tripNos, nil
}

// NextTripNo returns the next free numeric trip number for the organization.
// Non-numeric trip numbers (from imports) are ignored; an empty ledger starts
// at 1001.
func (r *GormTripRepository) NextTripNo(ctx context.Context, orgID uuid.UUID) (string, error) {
	tripNos, err := r.ListTripNos(ctx, orgID)
	if err != nil {
		return "", err
	}
	max := int64(1000)
	for _, no := range tripNos {
		if n, err := strconv.ParseInt(no, 10, 64); err == nil && n > max {
			max = n
		}
	}
	return strconv.FormatInt(max+1, 10), nil
}

// Ensure GormTripRepository implements TripRepository
var _ ledger.TripRepository = (*GormTripRepository)(nil)
