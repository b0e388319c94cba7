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

// GormTripBookRepository implements TripBookRepository using GORM
type GormTripBookRepository struct {
	db *gorm.DB
}

// NewGormTripBookRepository creates a new GormTripBookRepository
func NewGormTripBookRepository(db *gorm.DB) *GormTripBookRepository {
	return &GormTripBookRepository{db: db}
}

// FindByID finds a trip book entry by ID within an organization
func (r *GormTripBookRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.TripBook, error) {
	var book ledger.TripBook
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// FindAll finds all trip book entries matching the filter
func (r *GormTripBookRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.TripBook, error) {
	var books []ledger.TripBook
	query := r.applyBookFilters(r.db.WithContext(ctx).
		Model(&ledger.TripBook{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilter(query, filter, TransactionSortFields, "date DESC, trip_no DESC")
	if err := query.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// Count counts trip book entries matching the filter
func (r *GormTripBookRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyBookFilters(r.db.WithContext(ctx).
		Model(&ledger.TripBook{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilterWithoutPagination(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTripBookRepository) applyBookFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		case "transporter_id":
			query = query.Where("transporter_id = ?", value)
		case "trip_no":
			query = query.Where("trip_no = ?", value)
		}
	}
	return query
}

// Save creates or updates a trip book entry
func (r *GormTripBookRepository) Save(ctx context.Context, book *ledger.TripBook) error {
	return r.db.WithContext(ctx).Save(book).Error
}

// Delete deletes a trip book entry within an organization
func (r *GormTripBookRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.TripBook{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByBillingParty checks if any entry references the billing party
func (r *GormTripBookRepository) ExistsByBillingParty(ctx context.Context, orgID, partyID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.TripBook{}).
		Scopes(orgscope.Scope(orgID)).
		Where("billing_party_id = ?", partyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByTransporter checks if any entry references the transporter
func (r *GormTripBookRepository) ExistsByTransporter(ctx context.Context, orgID, transporterID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.TripBook{}).
		Scopes(orgscope.Scope(orgID)).
		Where("transporter_id = ?", transporterID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormTripBookRepository implements TripBookRepository
var _ ledger.TripBookRepository = (*GormTripBookRepository)(nil)
