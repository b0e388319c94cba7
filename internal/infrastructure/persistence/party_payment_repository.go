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

// GormPartyPaymentRepository implements PartyPaymentRepository using GORM
type GormPartyPaymentRepository struct {
	db *gorm.DB
}

// NewGormPartyPaymentRepository creates a new GormPartyPaymentRepository
func NewGormPartyPaymentRepository(db *gorm.DB) *GormPartyPaymentRepository {
	return &GormPartyPaymentRepository{db: db}
}

// FindByID finds a party payment by ID within an organization
func (r *GormPartyPaymentRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.PartyPayment, error) {
	var payment ledger.PartyPayment
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindAll finds all party payments matching the filter
func (r *GormPartyPaymentRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.PartyPayment, error) {
	var payments []ledger.PartyPayment
	query := r.applyPaymentFilters(r.db.WithContext(ctx).
		Model(&ledger.PartyPayment{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilter(query, filter, TransactionSortFields, "date DESC, created_at DESC")
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Count counts party payments matching the filter
func (r *GormPartyPaymentRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyPaymentFilters(r.db.WithContext(ctx).
		Model(&ledger.PartyPayment{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilterWithoutPagination(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPartyPaymentRepository) applyPaymentFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(billing_party_name) LIKE LOWER(?) OR LOWER(trip_no) LIKE LOWER(?) OR LOWER(lr_no) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	for key, value := range filter.Filters {
		switch key {
		case "billing_party_id":
			query = query.Where("billing_party_id = ?", value)
		case "mode":
			query = query.Where("mode = ?", value)
		}
	}
	return query
}

// Save creates or updates a party payment
func (r *GormPartyPaymentRepository) Save(ctx context.Context, payment *ledger.PartyPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete deletes a party payment within an organization
func (r *GormPartyPaymentRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.PartyPayment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByBillingParty checks if any payment references the billing party
func (r *GormPartyPaymentRepository) ExistsByBillingParty(ctx context.Context, orgID, partyID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.PartyPayment{}).
		Scopes(orgscope.Scope(orgID)).
		Where("billing_party_id = ?", partyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormPartyPaymentRepository implements PartyPaymentRepository
var _ ledger.PartyPaymentRepository = (*GormPartyPaymentRepository)(nil)
