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

// GormMarketVehPaymentRepository implements MarketVehPaymentRepository using GORM
type GormMarketVehPaymentRepository struct {
	db *gorm.DB
}

// NewGormMarketVehPaymentRepository creates a new GormMarketVehPaymentRepository
func NewGormMarketVehPaymentRepository(db *gorm.DB) *GormMarketVehPaymentRepository {
	return &GormMarketVehPaymentRepository{db: db}
}

// FindByID finds a market vehicle payment by ID within an organization
func (r *GormMarketVehPaymentRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.MarketVehPayment, error) {
	var payment ledger.MarketVehPayment
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

// FindAll finds all market vehicle payments matching the filter
func (r *GormMarketVehPaymentRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.MarketVehPayment, error) {
	var payments []ledger.MarketVehPayment
	query := r.applyPaymentFilters(r.db.WithContext(ctx).
		Model(&ledger.MarketVehPayment{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilter(query, filter, TransactionSortFields, "date DESC, created_at DESC")
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Count counts market vehicle payments matching the filter
func (r *GormMarketVehPaymentRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyPaymentFilters(r.db.WithContext(ctx).
		Model(&ledger.MarketVehPayment{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilterWithoutPagination(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormMarketVehPaymentRepository) applyPaymentFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(transporter_name) LIKE LOWER(?) OR LOWER(market_veh_no) LIKE LOWER(?) OR LOWER(trip_no) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	for key, value := range filter.Filters {
		switch key {
		case "transporter_id":
			query = query.Where("transporter_id = ?", value)
		case "mode":
			query = query.Where("mode = ?", value)
		}
	}
	return query
}

// Save creates or updates a market vehicle payment
func (r *GormMarketVehPaymentRepository) Save(ctx context.Context, payment *ledger.MarketVehPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete deletes a market vehicle payment within an organization
func (r *GormMarketVehPaymentRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.MarketVehPayment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByTransporter checks if any payment references the transporter
func (r *GormMarketVehPaymentRepository) ExistsByTransporter(ctx context.Context, orgID, transporterID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.MarketVehPayment{}).
		Scopes(orgscope.Scope(orgID)).
		Where("transporter_id = ?", transporterID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormMarketVehPaymentRepository implements MarketVehPaymentRepository
var _ ledger.MarketVehPaymentRepository = (*GormMarketVehPaymentRepository)(nil)
