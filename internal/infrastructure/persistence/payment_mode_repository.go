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

// GormPaymentModeRepository implements PaymentModeRepository using GORM
type GormPaymentModeRepository struct {
	db *gorm.DB
}

// NewGormPaymentModeRepository creates a new GormPaymentModeRepository
func NewGormPaymentModeRepository(db *gorm.DB) *GormPaymentModeRepository {
	return &GormPaymentModeRepository{db: db}
}

// FindByID finds a payment mode by ID within an organization
func (r *GormPaymentModeRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.PaymentMode, error) {
	var mode ledger.PaymentMode
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&mode, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &mode, nil
}

// FindAll finds all payment modes in the organization
func (r *GormPaymentModeRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.PaymentMode, error) {
	var modes []ledger.PaymentMode
	query := r.db.WithContext(ctx).
		Model(&ledger.PaymentMode{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Order("name ASC").Find(&modes).Error; err != nil {
		return nil, err
	}
	return modes, nil
}

// Save creates or updates a payment mode
func (r *GormPaymentModeRepository) Save(ctx context.Context, mode *ledger.PaymentMode) error {
	return r.db.WithContext(ctx).Save(mode).Error
}

// Delete deletes a payment mode within an organization
func (r *GormPaymentModeRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.PaymentMode{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPaymentModeRepository implements PaymentModeRepository
var _ ledger.PaymentModeRepository = (*GormPaymentModeRepository)(nil)
