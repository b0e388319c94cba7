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

// GormBillingPartyRepository implements BillingPartyRepository using GORM
type GormBillingPartyRepository struct {
	db *gorm.DB
}

// NewGormBillingPartyRepository creates a new GormBillingPartyRepository
func NewGormBillingPartyRepository(db *gorm.DB) *GormBillingPartyRepository {
	return &GormBillingPartyRepository{db: db}
}

// FindByID finds a billing party by ID within an organization
func (r *GormBillingPartyRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.BillingParty, error) {
	var party ledger.BillingParty
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&party, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &party, nil
}

// FindByName finds a billing party by its name within an organization
func (r *GormBillingPartyRepository) FindByName(ctx context.Context, orgID uuid.UUID, name string) (*ledger.BillingParty, error) {
	var party ledger.BillingParty
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&party, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &party, nil
}

// FindAll finds all billing parties matching the filter
func (r *GormBillingPartyRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.BillingParty, error) {
	var parties []ledger.BillingParty
	query := r.db.WithContext(ctx).
		Model(&ledger.BillingParty{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	query = applyFilter(query, filter, MasterSortFields, "created_at DESC")
	if err := query.Find(&parties).Error; err != nil {
		return nil, err
	}
	return parties, nil
}

// Count counts billing parties matching the filter
func (r *GormBillingPartyRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&ledger.BillingParty{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a billing party
func (r *GormBillingPartyRepository) Save(ctx context.Context, party *ledger.BillingParty) error {
	return r.db.WithContext(ctx).Save(party).Error
}

// SaveDetails updates only the editable columns of an existing party. The
// derived balance is recomputed from the new opening balance and the stored
// accumulators in the same UPDATE, so deltas applied between the caller's
// read and this write are preserved.
func (r *GormBillingPartyRepository) SaveDetails(ctx context.Context, party *ledger.BillingParty) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.BillingParty{}).
		Scopes(orgscope.Scope(party.OrgID)).
		Where("id = ?", party.ID).
		UpdateColumns(map[string]interface{}{
			"name":        party.Name,
			"contact_no":  party.ContactNo,
			"dr_cr":       party.DrCr,
			"remark":      party.Remark,
			"open_bal":    party.OpenBal,
			"balance_amt": gorm.Expr("? + bill_amt_trip + bill_amt_rt - receive_amt", party.OpenBal),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a billing party within an organization
func (r *GormBillingPartyRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.BillingParty{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ApplyDelta atomically increments the accumulator columns and recomputes the
// derived balance in the same UPDATE. Column references on the right-hand side
// read the pre-update values, so concurrent deltas never overwrite each other.
func (r *GormBillingPartyRepository) ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta ledger.PartyDelta) error {
	if delta.IsZero() {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&ledger.BillingParty{}).
		Scopes(orgscope.Scope(orgID)).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"bill_amt_trip": gorm.Expr("bill_amt_trip + ?", delta.BillTrip),
			"bill_amt_rt":   gorm.Expr("bill_amt_rt + ?", delta.BillRt),
			"receive_amt":   gorm.Expr("receive_amt + ?", delta.Receive),
			"balance_amt": gorm.Expr(
				"open_bal + bill_amt_trip + ? + bill_amt_rt + ? - receive_amt - ?",
				delta.BillTrip, delta.BillRt, delta.Receive,
			),
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

// ExistsByName checks if a billing party with the given name exists
func (r *GormBillingPartyRepository) ExistsByName(ctx context.Context, orgID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.BillingParty{}).
		Scopes(orgscope.Scope(orgID)).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormBillingPartyRepository implements BillingPartyRepository
var _ ledger.BillingPartyRepository = (*GormBillingPartyRepository)(nil)
