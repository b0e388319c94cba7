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

// GormStockItemRepository implements StockItemRepository using GORM
type GormStockItemRepository struct {
	db *gorm.DB
}

// NewGormStockItemRepository creates a new GormStockItemRepository
func NewGormStockItemRepository(db *gorm.DB) *GormStockItemRepository {
	return &GormStockItemRepository{db: db}
}

// FindByID finds a stock item by ID within an organization
func (r *GormStockItemRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.StockItem, error) {
	var item ledger.StockItem
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByName finds a stock item by name within an organization
func (r *GormStockItemRepository) FindByName(ctx context.Context, orgID uuid.UUID, name string) (*ledger.StockItem, error) {
	var item ledger.StockItem
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&item, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds all stock items matching the filter
func (r *GormStockItemRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.StockItem, error) {
	var items []ledger.StockItem
	query := r.db.WithContext(ctx).
		Model(&ledger.StockItem{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	query = applyFilter(query, filter, MasterSortFields, "created_at DESC")
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Count counts stock items matching the filter
func (r *GormStockItemRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&ledger.StockItem{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a stock item
func (r *GormStockItemRepository) Save(ctx context.Context, item *ledger.StockItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// SaveDetails updates only the editable columns of an existing item,
// recomputing the close quantity from the stored movement accumulators
func (r *GormStockItemRepository) SaveDetails(ctx context.Context, item *ledger.StockItem) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.StockItem{}).
		Scopes(orgscope.Scope(item.OrgID)).
		Where("id = ?", item.ID).
		UpdateColumns(map[string]interface{}{
			"name":       item.Name,
			"unit":       item.Unit,
			"remark":     item.Remark,
			"open_qty":   item.OpenQty,
			"close_qty":  gorm.Expr("? + stk_in - stk_out", item.OpenQty),
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

// Delete deletes a stock item within an organization
func (r *GormStockItemRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.StockItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ApplyDelta atomically increments stock in/out and recomputes the close
// quantity in the same UPDATE
func (r *GormStockItemRepository) ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta ledger.StockDelta) error {
	if delta.IsZero() {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&ledger.StockItem{}).
		Scopes(orgscope.Scope(orgID)).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"stk_in":     gorm.Expr("stk_in + ?", delta.In),
			"stk_out":    gorm.Expr("stk_out + ?", delta.Out),
			"close_qty":  gorm.Expr("open_qty + stk_in + ? - stk_out - ?", delta.In, delta.Out),
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

// Ensure GormStockItemRepository implements StockItemRepository
var _ ledger.StockItemRepository = (*GormStockItemRepository)(nil)
