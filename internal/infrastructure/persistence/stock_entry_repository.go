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

// GormStockEntryRepository implements StockEntryRepository using GORM
type GormStockEntryRepository struct {
	db *gorm.DB
}

// NewGormStockEntryRepository creates a new GormStockEntryRepository
func NewGormStockEntryRepository(db *gorm.DB) *GormStockEntryRepository {
	return &GormStockEntryRepository{db: db}
}

// FindByID finds a stock entry by ID within an organization
func (r *GormStockEntryRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.StockEntry, error) {
	var entry ledger.StockEntry
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAll finds all stock entries matching the filter
func (r *GormStockEntryRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.StockEntry, error) {
	var entries []ledger.StockEntry
	query := r.applyEntryFilters(r.db.WithContext(ctx).
		Model(&ledger.StockEntry{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilter(query, filter, TransactionSortFields, "date DESC, created_at DESC")
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Count counts stock entries matching the filter
func (r *GormStockEntryRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyEntryFilters(r.db.WithContext(ctx).
		Model(&ledger.StockEntry{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilterWithoutPagination(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormStockEntryRepository) applyEntryFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(stock_item_name) LIKE LOWER(?)", pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "stock_item_id":
			query = query.Where("stock_item_id = ?", value)
		case "entry_type":
			query = query.Where("entry_type = ?", value)
		}
	}
	return query
}

// Save creates or updates a stock entry
func (r *GormStockEntryRepository) Save(ctx context.Context, entry *ledger.StockEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete deletes a stock entry within an organization
func (r *GormStockEntryRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.StockEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByStockItem checks if any entry references the stock item
func (r *GormStockEntryRepository) ExistsByStockItem(ctx context.Context, orgID, itemID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.StockEntry{}).
		Scopes(orgscope.Scope(orgID)).
		Where("stock_item_id = ?", itemID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormStockEntryRepository implements StockEntryRepository
var _ ledger.StockEntryRepository = (*GormStockEntryRepository)(nil)
