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

// expenseInsertBatchSize is the chunk size for bulk expense inserts
const expenseInsertBatchSize = 200

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by ID within an organization
func (r *GormExpenseRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.Expense, error) {
	var expense ledger.Expense
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// FindAll finds all expenses matching the filter
func (r *GormExpenseRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.Expense, error) {
	var expenses []ledger.Expense
	query := r.applyExpenseFilters(r.db.WithContext(ctx).
		Model(&ledger.Expense{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilter(query, filter, TransactionSortFields, "date DESC, created_at DESC")
	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Count counts expenses matching the filter
func (r *GormExpenseRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyExpenseFilters(r.db.WithContext(ctx).
		Model(&ledger.Expense{}).
		Scopes(orgscope.Scope(orgID)), filter)
	query = applyFilterWithoutPagination(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormExpenseRepository) applyExpenseFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(expense_type) LIKE LOWER(?) OR LOWER(trip_no) LIKE LOWER(?) OR LOWER(ref_veh_no) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	for key, value := range filter.Filters {
		switch key {
		case "expense_type":
			query = query.Where("expense_type = ?", value)
		case "trip_no":
			query = query.Where("trip_no = ?", value)
		case "ref_veh_no":
			query = query.Where("ref_veh_no = ?", value)
		case "is_non_trip_exp":
			query = query.Where("is_non_trip_exp = ?", value)
		}
	}
	return query
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *ledger.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// CreateBatch inserts expenses in batches.
// Returns the number of rows actually inserted.
func (r *GormExpenseRepository) CreateBatch(ctx context.Context, expenses []*ledger.Expense) (int64, error) {
	if len(expenses) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).CreateInBatches(expenses, expenseInsertBatchSize)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete deletes an expense within an organization
func (r *GormExpenseRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormExpenseRepository implements ExpenseRepository
var _ ledger.ExpenseRepository = (*GormExpenseRepository)(nil)
