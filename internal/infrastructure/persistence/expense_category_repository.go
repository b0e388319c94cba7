package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/infrastructure/persistence/orgscope"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormExpenseCategoryRepository implements ExpenseCategoryRepository using GORM
type GormExpenseCategoryRepository struct {
	db *gorm.DB
}

// NewGormExpenseCategoryRepository creates a new GormExpenseCategoryRepository
func NewGormExpenseCategoryRepository(db *gorm.DB) *GormExpenseCategoryRepository {
	return &GormExpenseCategoryRepository{db: db}
}

// FindByID finds a category by ID within an organization
func (r *GormExpenseCategoryRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.ExpenseCategory, error) {
	var category ledger.ExpenseCategory
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll finds all categories in the organization
func (r *GormExpenseCategoryRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.ExpenseCategory, error) {
	var categories []ledger.ExpenseCategory
	query := r.db.WithContext(ctx).
		Model(&ledger.ExpenseCategory{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if mode, ok := filter.Filters["mode"]; ok {
		query = query.Where("mode = ?", mode)
	}
	query = applyFilterWithoutPagination(query, filter).Order("name ASC")
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetOrCreate finds the category by name or inserts it race-safely. The
// insert relies on the unique (org_id, name) index and skips on conflict,
// so concurrent callers converge on one row. Returns true when a new row
// was created.
func (r *GormExpenseCategoryRepository) GetOrCreate(ctx context.Context, orgID uuid.UUID, name string, mode ledger.CategoryMode) (*ledger.ExpenseCategory, bool, error) {
	name = strings.TrimSpace(name)

	var existing ledger.ExpenseCategory
	err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&existing, "name = ?", name).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	category, err := ledger.NewExpenseCategory(orgID, name, mode)
	if err != nil {
		return nil, false, err
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "org_id"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(category)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected > 0 {
		return category, true, nil
	}

	// lost the race, fetch the winner
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&existing, "name = ?", name).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

// Save creates or updates a category
func (r *GormExpenseCategoryRepository) Save(ctx context.Context, category *ledger.ExpenseCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete deletes a category within an organization
func (r *GormExpenseCategoryRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.ExpenseCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormExpenseCategoryRepository implements ExpenseCategoryRepository
var _ ledger.ExpenseCategoryRepository = (*GormExpenseCategoryRepository)(nil)
