package persistence

import (
	"context"
	"testing"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupExpenseCategoryTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&ledger.ExpenseCategory{})
	require.NoError(t, err)

	// GetOrCreate relies on ON CONFLICT(org_id, name); SQLite needs the
	// matching unique index, which the gorm tags alone don't declare.
	err = db.Exec("CREATE UNIQUE INDEX uq_expense_categories_org_name ON expense_categories (org_id, name)").Error
	require.NoError(t, err)

	return db
}

func TestExpenseCategoryRepository_GetOrCreate(t *testing.T) {
	db := setupExpenseCategoryTestDB(t)
	repo := NewGormExpenseCategoryRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("creates a missing category", func(t *testing.T) {
		category, created, err := repo.GetOrCreate(ctx, orgID, " Diesel ", ledger.CategoryModeFuel)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "Diesel", category.Name)
		assert.Equal(t, ledger.CategoryModeFuel, category.Mode)
	})

	t.Run("returns the existing category on repeat", func(t *testing.T) {
		first, created, err := repo.GetOrCreate(ctx, orgID, "Toll", ledger.CategoryModeExpenses)
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := repo.GetOrCreate(ctx, orgID, "Toll", ledger.CategoryModeGeneral)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, ledger.CategoryModeExpenses, second.Mode)
	})

	t.Run("same name in another organization is a new row", func(t *testing.T) {
		category, created, err := repo.GetOrCreate(ctx, uuid.New(), "Diesel", ledger.CategoryModeFuel)
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, orgID, category.OrgID)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, _, err := repo.GetOrCreate(ctx, orgID, "  ", ledger.CategoryModeGeneral)
		require.Error(t, err)
		var dErr *shared.DomainError
		require.ErrorAs(t, err, &dErr)
		assert.Equal(t, "name", dErr.Field)
	})
}

func TestExpenseCategoryRepository_FindAll(t *testing.T) {
	db := setupExpenseCategoryTestDB(t)
	repo := NewGormExpenseCategoryRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	for _, seed := range []struct {
		name string
		mode ledger.CategoryMode
	}{
		{"Diesel", ledger.CategoryModeFuel},
		{"Toll", ledger.CategoryModeExpenses},
		{"Repairs", ledger.CategoryModeExpenses},
	} {
		_, _, err := repo.GetOrCreate(ctx, orgID, seed.name, seed.mode)
		require.NoError(t, err)
	}
	_, _, err := repo.GetOrCreate(ctx, uuid.New(), "Diesel", ledger.CategoryModeFuel)
	require.NoError(t, err)

	t.Run("orders by name within the organization", func(t *testing.T) {
		categories, err := repo.FindAll(ctx, orgID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Diesel", categories[0].Name)
		assert.Equal(t, "Repairs", categories[1].Name)
		assert.Equal(t, "Toll", categories[2].Name)
	})

	t.Run("filters by mode", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["mode"] = string(ledger.CategoryModeExpenses)
		categories, err := repo.FindAll(ctx, orgID, filter)
		require.NoError(t, err)
		require.Len(t, categories, 2)
	})

	t.Run("search matches case-insensitively", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "die"
		categories, err := repo.FindAll(ctx, orgID, filter)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Diesel", categories[0].Name)
	})
}

func TestExpenseCategoryRepository_Delete(t *testing.T) {
	db := setupExpenseCategoryTestDB(t)
	repo := NewGormExpenseCategoryRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	category, _, err := repo.GetOrCreate(ctx, orgID, "Diesel", ledger.CategoryModeFuel)
	require.NoError(t, err)

	t.Run("cannot delete from another organization", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New(), category.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deletes within the organization", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, orgID, category.ID))

		_, err := repo.FindByID(ctx, orgID, category.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
