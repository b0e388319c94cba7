package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTripTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&ledger.Trip{})
	require.NoError(t, err)

	// CreateBatch relies on ON CONFLICT(org_id, trip_no); SQLite needs the
	// matching unique index, which the gorm tags alone don't declare.
	err = db.Exec("CREATE UNIQUE INDEX uq_trips_org_trip_no ON trips (org_id, trip_no)").Error
	require.NoError(t, err)

	return db
}

func newTestTrip(t *testing.T, orgID uuid.UUID, tripNo, vehNo string) *ledger.Trip {
	t.Helper()
	trip, err := ledger.NewTrip(orgID, tripNo, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), vehNo)
	require.NoError(t, err)
	return trip
}

func TestTripRepository_SaveAndFind(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	trip := newTestTrip(t, orgID, "1001", "ka01ab1234")
	trip.TripFare = decimal.NewFromInt(5000)
	trip.RtFare = decimal.NewFromInt(1500)
	trip.TripExpense = decimal.NewFromInt(2000)
	trip.Recompute()

	require.NoError(t, repo.Save(ctx, trip))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, orgID, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, "1001", found.TripNo)
		assert.Equal(t, "KA01AB1234", found.VehNo)
		assert.True(t, found.TotalTripFare.Equal(decimal.NewFromInt(6500)))
		assert.True(t, found.ProfitStatement.Equal(decimal.NewFromInt(4500)))
	})

	t.Run("finds by trip number", func(t *testing.T) {
		found, err := repo.FindByTripNo(ctx, orgID, "1001")
		require.NoError(t, err)
		assert.Equal(t, trip.ID, found.ID)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, orgID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("does not leak across organizations", func(t *testing.T) {
		_, err := repo.FindByTripNo(ctx, uuid.New(), "1001")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestTripRepository_CreateBatch(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("empty batch is a no-op", func(t *testing.T) {
		inserted, err := repo.CreateBatch(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), inserted)
	})

	t.Run("inserts all new rows", func(t *testing.T) {
		batch := []*ledger.Trip{
			newTestTrip(t, orgID, "2001", "KA01AB1234"),
			newTestTrip(t, orgID, "2002", "KA01AB1234"),
			newTestTrip(t, orgID, "2003", "MH12CD5678"),
		}
		inserted, err := repo.CreateBatch(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, int64(3), inserted)
	})

	t.Run("skips trip numbers already in the ledger", func(t *testing.T) {
		batch := []*ledger.Trip{
			newTestTrip(t, orgID, "2003", "MH12CD5678"),
			newTestTrip(t, orgID, "2004", "MH12CD5678"),
		}
		inserted, err := repo.CreateBatch(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, int64(1), inserted)

		count, err := repo.Count(ctx, orgID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("same trip number in another organization is not a conflict", func(t *testing.T) {
		otherOrg := uuid.New()
		inserted, err := repo.CreateBatch(ctx, []*ledger.Trip{
			newTestTrip(t, otherOrg, "2001", "TN09EF9012"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), inserted)
	})
}

func TestTripRepository_ExistingIDs(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestTrip(t, orgID, "3001", "KA01AB1234")))

	t.Run("empty input is a no-op", func(t *testing.T) {
		found, err := repo.ExistingIDs(ctx, orgID, nil)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("tells inserted rows apart from conflict-skipped ones", func(t *testing.T) {
		batch := []*ledger.Trip{
			newTestTrip(t, orgID, "3001", "KA01AB1234"), // loses the conflict, ID never lands
			newTestTrip(t, orgID, "3002", "MH12CD5678"),
		}
		inserted, err := repo.CreateBatch(ctx, batch)
		require.NoError(t, err)
		require.Equal(t, int64(1), inserted)

		found, err := repo.ExistingIDs(ctx, orgID, []uuid.UUID{batch[0].ID, batch[1].ID})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{batch[1].ID}, found)
	})

	t.Run("does not see rows of another organization", func(t *testing.T) {
		otherTrip := newTestTrip(t, uuid.New(), "3003", "TN09EF9012")
		require.NoError(t, repo.Save(ctx, otherTrip))

		found, err := repo.ExistingIDs(ctx, orgID, []uuid.UUID{otherTrip.ID})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestTripRepository_NextTripNo(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("empty ledger starts at 1001", func(t *testing.T) {
		next, err := repo.NextTripNo(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, "1001", next)
	})

	t.Run("returns max numeric plus one", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestTrip(t, orgID, "1050", "KA01AB1234")))
		require.NoError(t, repo.Save(ctx, newTestTrip(t, orgID, "1049", "KA01AB1234")))

		next, err := repo.NextTripNo(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, "1051", next)
	})

	t.Run("ignores non-numeric trip numbers", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestTrip(t, orgID, "IMP-77", "KA01AB1234")))

		next, err := repo.NextTripNo(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, "1051", next)
	})

	t.Run("other organizations do not advance the counter", func(t *testing.T) {
		next, err := repo.NextTripNo(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "1001", next)
	})
}

func TestTripRepository_ListTripNos(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestTrip(t, orgID, "1001", "KA01AB1234")))
	require.NoError(t, repo.Save(ctx, newTestTrip(t, orgID, "1002", "MH12CD5678")))
	require.NoError(t, repo.Save(ctx, newTestTrip(t, uuid.New(), "9001", "TN09EF9012")))

	tripNos, err := repo.ListTripNos(ctx, orgID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1001", "1002"}, tripNos)
}

func TestTripRepository_Exists(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestTrip(t, orgID, "1001", "ka01ab1234")))

	t.Run("by trip number", func(t *testing.T) {
		exists, err := repo.ExistsByTripNo(ctx, orgID, "1001")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByTripNo(ctx, orgID, "1002")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("by vehicle number normalizes case", func(t *testing.T) {
		exists, err := repo.ExistsByVehNo(ctx, orgID, " ka01ab1234 ")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestTripRepository_Delete(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	trip := newTestTrip(t, orgID, "1001", "KA01AB1234")
	require.NoError(t, repo.Save(ctx, trip))

	t.Run("cannot delete from another organization", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New(), trip.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deletes within the organization", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, orgID, trip.ID))

		_, err := repo.FindByID(ctx, orgID, trip.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
