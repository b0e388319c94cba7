package persistence

import (
	"context"
	"testing"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupVehicleTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&ledger.Vehicle{})
	require.NoError(t, err)

	return db
}

func newTestVehicle(t *testing.T, orgID uuid.UUID, vehNo string) *ledger.Vehicle {
	t.Helper()
	vehicle, err := ledger.NewVehicle(orgID, vehNo, "Truck")
	require.NoError(t, err)
	return vehicle
}

func TestVehicleRepository_FindByVehNo(t *testing.T) {
	db := setupVehicleTestDB(t)
	repo := NewGormVehicleRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	vehicle := newTestVehicle(t, orgID, "ka01ab1234")
	require.NoError(t, repo.Save(ctx, vehicle))

	t.Run("normalizes the lookup key", func(t *testing.T) {
		found, err := repo.FindByVehNo(ctx, orgID, " ka01ab1234 ")
		require.NoError(t, err)
		assert.Equal(t, vehicle.ID, found.ID)
		assert.Equal(t, "KA01AB1234", found.VehNo)
	})

	t.Run("does not leak across organizations", func(t *testing.T) {
		_, err := repo.FindByVehNo(ctx, uuid.New(), "KA01AB1234")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestVehicleRepository_ApplyDelta(t *testing.T) {
	db := setupVehicleTestDB(t)
	repo := NewGormVehicleRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	vehicle := newTestVehicle(t, orgID, "KA01AB1234")
	require.NoError(t, repo.Save(ctx, vehicle))

	t.Run("increments the counters", func(t *testing.T) {
		err := repo.ApplyDelta(ctx, orgID, vehicle.ID, ledger.VehicleDelta{
			Trips:  1,
			Profit: decimal.NewFromInt(4500),
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, orgID, vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), found.TotalTrip)
		assert.True(t, found.NetProfit.Equal(decimal.NewFromInt(4500)))
	})

	t.Run("negative delta reverses a contribution", func(t *testing.T) {
		contribution := ledger.VehicleDelta{Trips: 1, Profit: decimal.NewFromInt(4500)}
		err := repo.ApplyDelta(ctx, orgID, vehicle.ID, contribution.Neg())
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, orgID, vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), found.TotalTrip)
		assert.True(t, found.NetProfit.IsZero())
	})

	t.Run("zero delta is a no-op", func(t *testing.T) {
		err := repo.ApplyDelta(ctx, orgID, uuid.New(), ledger.VehicleDelta{})
		assert.NoError(t, err)
	})

	t.Run("missing vehicle is an error", func(t *testing.T) {
		err := repo.ApplyDelta(ctx, orgID, uuid.New(), ledger.VehicleDelta{Trips: 1})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("cannot reach a vehicle in another organization", func(t *testing.T) {
		err := repo.ApplyDelta(ctx, uuid.New(), vehicle.ID, ledger.VehicleDelta{Trips: 1})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestVehicleRepository_SaveDetails(t *testing.T) {
	db := setupVehicleTestDB(t)
	repo := NewGormVehicleRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("counters survive an edit started from a stale read", func(t *testing.T) {
		vehicle := newTestVehicle(t, orgID, "KA01AB1234")
		require.NoError(t, repo.Save(ctx, vehicle))

		snapshot, err := repo.FindByID(ctx, orgID, vehicle.ID)
		require.NoError(t, err)

		// Trips land while the edit is open.
		require.NoError(t, repo.ApplyDelta(ctx, orgID, vehicle.ID, ledger.VehicleDelta{
			Trips:  3,
			Profit: decimal.NewFromInt(9000),
		}))

		snapshot.VehType = "Trailer"
		require.NoError(t, repo.SaveDetails(ctx, snapshot))

		found, err := repo.FindByID(ctx, orgID, vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, "Trailer", found.VehType)
		assert.Equal(t, int64(3), found.TotalTrip)
		assert.True(t, found.NetProfit.Equal(decimal.NewFromInt(9000)))
	})

	t.Run("missing vehicle is an error", func(t *testing.T) {
		ghost := newTestVehicle(t, orgID, "ZZ99XX0000")
		assert.ErrorIs(t, repo.SaveDetails(ctx, ghost), shared.ErrNotFound)
	})
}

func TestVehicleRepository_ApplyDeltaByVehNo(t *testing.T) {
	db := setupVehicleTestDB(t)
	repo := NewGormVehicleRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	vehicle := newTestVehicle(t, orgID, "KA01AB1234")
	require.NoError(t, repo.Save(ctx, vehicle))

	t.Run("normalizes the registration number", func(t *testing.T) {
		err := repo.ApplyDeltaByVehNo(ctx, orgID, " ka01ab1234 ", ledger.VehicleDelta{
			Trips:  2,
			Profit: decimal.NewFromInt(1000),
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, orgID, vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), found.TotalTrip)
		assert.True(t, found.NetProfit.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("unknown registration is silently dropped", func(t *testing.T) {
		err := repo.ApplyDeltaByVehNo(ctx, orgID, "ZZ99XX0000", ledger.VehicleDelta{Trips: 1})
		assert.NoError(t, err)
	})

	t.Run("empty registration is a no-op", func(t *testing.T) {
		err := repo.ApplyDeltaByVehNo(ctx, orgID, "", ledger.VehicleDelta{Trips: 1})
		assert.NoError(t, err)
	})
}

func TestVehicleRepository_FindAll(t *testing.T) {
	db := setupVehicleTestDB(t)
	repo := NewGormVehicleRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestVehicle(t, orgID, "KA01AB1234")))
	require.NoError(t, repo.Save(ctx, newTestVehicle(t, orgID, "MH12CD5678")))
	require.NoError(t, repo.Save(ctx, newTestVehicle(t, uuid.New(), "TN09EF9012")))

	t.Run("scopes to the organization", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.OrderBy = "veh_no"
		filter.OrderDir = "asc"
		vehicles, err := repo.FindAll(ctx, orgID, filter)
		require.NoError(t, err)
		require.Len(t, vehicles, 2)
		assert.Equal(t, "KA01AB1234", vehicles[0].VehNo)
		assert.Equal(t, "MH12CD5678", vehicles[1].VehNo)
	})

	t.Run("search matches the registration number", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "mh12"
		vehicles, err := repo.FindAll(ctx, orgID, filter)
		require.NoError(t, err)
		require.Len(t, vehicles, 1)
		assert.Equal(t, "MH12CD5678", vehicles[0].VehNo)
	})
}
