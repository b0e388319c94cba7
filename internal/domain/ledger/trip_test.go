package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrip(t *testing.T) {
	orgID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("creates trip with normalized vehicle number", func(t *testing.T) {
		trip, err := NewTrip(orgID, "1001", date, " mh12ab1234 ")
		require.NoError(t, err)
		assert.Equal(t, "MH12AB1234", trip.VehNo)
		assert.Equal(t, "1001", trip.TripNo)
		assert.Equal(t, orgID, trip.OrgID)
		assert.NotEqual(t, uuid.Nil, trip.ID)
	})

	t.Run("rejects empty trip number", func(t *testing.T) {
		_, err := NewTrip(orgID, "  ", date, "MH12AB1234")
		require.Error(t, err)
	})

	t.Run("rejects zero date", func(t *testing.T) {
		_, err := NewTrip(orgID, "1001", time.Time{}, "MH12AB1234")
		require.Error(t, err)
	})

	t.Run("rejects empty vehicle number", func(t *testing.T) {
		_, err := NewTrip(orgID, "1001", date, "")
		require.Error(t, err)
	})
}

func TestTripRecompute(t *testing.T) {
	orgID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("derives distance fare and profit", func(t *testing.T) {
		trip, err := NewTrip(orgID, "1001", date, "MH12AB1234")
		require.NoError(t, err)

		trip.StartMeter = 1000
		trip.EndMeter = 1500
		trip.Litres = 50
		trip.TripFare = decimal.NewFromInt(20000)
		trip.RtFare = decimal.NewFromInt(5000)
		trip.TripExpense = decimal.NewFromInt(8000)
		trip.Recompute()

		assert.InDelta(t, 500.0, trip.TripKm, 0.001)
		assert.InDelta(t, 10.0, trip.Average, 0.001)
		assert.True(t, trip.TotalTripFare.Equal(decimal.NewFromInt(25000)))
		assert.True(t, trip.ProfitStatement.Equal(decimal.NewFromInt(17000)))
	})

	t.Run("zero litres yields zero average", func(t *testing.T) {
		trip, err := NewTrip(orgID, "1002", date, "MH12AB1234")
		require.NoError(t, err)

		trip.StartMeter = 100
		trip.EndMeter = 400
		trip.Litres = 0
		trip.Recompute()

		assert.InDelta(t, 300.0, trip.TripKm, 0.001)
		assert.Zero(t, trip.Average)
	})

	t.Run("recompute is derived purely from raw fields", func(t *testing.T) {
		trip, err := NewTrip(orgID, "1003", date, "MH12AB1234")
		require.NoError(t, err)

		trip.TripFare = decimal.NewFromInt(100)
		trip.Recompute()
		first := trip.ProfitStatement

		// Tampering with a derived field must not survive a recompute.
		trip.ProfitStatement = decimal.NewFromInt(999999)
		trip.Recompute()
		assert.True(t, first.Equal(trip.ProfitStatement))
	})
}

func TestTripValidate(t *testing.T) {
	orgID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("rejects end meter below start meter", func(t *testing.T) {
		trip, err := NewTrip(orgID, "1001", date, "MH12AB1234")
		require.NoError(t, err)

		trip.StartMeter = 500
		trip.EndMeter = 400
		err = trip.Validate()
		require.Error(t, err)
	})

	t.Run("rejects negative litres", func(t *testing.T) {
		trip, err := NewTrip(orgID, "1001", date, "MH12AB1234")
		require.NoError(t, err)

		trip.Litres = -1
		require.Error(t, trip.Validate())
	})

	t.Run("rejects negative fare", func(t *testing.T) {
		trip, err := NewTrip(orgID, "1001", date, "MH12AB1234")
		require.NoError(t, err)

		trip.TripFare = decimal.NewFromInt(-5)
		require.Error(t, trip.Validate())
	})
}

func TestTripVehicleContribution(t *testing.T) {
	orgID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	trip, err := NewTrip(orgID, "1001", date, "MH12AB1234")
	require.NoError(t, err)
	trip.TripFare = decimal.NewFromInt(20000)
	trip.TripExpense = decimal.NewFromInt(8000)
	trip.Recompute()

	d := trip.VehicleContribution()
	assert.Equal(t, int64(1), d.Trips)
	assert.True(t, d.Profit.Equal(decimal.NewFromInt(12000)))

	t.Run("update delta equals new minus old", func(t *testing.T) {
		old := trip.VehicleContribution()

		trip.TripExpense = decimal.NewFromInt(10000)
		trip.Recompute()
		updated := trip.VehicleContribution()

		diff := updated.Sub(old)
		assert.Equal(t, int64(0), diff.Trips)
		assert.True(t, diff.Profit.Equal(decimal.NewFromInt(-2000)))
	})
}
