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

func setupPartyTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&ledger.BillingParty{})
	require.NoError(t, err)

	return db
}

func newTestParty(t *testing.T, orgID uuid.UUID, name string, openBal int64) *ledger.BillingParty {
	t.Helper()
	party, err := ledger.NewBillingParty(orgID, name, decimal.NewFromInt(openBal), "")
	require.NoError(t, err)
	return party
}

func TestBillingPartyRepository_ApplyDelta(t *testing.T) {
	db := setupPartyTestDB(t)
	repo := NewGormBillingPartyRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	party := newTestParty(t, orgID, "Acme Cements", 1000)
	require.NoError(t, repo.Save(ctx, party))

	t.Run("increments accumulators and the balance together", func(t *testing.T) {
		err := repo.ApplyDelta(ctx, orgID, party.ID, ledger.PartyDelta{
			BillTrip: decimal.NewFromInt(5000),
			Receive:  decimal.NewFromInt(2000),
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, orgID, party.ID)
		require.NoError(t, err)
		assert.True(t, found.BillAmtTrip.Equal(decimal.NewFromInt(5000)))
		assert.True(t, found.ReceiveAmt.Equal(decimal.NewFromInt(2000)))
		assert.True(t, found.BalanceAmt.Equal(decimal.NewFromInt(4000)))
	})

	t.Run("a negated delta restores the balance", func(t *testing.T) {
		delta := ledger.PartyDelta{
			BillTrip: decimal.NewFromInt(5000),
			Receive:  decimal.NewFromInt(2000),
		}
		require.NoError(t, repo.ApplyDelta(ctx, orgID, party.ID, delta.Neg()))

		found, err := repo.FindByID(ctx, orgID, party.ID)
		require.NoError(t, err)
		assert.True(t, found.BillAmtTrip.IsZero())
		assert.True(t, found.BalanceAmt.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("unknown party is an error", func(t *testing.T) {
		err := repo.ApplyDelta(ctx, orgID, uuid.New(), ledger.PartyDelta{BillTrip: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("does not reach across organizations", func(t *testing.T) {
		err := repo.ApplyDelta(ctx, uuid.New(), party.ID, ledger.PartyDelta{BillTrip: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestBillingPartyRepository_SaveDetails(t *testing.T) {
	db := setupPartyTestDB(t)
	repo := NewGormBillingPartyRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("preserves deltas applied after the edit was read", func(t *testing.T) {
		party := newTestParty(t, orgID, "Acme Cements", 0)
		require.NoError(t, repo.Save(ctx, party))

		// An editor loads the party, then a trip book posting lands before
		// the edit is written back.
		snapshot, err := repo.FindByID(ctx, orgID, party.ID)
		require.NoError(t, err)

		require.NoError(t, repo.ApplyDelta(ctx, orgID, party.ID, ledger.PartyDelta{
			BillTrip: decimal.NewFromInt(8000),
		}))

		snapshot.OpenBal = decimal.NewFromInt(2000)
		snapshot.Remark = "opening balance corrected"
		require.NoError(t, repo.SaveDetails(ctx, snapshot))

		found, err := repo.FindByID(ctx, orgID, party.ID)
		require.NoError(t, err)
		assert.True(t, found.BillAmtTrip.Equal(decimal.NewFromInt(8000)), "posting must survive the edit")
		assert.True(t, found.OpenBal.Equal(decimal.NewFromInt(2000)))
		assert.True(t, found.BalanceAmt.Equal(decimal.NewFromInt(10000)))
		assert.Equal(t, "opening balance corrected", found.Remark)
	})

	t.Run("unknown party is an error", func(t *testing.T) {
		ghost := newTestParty(t, orgID, "Ghost Freight", 0)
		assert.ErrorIs(t, repo.SaveDetails(ctx, ghost), shared.ErrNotFound)
	})

	t.Run("does not reach across organizations", func(t *testing.T) {
		party := newTestParty(t, orgID, "Shree Transport", 0)
		require.NoError(t, repo.Save(ctx, party))

		foreign := *party
		foreign.OrgID = uuid.New()
		assert.ErrorIs(t, repo.SaveDetails(ctx, &foreign), shared.ErrNotFound)
	})
}

func TestBillingPartyRepository_ExistsByName(t *testing.T) {
	db := setupPartyTestDB(t)
	repo := NewGormBillingPartyRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestParty(t, orgID, "Acme Cements", 0)))

	exists, err := repo.ExistsByName(ctx, orgID, "Acme Cements")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, uuid.New(), "Acme Cements")
	require.NoError(t, err)
	assert.False(t, exists)
}
