package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tripBookFixture struct {
	bookRepo        *MockTripBookRepository
	partyRepo       *MockBillingPartyRepository
	transporterRepo *MockTransporterRepository
	svc             *TripBookService
}

func newTripBookFixture() *tripBookFixture {
	f := &tripBookFixture{
		bookRepo:        new(MockTripBookRepository),
		partyRepo:       new(MockBillingPartyRepository),
		transporterRepo: new(MockTransporterRepository),
	}
	scope := &NoOpTransactionScope{Repos: &StaticRepositories{
		TripBookRepo:     f.bookRepo,
		BillingPartyRepo: f.partyRepo,
		TransporterRepo:  f.transporterRepo,
	}}
	f.svc = NewTripBookService(scope, f.bookRepo)
	return f
}

func newTestBook(t *testing.T, orgID uuid.UUID, tripNo string) *ledger.TripBook {
	t.Helper()
	book, err := ledger.NewTripBook(orgID, tripNo, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return book
}

func partyDeltaOf(billTrip int64) func(ledger.PartyDelta) bool {
	return func(d ledger.PartyDelta) bool {
		return d.BillTrip.Equal(decimal.NewFromInt(billTrip)) && d.BillRt.IsZero() && d.Receive.IsZero()
	}
}

func transporterDeltaOf(bill int64) func(ledger.TransporterDelta) bool {
	return func(d ledger.TransporterDelta) bool {
		return d.Bill.Equal(decimal.NewFromInt(bill)) && d.Paid.IsZero()
	}
}

func TestTripBookService_Create(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("bills the linked accounts and derives the totals", func(t *testing.T) {
		f := newTripBookFixture()
		party := newTestParty(t, orgID, "Acme Logistics", 0)
		transporter, err := ledger.NewTransporter(orgID, "Sharma Carriers", "", decimal.Zero)
		require.NoError(t, err)

		f.partyRepo.On("FindByID", ctx, orgID, party.ID).Return(party, nil)
		f.transporterRepo.On("FindByID", ctx, orgID, transporter.ID).Return(transporter, nil)
		f.bookRepo.On("Save", ctx, mock.Anything).Return(nil)
		f.partyRepo.On("ApplyDelta", ctx, orgID, party.ID, mock.MatchedBy(partyDeltaOf(5000))).Return(nil).Once()
		f.transporterRepo.On("ApplyDelta", ctx, orgID, transporter.ID, mock.MatchedBy(transporterDeltaOf(3000))).Return(nil).Once()

		resp, err := f.svc.Create(ctx, orgID, CreateTripBookRequest{
			TripNo:         "TB-1001",
			Date:           time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			BillingPartyID: &party.ID,
			TripAmount:     decimal.NewFromInt(5000),
			AdvanceAmt:     decimal.NewFromInt(1000),
			ShortageAmt:    decimal.NewFromInt(200),
			DeductionAmt:   decimal.NewFromInt(300),
			TransporterID:  &transporter.ID,
			MarketFreight:  decimal.NewFromInt(3000),
			MarketAdvance:  decimal.NewFromInt(500),
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Logistics", resp.BillingPartyName)
		assert.Equal(t, "Sharma Carriers", resp.TransporterName)
		assert.True(t, resp.ReceivedAmt.Equal(decimal.NewFromInt(4500)))
		assert.True(t, resp.PendingAmt.Equal(decimal.NewFromInt(3500)))
		assert.True(t, resp.MarketBalance.Equal(decimal.NewFromInt(2500)))
		assert.True(t, resp.NetProfit.Equal(decimal.NewFromInt(1500)))
		f.partyRepo.AssertExpectations(t)
		f.transporterRepo.AssertExpectations(t)
	})

	t.Run("unlinked entry touches no accounts", func(t *testing.T) {
		f := newTripBookFixture()
		f.bookRepo.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := f.svc.Create(ctx, orgID, CreateTripBookRequest{
			TripNo:     "TB-1002",
			Date:       time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
			TripAmount: decimal.NewFromInt(5000),
		})

		require.NoError(t, err)
		assert.Nil(t, resp.BillingPartyID)
		f.partyRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.transporterRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("zero uuid link means unlinked", func(t *testing.T) {
		f := newTripBookFixture()
		f.bookRepo.On("Save", ctx, mock.Anything).Return(nil)

		nilID := uuid.Nil
		resp, err := f.svc.Create(ctx, orgID, CreateTripBookRequest{
			TripNo:         "TB-1003",
			Date:           time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			BillingPartyID: &nilID,
			TripAmount:     decimal.NewFromInt(5000),
		})

		require.NoError(t, err)
		assert.Nil(t, resp.BillingPartyID)
		f.partyRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
		f.partyRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTripBookService_Update(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("same link applies the difference as one increment", func(t *testing.T) {
		f := newTripBookFixture()
		party := newTestParty(t, orgID, "Acme Logistics", 0)

		book := newTestBook(t, orgID, "TB-1001")
		book.BillingPartyID = &party.ID
		book.TripAmount = decimal.NewFromInt(5000)
		book.Recompute()

		f.bookRepo.On("FindByID", ctx, orgID, book.ID).Return(book, nil)
		f.partyRepo.On("FindByID", ctx, orgID, party.ID).Return(party, nil)
		f.bookRepo.On("Save", ctx, mock.Anything).Return(nil)
		f.partyRepo.On("ApplyDelta", ctx, orgID, party.ID, mock.MatchedBy(partyDeltaOf(2000))).Return(nil).Once()

		_, err := f.svc.Update(ctx, orgID, book.ID, UpdateTripBookRequest{
			TripAmount: decPtr(decimal.NewFromInt(7000)),
		})

		require.NoError(t, err)
		f.partyRepo.AssertNumberOfCalls(t, "ApplyDelta", 1)
	})

	t.Run("unchanged amounts post nothing", func(t *testing.T) {
		f := newTripBookFixture()
		party := newTestParty(t, orgID, "Acme Logistics", 0)

		book := newTestBook(t, orgID, "TB-1001")
		book.BillingPartyID = &party.ID
		book.TripAmount = decimal.NewFromInt(5000)
		book.Recompute()

		f.bookRepo.On("FindByID", ctx, orgID, book.ID).Return(book, nil)
		f.partyRepo.On("FindByID", ctx, orgID, party.ID).Return(party, nil)
		f.bookRepo.On("Save", ctx, mock.Anything).Return(nil)

		_, err := f.svc.Update(ctx, orgID, book.ID, UpdateTripBookRequest{
			Remark: strPtr("weighbridge slip attached"),
		})

		require.NoError(t, err)
		f.partyRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("relinking moves the contribution between parties", func(t *testing.T) {
		f := newTripBookFixture()
		oldParty := newTestParty(t, orgID, "Acme Logistics", 0)
		newParty := newTestParty(t, orgID, "Beta Freight", 0)

		book := newTestBook(t, orgID, "TB-1001")
		book.BillingPartyID = &oldParty.ID
		book.BillingPartyName = oldParty.Name
		book.TripAmount = decimal.NewFromInt(5000)
		book.Recompute()

		f.bookRepo.On("FindByID", ctx, orgID, book.ID).Return(book, nil)
		f.partyRepo.On("FindByID", ctx, orgID, newParty.ID).Return(newParty, nil)
		f.bookRepo.On("Save", ctx, mock.Anything).Return(nil)
		f.partyRepo.On("ApplyDelta", ctx, orgID, oldParty.ID, mock.MatchedBy(partyDeltaOf(-5000))).Return(nil).Once()
		f.partyRepo.On("ApplyDelta", ctx, orgID, newParty.ID, mock.MatchedBy(partyDeltaOf(5000))).Return(nil).Once()

		resp, err := f.svc.Update(ctx, orgID, book.ID, UpdateTripBookRequest{
			BillingPartyID: &newParty.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, "Beta Freight", resp.BillingPartyName)
		f.partyRepo.AssertExpectations(t)
	})

	t.Run("relinking to a zero uuid backs the old party out", func(t *testing.T) {
		f := newTripBookFixture()
		party := newTestParty(t, orgID, "Acme Logistics", 0)

		book := newTestBook(t, orgID, "TB-1001")
		book.BillingPartyID = &party.ID
		book.BillingPartyName = party.Name
		book.TripAmount = decimal.NewFromInt(5000)
		book.Recompute()

		f.bookRepo.On("FindByID", ctx, orgID, book.ID).Return(book, nil)
		f.bookRepo.On("Save", ctx, mock.Anything).Return(nil)
		f.partyRepo.On("ApplyDelta", ctx, orgID, party.ID, mock.MatchedBy(partyDeltaOf(-5000))).Return(nil).Once()

		nilID := uuid.Nil
		resp, err := f.svc.Update(ctx, orgID, book.ID, UpdateTripBookRequest{
			BillingPartyID: &nilID,
		})

		require.NoError(t, err)
		assert.Nil(t, resp.BillingPartyID)
		assert.Equal(t, "", resp.BillingPartyName)
		f.partyRepo.AssertNumberOfCalls(t, "ApplyDelta", 1)
	})

	t.Run("relinking transfers the market freight between transporters", func(t *testing.T) {
		f := newTripBookFixture()
		oldTr, err := ledger.NewTransporter(orgID, "Sharma Carriers", "", decimal.Zero)
		require.NoError(t, err)
		newTr, err := ledger.NewTransporter(orgID, "Verma Roadlines", "", decimal.Zero)
		require.NoError(t, err)

		book := newTestBook(t, orgID, "TB-1001")
		book.TransporterID = &oldTr.ID
		book.TransporterName = oldTr.Name
		book.MarketFreight = decimal.NewFromInt(3000)
		book.Recompute()

		f.bookRepo.On("FindByID", ctx, orgID, book.ID).Return(book, nil)
		f.transporterRepo.On("FindByID", ctx, orgID, newTr.ID).Return(newTr, nil)
		f.bookRepo.On("Save", ctx, mock.Anything).Return(nil)
		f.transporterRepo.On("ApplyDelta", ctx, orgID, oldTr.ID, mock.MatchedBy(transporterDeltaOf(-3000))).Return(nil).Once()
		f.transporterRepo.On("ApplyDelta", ctx, orgID, newTr.ID, mock.MatchedBy(transporterDeltaOf(3000))).Return(nil).Once()

		resp, err := f.svc.Update(ctx, orgID, book.ID, UpdateTripBookRequest{
			TransporterID: &newTr.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, "Verma Roadlines", resp.TransporterName)
		f.transporterRepo.AssertExpectations(t)
	})
}

func TestTripBookService_Delete(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("backs the contributions out of the linked accounts", func(t *testing.T) {
		f := newTripBookFixture()
		party := newTestParty(t, orgID, "Acme Logistics", 0)
		transporter, err := ledger.NewTransporter(orgID, "Sharma Carriers", "", decimal.Zero)
		require.NoError(t, err)

		book := newTestBook(t, orgID, "TB-1001")
		book.BillingPartyID = &party.ID
		book.TripAmount = decimal.NewFromInt(5000)
		book.TransporterID = &transporter.ID
		book.MarketFreight = decimal.NewFromInt(3000)
		book.Recompute()

		f.bookRepo.On("FindByID", ctx, orgID, book.ID).Return(book, nil)
		f.bookRepo.On("Delete", ctx, orgID, book.ID).Return(nil)
		f.partyRepo.On("ApplyDelta", ctx, orgID, party.ID, mock.MatchedBy(partyDeltaOf(-5000))).Return(nil).Once()
		f.transporterRepo.On("ApplyDelta", ctx, orgID, transporter.ID, mock.MatchedBy(transporterDeltaOf(-3000))).Return(nil).Once()

		require.NoError(t, f.svc.Delete(ctx, orgID, book.ID))
		f.partyRepo.AssertExpectations(t)
		f.transporterRepo.AssertExpectations(t)
	})

	t.Run("unlinked entry deletes without touching accounts", func(t *testing.T) {
		f := newTripBookFixture()
		book := newTestBook(t, orgID, "TB-1002")
		book.TripAmount = decimal.NewFromInt(5000)
		book.Recompute()

		f.bookRepo.On("FindByID", ctx, orgID, book.ID).Return(book, nil)
		f.bookRepo.On("Delete", ctx, orgID, book.ID).Return(nil)

		require.NoError(t, f.svc.Delete(ctx, orgID, book.ID))
		f.partyRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.transporterRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// The create, edit, delete cycle must leave the linked accounts exactly where
// they started: every applied delta has to be cancelled by a later one.
func TestTripBookService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	f := newTripBookFixture()
	party := newTestParty(t, orgID, "Acme Logistics", 0)
	transporter, err := ledger.NewTransporter(orgID, "Sharma Carriers", "", decimal.Zero)
	require.NoError(t, err)

	var partyNet ledger.PartyDelta
	var transporterNet ledger.TransporterDelta

	f.partyRepo.On("FindByID", ctx, orgID, party.ID).Return(party, nil)
	f.transporterRepo.On("FindByID", ctx, orgID, transporter.ID).Return(transporter, nil)
	f.partyRepo.On("ApplyDelta", ctx, orgID, party.ID, mock.Anything).
		Run(func(args mock.Arguments) {
			d := args.Get(3).(ledger.PartyDelta)
			partyNet = ledger.PartyDelta{
				BillTrip: partyNet.BillTrip.Add(d.BillTrip),
				BillRt:   partyNet.BillRt.Add(d.BillRt),
				Receive:  partyNet.Receive.Add(d.Receive),
			}
		}).Return(nil)
	f.transporterRepo.On("ApplyDelta", ctx, orgID, transporter.ID, mock.Anything).
		Run(func(args mock.Arguments) {
			d := args.Get(3).(ledger.TransporterDelta)
			transporterNet = ledger.TransporterDelta{
				Bill: transporterNet.Bill.Add(d.Bill),
				Paid: transporterNet.Paid.Add(d.Paid),
			}
		}).Return(nil)

	// Saving the first time pins the row so later calls can read it back.
	f.bookRepo.On("Save", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			book := args.Get(1).(*ledger.TripBook)
			f.bookRepo.On("FindByID", ctx, orgID, book.ID).Return(book, nil)
		}).Return(nil)
	f.bookRepo.On("Delete", ctx, orgID, mock.Anything).Return(nil)

	resp, err := f.svc.Create(ctx, orgID, CreateTripBookRequest{
		TripNo:         "TB-1001",
		Date:           time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		BillingPartyID: &party.ID,
		TripAmount:     decimal.NewFromInt(5000),
		TransporterID:  &transporter.ID,
		MarketFreight:  decimal.NewFromInt(3000),
	})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, orgID, resp.ID, UpdateTripBookRequest{
		TripAmount:    decPtr(decimal.NewFromInt(7000)),
		MarketFreight: decPtr(decimal.NewFromInt(2500)),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, orgID, resp.ID))

	assert.True(t, partyNet.IsZero(), "party deltas must cancel out, got %+v", partyNet)
	assert.True(t, transporterNet.IsZero(), "transporter deltas must cancel out, got %+v", transporterNet)
	f.partyRepo.AssertNumberOfCalls(t, "ApplyDelta", 3)
	f.transporterRepo.AssertNumberOfCalls(t, "ApplyDelta", 3)
}
