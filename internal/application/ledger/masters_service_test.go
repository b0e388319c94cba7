package ledger

import (
	"context"
	"testing"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func newTestParty(t *testing.T, orgID uuid.UUID, name string, openBal int64) *ledger.BillingParty {
	t.Helper()
	party, err := ledger.NewBillingParty(orgID, name, decimal.NewFromInt(openBal), "")
	require.NoError(t, err)
	return party
}

func TestBillingPartyService_Update(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("writes details without touching accumulators", func(t *testing.T) {
		partyRepo := new(MockBillingPartyRepository)
		svc := NewBillingPartyService(partyRepo, nil, nil, nil)

		snapshot := newTestParty(t, orgID, "Acme Logistics", 0)
		id := snapshot.ID

		// The row after the write: a trip worth 8000 was posted while the
		// edit was in flight, and the database recomputed the balance from
		// the new opening balance plus the moved accumulator.
		reloaded := newTestParty(t, orgID, "Acme Logistics", 2000)
		reloaded.ID = id
		reloaded.BillAmtTrip = decimal.NewFromInt(8000)
		reloaded.BalanceAmt = decimal.NewFromInt(10000)

		partyRepo.On("FindByID", ctx, orgID, id).Return(snapshot, nil).Once()
		partyRepo.On("SaveDetails", ctx, mock.MatchedBy(func(p *ledger.BillingParty) bool {
			return p.ID == id && p.OpenBal.Equal(decimal.NewFromInt(2000))
		})).Return(nil).Once()
		partyRepo.On("FindByID", ctx, orgID, id).Return(reloaded, nil).Once()

		resp, err := svc.Update(ctx, orgID, id, UpdateBillingPartyRequest{
			OpenBal: decPtr(decimal.NewFromInt(2000)),
		})

		require.NoError(t, err)
		assert.True(t, resp.BillAmtTrip.Equal(decimal.NewFromInt(8000)), "posting must survive the edit")
		assert.True(t, resp.BalanceAmt.Equal(decimal.NewFromInt(10000)))
		partyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		partyRepo.AssertExpectations(t)
	})

	t.Run("rejects a rename to an existing name", func(t *testing.T) {
		partyRepo := new(MockBillingPartyRepository)
		svc := NewBillingPartyService(partyRepo, nil, nil, nil)

		party := newTestParty(t, orgID, "Acme Logistics", 0)
		partyRepo.On("FindByID", ctx, orgID, party.ID).Return(party, nil)
		partyRepo.On("ExistsByName", ctx, orgID, "Beta Freight").Return(true, nil)

		_, err := svc.Update(ctx, orgID, party.ID, UpdateBillingPartyRequest{
			Name: strPtr("Beta Freight"),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		partyRepo.AssertNotCalled(t, "SaveDetails", mock.Anything, mock.Anything)
	})

	t.Run("unknown party is an error", func(t *testing.T) {
		partyRepo := new(MockBillingPartyRepository)
		svc := NewBillingPartyService(partyRepo, nil, nil, nil)

		id := uuid.New()
		partyRepo.On("FindByID", ctx, orgID, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, orgID, id, UpdateBillingPartyRequest{Remark: strPtr("x")})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestBillingPartyService_Delete(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("blocked while payments reference the party", func(t *testing.T) {
		partyRepo := new(MockBillingPartyRepository)
		tripBookRepo := new(MockTripBookRepository)
		returnTripRepo := new(MockReturnTripRepository)
		paymentRepo := new(MockPartyPaymentRepository)
		svc := NewBillingPartyService(partyRepo, tripBookRepo, returnTripRepo, paymentRepo)

		party := newTestParty(t, orgID, "Acme Logistics", 0)
		partyRepo.On("FindByID", ctx, orgID, party.ID).Return(party, nil)
		tripBookRepo.On("ExistsByBillingParty", ctx, orgID, party.ID).Return(false, nil)
		returnTripRepo.On("ExistsByBillingParty", ctx, orgID, party.ID).Return(false, nil)
		paymentRepo.On("ExistsByBillingParty", ctx, orgID, party.ID).Return(true, nil)

		err := svc.Delete(ctx, orgID, party.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		partyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("succeeds when unreferenced", func(t *testing.T) {
		partyRepo := new(MockBillingPartyRepository)
		tripBookRepo := new(MockTripBookRepository)
		returnTripRepo := new(MockReturnTripRepository)
		paymentRepo := new(MockPartyPaymentRepository)
		svc := NewBillingPartyService(partyRepo, tripBookRepo, returnTripRepo, paymentRepo)

		party := newTestParty(t, orgID, "Acme Logistics", 0)
		partyRepo.On("FindByID", ctx, orgID, party.ID).Return(party, nil)
		tripBookRepo.On("ExistsByBillingParty", ctx, orgID, party.ID).Return(false, nil)
		returnTripRepo.On("ExistsByBillingParty", ctx, orgID, party.ID).Return(false, nil)
		paymentRepo.On("ExistsByBillingParty", ctx, orgID, party.ID).Return(false, nil)
		partyRepo.On("Delete", ctx, orgID, party.ID).Return(nil)

		require.NoError(t, svc.Delete(ctx, orgID, party.ID))
		partyRepo.AssertExpectations(t)
	})
}

func TestDriverService_Update(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	newDriver := func(t *testing.T, name string) *ledger.Driver {
		t.Helper()
		driver, err := ledger.NewDriver(orgID, name, decimal.Zero, "")
		require.NoError(t, err)
		return driver
	}

	t.Run("rejects a rename while advances use the old name", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		advanceRepo := new(MockDriverAdvanceRepository)
		svc := NewDriverService(driverRepo, advanceRepo)

		driver := newDriver(t, "Ramesh")
		driverRepo.On("FindByID", ctx, orgID, driver.ID).Return(driver, nil)
		advanceRepo.On("ExistsByDriverName", ctx, orgID, "Ramesh").Return(true, nil)

		_, err := svc.Update(ctx, orgID, driver.ID, UpdateDriverRequest{Name: strPtr("Suresh")})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		driverRepo.AssertNotCalled(t, "SaveDetails", mock.Anything, mock.Anything)
	})

	t.Run("rejects a rename to an existing driver name", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		advanceRepo := new(MockDriverAdvanceRepository)
		svc := NewDriverService(driverRepo, advanceRepo)

		driver := newDriver(t, "Ramesh")
		taken := newDriver(t, "Suresh")
		driverRepo.On("FindByID", ctx, orgID, driver.ID).Return(driver, nil)
		advanceRepo.On("ExistsByDriverName", ctx, orgID, "Ramesh").Return(false, nil)
		driverRepo.On("FindByName", ctx, orgID, "Suresh").Return(taken, nil)

		_, err := svc.Update(ctx, orgID, driver.ID, UpdateDriverRequest{Name: strPtr("Suresh")})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		driverRepo.AssertNotCalled(t, "SaveDetails", mock.Anything, mock.Anything)
	})

	t.Run("renames when the new name is free", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		advanceRepo := new(MockDriverAdvanceRepository)
		svc := NewDriverService(driverRepo, advanceRepo)

		driver := newDriver(t, "Ramesh")
		id := driver.ID
		renamed := newDriver(t, "Suresh")
		renamed.ID = id

		driverRepo.On("FindByID", ctx, orgID, id).Return(driver, nil).Once()
		advanceRepo.On("ExistsByDriverName", ctx, orgID, "Ramesh").Return(false, nil)
		driverRepo.On("FindByName", ctx, orgID, "Suresh").Return(nil, shared.ErrNotFound)
		driverRepo.On("SaveDetails", ctx, mock.MatchedBy(func(d *ledger.Driver) bool {
			return d.ID == id && d.Name == "Suresh"
		})).Return(nil).Once()
		driverRepo.On("FindByID", ctx, orgID, id).Return(renamed, nil).Once()

		resp, err := svc.Update(ctx, orgID, id, UpdateDriverRequest{Name: strPtr("Suresh")})

		require.NoError(t, err)
		assert.Equal(t, "Suresh", resp.Name)
		driverRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		driverRepo.AssertExpectations(t)
	})
}

func TestTransporterService_Update(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	newTransporter := func(t *testing.T, name string) *ledger.Transporter {
		t.Helper()
		transporter, err := ledger.NewTransporter(orgID, name, "", decimal.Zero)
		require.NoError(t, err)
		return transporter
	}

	t.Run("rejects a rename to an existing transporter name", func(t *testing.T) {
		transporterRepo := new(MockTransporterRepository)
		svc := NewTransporterService(transporterRepo, nil, nil)

		transporter := newTransporter(t, "Sharma Carriers")
		taken := newTransporter(t, "Verma Roadlines")
		transporterRepo.On("FindByID", ctx, orgID, transporter.ID).Return(transporter, nil)
		transporterRepo.On("FindByName", ctx, orgID, "Verma Roadlines").Return(taken, nil)

		_, err := svc.Update(ctx, orgID, transporter.ID, UpdateTransporterRequest{
			Name: strPtr("Verma Roadlines"),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		transporterRepo.AssertNotCalled(t, "SaveDetails", mock.Anything, mock.Anything)
	})

	t.Run("renames when the new name is free", func(t *testing.T) {
		transporterRepo := new(MockTransporterRepository)
		svc := NewTransporterService(transporterRepo, nil, nil)

		transporter := newTransporter(t, "Sharma Carriers")
		id := transporter.ID
		renamed := newTransporter(t, "Sharma Carriers Pvt Ltd")
		renamed.ID = id

		transporterRepo.On("FindByID", ctx, orgID, id).Return(transporter, nil).Once()
		transporterRepo.On("FindByName", ctx, orgID, "Sharma Carriers Pvt Ltd").Return(nil, shared.ErrNotFound)
		transporterRepo.On("SaveDetails", ctx, mock.MatchedBy(func(tr *ledger.Transporter) bool {
			return tr.ID == id && tr.Name == "Sharma Carriers Pvt Ltd"
		})).Return(nil).Once()
		transporterRepo.On("FindByID", ctx, orgID, id).Return(renamed, nil).Once()

		resp, err := svc.Update(ctx, orgID, id, UpdateTransporterRequest{
			Name: strPtr("Sharma Carriers Pvt Ltd"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Sharma Carriers Pvt Ltd", resp.Name)
		transporterRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		transporterRepo.AssertExpectations(t)
	})

	t.Run("keeping the current name skips the duplicate check", func(t *testing.T) {
		transporterRepo := new(MockTransporterRepository)
		svc := NewTransporterService(transporterRepo, nil, nil)

		transporter := newTransporter(t, "Sharma Carriers")
		id := transporter.ID
		transporterRepo.On("FindByID", ctx, orgID, id).Return(transporter, nil).Twice()
		transporterRepo.On("SaveDetails", ctx, mock.Anything).Return(nil)

		_, err := svc.Update(ctx, orgID, id, UpdateTransporterRequest{
			Name:   strPtr("Sharma Carriers"),
			Remark: strPtr("updated"),
		})

		require.NoError(t, err)
		transporterRepo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStockItemService_Update(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("rejects a rename to an existing item name", func(t *testing.T) {
		itemRepo := new(MockStockItemRepository)
		svc := NewStockItemService(itemRepo, nil)

		item, err := ledger.NewStockItem(orgID, "Diesel", "Ltr", decimal.Zero)
		require.NoError(t, err)
		taken, err := ledger.NewStockItem(orgID, "AdBlue", "Ltr", decimal.Zero)
		require.NoError(t, err)

		itemRepo.On("FindByID", ctx, orgID, item.ID).Return(item, nil)
		itemRepo.On("FindByName", ctx, orgID, "AdBlue").Return(taken, nil)

		_, err = svc.Update(ctx, orgID, item.ID, UpdateStockItemRequest{Name: strPtr("AdBlue")})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		itemRepo.AssertNotCalled(t, "SaveDetails", mock.Anything, mock.Anything)
	})

	t.Run("writes details and reloads the quantities", func(t *testing.T) {
		itemRepo := new(MockStockItemRepository)
		svc := NewStockItemService(itemRepo, nil)

		item, err := ledger.NewStockItem(orgID, "Diesel", "Ltr", decimal.Zero)
		require.NoError(t, err)
		id := item.ID

		reloaded, err := ledger.NewStockItem(orgID, "Diesel", "Ltr", decimal.NewFromInt(50))
		require.NoError(t, err)
		reloaded.ID = id
		reloaded.StkIn = decimal.NewFromInt(200)
		reloaded.CloseQty = decimal.NewFromInt(250)

		itemRepo.On("FindByID", ctx, orgID, id).Return(item, nil).Once()
		itemRepo.On("SaveDetails", ctx, mock.MatchedBy(func(it *ledger.StockItem) bool {
			return it.ID == id && it.OpenQty.Equal(decimal.NewFromInt(50))
		})).Return(nil).Once()
		itemRepo.On("FindByID", ctx, orgID, id).Return(reloaded, nil).Once()

		resp, err := svc.Update(ctx, orgID, id, UpdateStockItemRequest{
			OpenQty: decPtr(decimal.NewFromInt(50)),
		})

		require.NoError(t, err)
		assert.True(t, resp.StkIn.Equal(decimal.NewFromInt(200)), "movement must survive the edit")
		assert.True(t, resp.CloseQty.Equal(decimal.NewFromInt(250)))
		itemRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestVehicleService_Update(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("writes the type and reloads the counters", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		svc := NewVehicleService(vehicleRepo, nil)

		vehicle, err := ledger.NewVehicle(orgID, "KA01AB1234", "Truck")
		require.NoError(t, err)
		id := vehicle.ID

		reloaded, err := ledger.NewVehicle(orgID, "KA01AB1234", "Trailer")
		require.NoError(t, err)
		reloaded.ID = id
		reloaded.TotalTrip = 3
		reloaded.NetProfit = decimal.NewFromInt(9000)

		vehicleRepo.On("FindByID", ctx, orgID, id).Return(vehicle, nil).Once()
		vehicleRepo.On("SaveDetails", ctx, mock.MatchedBy(func(v *ledger.Vehicle) bool {
			return v.ID == id && v.VehType == "Trailer"
		})).Return(nil).Once()
		vehicleRepo.On("FindByID", ctx, orgID, id).Return(reloaded, nil).Once()

		resp, err := svc.Update(ctx, orgID, id, UpdateVehicleRequest{VehType: strPtr("Trailer")})

		require.NoError(t, err)
		assert.Equal(t, "Trailer", resp.VehType)
		assert.Equal(t, int64(3), resp.TotalTrip)
		assert.True(t, resp.NetProfit.Equal(decimal.NewFromInt(9000)))
		vehicleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
