package ledger

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBillingPartyRepository is a mock implementation of ledger.BillingPartyRepository
type MockBillingPartyRepository struct {
	mock.Mock
}

func (m *MockBillingPartyRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.BillingParty, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.BillingParty), args.Error(1)
}

func (m *MockBillingPartyRepository) FindByName(ctx context.Context, orgID uuid.UUID, name string) (*ledger.BillingParty, error) {
	args := m.Called(ctx, orgID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.BillingParty), args.Error(1)
}

func (m *MockBillingPartyRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.BillingParty, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.BillingParty), args.Error(1)
}

func (m *MockBillingPartyRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillingPartyRepository) Save(ctx context.Context, party *ledger.BillingParty) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockBillingPartyRepository) SaveDetails(ctx context.Context, party *ledger.BillingParty) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockBillingPartyRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockBillingPartyRepository) ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta ledger.PartyDelta) error {
	args := m.Called(ctx, orgID, id, delta)
	return args.Error(0)
}

func (m *MockBillingPartyRepository) ExistsByName(ctx context.Context, orgID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, orgID, name)
	return args.Bool(0), args.Error(1)
}

// MockDriverRepository is a mock implementation of ledger.DriverRepository
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.Driver, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindByName(ctx context.Context, orgID uuid.UUID, name string) (*ledger.Driver, error) {
	args := m.Called(ctx, orgID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.Driver, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.Driver), args.Error(1)
}

func (m *MockDriverRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDriverRepository) Save(ctx context.Context, driver *ledger.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) SaveDetails(ctx context.Context, driver *ledger.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockDriverRepository) ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta ledger.DriverDelta) error {
	args := m.Called(ctx, orgID, id, delta)
	return args.Error(0)
}

func (m *MockDriverRepository) ApplyDeltaByName(ctx context.Context, orgID uuid.UUID, name string, delta ledger.DriverDelta) error {
	args := m.Called(ctx, orgID, name, delta)
	return args.Error(0)
}

// MockTransporterRepository is a mock implementation of ledger.TransporterRepository
type MockTransporterRepository struct {
	mock.Mock
}

func (m *MockTransporterRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.Transporter, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transporter), args.Error(1)
}

func (m *MockTransporterRepository) FindByName(ctx context.Context, orgID uuid.UUID, name string) (*ledger.Transporter, error) {
	args := m.Called(ctx, orgID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transporter), args.Error(1)
}

func (m *MockTransporterRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.Transporter, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.Transporter), args.Error(1)
}

func (m *MockTransporterRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransporterRepository) Save(ctx context.Context, transporter *ledger.Transporter) error {
	args := m.Called(ctx, transporter)
	return args.Error(0)
}

func (m *MockTransporterRepository) SaveDetails(ctx context.Context, transporter *ledger.Transporter) error {
	args := m.Called(ctx, transporter)
	return args.Error(0)
}

func (m *MockTransporterRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockTransporterRepository) ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta ledger.TransporterDelta) error {
	args := m.Called(ctx, orgID, id, delta)
	return args.Error(0)
}

// MockStockItemRepository is a mock implementation of ledger.StockItemRepository
type MockStockItemRepository struct {
	mock.Mock
}

func (m *MockStockItemRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.StockItem, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindByName(ctx context.Context, orgID uuid.UUID, name string) (*ledger.StockItem, error) {
	args := m.Called(ctx, orgID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.StockItem, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockItemRepository) Save(ctx context.Context, item *ledger.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStockItemRepository) SaveDetails(ctx context.Context, item *ledger.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStockItemRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockStockItemRepository) ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta ledger.StockDelta) error {
	args := m.Called(ctx, orgID, id, delta)
	return args.Error(0)
}

// MockVehicleRepository is a mock implementation of ledger.VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.Vehicle, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByVehNo(ctx context.Context, orgID uuid.UUID, vehNo string) (*ledger.Vehicle, error) {
	args := m.Called(ctx, orgID, vehNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.Vehicle, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) Save(ctx context.Context, vehicle *ledger.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) SaveDetails(ctx context.Context, vehicle *ledger.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockVehicleRepository) ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta ledger.VehicleDelta) error {
	args := m.Called(ctx, orgID, id, delta)
	return args.Error(0)
}

func (m *MockVehicleRepository) ApplyDeltaByVehNo(ctx context.Context, orgID uuid.UUID, vehNo string, delta ledger.VehicleDelta) error {
	args := m.Called(ctx, orgID, vehNo, delta)
	return args.Error(0)
}

// MockTripRepository is a mock implementation of ledger.TripRepository
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.Trip, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Trip), args.Error(1)
}

func (m *MockTripRepository) FindByTripNo(ctx context.Context, orgID uuid.UUID, tripNo string) (*ledger.Trip, error) {
	args := m.Called(ctx, orgID, tripNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Trip), args.Error(1)
}

func (m *MockTripRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.Trip, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.Trip), args.Error(1)
}

func (m *MockTripRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTripRepository) Save(ctx context.Context, trip *ledger.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) CreateBatch(ctx context.Context, trips []*ledger.Trip) (int64, error) {
	args := m.Called(ctx, trips)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTripRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockTripRepository) ExistsByTripNo(ctx context.Context, orgID uuid.UUID, tripNo string) (bool, error) {
	args := m.Called(ctx, orgID, tripNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripRepository) ExistsByVehNo(ctx context.Context, orgID uuid.UUID, vehNo string) (bool, error) {
	args := m.Called(ctx, orgID, vehNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripRepository) ExistingIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, orgID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockTripRepository) ListTripNos(ctx context.Context, orgID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTripRepository) NextTripNo(ctx context.Context, orgID uuid.UUID) (string, error) {
	args := m.Called(ctx, orgID)
	return args.String(0), args.Error(1)
}

// MockTripBookRepository is a mock implementation of ledger.TripBookRepository
type MockTripBookRepository struct {
	mock.Mock
}

func (m *MockTripBookRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.TripBook, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.TripBook), args.Error(1)
}

func (m *MockTripBookRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.TripBook, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.TripBook), args.Error(1)
}

func (m *MockTripBookRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTripBookRepository) Save(ctx context.Context, book *ledger.TripBook) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockTripBookRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockTripBookRepository) ExistsByBillingParty(ctx context.Context, orgID, partyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, orgID, partyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripBookRepository) ExistsByTransporter(ctx context.Context, orgID, transporterID uuid.UUID) (bool, error) {
	args := m.Called(ctx, orgID, transporterID)
	return args.Bool(0), args.Error(1)
}

// MockReturnTripRepository is a mock implementation of ledger.ReturnTripRepository
type MockReturnTripRepository struct {
	mock.Mock
}

func (m *MockReturnTripRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.ReturnTrip, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.ReturnTrip), args.Error(1)
}

func (m *MockReturnTripRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.ReturnTrip, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.ReturnTrip), args.Error(1)
}

func (m *MockReturnTripRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReturnTripRepository) Save(ctx context.Context, rt *ledger.ReturnTrip) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockReturnTripRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockReturnTripRepository) ExistsByBillingParty(ctx context.Context, orgID, partyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, orgID, partyID)
	return args.Bool(0), args.Error(1)
}

// MockPartyPaymentRepository is a mock implementation of ledger.PartyPaymentRepository
type MockPartyPaymentRepository struct {
	mock.Mock
}

func (m *MockPartyPaymentRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.PartyPayment, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.PartyPayment), args.Error(1)
}

func (m *MockPartyPaymentRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.PartyPayment, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.PartyPayment), args.Error(1)
}

func (m *MockPartyPaymentRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartyPaymentRepository) Save(ctx context.Context, payment *ledger.PartyPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPartyPaymentRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockPartyPaymentRepository) ExistsByBillingParty(ctx context.Context, orgID, partyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, orgID, partyID)
	return args.Bool(0), args.Error(1)
}

// MockDriverAdvanceRepository is a mock implementation of ledger.DriverAdvanceRepository
type MockDriverAdvanceRepository struct {
	mock.Mock
}

func (m *MockDriverAdvanceRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.DriverAdvance, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.DriverAdvance), args.Error(1)
}

func (m *MockDriverAdvanceRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.DriverAdvance, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.DriverAdvance), args.Error(1)
}

func (m *MockDriverAdvanceRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDriverAdvanceRepository) Save(ctx context.Context, advance *ledger.DriverAdvance) error {
	args := m.Called(ctx, advance)
	return args.Error(0)
}

func (m *MockDriverAdvanceRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockDriverAdvanceRepository) ExistsByDriverName(ctx context.Context, orgID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, orgID, name)
	return args.Bool(0), args.Error(1)
}

// MockMarketVehPaymentRepository is a mock implementation of ledger.MarketVehPaymentRepository
type MockMarketVehPaymentRepository struct {
	mock.Mock
}

func (m *MockMarketVehPaymentRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.MarketVehPayment, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.MarketVehPayment), args.Error(1)
}

func (m *MockMarketVehPaymentRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.MarketVehPayment, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.MarketVehPayment), args.Error(1)
}

func (m *MockMarketVehPaymentRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMarketVehPaymentRepository) Save(ctx context.Context, payment *ledger.MarketVehPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockMarketVehPaymentRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockMarketVehPaymentRepository) ExistsByTransporter(ctx context.Context, orgID, transporterID uuid.UUID) (bool, error) {
	args := m.Called(ctx, orgID, transporterID)
	return args.Bool(0), args.Error(1)
}

// MockStockEntryRepository is a mock implementation of ledger.StockEntryRepository
type MockStockEntryRepository struct {
	mock.Mock
}

func (m *MockStockEntryRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.StockEntry, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.StockEntry), args.Error(1)
}

func (m *MockStockEntryRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.StockEntry, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]ledger.StockEntry), args.Error(1)
}

func (m *MockStockEntryRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockEntryRepository) Save(ctx context.Context, entry *ledger.StockEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStockEntryRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockStockEntryRepository) ExistsByStockItem(ctx context.Context, orgID, itemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, orgID, itemID)
	return args.Bool(0), args.Error(1)
}
