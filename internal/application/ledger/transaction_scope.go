package ledger

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/ledger"
)

// TransactionalRepositories exposes every repository bound to one database
// transaction. A ledger write and the balance deltas it propagates must go
// through the same instance so they commit or roll back together.
type TransactionalRepositories interface {
	Trips() ledger.TripRepository
	TripBooks() ledger.TripBookRepository
	ReturnTrips() ledger.ReturnTripRepository
	PartyPayments() ledger.PartyPaymentRepository
	DriverAdvances() ledger.DriverAdvanceRepository
	MarketVehPayments() ledger.MarketVehPaymentRepository
	StockEntries() ledger.StockEntryRepository
	Expenses() ledger.ExpenseRepository
	ExpenseCategories() ledger.ExpenseCategoryRepository
	PaymentModes() ledger.PaymentModeRepository
	BillingParties() ledger.BillingPartyRepository
	Drivers() ledger.DriverRepository
	Transporters() ledger.TransporterRepository
	StockItems() ledger.StockItemRepository
	Vehicles() ledger.VehicleRepository
}

// TransactionScope executes a function within a database transaction.
// Returning an error from the function rolls everything back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// StaticRepositories is a TransactionalRepositories backed by fixed repository
// instances. Used with NoOpTransactionScope in tests.
type StaticRepositories struct {
	TripRepo             ledger.TripRepository
	TripBookRepo         ledger.TripBookRepository
	ReturnTripRepo       ledger.ReturnTripRepository
	PartyPaymentRepo     ledger.PartyPaymentRepository
	DriverAdvanceRepo    ledger.DriverAdvanceRepository
	MarketVehPaymentRepo ledger.MarketVehPaymentRepository
	StockEntryRepo       ledger.StockEntryRepository
	ExpenseRepo          ledger.ExpenseRepository
	ExpenseCategoryRepo  ledger.ExpenseCategoryRepository
	PaymentModeRepo      ledger.PaymentModeRepository
	BillingPartyRepo     ledger.BillingPartyRepository
	DriverRepo           ledger.DriverRepository
	TransporterRepo      ledger.TransporterRepository
	StockItemRepo        ledger.StockItemRepository
	VehicleRepo          ledger.VehicleRepository
}

func (s *StaticRepositories) Trips() ledger.TripRepository                 { return s.TripRepo }
func (s *StaticRepositories) TripBooks() ledger.TripBookRepository         { return s.TripBookRepo }
func (s *StaticRepositories) ReturnTrips() ledger.ReturnTripRepository     { return s.ReturnTripRepo }
func (s *StaticRepositories) PartyPayments() ledger.PartyPaymentRepository { return s.PartyPaymentRepo }
func (s *StaticRepositories) DriverAdvances() ledger.DriverAdvanceRepository {
	return s.DriverAdvanceRepo
}
func (s *StaticRepositories) MarketVehPayments() ledger.MarketVehPaymentRepository {
	return s.MarketVehPaymentRepo
}
func (s *StaticRepositories) StockEntries() ledger.StockEntryRepository { return s.StockEntryRepo }
func (s *StaticRepositories) Expenses() ledger.ExpenseRepository        { return s.ExpenseRepo }
func (s *StaticRepositories) ExpenseCategories() ledger.ExpenseCategoryRepository {
	return s.ExpenseCategoryRepo
}
func (s *StaticRepositories) PaymentModes() ledger.PaymentModeRepository  { return s.PaymentModeRepo }
func (s *StaticRepositories) BillingParties() ledger.BillingPartyRepository {
	return s.BillingPartyRepo
}
func (s *StaticRepositories) Drivers() ledger.DriverRepository           { return s.DriverRepo }
func (s *StaticRepositories) Transporters() ledger.TransporterRepository { return s.TransporterRepo }
func (s *StaticRepositories) StockItems() ledger.StockItemRepository     { return s.StockItemRepo }
func (s *StaticRepositories) Vehicles() ledger.VehicleRepository         { return s.VehicleRepo }

// NoOpTransactionScope runs the function without a transaction. Only for
// tests, where sqlite runs single-threaded and rollback is not exercised.
type NoOpTransactionScope struct {
	Repos TransactionalRepositories
}

// Execute runs fn directly against the static repositories
func (s *NoOpTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s.Repos)
}

// Ensure implementations satisfy the interfaces
var (
	_ TransactionalRepositories = (*StaticRepositories)(nil)
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
)
