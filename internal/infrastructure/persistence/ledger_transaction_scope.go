package persistence

import (
	"context"

	appledger "github.com/fleetledger/backend/internal/application/ledger"
	"github.com/fleetledger/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormLedgerTransactionScope implements TransactionScope using GORM
// transactions. Every repository handed to the callback is bound to the
// same tx, so an entry write and its balance propagation commit atomically.
type GormLedgerTransactionScope struct {
	db *gorm.DB
}

// NewGormLedgerTransactionScope creates a new GormLedgerTransactionScope
func NewGormLedgerTransactionScope(db *gorm.DB) *GormLedgerTransactionScope {
	return &GormLedgerTransactionScope{db: db}
}

// Execute runs fn within a database transaction
func (s *GormLedgerTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}

// txRepositories builds repositories on demand, all bound to one tx
type txRepositories struct {
	tx *gorm.DB
}

func (r *txRepositories) Trips() ledger.TripRepository             { return NewGormTripRepository(r.tx) }
func (r *txRepositories) TripBooks() ledger.TripBookRepository     { return NewGormTripBookRepository(r.tx) }
func (r *txRepositories) ReturnTrips() ledger.ReturnTripRepository {
	return NewGormReturnTripRepository(r.tx)
}
func (r *txRepositories) PartyPayments() ledger.PartyPaymentRepository {
	return NewGormPartyPaymentRepository(r.tx)
}
func (r *txRepositories) DriverAdvances() ledger.DriverAdvanceRepository {
	return NewGormDriverAdvanceRepository(r.tx)
}
func (r *txRepositories) MarketVehPayments() ledger.MarketVehPaymentRepository {
	return NewGormMarketVehPaymentRepository(r.tx)
}
func (r *txRepositories) StockEntries() ledger.StockEntryRepository {
	return NewGormStockEntryRepository(r.tx)
}
func (r *txRepositories) Expenses() ledger.ExpenseRepository { return NewGormExpenseRepository(r.tx) }
func (r *txRepositories) ExpenseCategories() ledger.ExpenseCategoryRepository {
	return NewGormExpenseCategoryRepository(r.tx)
}
func (r *txRepositories) PaymentModes() ledger.PaymentModeRepository {
	return NewGormPaymentModeRepository(r.tx)
}
func (r *txRepositories) BillingParties() ledger.BillingPartyRepository {
	return NewGormBillingPartyRepository(r.tx)
}
func (r *txRepositories) Drivers() ledger.DriverRepository { return NewGormDriverRepository(r.tx) }
func (r *txRepositories) Transporters() ledger.TransporterRepository {
	return NewGormTransporterRepository(r.tx)
}
func (r *txRepositories) StockItems() ledger.StockItemRepository {
	return NewGormStockItemRepository(r.tx)
}
func (r *txRepositories) Vehicles() ledger.VehicleRepository { return NewGormVehicleRepository(r.tx) }

// Ensure implementations satisfy the interfaces
var (
	_ appledger.TransactionScope          = (*GormLedgerTransactionScope)(nil)
	_ appledger.TransactionalRepositories = (*txRepositories)(nil)
)
