package ledger

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TripRepository defines the interface for trip persistence
type TripRepository interface {
	// FindByID finds a trip by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*Trip, error)

	// FindByTripNo finds a trip by its natural key within an organization
	FindByTripNo(ctx context.Context, orgID uuid.UUID, tripNo string) (*Trip, error)

	// FindAll finds all trips matching the filter, ordered by trip number descending
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Trip, error)

	// Count counts trips matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a trip
	Save(ctx context.Context, trip *Trip) error

	// CreateBatch inserts trips in batches, skipping natural-key conflicts.
	// Returns the number of rows actually inserted.
	CreateBatch(ctx context.Context, trips []*Trip) (int64, error)

	// Delete deletes a trip within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ExistsByTripNo checks if a trip with the given number exists
	ExistsByTripNo(ctx context.Context, orgID uuid.UUID, tripNo string) (bool, error)

	// ExistsByVehNo checks if any trip references the given vehicle number
	ExistsByVehNo(ctx context.Context, orgID uuid.UUID, vehNo string) (bool, error)

	// ExistingIDs returns which of the given trip IDs exist in the
	// organization. Rows skipped by CreateBatch keep their conflicting
	// predecessor's ID, so this identifies what a batch actually inserted.
	ExistingIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)

	// ListTripNos returns every trip number in the organization
	ListTripNos(ctx context.Context, orgID uuid.UUID) ([]string, error)

	// NextTripNo returns the next free numeric trip number for the organization
	NextTripNo(ctx context.Context, orgID uuid.UUID) (string, error)
}

// TripBookRepository defines the interface for trip book persistence
type TripBookRepository interface {
	// FindByID finds a trip book entry by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*TripBook, error)

	// FindAll finds all trip book entries matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]TripBook, error)

	// Count counts trip book entries matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a trip book entry
	Save(ctx context.Context, book *TripBook) error

	// Delete deletes a trip book entry within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ExistsByBillingParty checks if any entry references the billing party
	ExistsByBillingParty(ctx context.Context, orgID, partyID uuid.UUID) (bool, error)

	// ExistsByTransporter checks if any entry references the transporter
	ExistsByTransporter(ctx context.Context, orgID, transporterID uuid.UUID) (bool, error)
}

// ReturnTripRepository defines the interface for return trip persistence
type ReturnTripRepository interface {
	// FindByID finds a return trip by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*ReturnTrip, error)

	// FindAll finds all return trips matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ReturnTrip, error)

	// Count counts return trips matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a return trip
	Save(ctx context.Context, rt *ReturnTrip) error

	// Delete deletes a return trip within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ExistsByBillingParty checks if any return trip references the billing party
	ExistsByBillingParty(ctx context.Context, orgID, partyID uuid.UUID) (bool, error)
}

// PartyPaymentRepository defines the interface for party payment persistence
type PartyPaymentRepository interface {
	// FindByID finds a party payment by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*PartyPayment, error)

	// FindAll finds all party payments matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]PartyPayment, error)

	// Count counts party payments matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a party payment
	Save(ctx context.Context, payment *PartyPayment) error

	// Delete deletes a party payment within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ExistsByBillingParty checks if any payment references the billing party
	ExistsByBillingParty(ctx context.Context, orgID, partyID uuid.UUID) (bool, error)
}

// DriverAdvanceRepository defines the interface for driver advance persistence
type DriverAdvanceRepository interface {
	// FindByID finds a driver advance by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*DriverAdvance, error)

	// FindAll finds all driver advances matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]DriverAdvance, error)

	// Count counts driver advances matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a driver advance
	Save(ctx context.Context, advance *DriverAdvance) error

	// Delete deletes a driver advance within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ExistsByDriverName checks if any advance references the driver name
	ExistsByDriverName(ctx context.Context, orgID uuid.UUID, name string) (bool, error)
}

// MarketVehPaymentRepository defines the interface for market vehicle payment persistence
type MarketVehPaymentRepository interface {
	// FindByID finds a market vehicle payment by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*MarketVehPayment, error)

	// FindAll finds all market vehicle payments matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]MarketVehPayment, error)

	// Count counts market vehicle payments matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a market vehicle payment
	Save(ctx context.Context, payment *MarketVehPayment) error

	// Delete deletes a market vehicle payment within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ExistsByTransporter checks if any payment references the transporter
	ExistsByTransporter(ctx context.Context, orgID, transporterID uuid.UUID) (bool, error)
}

// StockEntryRepository defines the interface for stock entry persistence
type StockEntryRepository interface {
	// FindByID finds a stock entry by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*StockEntry, error)

	// FindAll finds all stock entries matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]StockEntry, error)

	// Count counts stock entries matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a stock entry
	Save(ctx context.Context, entry *StockEntry) error

	// Delete deletes a stock entry within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ExistsByStockItem checks if any entry references the stock item
	ExistsByStockItem(ctx context.Context, orgID, itemID uuid.UUID) (bool, error)
}

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	// FindByID finds an expense by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*Expense, error)

	// FindAll finds all expenses matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Expense, error)

	// Count counts expenses matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates an expense
	Save(ctx context.Context, expense *Expense) error

	// CreateBatch inserts expenses in batches.
	// Returns the number of rows actually inserted.
	CreateBatch(ctx context.Context, expenses []*Expense) (int64, error)

	// Delete deletes an expense within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// ExpenseCategoryRepository defines the interface for expense category persistence
type ExpenseCategoryRepository interface {
	// FindByID finds a category by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*ExpenseCategory, error)

	// FindAll finds all categories in the organization
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ExpenseCategory, error)

	// GetOrCreate finds the category by name or inserts it race-safely.
	// Returns true when a new row was created.
	GetOrCreate(ctx context.Context, orgID uuid.UUID, name string, mode CategoryMode) (*ExpenseCategory, bool, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *ExpenseCategory) error

	// Delete deletes a category within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// PaymentModeRepository defines the interface for payment mode persistence
type PaymentModeRepository interface {
	// FindByID finds a payment mode by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*PaymentMode, error)

	// FindAll finds all payment modes in the organization
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]PaymentMode, error)

	// Save creates or updates a payment mode
	Save(ctx context.Context, mode *PaymentMode) error

	// Delete deletes a payment mode within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}
