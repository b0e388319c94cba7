package ledger

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Master repositories are all org-scoped: every method takes the organization
// ID and rows outside it behave as if they do not exist. ApplyDelta is the
// atomic increment primitive; it adjusts the accumulator columns and the
// derived balance in a single UPDATE so concurrent writers never lose deltas.
// SaveDetails is its counterpart for master edits: it writes only the editable
// columns, so an edit started from a stale read cannot overwrite accumulators
// that moved in between.

// BillingPartyRepository defines the interface for billing party persistence
type BillingPartyRepository interface {
	// FindByID finds a billing party by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*BillingParty, error)

	// FindByName finds a billing party by its name within an organization
	FindByName(ctx context.Context, orgID uuid.UUID, name string) (*BillingParty, error)

	// FindAll finds all billing parties matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]BillingParty, error)

	// Count counts billing parties matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a billing party
	Save(ctx context.Context, party *BillingParty) error

	// SaveDetails persists only the editable detail columns of an existing
	// party and recomputes the derived balance from the stored accumulators
	// in the same statement. Deltas applied concurrently are preserved.
	SaveDetails(ctx context.Context, party *BillingParty) error

	// Delete deletes a billing party within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ApplyDelta atomically increments the accumulator columns and recomputes
	// the derived balance in the same statement
	ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta PartyDelta) error

	// ExistsByName checks if a billing party with the given name exists
	ExistsByName(ctx context.Context, orgID uuid.UUID, name string) (bool, error)
}

// DriverRepository defines the interface for driver persistence
type DriverRepository interface {
	// FindByID finds a driver by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*Driver, error)

	// FindByName finds a driver by name within an organization
	FindByName(ctx context.Context, orgID uuid.UUID, name string) (*Driver, error)

	// FindAll finds all drivers matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Driver, error)

	// Count counts drivers matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a driver
	Save(ctx context.Context, driver *Driver) error

	// SaveDetails persists only the editable detail columns of an existing
	// driver and recomputes the close balance from the stored accumulators
	SaveDetails(ctx context.Context, driver *Driver) error

	// Delete deletes a driver within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ApplyDelta atomically increments debit/credit and recomputes the close
	// balance in the same statement
	ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta DriverDelta) error

	// ApplyDeltaByName applies a delta to the driver addressed by name.
	// A missing driver is not an error; the delta is silently dropped.
	ApplyDeltaByName(ctx context.Context, orgID uuid.UUID, name string, delta DriverDelta) error
}

// TransporterRepository defines the interface for transporter persistence
type TransporterRepository interface {
	// FindByID finds a transporter by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*Transporter, error)

	// FindByName finds a transporter by name within an organization
	FindByName(ctx context.Context, orgID uuid.UUID, name string) (*Transporter, error)

	// FindAll finds all transporters matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Transporter, error)

	// Count counts transporters matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a transporter
	Save(ctx context.Context, transporter *Transporter) error

	// SaveDetails persists only the editable detail columns of an existing
	// transporter and recomputes the close balance from the stored accumulators
	SaveDetails(ctx context.Context, transporter *Transporter) error

	// Delete deletes a transporter within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ApplyDelta atomically increments bill/paid and recomputes the close
	// balance in the same statement
	ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta TransporterDelta) error
}

// StockItemRepository defines the interface for stock item persistence
type StockItemRepository interface {
	// FindByID finds a stock item by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*StockItem, error)

	// FindByName finds a stock item by name within an organization
	FindByName(ctx context.Context, orgID uuid.UUID, name string) (*StockItem, error)

	// FindAll finds all stock items matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]StockItem, error)

	// Count counts stock items matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a stock item
	Save(ctx context.Context, item *StockItem) error

	// SaveDetails persists only the editable detail columns of an existing
	// item and recomputes the close quantity from the stored accumulators
	SaveDetails(ctx context.Context, item *StockItem) error

	// Delete deletes a stock item within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ApplyDelta atomically increments stock in/out and recomputes the close
	// quantity in the same statement
	ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta StockDelta) error
}

// VehicleRepository defines the interface for vehicle persistence
type VehicleRepository interface {
	// FindByID finds a vehicle by ID within an organization
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*Vehicle, error)

	// FindByVehNo finds a vehicle by registration number within an organization
	FindByVehNo(ctx context.Context, orgID uuid.UUID, vehNo string) (*Vehicle, error)

	// FindAll finds all vehicles matching the filter
	FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Vehicle, error)

	// Count counts vehicles matching the filter
	Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a vehicle
	Save(ctx context.Context, vehicle *Vehicle) error

	// SaveDetails persists only the editable detail columns of an existing
	// vehicle. The trip count and net profit counters are never written.
	SaveDetails(ctx context.Context, vehicle *Vehicle) error

	// Delete deletes a vehicle within an organization
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// ApplyDelta atomically increments the trip count and net profit
	ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta VehicleDelta) error

	// ApplyDeltaByVehNo applies a delta to the vehicle addressed by its
	// registration number. A missing vehicle is not an error; the delta is
	// silently dropped.
	ApplyDeltaByVehNo(ctx context.Context, orgID uuid.UUID, vehNo string, delta VehicleDelta) error
}
