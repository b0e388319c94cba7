package ledger

import (
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockEntryType is the direction of a stock movement.
type StockEntryType string

const (
	StockEntryIn  StockEntryType = "IN"
	StockEntryOut StockEntryType = "OUT"
)

// StockEntry is a quantity movement against a stock item.
type StockEntry struct {
	shared.OrgEntity
	Date          time.Time       `gorm:"type:date;not null;index"`
	StockItemID   *uuid.UUID      `gorm:"type:uuid;index"`
	StockItemName string          `gorm:"type:varchar(200)"`
	EntryType     StockEntryType  `gorm:"type:varchar(3);not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
	Remark        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StockEntry) TableName() string {
	return "stock_entries"
}

// NewStockEntry creates a stock movement entry.
func NewStockEntry(orgID uuid.UUID, date time.Time, entryType StockEntryType, qty decimal.Decimal) (*StockEntry, error) {
	e := &StockEntry{
		OrgEntity: shared.NewOrgEntity(orgID),
		Date:      date,
		EntryType: entryType,
		Quantity:  qty,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the raw fields.
func (e *StockEntry) Validate() error {
	if e.Date.IsZero() {
		return shared.NewValidationError("date", "is required")
	}
	switch e.EntryType {
	case StockEntryIn, StockEntryOut:
	default:
		return shared.NewValidationError("entry_type", "must be IN or OUT")
	}
	if !e.Quantity.IsPositive() {
		return shared.NewValidationError("quantity", "must be positive")
	}
	return nil
}

// StockContribution returns what this movement adds to the stock item's
// accumulators. Unlinked entries contribute nothing.
func (e *StockEntry) StockContribution() StockDelta {
	if e.StockItemID == nil {
		return StockDelta{}
	}
	if e.EntryType == StockEntryIn {
		return StockDelta{In: e.Quantity}
	}
	return StockDelta{Out: e.Quantity}
}
