package ledger

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TripBook is the billing-side record of a trip: what the billing party owes,
// what has been held back, and what a hired market vehicle costs. A nil
// BillingPartyID leaves the row unlinked; only linked rows contribute to the
// party's balance.
type TripBook struct {
	shared.OrgEntity
	TripNo           string     `gorm:"type:varchar(50);not null;index"`
	Date             time.Time  `gorm:"type:date;not null;index"`
	LrNo             string     `gorm:"type:varchar(100)"`
	BillingPartyID   *uuid.UUID `gorm:"type:uuid;index"`
	BillingPartyName string     `gorm:"type:varchar(200)"`
	FreightMode      string     `gorm:"type:varchar(50)"`
	TripAmount       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	AdvanceAmt       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ShortageAmt      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	DeductionAmt     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	HoldingAmt       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TransporterID    *uuid.UUID      `gorm:"type:uuid;index"`
	TransporterName  string          `gorm:"type:varchar(200)"`
	MarketVehNo      string          `gorm:"type:varchar(50)"`
	MarketFreight    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	MarketAdvance    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	LWeight          float64         `gorm:"not null;default:0"`
	UWeight          float64         `gorm:"not null;default:0"`
	Remark           string          `gorm:"type:text"`

	// derived
	ReceivedAmt   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	PendingAmt    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	MarketBalance decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	NetProfit     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (TripBook) TableName() string {
	return "trip_books"
}

// NewTripBook creates a trip book entry with its required identity fields.
func NewTripBook(orgID uuid.UUID, tripNo string, date time.Time) (*TripBook, error) {
	b := &TripBook{
		OrgEntity: shared.NewOrgEntity(orgID),
		TripNo:    strings.TrimSpace(tripNo),
		Date:      date,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the raw fields.
func (b *TripBook) Validate() error {
	if strings.TrimSpace(b.TripNo) == "" {
		return shared.NewValidationError("trip_no", "cannot be empty")
	}
	if b.Date.IsZero() {
		return shared.NewValidationError("date", "is required")
	}
	if b.TripAmount.IsNegative() {
		return shared.NewValidationError("trip_amount", "cannot be negative")
	}
	if b.ShortageAmt.IsNegative() || b.DeductionAmt.IsNegative() || b.HoldingAmt.IsNegative() {
		return shared.NewValidationError("shortage_amt", "holdback amounts cannot be negative")
	}
	if b.MarketFreight.IsNegative() || b.MarketAdvance.IsNegative() {
		return shared.NewValidationError("market_freight", "market amounts cannot be negative")
	}
	return nil
}

// Recompute refreshes the derived fields from the raw ones.
func (b *TripBook) Recompute() {
	b.ReceivedAmt = b.TripAmount.Sub(b.ShortageAmt).Sub(b.DeductionAmt).Sub(b.HoldingAmt)
	b.PendingAmt = b.ReceivedAmt.Sub(b.AdvanceAmt)
	b.MarketBalance = b.MarketFreight.Sub(b.MarketAdvance)
	b.NetProfit = b.ReceivedAmt.Sub(b.MarketFreight)
	b.UpdatedAt = time.Now()
}

// PartyContribution returns what this entry adds to the billing party's
// accumulators. Unlinked entries contribute nothing.
func (b *TripBook) PartyContribution() PartyDelta {
	if b.BillingPartyID == nil {
		return PartyDelta{}
	}
	return PartyDelta{BillTrip: b.TripAmount}
}

// TransporterContribution returns what this entry adds to the hired
// transporter's accumulators. Unlinked entries contribute nothing.
func (b *TripBook) TransporterContribution() TransporterDelta {
	if b.TransporterID == nil {
		return TransporterDelta{}
	}
	return TransporterDelta{Bill: b.MarketFreight}
}
