package ledger

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartyPayment is a receipt from a billing party against outstanding freight.
type PartyPayment struct {
	shared.OrgEntity
	TripNo           string          `gorm:"type:varchar(50);index"`
	Date             time.Time       `gorm:"type:date;not null;index"`
	BillingPartyID   *uuid.UUID      `gorm:"type:uuid;index"`
	BillingPartyName string          `gorm:"type:varchar(200)"`
	Mode             string          `gorm:"type:varchar(50)"`
	ReceiveAmt       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ShortageAmt      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	DeductionAmt     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	LrNo             string          `gorm:"type:varchar(100)"`
	ToBank           string          `gorm:"type:varchar(100)"`
	Remark           string          `gorm:"type:text"`
	RunBal           decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (PartyPayment) TableName() string {
	return "party_payments"
}

// NewPartyPayment creates a party payment entry.
func NewPartyPayment(orgID uuid.UUID, date time.Time, receiveAmt decimal.Decimal) (*PartyPayment, error) {
	p := &PartyPayment{
		OrgEntity:  shared.NewOrgEntity(orgID),
		Date:       date,
		ReceiveAmt: receiveAmt,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the raw fields.
func (p *PartyPayment) Validate() error {
	if p.Date.IsZero() {
		return shared.NewValidationError("date", "is required")
	}
	if p.ReceiveAmt.IsNegative() {
		return shared.NewValidationError("receive_amt", "cannot be negative")
	}
	if p.ShortageAmt.IsNegative() || p.DeductionAmt.IsNegative() {
		return shared.NewValidationError("shortage_amt", "cannot be negative")
	}
	return nil
}

// PartyContribution returns what this payment adds to the billing party's
// accumulators. Unlinked payments contribute nothing.
func (p *PartyPayment) PartyContribution() PartyDelta {
	if p.BillingPartyID == nil {
		return PartyDelta{}
	}
	return PartyDelta{Receive: p.ReceiveAmt}
}

// DriverAdvance is a cash movement on a driver account. Debit pays the driver
// out, credit recovers from them. The driver is addressed by name.
type DriverAdvance struct {
	shared.OrgEntity
	TripNo      string          `gorm:"type:varchar(50);index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	DriverName  string          `gorm:"type:varchar(200);index"`
	Mode        string          `gorm:"type:varchar(50)"`
	FromAccount string          `gorm:"type:varchar(100)"`
	Debit       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Credit      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	FuelLtr     float64         `gorm:"not null;default:0"`
	Remark      string          `gorm:"type:text"`
	RunBal      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (DriverAdvance) TableName() string {
	return "driver_advances"
}

// NewDriverAdvance creates a driver advance entry.
func NewDriverAdvance(orgID uuid.UUID, date time.Time, driverName string) (*DriverAdvance, error) {
	a := &DriverAdvance{
		OrgEntity:  shared.NewOrgEntity(orgID),
		Date:       date,
		DriverName: strings.TrimSpace(driverName),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the raw fields.
func (a *DriverAdvance) Validate() error {
	if a.Date.IsZero() {
		return shared.NewValidationError("date", "is required")
	}
	if strings.TrimSpace(a.DriverName) == "" {
		return shared.NewValidationError("driver_name", "cannot be empty")
	}
	if a.Debit.IsNegative() || a.Credit.IsNegative() {
		return shared.NewValidationError("debit", "debit and credit cannot be negative")
	}
	return nil
}

// DriverContribution returns what this entry adds to the driver's accumulators.
func (a *DriverAdvance) DriverContribution() DriverDelta {
	return DriverDelta{Debit: a.Debit, Credit: a.Credit}
}

// MarketVehPayment is a payout to a transporter for a hired market vehicle.
type MarketVehPayment struct {
	shared.OrgEntity
	TripNo          string          `gorm:"type:varchar(50);index"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	TransporterID   *uuid.UUID      `gorm:"type:uuid;index"`
	TransporterName string          `gorm:"type:varchar(200)"`
	MarketVehNo     string          `gorm:"type:varchar(50)"`
	Mode            string          `gorm:"type:varchar(50)"`
	PaidAmt         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	LrNo            string          `gorm:"type:varchar(100)"`
	FromBank        string          `gorm:"type:varchar(100)"`
	Remark          string          `gorm:"type:text"`
	RunBal          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (MarketVehPayment) TableName() string {
	return "market_veh_payments"
}

// NewMarketVehPayment creates a market vehicle payment entry.
func NewMarketVehPayment(orgID uuid.UUID, date time.Time, paidAmt decimal.Decimal) (*MarketVehPayment, error) {
	m := &MarketVehPayment{
		OrgEntity: shared.NewOrgEntity(orgID),
		Date:      date,
		PaidAmt:   paidAmt,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the raw fields.
func (m *MarketVehPayment) Validate() error {
	if m.Date.IsZero() {
		return shared.NewValidationError("date", "is required")
	}
	if m.PaidAmt.IsNegative() {
		return shared.NewValidationError("paid_amt", "cannot be negative")
	}
	return nil
}

// TransporterContribution returns what this payment adds to the transporter's
// accumulators. Unlinked payments contribute nothing.
func (m *MarketVehPayment) TransporterContribution() TransporterDelta {
	if m.TransporterID == nil {
		return TransporterDelta{}
	}
	return TransporterDelta{Paid: m.PaidAmt}
}
