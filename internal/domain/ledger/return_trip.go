package ledger

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReturnTrip is the billing record for a return haul. It mirrors TripBook
// without the market vehicle side.
type ReturnTrip struct {
	shared.OrgEntity
	TripNo           string          `gorm:"type:varchar(50);not null;index"`
	Date             time.Time       `gorm:"type:date;not null;index"`
	BillingPartyID   *uuid.UUID      `gorm:"type:uuid;index"`
	BillingPartyName string          `gorm:"type:varchar(200)"`
	LrNo             string          `gorm:"type:varchar(100)"`
	RtFreight        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	AdvanceAmt       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ShortageAmt      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	DeductionAmt     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	HoldingAmt       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Mode             string          `gorm:"type:varchar(50)"`
	ToBank           string          `gorm:"type:varchar(100)"`
	Remark           string          `gorm:"type:text"`

	// derived
	ReceivedAmt decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	PendingAmt  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (ReturnTrip) TableName() string {
	return "return_trips"
}

// NewReturnTrip creates a return trip entry with its required identity fields.
func NewReturnTrip(orgID uuid.UUID, tripNo string, date time.Time) (*ReturnTrip, error) {
	r := &ReturnTrip{
		OrgEntity: shared.NewOrgEntity(orgID),
		TripNo:    strings.TrimSpace(tripNo),
		Date:      date,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the raw fields.
func (r *ReturnTrip) Validate() error {
	if strings.TrimSpace(r.TripNo) == "" {
		return shared.NewValidationError("trip_no", "cannot be empty")
	}
	if r.Date.IsZero() {
		return shared.NewValidationError("date", "is required")
	}
	if r.RtFreight.IsNegative() {
		return shared.NewValidationError("rt_freight", "cannot be negative")
	}
	if r.ShortageAmt.IsNegative() || r.DeductionAmt.IsNegative() || r.HoldingAmt.IsNegative() {
		return shared.NewValidationError("shortage_amt", "holdback amounts cannot be negative")
	}
	return nil
}

// Recompute refreshes the derived fields from the raw ones.
func (r *ReturnTrip) Recompute() {
	r.ReceivedAmt = r.RtFreight.Sub(r.ShortageAmt).Sub(r.DeductionAmt).Sub(r.HoldingAmt)
	r.PendingAmt = r.ReceivedAmt.Sub(r.AdvanceAmt)
	r.UpdatedAt = time.Now()
}

// PartyContribution returns what this entry adds to the billing party's
// accumulators. Unlinked entries contribute nothing.
func (r *ReturnTrip) PartyContribution() PartyDelta {
	if r.BillingPartyID == nil {
		return PartyDelta{}
	}
	return PartyDelta{BillRt: r.RtFreight}
}
