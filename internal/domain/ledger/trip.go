package ledger

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trip is a completed haul by an owned vehicle. TripNo is the natural key,
// unique within the organization. The derived fields are recomputed from the
// raw ones on every write; callers never set them directly.
type Trip struct {
	shared.OrgEntity
	TripNo       string          `gorm:"type:varchar(50);not null;index"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	VehNo        string          `gorm:"type:varchar(50);not null;index"`
	DriverName   string          `gorm:"type:varchar(200);index"`
	FromLocation string          `gorm:"type:varchar(200)"`
	ToLocation   string          `gorm:"type:varchar(200)"`
	StartMeter   float64         `gorm:"not null;default:0"`
	EndMeter     float64         `gorm:"not null;default:0"`
	DieselRate   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Litres       float64         `gorm:"not null;default:0"`
	FuelExpAmt   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TripFare     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	RtFare       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TripExpense  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ExIncome     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	DriverBal    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	IsMarketTrip bool            `gorm:"not null;default:false"`
	LockStatus   bool            `gorm:"not null;default:false"`
	PlantName    string          `gorm:"type:varchar(200)"`
	CarQty       int             `gorm:"not null;default:0"`
	LoadKm       float64         `gorm:"not null;default:0"`
	EmptyKm      float64         `gorm:"not null;default:0"`

	// derived
	TripKm          float64         `gorm:"not null;default:0"`
	Average         float64         `gorm:"not null;default:0"`
	TotalTripFare   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ProfitStatement decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Trip) TableName() string {
	return "trips"
}

// NewTrip creates a trip with its required identity fields.
func NewTrip(orgID uuid.UUID, tripNo string, date time.Time, vehNo string) (*Trip, error) {
	t := &Trip{
		OrgEntity: shared.NewOrgEntity(orgID),
		TripNo:    strings.TrimSpace(tripNo),
		Date:      date,
		VehNo:     strings.ToUpper(strings.TrimSpace(vehNo)),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the raw fields. Derived fields are ignored here.
func (t *Trip) Validate() error {
	if strings.TrimSpace(t.TripNo) == "" {
		return shared.NewValidationError("trip_no", "cannot be empty")
	}
	if t.Date.IsZero() {
		return shared.NewValidationError("date", "is required")
	}
	if strings.TrimSpace(t.VehNo) == "" {
		return shared.NewValidationError("veh_no", "cannot be empty")
	}
	if t.EndMeter < t.StartMeter {
		return shared.NewValidationError("end_meter", "cannot be less than start meter")
	}
	if t.Litres < 0 {
		return shared.NewValidationError("ltr", "cannot be negative")
	}
	if t.TripFare.IsNegative() || t.RtFare.IsNegative() || t.TripExpense.IsNegative() {
		return shared.NewValidationError("trip_fare", "fare and expense amounts cannot be negative")
	}
	return nil
}

// Recompute refreshes the derived fields from the raw ones.
func (t *Trip) Recompute() {
	t.TripKm = t.EndMeter - t.StartMeter
	if t.Litres > 0 {
		t.Average = t.TripKm / t.Litres
	} else {
		t.Average = 0
	}
	t.TotalTripFare = t.TripFare.Add(t.RtFare)
	t.ProfitStatement = t.TotalTripFare.Sub(t.TripExpense)
	t.UpdatedAt = time.Now()
}

// VehicleContribution returns what this trip adds to its vehicle's counters.
func (t *Trip) VehicleContribution() VehicleDelta {
	return VehicleDelta{Trips: 1, Profit: t.ProfitStatement}
}
