package ledger

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceSide indicates which side of the ledger an opening balance sits on.
type BalanceSide string

const (
	BalanceSideDebit  BalanceSide = "DR"
	BalanceSideCredit BalanceSide = "CR"
)

// BillingParty is a freight customer. Its balance columns accumulate
// contributions from trip books, return trips and party payments; BalanceAmt
// is derived and always recomputed alongside the accumulators.
type BillingParty struct {
	shared.OrgEntity
	Name        string          `gorm:"type:varchar(200);not null;index"`
	ContactNo   string          `gorm:"type:varchar(50)"`
	DrCr        BalanceSide     `gorm:"type:varchar(2);not null;default:'DR'"`
	Remark      string          `gorm:"type:text"`
	OpenBal     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	BillAmtTrip decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	BillAmtRt   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ReceiveAmt  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	BalanceAmt  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (BillingParty) TableName() string {
	return "billing_parties"
}

// NewBillingParty creates a billing party with its opening balance.
func NewBillingParty(orgID uuid.UUID, name string, openBal decimal.Decimal, side BalanceSide) (*BillingParty, error) {
	if err := validateMasterName("name", name); err != nil {
		return nil, err
	}
	if side == "" {
		side = BalanceSideDebit
	}
	if err := validateBalanceSide(side); err != nil {
		return nil, err
	}
	p := &BillingParty{
		OrgEntity: shared.NewOrgEntity(orgID),
		Name:      strings.TrimSpace(name),
		DrCr:      side,
		OpenBal:   openBal,
	}
	p.Recalc()
	return p, nil
}

// Recalc recomputes the derived balance from the accumulator columns.
func (p *BillingParty) Recalc() {
	p.BalanceAmt = p.OpenBal.Add(p.BillAmtTrip).Add(p.BillAmtRt).Sub(p.ReceiveAmt)
	p.UpdatedAt = time.Now()
}

// Apply folds a delta into the in-memory balance columns.
// The persisted equivalent is a single atomic UPDATE in the repository.
func (p *BillingParty) Apply(d PartyDelta) {
	p.BillAmtTrip = p.BillAmtTrip.Add(d.BillTrip)
	p.BillAmtRt = p.BillAmtRt.Add(d.BillRt)
	p.ReceiveAmt = p.ReceiveAmt.Add(d.Receive)
	p.Recalc()
}

// Driver is a driver account. Advances debit it, recoveries credit it.
type Driver struct {
	shared.OrgEntity
	Name      string          `gorm:"type:varchar(200);not null;index"`
	ContactNo string          `gorm:"type:varchar(50)"`
	DrCr      BalanceSide     `gorm:"type:varchar(2);not null;default:'DR'"`
	Remark    string          `gorm:"type:text"`
	OpenBal   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Debit     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Credit    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CloseBal  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Driver) TableName() string {
	return "drivers"
}

// NewDriver creates a driver account with its opening balance.
func NewDriver(orgID uuid.UUID, name string, openBal decimal.Decimal, side BalanceSide) (*Driver, error) {
	if err := validateMasterName("name", name); err != nil {
		return nil, err
	}
	if side == "" {
		side = BalanceSideDebit
	}
	if err := validateBalanceSide(side); err != nil {
		return nil, err
	}
	d := &Driver{
		OrgEntity: shared.NewOrgEntity(orgID),
		Name:      strings.TrimSpace(name),
		DrCr:      side,
		OpenBal:   openBal,
	}
	d.Recalc()
	return d, nil
}

// Recalc recomputes the derived close balance.
func (d *Driver) Recalc() {
	d.CloseBal = d.OpenBal.Add(d.Debit).Sub(d.Credit)
	d.UpdatedAt = time.Now()
}

// Apply folds a delta into the in-memory balance columns.
func (d *Driver) Apply(delta DriverDelta) {
	d.Debit = d.Debit.Add(delta.Debit)
	d.Credit = d.Credit.Add(delta.Credit)
	d.Recalc()
}

// Transporter is a market vehicle owner whose freight is billed and paid out.
type Transporter struct {
	shared.OrgEntity
	Name      string          `gorm:"type:varchar(200);not null;index"`
	VehNo     string          `gorm:"type:varchar(50)"`
	ContactNo string          `gorm:"type:varchar(50)"`
	Remark    string          `gorm:"type:text"`
	OpenBal   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	BillAmt   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	PaidAmt   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CloseBal  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Transporter) TableName() string {
	return "transporters"
}

// NewTransporter creates a transporter account with its opening balance.
func NewTransporter(orgID uuid.UUID, name, vehNo string, openBal decimal.Decimal) (*Transporter, error) {
	if err := validateMasterName("name", name); err != nil {
		return nil, err
	}
	t := &Transporter{
		OrgEntity: shared.NewOrgEntity(orgID),
		Name:      strings.TrimSpace(name),
		VehNo:     strings.TrimSpace(vehNo),
		OpenBal:   openBal,
	}
	t.Recalc()
	return t, nil
}

// Recalc recomputes the derived close balance.
func (t *Transporter) Recalc() {
	t.CloseBal = t.OpenBal.Add(t.BillAmt).Sub(t.PaidAmt)
	t.UpdatedAt = time.Now()
}

// Apply folds a delta into the in-memory balance columns.
func (t *Transporter) Apply(d TransporterDelta) {
	t.BillAmt = t.BillAmt.Add(d.Bill)
	t.PaidAmt = t.PaidAmt.Add(d.Paid)
	t.Recalc()
}

// StockItem tracks a consumable (diesel, tyres, parts) by quantity.
type StockItem struct {
	shared.OrgEntity
	Name     string          `gorm:"type:varchar(200);not null;index"`
	Unit     string          `gorm:"type:varchar(20)"`
	Remark   string          `gorm:"type:text"`
	OpenQty  decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
	StkIn    decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
	StkOut   decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
	CloseQty decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (StockItem) TableName() string {
	return "stock_items"
}

// NewStockItem creates a stock item with its opening quantity.
func NewStockItem(orgID uuid.UUID, name, unit string, openQty decimal.Decimal) (*StockItem, error) {
	if err := validateMasterName("name", name); err != nil {
		return nil, err
	}
	s := &StockItem{
		OrgEntity: shared.NewOrgEntity(orgID),
		Name:      strings.TrimSpace(name),
		Unit:      strings.TrimSpace(unit),
		OpenQty:   openQty,
	}
	s.Recalc()
	return s, nil
}

// Recalc recomputes the derived close quantity.
func (s *StockItem) Recalc() {
	s.CloseQty = s.OpenQty.Add(s.StkIn).Sub(s.StkOut)
	s.UpdatedAt = time.Now()
}

// Apply folds a delta into the in-memory quantity columns.
func (s *StockItem) Apply(d StockDelta) {
	s.StkIn = s.StkIn.Add(d.In)
	s.StkOut = s.StkOut.Add(d.Out)
	s.Recalc()
}

// Vehicle is an owned fleet vehicle, addressed by its registration number.
// Completed trips accumulate into its trip count and net profit.
type Vehicle struct {
	shared.OrgEntity
	VehNo     string          `gorm:"type:varchar(50);not null;index"`
	VehType   string          `gorm:"type:varchar(50)"`
	TotalTrip int64           `gorm:"not null;default:0"`
	NetProfit decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// NewVehicle creates a fleet vehicle.
func NewVehicle(orgID uuid.UUID, vehNo, vehType string) (*Vehicle, error) {
	if err := validateMasterName("veh_no", vehNo); err != nil {
		return nil, err
	}
	return &Vehicle{
		OrgEntity: shared.NewOrgEntity(orgID),
		VehNo:     strings.ToUpper(strings.TrimSpace(vehNo)),
		VehType:   strings.TrimSpace(vehType),
	}, nil
}

// Apply folds a delta into the in-memory counters.
func (v *Vehicle) Apply(d VehicleDelta) {
	v.TotalTrip += d.Trips
	v.NetProfit = v.NetProfit.Add(d.Profit)
	v.UpdatedAt = time.Now()
}

func validateMasterName(field, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError(field, "cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewValidationError(field, "cannot exceed 200 characters")
	}
	return nil
}

func validateBalanceSide(side BalanceSide) error {
	switch side {
	case BalanceSideDebit, BalanceSideCredit:
		return nil
	default:
		return shared.NewValidationError("dr_cr", "must be DR or CR")
	}
}
