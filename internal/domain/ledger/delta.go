package ledger

import "github.com/shopspring/decimal"

// Deltas express what a single transaction row contributes to its master's
// accumulator columns. Creating a row applies its delta, deleting applies the
// negation, and updating applies new minus old as one increment.

// PartyDelta is a billing party contribution.
type PartyDelta struct {
	BillTrip decimal.Decimal
	BillRt   decimal.Decimal
	Receive  decimal.Decimal
}

// Sub returns d - o.
func (d PartyDelta) Sub(o PartyDelta) PartyDelta {
	return PartyDelta{
		BillTrip: d.BillTrip.Sub(o.BillTrip),
		BillRt:   d.BillRt.Sub(o.BillRt),
		Receive:  d.Receive.Sub(o.Receive),
	}
}

// Neg returns the negated delta.
func (d PartyDelta) Neg() PartyDelta {
	return PartyDelta{BillTrip: d.BillTrip.Neg(), BillRt: d.BillRt.Neg(), Receive: d.Receive.Neg()}
}

// IsZero reports whether applying the delta would change nothing.
func (d PartyDelta) IsZero() bool {
	return d.BillTrip.IsZero() && d.BillRt.IsZero() && d.Receive.IsZero()
}

// DriverDelta is a driver account contribution.
type DriverDelta struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Sub returns d - o.
func (d DriverDelta) Sub(o DriverDelta) DriverDelta {
	return DriverDelta{Debit: d.Debit.Sub(o.Debit), Credit: d.Credit.Sub(o.Credit)}
}

// Neg returns the negated delta.
func (d DriverDelta) Neg() DriverDelta {
	return DriverDelta{Debit: d.Debit.Neg(), Credit: d.Credit.Neg()}
}

// IsZero reports whether applying the delta would change nothing.
func (d DriverDelta) IsZero() bool {
	return d.Debit.IsZero() && d.Credit.IsZero()
}

// TransporterDelta is a transporter account contribution.
type TransporterDelta struct {
	Bill decimal.Decimal
	Paid decimal.Decimal
}

// Sub returns d - o.
func (d TransporterDelta) Sub(o TransporterDelta) TransporterDelta {
	return TransporterDelta{Bill: d.Bill.Sub(o.Bill), Paid: d.Paid.Sub(o.Paid)}
}

// Neg returns the negated delta.
func (d TransporterDelta) Neg() TransporterDelta {
	return TransporterDelta{Bill: d.Bill.Neg(), Paid: d.Paid.Neg()}
}

// IsZero reports whether applying the delta would change nothing.
func (d TransporterDelta) IsZero() bool {
	return d.Bill.IsZero() && d.Paid.IsZero()
}

// StockDelta is a stock item quantity contribution.
type StockDelta struct {
	In  decimal.Decimal
	Out decimal.Decimal
}

// Sub returns d - o.
func (d StockDelta) Sub(o StockDelta) StockDelta {
	return StockDelta{In: d.In.Sub(o.In), Out: d.Out.Sub(o.Out)}
}

// Neg returns the negated delta.
func (d StockDelta) Neg() StockDelta {
	return StockDelta{In: d.In.Neg(), Out: d.Out.Neg()}
}

// IsZero reports whether applying the delta would change nothing.
func (d StockDelta) IsZero() bool {
	return d.In.IsZero() && d.Out.IsZero()
}

// VehicleDelta is a vehicle counter contribution.
type VehicleDelta struct {
	Trips  int64
	Profit decimal.Decimal
}

// Sub returns d - o.
func (d VehicleDelta) Sub(o VehicleDelta) VehicleDelta {
	return VehicleDelta{Trips: d.Trips - o.Trips, Profit: d.Profit.Sub(o.Profit)}
}

// Neg returns the negated delta.
func (d VehicleDelta) Neg() VehicleDelta {
	return VehicleDelta{Trips: -d.Trips, Profit: d.Profit.Neg()}
}

// IsZero reports whether applying the delta would change nothing.
func (d VehicleDelta) IsZero() bool {
	return d.Trips == 0 && d.Profit.IsZero()
}
