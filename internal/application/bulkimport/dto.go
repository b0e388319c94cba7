package bulkimport

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripImportRow is one trip in a bulk import payload. Unlike the interactive
// create request, the trip number is mandatory: imported rows come from an
// external ledger that already assigned them.
type TripImportRow struct {
	TripNo       string          `json:"trip_no" binding:"required,max=50"`
	Date         time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	VehNo        string          `json:"veh_no" binding:"required,min=1,max=50"`
	DriverName   string          `json:"driver_name" binding:"max=200"`
	FromLocation string          `json:"from_location" binding:"max=200"`
	ToLocation   string          `json:"to_location" binding:"max=200"`
	StartMeter   float64         `json:"start_meter"`
	EndMeter     float64         `json:"end_meter"`
	DieselRate   decimal.Decimal `json:"diesel_rate"`
	Litres       float64         `json:"ltr"`
	FuelExpAmt   decimal.Decimal `json:"fuel_exp_amt"`
	TripFare     decimal.Decimal `json:"trip_fare"`
	RtFare       decimal.Decimal `json:"rt_fare"`
	TripExpense  decimal.Decimal `json:"trip_expense"`
	ExIncome     decimal.Decimal `json:"ex_income"`
	DriverBal    decimal.Decimal `json:"driver_bal"`
	IsMarketTrip bool            `json:"is_market_trip"`
	PlantName    string          `json:"plant_name" binding:"max=200"`
	CarQty       int             `json:"car_qty"`
	LoadKm       float64         `json:"load_km"`
	EmptyKm      float64         `json:"empty_km"`
}

// ExpenseImportRow is one expense in a bulk import payload.
type ExpenseImportRow struct {
	TripNo       string          `json:"trip_no" binding:"max=50"`
	Date         time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	ExpenseType  string          `json:"expense_type" binding:"required,max=100"`
	Amount       decimal.Decimal `json:"amount"`
	FromAccount  string          `json:"from_account" binding:"max=100"`
	RefVehNo     string          `json:"ref_veh_no" binding:"max=50"`
	Remark1      string          `json:"remark1"`
	Remark2      string          `json:"remark2"`
	IsNonTripExp bool            `json:"is_non_trip_exp"`
}

// CategoryImportRow is one expense category in a bulk import payload.
// Categories are upserted by name, so re-importing them is harmless.
type CategoryImportRow struct {
	Name string `json:"name" binding:"required,max=100"`
	Mode string `json:"mode" binding:"omitempty,oneof=General Expenses Fuel"`
}

// BulkImportRequest is the full reconciliation payload.
type BulkImportRequest struct {
	Categories []CategoryImportRow `json:"categories"`
	Trips      []TripImportRow     `json:"trips"`
	Expenses   []ExpenseImportRow  `json:"expenses"`
}

// Row error kinds.
const (
	ErrorKindCategory = "category"
	ErrorKindTrip     = "trip"
	ErrorKindExpense  = "expense"
	ErrorKindVehicle  = "vehicle"
)

// RowError describes why one row of the payload was rejected.
type RowError struct {
	Kind    string `json:"kind"`
	Index   int    `json:"index"`
	TripNo  string `json:"trip_no,omitempty"`
	Message string `json:"message"`
}

// BulkImportResult summarizes a bulk import run. Rejected rows never fail the
// whole request; they are reported here and the rest of the batch proceeds.
type BulkImportResult struct {
	TripsCreated      int        `json:"trips_created"`
	TripsFailed       int        `json:"trips_failed"`
	ExpensesCreated   int        `json:"expenses_created"`
	ExpensesFailed    int        `json:"expenses_failed"`
	CategoriesCreated int        `json:"categories_created"`
	Errors            []RowError `json:"errors,omitempty"`
	ErrorsTruncated   bool       `json:"errors_truncated,omitempty"`
}
