package ledger

import (
	"time"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Master DTOs
// =============================================================================

// CreateBillingPartyRequest represents a request to create a billing party
type CreateBillingPartyRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	ContactNo string          `json:"contact_no" binding:"max=50"`
	DrCr      string          `json:"dr_cr" binding:"omitempty,oneof=DR CR"`
	Remark    string          `json:"remark"`
	OpenBal   decimal.Decimal `json:"open_bal"`
}

// UpdateBillingPartyRequest represents a partial update to a billing party
type UpdateBillingPartyRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=200"`
	ContactNo *string          `json:"contact_no" binding:"omitempty,max=50"`
	DrCr      *string          `json:"dr_cr" binding:"omitempty,oneof=DR CR"`
	Remark    *string          `json:"remark"`
	OpenBal   *decimal.Decimal `json:"open_bal"`
}

// BillingPartyResponse represents a billing party in API responses
type BillingPartyResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	ContactNo   string          `json:"contact_no"`
	DrCr        string          `json:"dr_cr"`
	Remark      string          `json:"remark"`
	OpenBal     decimal.Decimal `json:"open_bal"`
	BillAmtTrip decimal.Decimal `json:"bill_amt_trip"`
	BillAmtRt   decimal.Decimal `json:"bill_amt_rt"`
	ReceiveAmt  decimal.Decimal `json:"receive_amt"`
	BalanceAmt  decimal.Decimal `json:"balance_amt"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToBillingPartyResponse converts a domain billing party to a response
func ToBillingPartyResponse(p *ledger.BillingParty) BillingPartyResponse {
	return BillingPartyResponse{
		ID:          p.ID,
		Name:        p.Name,
		ContactNo:   p.ContactNo,
		DrCr:        string(p.DrCr),
		Remark:      p.Remark,
		OpenBal:     p.OpenBal,
		BillAmtTrip: p.BillAmtTrip,
		BillAmtRt:   p.BillAmtRt,
		ReceiveAmt:  p.ReceiveAmt,
		BalanceAmt:  p.BalanceAmt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreateDriverRequest represents a request to create a driver account
type CreateDriverRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	ContactNo string          `json:"contact_no" binding:"max=50"`
	DrCr      string          `json:"dr_cr" binding:"omitempty,oneof=DR CR"`
	Remark    string          `json:"remark"`
	OpenBal   decimal.Decimal `json:"open_bal"`
}

// UpdateDriverRequest represents a partial update to a driver account
type UpdateDriverRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=200"`
	ContactNo *string          `json:"contact_no" binding:"omitempty,max=50"`
	DrCr      *string          `json:"dr_cr" binding:"omitempty,oneof=DR CR"`
	Remark    *string          `json:"remark"`
	OpenBal   *decimal.Decimal `json:"open_bal"`
}

// DriverResponse represents a driver account in API responses
type DriverResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	ContactNo string          `json:"contact_no"`
	DrCr      string          `json:"dr_cr"`
	Remark    string          `json:"remark"`
	OpenBal   decimal.Decimal `json:"open_bal"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	CloseBal  decimal.Decimal `json:"close_bal"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToDriverResponse converts a domain driver to a response
func ToDriverResponse(d *ledger.Driver) DriverResponse {
	return DriverResponse{
		ID:        d.ID,
		Name:      d.Name,
		ContactNo: d.ContactNo,
		DrCr:      string(d.DrCr),
		Remark:    d.Remark,
		OpenBal:   d.OpenBal,
		Debit:     d.Debit,
		Credit:    d.Credit,
		CloseBal:  d.CloseBal,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// CreateTransporterRequest represents a request to create a transporter
type CreateTransporterRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	VehNo     string          `json:"veh_no" binding:"max=50"`
	ContactNo string          `json:"contact_no" binding:"max=50"`
	Remark    string          `json:"remark"`
	OpenBal   decimal.Decimal `json:"open_bal"`
}

// UpdateTransporterRequest represents a partial update to a transporter
type UpdateTransporterRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=200"`
	VehNo     *string          `json:"veh_no" binding:"omitempty,max=50"`
	ContactNo *string          `json:"contact_no" binding:"omitempty,max=50"`
	Remark    *string          `json:"remark"`
	OpenBal   *decimal.Decimal `json:"open_bal"`
}

// TransporterResponse represents a transporter in API responses
type TransporterResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	VehNo     string          `json:"veh_no"`
	ContactNo string          `json:"contact_no"`
	Remark    string          `json:"remark"`
	OpenBal   decimal.Decimal `json:"open_bal"`
	BillAmt   decimal.Decimal `json:"bill_amt"`
	PaidAmt   decimal.Decimal `json:"paid_amt"`
	CloseBal  decimal.Decimal `json:"close_bal"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToTransporterResponse converts a domain transporter to a response
func ToTransporterResponse(t *ledger.Transporter) TransporterResponse {
	return TransporterResponse{
		ID:        t.ID,
		Name:      t.Name,
		VehNo:     t.VehNo,
		ContactNo: t.ContactNo,
		Remark:    t.Remark,
		OpenBal:   t.OpenBal,
		BillAmt:   t.BillAmt,
		PaidAmt:   t.PaidAmt,
		CloseBal:  t.CloseBal,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// CreateStockItemRequest represents a request to create a stock item
type CreateStockItemRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=200"`
	Unit    string          `json:"unit" binding:"max=20"`
	Remark  string          `json:"remark"`
	OpenQty decimal.Decimal `json:"open_qty"`
}

// UpdateStockItemRequest represents a partial update to a stock item
type UpdateStockItemRequest struct {
	Name    *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Unit    *string          `json:"unit" binding:"omitempty,max=20"`
	Remark  *string          `json:"remark"`
	OpenQty *decimal.Decimal `json:"open_qty"`
}

// StockItemResponse represents a stock item in API responses
type StockItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Remark    string          `json:"remark"`
	OpenQty   decimal.Decimal `json:"open_qty"`
	StkIn     decimal.Decimal `json:"stk_in"`
	StkOut    decimal.Decimal `json:"stk_out"`
	CloseQty  decimal.Decimal `json:"close_qty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToStockItemResponse converts a domain stock item to a response
func ToStockItemResponse(s *ledger.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:        s.ID,
		Name:      s.Name,
		Unit:      s.Unit,
		Remark:    s.Remark,
		OpenQty:   s.OpenQty,
		StkIn:     s.StkIn,
		StkOut:    s.StkOut,
		CloseQty:  s.CloseQty,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// CreateVehicleRequest represents a request to register a fleet vehicle
type CreateVehicleRequest struct {
	VehNo   string `json:"veh_no" binding:"required,min=1,max=50"`
	VehType string `json:"veh_type" binding:"max=50"`
}

// UpdateVehicleRequest represents a partial update to a fleet vehicle
type UpdateVehicleRequest struct {
	VehType *string `json:"veh_type" binding:"omitempty,max=50"`
}

// VehicleResponse represents a fleet vehicle in API responses
type VehicleResponse struct {
	ID        uuid.UUID       `json:"id"`
	VehNo     string          `json:"veh_no"`
	VehType   string          `json:"veh_type"`
	TotalTrip int64           `json:"total_trip"`
	NetProfit decimal.Decimal `json:"net_profit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToVehicleResponse converts a domain vehicle to a response
func ToVehicleResponse(v *ledger.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		VehNo:     v.VehNo,
		VehType:   v.VehType,
		TotalTrip: v.TotalTrip,
		NetProfit: v.NetProfit,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// =============================================================================
// Trip DTOs
// =============================================================================

// CreateTripRequest represents a request to record a trip
type CreateTripRequest struct {
	TripNo       string          `json:"trip_no" binding:"max=50"`
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

// UpdateTripRequest represents a partial update to a trip
type UpdateTripRequest struct {
	Date         *time.Time       `json:"date"`
	VehNo        *string          `json:"veh_no" binding:"omitempty,min=1,max=50"`
	DriverName   *string          `json:"driver_name" binding:"omitempty,max=200"`
	FromLocation *string          `json:"from_location" binding:"omitempty,max=200"`
	ToLocation   *string          `json:"to_location" binding:"omitempty,max=200"`
	StartMeter   *float64         `json:"start_meter"`
	EndMeter     *float64         `json:"end_meter"`
	DieselRate   *decimal.Decimal `json:"diesel_rate"`
	Litres       *float64         `json:"ltr"`
	FuelExpAmt   *decimal.Decimal `json:"fuel_exp_amt"`
	TripFare     *decimal.Decimal `json:"trip_fare"`
	RtFare       *decimal.Decimal `json:"rt_fare"`
	TripExpense  *decimal.Decimal `json:"trip_expense"`
	ExIncome     *decimal.Decimal `json:"ex_income"`
	DriverBal    *decimal.Decimal `json:"driver_bal"`
	IsMarketTrip *bool            `json:"is_market_trip"`
	LockStatus   *bool            `json:"lock_status"`
	PlantName    *string          `json:"plant_name" binding:"omitempty,max=200"`
	CarQty       *int             `json:"car_qty"`
	LoadKm       *float64         `json:"load_km"`
	EmptyKm      *float64         `json:"empty_km"`
}

// TripResponse represents a trip in API responses
type TripResponse struct {
	ID              uuid.UUID       `json:"id"`
	TripNo          string          `json:"trip_no"`
	Date            time.Time       `json:"date"`
	VehNo           string          `json:"veh_no"`
	DriverName      string          `json:"driver_name"`
	FromLocation    string          `json:"from_location"`
	ToLocation      string          `json:"to_location"`
	StartMeter      float64         `json:"start_meter"`
	EndMeter        float64         `json:"end_meter"`
	DieselRate      decimal.Decimal `json:"diesel_rate"`
	Litres          float64         `json:"ltr"`
	FuelExpAmt      decimal.Decimal `json:"fuel_exp_amt"`
	TripFare        decimal.Decimal `json:"trip_fare"`
	RtFare          decimal.Decimal `json:"rt_fare"`
	TripExpense     decimal.Decimal `json:"trip_expense"`
	ExIncome        decimal.Decimal `json:"ex_income"`
	DriverBal       decimal.Decimal `json:"driver_bal"`
	IsMarketTrip    bool            `json:"is_market_trip"`
	LockStatus      bool            `json:"lock_status"`
	PlantName       string          `json:"plant_name"`
	CarQty          int             `json:"car_qty"`
	LoadKm          float64         `json:"load_km"`
	EmptyKm         float64         `json:"empty_km"`
	TripKm          float64         `json:"trip_km"`
	Average         float64         `json:"average"`
	TotalTripFare   decimal.Decimal `json:"total_trip_fare"`
	ProfitStatement decimal.Decimal `json:"profit_statement"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToTripResponse converts a domain trip to a response
func ToTripResponse(t *ledger.Trip) TripResponse {
	return TripResponse{
		ID:              t.ID,
		TripNo:          t.TripNo,
		Date:            t.Date,
		VehNo:           t.VehNo,
		DriverName:      t.DriverName,
		FromLocation:    t.FromLocation,
		ToLocation:      t.ToLocation,
		StartMeter:      t.StartMeter,
		EndMeter:        t.EndMeter,
		DieselRate:      t.DieselRate,
		Litres:          t.Litres,
		FuelExpAmt:      t.FuelExpAmt,
		TripFare:        t.TripFare,
		RtFare:          t.RtFare,
		TripExpense:     t.TripExpense,
		ExIncome:        t.ExIncome,
		DriverBal:       t.DriverBal,
		IsMarketTrip:    t.IsMarketTrip,
		LockStatus:      t.LockStatus,
		PlantName:       t.PlantName,
		CarQty:          t.CarQty,
		LoadKm:          t.LoadKm,
		EmptyKm:         t.EmptyKm,
		TripKm:          t.TripKm,
		Average:         t.Average,
		TotalTripFare:   t.TotalTripFare,
		ProfitStatement: t.ProfitStatement,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToTripResponses converts a slice of trips
func ToTripResponses(trips []ledger.Trip) []TripResponse {
	responses := make([]TripResponse, len(trips))
	for i := range trips {
		responses[i] = ToTripResponse(&trips[i])
	}
	return responses
}

// =============================================================================
// Trip book DTOs
// =============================================================================

// CreateTripBookRequest represents a request to record the billing side of a trip
type CreateTripBookRequest struct {
	TripNo         string          `json:"trip_no" binding:"required,min=1,max=50"`
	Date           time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	LrNo           string          `json:"lr_no" binding:"max=100"`
	BillingPartyID *uuid.UUID      `json:"billing_party_id"`
	FreightMode    string          `json:"freight_mode" binding:"max=50"`
	TripAmount     decimal.Decimal `json:"trip_amount"`
	AdvanceAmt     decimal.Decimal `json:"advance_amt"`
	ShortageAmt    decimal.Decimal `json:"shortage_amt"`
	DeductionAmt   decimal.Decimal `json:"deduction_amt"`
	HoldingAmt     decimal.Decimal `json:"holding_amt"`
	TransporterID  *uuid.UUID      `json:"transporter_id"`
	MarketVehNo    string          `json:"market_veh_no" binding:"max=50"`
	MarketFreight  decimal.Decimal `json:"market_freight"`
	MarketAdvance  decimal.Decimal `json:"market_advance"`
	LWeight        float64         `json:"l_weight"`
	UWeight        float64         `json:"u_weight"`
	Remark         string          `json:"remark"`
}

// UpdateTripBookRequest represents a partial update to a trip book entry.
// Setting a link field to the zero UUID unlinks the account.
type UpdateTripBookRequest struct {
	Date           *time.Time       `json:"date"`
	LrNo           *string          `json:"lr_no" binding:"omitempty,max=100"`
	BillingPartyID *uuid.UUID       `json:"billing_party_id"`
	FreightMode    *string          `json:"freight_mode" binding:"omitempty,max=50"`
	TripAmount     *decimal.Decimal `json:"trip_amount"`
	AdvanceAmt     *decimal.Decimal `json:"advance_amt"`
	ShortageAmt    *decimal.Decimal `json:"shortage_amt"`
	DeductionAmt   *decimal.Decimal `json:"deduction_amt"`
	HoldingAmt     *decimal.Decimal `json:"holding_amt"`
	TransporterID  *uuid.UUID       `json:"transporter_id"`
	MarketVehNo    *string          `json:"market_veh_no" binding:"omitempty,max=50"`
	MarketFreight  *decimal.Decimal `json:"market_freight"`
	MarketAdvance  *decimal.Decimal `json:"market_advance"`
	LWeight        *float64         `json:"l_weight"`
	UWeight        *float64         `json:"u_weight"`
	Remark         *string          `json:"remark"`
}

// TripBookResponse represents a trip book entry in API responses
type TripBookResponse struct {
	ID               uuid.UUID       `json:"id"`
	TripNo           string          `json:"trip_no"`
	Date             time.Time       `json:"date"`
	LrNo             string          `json:"lr_no"`
	BillingPartyID   *uuid.UUID      `json:"billing_party_id"`
	BillingPartyName string          `json:"billing_party_name"`
	FreightMode      string          `json:"freight_mode"`
	TripAmount       decimal.Decimal `json:"trip_amount"`
	AdvanceAmt       decimal.Decimal `json:"advance_amt"`
	ShortageAmt      decimal.Decimal `json:"shortage_amt"`
	DeductionAmt     decimal.Decimal `json:"deduction_amt"`
	HoldingAmt       decimal.Decimal `json:"holding_amt"`
	TransporterID    *uuid.UUID      `json:"transporter_id"`
	TransporterName  string          `json:"transporter_name"`
	MarketVehNo      string          `json:"market_veh_no"`
	MarketFreight    decimal.Decimal `json:"market_freight"`
	MarketAdvance    decimal.Decimal `json:"market_advance"`
	LWeight          float64         `json:"l_weight"`
	UWeight          float64         `json:"u_weight"`
	Remark           string          `json:"remark"`
	ReceivedAmt      decimal.Decimal `json:"received_amt"`
	PendingAmt       decimal.Decimal `json:"pending_amt"`
	MarketBalance    decimal.Decimal `json:"market_balance"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToTripBookResponse converts a domain trip book entry to a response
func ToTripBookResponse(b *ledger.TripBook) TripBookResponse {
	return TripBookResponse{
		ID:               b.ID,
		TripNo:           b.TripNo,
		Date:             b.Date,
		LrNo:             b.LrNo,
		BillingPartyID:   b.BillingPartyID,
		BillingPartyName: b.BillingPartyName,
		FreightMode:      b.FreightMode,
		TripAmount:       b.TripAmount,
		AdvanceAmt:       b.AdvanceAmt,
		ShortageAmt:      b.ShortageAmt,
		DeductionAmt:     b.DeductionAmt,
		HoldingAmt:       b.HoldingAmt,
		TransporterID:    b.TransporterID,
		TransporterName:  b.TransporterName,
		MarketVehNo:      b.MarketVehNo,
		MarketFreight:    b.MarketFreight,
		MarketAdvance:    b.MarketAdvance,
		LWeight:          b.LWeight,
		UWeight:          b.UWeight,
		Remark:           b.Remark,
		ReceivedAmt:      b.ReceivedAmt,
		PendingAmt:       b.PendingAmt,
		MarketBalance:    b.MarketBalance,
		NetProfit:        b.NetProfit,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// =============================================================================
// Return trip DTOs
// =============================================================================

// CreateReturnTripRequest represents a request to record a return haul billing
type CreateReturnTripRequest struct {
	TripNo         string          `json:"trip_no" binding:"required,min=1,max=50"`
	Date           time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	BillingPartyID *uuid.UUID      `json:"billing_party_id"`
	LrNo           string          `json:"lr_no" binding:"max=100"`
	RtFreight      decimal.Decimal `json:"rt_freight"`
	AdvanceAmt     decimal.Decimal `json:"advance_amt"`
	ShortageAmt    decimal.Decimal `json:"shortage_amt"`
	DeductionAmt   decimal.Decimal `json:"deduction_amt"`
	HoldingAmt     decimal.Decimal `json:"holding_amt"`
	Mode           string          `json:"mode" binding:"max=50"`
	ToBank         string          `json:"to_bank" binding:"max=100"`
	Remark         string          `json:"remark"`
}

// UpdateReturnTripRequest represents a partial update to a return trip entry
type UpdateReturnTripRequest struct {
	Date           *time.Time       `json:"date"`
	BillingPartyID *uuid.UUID       `json:"billing_party_id"`
	LrNo           *string          `json:"lr_no" binding:"omitempty,max=100"`
	RtFreight      *decimal.Decimal `json:"rt_freight"`
	AdvanceAmt     *decimal.Decimal `json:"advance_amt"`
	ShortageAmt    *decimal.Decimal `json:"shortage_amt"`
	DeductionAmt   *decimal.Decimal `json:"deduction_amt"`
	HoldingAmt     *decimal.Decimal `json:"holding_amt"`
	Mode           *string          `json:"mode" binding:"omitempty,max=50"`
	ToBank         *string          `json:"to_bank" binding:"omitempty,max=100"`
	Remark         *string          `json:"remark"`
}

// ReturnTripResponse represents a return trip entry in API responses
type ReturnTripResponse struct {
	ID               uuid.UUID       `json:"id"`
	TripNo           string          `json:"trip_no"`
	Date             time.Time       `json:"date"`
	BillingPartyID   *uuid.UUID      `json:"billing_party_id"`
	BillingPartyName string          `json:"billing_party_name"`
	LrNo             string          `json:"lr_no"`
	RtFreight        decimal.Decimal `json:"rt_freight"`
	AdvanceAmt       decimal.Decimal `json:"advance_amt"`
	ShortageAmt      decimal.Decimal `json:"shortage_amt"`
	DeductionAmt     decimal.Decimal `json:"deduction_amt"`
	HoldingAmt       decimal.Decimal `json:"holding_amt"`
	Mode             string          `json:"mode"`
	ToBank           string          `json:"to_bank"`
	Remark           string          `json:"remark"`
	ReceivedAmt      decimal.Decimal `json:"received_amt"`
	PendingAmt       decimal.Decimal `json:"pending_amt"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToReturnTripResponse converts a domain return trip to a response
func ToReturnTripResponse(r *ledger.ReturnTrip) ReturnTripResponse {
	return ReturnTripResponse{
		ID:               r.ID,
		TripNo:           r.TripNo,
		Date:             r.Date,
		BillingPartyID:   r.BillingPartyID,
		BillingPartyName: r.BillingPartyName,
		LrNo:             r.LrNo,
		RtFreight:        r.RtFreight,
		AdvanceAmt:       r.AdvanceAmt,
		ShortageAmt:      r.ShortageAmt,
		DeductionAmt:     r.DeductionAmt,
		HoldingAmt:       r.HoldingAmt,
		Mode:             r.Mode,
		ToBank:           r.ToBank,
		Remark:           r.Remark,
		ReceivedAmt:      r.ReceivedAmt,
		PendingAmt:       r.PendingAmt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// =============================================================================
// Payment DTOs
// =============================================================================

// CreatePartyPaymentRequest represents a receipt from a billing party
type CreatePartyPaymentRequest struct {
	TripNo         string          `json:"trip_no" binding:"max=50"`
	Date           time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	BillingPartyID *uuid.UUID      `json:"billing_party_id"`
	Mode           string          `json:"mode" binding:"max=50"`
	ReceiveAmt     decimal.Decimal `json:"receive_amt"`
	ShortageAmt    decimal.Decimal `json:"shortage_amt"`
	DeductionAmt   decimal.Decimal `json:"deduction_amt"`
	LrNo           string          `json:"lr_no" binding:"max=100"`
	ToBank         string          `json:"to_bank" binding:"max=100"`
	Remark         string          `json:"remark"`
}

// UpdatePartyPaymentRequest represents a partial update to a party payment
type UpdatePartyPaymentRequest struct {
	TripNo         *string          `json:"trip_no" binding:"omitempty,max=50"`
	Date           *time.Time       `json:"date"`
	BillingPartyID *uuid.UUID       `json:"billing_party_id"`
	Mode           *string          `json:"mode" binding:"omitempty,max=50"`
	ReceiveAmt     *decimal.Decimal `json:"receive_amt"`
	ShortageAmt    *decimal.Decimal `json:"shortage_amt"`
	DeductionAmt   *decimal.Decimal `json:"deduction_amt"`
	LrNo           *string          `json:"lr_no" binding:"omitempty,max=100"`
	ToBank         *string          `json:"to_bank" binding:"omitempty,max=100"`
	Remark         *string          `json:"remark"`
}

// PartyPaymentResponse represents a party payment in API responses
type PartyPaymentResponse struct {
	ID               uuid.UUID       `json:"id"`
	TripNo           string          `json:"trip_no"`
	Date             time.Time       `json:"date"`
	BillingPartyID   *uuid.UUID      `json:"billing_party_id"`
	BillingPartyName string          `json:"billing_party_name"`
	Mode             string          `json:"mode"`
	ReceiveAmt       decimal.Decimal `json:"receive_amt"`
	ShortageAmt      decimal.Decimal `json:"shortage_amt"`
	DeductionAmt     decimal.Decimal `json:"deduction_amt"`
	LrNo             string          `json:"lr_no"`
	ToBank           string          `json:"to_bank"`
	Remark           string          `json:"remark"`
	RunBal           decimal.Decimal `json:"run_bal"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToPartyPaymentResponse converts a domain party payment to a response
func ToPartyPaymentResponse(p *ledger.PartyPayment) PartyPaymentResponse {
	return PartyPaymentResponse{
		ID:               p.ID,
		TripNo:           p.TripNo,
		Date:             p.Date,
		BillingPartyID:   p.BillingPartyID,
		BillingPartyName: p.BillingPartyName,
		Mode:             p.Mode,
		ReceiveAmt:       p.ReceiveAmt,
		ShortageAmt:      p.ShortageAmt,
		DeductionAmt:     p.DeductionAmt,
		LrNo:             p.LrNo,
		ToBank:           p.ToBank,
		Remark:           p.Remark,
		RunBal:           p.RunBal,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// CreateDriverAdvanceRequest represents a cash movement on a driver account
type CreateDriverAdvanceRequest struct {
	TripNo      string          `json:"trip_no" binding:"max=50"`
	Date        time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	DriverName  string          `json:"driver_name" binding:"required,min=1,max=200"`
	Mode        string          `json:"mode" binding:"max=50"`
	FromAccount string          `json:"from_account" binding:"max=100"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	FuelLtr     float64         `json:"fuel_ltr"`
	Remark      string          `json:"remark"`
}

// UpdateDriverAdvanceRequest represents a partial update to a driver advance
type UpdateDriverAdvanceRequest struct {
	TripNo      *string          `json:"trip_no" binding:"omitempty,max=50"`
	Date        *time.Time       `json:"date"`
	DriverName  *string          `json:"driver_name" binding:"omitempty,min=1,max=200"`
	Mode        *string          `json:"mode" binding:"omitempty,max=50"`
	FromAccount *string          `json:"from_account" binding:"omitempty,max=100"`
	Debit       *decimal.Decimal `json:"debit"`
	Credit      *decimal.Decimal `json:"credit"`
	FuelLtr     *float64         `json:"fuel_ltr"`
	Remark      *string          `json:"remark"`
}

// DriverAdvanceResponse represents a driver advance in API responses
type DriverAdvanceResponse struct {
	ID          uuid.UUID       `json:"id"`
	TripNo      string          `json:"trip_no"`
	Date        time.Time       `json:"date"`
	DriverName  string          `json:"driver_name"`
	Mode        string          `json:"mode"`
	FromAccount string          `json:"from_account"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	FuelLtr     float64         `json:"fuel_ltr"`
	Remark      string          `json:"remark"`
	RunBal      decimal.Decimal `json:"run_bal"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToDriverAdvanceResponse converts a domain driver advance to a response
func ToDriverAdvanceResponse(a *ledger.DriverAdvance) DriverAdvanceResponse {
	return DriverAdvanceResponse{
		ID:          a.ID,
		TripNo:      a.TripNo,
		Date:        a.Date,
		DriverName:  a.DriverName,
		Mode:        a.Mode,
		FromAccount: a.FromAccount,
		Debit:       a.Debit,
		Credit:      a.Credit,
		FuelLtr:     a.FuelLtr,
		Remark:      a.Remark,
		RunBal:      a.RunBal,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// CreateMarketVehPaymentRequest represents a payout to a transporter
type CreateMarketVehPaymentRequest struct {
	TripNo        string          `json:"trip_no" binding:"max=50"`
	Date          time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	TransporterID *uuid.UUID      `json:"transporter_id"`
	MarketVehNo   string          `json:"market_veh_no" binding:"max=50"`
	Mode          string          `json:"mode" binding:"max=50"`
	PaidAmt       decimal.Decimal `json:"paid_amt"`
	LrNo          string          `json:"lr_no" binding:"max=100"`
	FromBank      string          `json:"from_bank" binding:"max=100"`
	Remark        string          `json:"remark"`
}

// UpdateMarketVehPaymentRequest represents a partial update to a market vehicle payment
type UpdateMarketVehPaymentRequest struct {
	TripNo        *string          `json:"trip_no" binding:"omitempty,max=50"`
	Date          *time.Time       `json:"date"`
	TransporterID *uuid.UUID       `json:"transporter_id"`
	MarketVehNo   *string          `json:"market_veh_no" binding:"omitempty,max=50"`
	Mode          *string          `json:"mode" binding:"omitempty,max=50"`
	PaidAmt       *decimal.Decimal `json:"paid_amt"`
	LrNo          *string          `json:"lr_no" binding:"omitempty,max=100"`
	FromBank      *string          `json:"from_bank" binding:"omitempty,max=100"`
	Remark        *string          `json:"remark"`
}

// MarketVehPaymentResponse represents a market vehicle payment in API responses
type MarketVehPaymentResponse struct {
	ID              uuid.UUID       `json:"id"`
	TripNo          string          `json:"trip_no"`
	Date            time.Time       `json:"date"`
	TransporterID   *uuid.UUID      `json:"transporter_id"`
	TransporterName string          `json:"transporter_name"`
	MarketVehNo     string          `json:"market_veh_no"`
	Mode            string          `json:"mode"`
	PaidAmt         decimal.Decimal `json:"paid_amt"`
	LrNo            string          `json:"lr_no"`
	FromBank        string          `json:"from_bank"`
	Remark          string          `json:"remark"`
	RunBal          decimal.Decimal `json:"run_bal"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToMarketVehPaymentResponse converts a domain market vehicle payment to a response
func ToMarketVehPaymentResponse(m *ledger.MarketVehPayment) MarketVehPaymentResponse {
	return MarketVehPaymentResponse{
		ID:              m.ID,
		TripNo:          m.TripNo,
		Date:            m.Date,
		TransporterID:   m.TransporterID,
		TransporterName: m.TransporterName,
		MarketVehNo:     m.MarketVehNo,
		Mode:            m.Mode,
		PaidAmt:         m.PaidAmt,
		LrNo:            m.LrNo,
		FromBank:        m.FromBank,
		Remark:          m.Remark,
		RunBal:          m.RunBal,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// =============================================================================
// Stock entry DTOs
// =============================================================================

// CreateStockEntryRequest represents a stock movement
type CreateStockEntryRequest struct {
	Date        time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	StockItemID *uuid.UUID      `json:"stock_item_id"`
	EntryType   string          `json:"entry_type" binding:"required,oneof=IN OUT"`
	Quantity    decimal.Decimal `json:"quantity"`
	Remark      string          `json:"remark"`
}

// UpdateStockEntryRequest represents a partial update to a stock movement
type UpdateStockEntryRequest struct {
	Date        *time.Time       `json:"date"`
	StockItemID *uuid.UUID       `json:"stock_item_id"`
	EntryType   *string          `json:"entry_type" binding:"omitempty,oneof=IN OUT"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Remark      *string          `json:"remark"`
}

// StockEntryResponse represents a stock movement in API responses
type StockEntryResponse struct {
	ID            uuid.UUID       `json:"id"`
	Date          time.Time       `json:"date"`
	StockItemID   *uuid.UUID      `json:"stock_item_id"`
	StockItemName string          `json:"stock_item_name"`
	EntryType     string          `json:"entry_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	Remark        string          `json:"remark"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToStockEntryResponse converts a domain stock entry to a response
func ToStockEntryResponse(e *ledger.StockEntry) StockEntryResponse {
	return StockEntryResponse{
		ID:            e.ID,
		Date:          e.Date,
		StockItemID:   e.StockItemID,
		StockItemName: e.StockItemName,
		EntryType:     string(e.EntryType),
		Quantity:      e.Quantity,
		Remark:        e.Remark,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// =============================================================================
// Expense DTOs
// =============================================================================

// CreateExpenseRequest represents a standalone cost record
type CreateExpenseRequest struct {
	TripNo       string          `json:"trip_no" binding:"max=50"`
	Date         time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	ExpenseType  string          `json:"expense_type" binding:"required,min=1,max=100"`
	Amount       decimal.Decimal `json:"amount"`
	FromAccount  string          `json:"from_account" binding:"max=100"`
	RefVehNo     string          `json:"ref_veh_no" binding:"max=50"`
	Remark1      string          `json:"remark1"`
	Remark2      string          `json:"remark2"`
	IsNonTripExp bool            `json:"is_non_trip_exp"`
}

// UpdateExpenseRequest represents a partial update to an expense
type UpdateExpenseRequest struct {
	TripNo       *string          `json:"trip_no" binding:"omitempty,max=50"`
	Date         *time.Time       `json:"date"`
	ExpenseType  *string          `json:"expense_type" binding:"omitempty,min=1,max=100"`
	Amount       *decimal.Decimal `json:"amount"`
	FromAccount  *string          `json:"from_account" binding:"omitempty,max=100"`
	RefVehNo     *string          `json:"ref_veh_no" binding:"omitempty,max=50"`
	Remark1      *string          `json:"remark1"`
	Remark2      *string          `json:"remark2"`
	IsNonTripExp *bool            `json:"is_non_trip_exp"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID           uuid.UUID       `json:"id"`
	TripNo       string          `json:"trip_no"`
	Date         time.Time       `json:"date"`
	ExpenseType  string          `json:"expense_type"`
	Amount       decimal.Decimal `json:"amount"`
	FromAccount  string          `json:"from_account"`
	RefVehNo     string          `json:"ref_veh_no"`
	Remark1      string          `json:"remark1"`
	Remark2      string          `json:"remark2"`
	IsNonTripExp bool            `json:"is_non_trip_exp"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToExpenseResponse converts a domain expense to a response
func ToExpenseResponse(e *ledger.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		TripNo:       e.TripNo,
		Date:         e.Date,
		ExpenseType:  e.ExpenseType,
		Amount:       e.Amount,
		FromAccount:  e.FromAccount,
		RefVehNo:     e.RefVehNo,
		Remark1:      e.Remark1,
		Remark2:      e.Remark2,
		IsNonTripExp: e.IsNonTripExp,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// CreateExpenseCategoryRequest represents a request to create an expense category
type CreateExpenseCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Mode string `json:"mode" binding:"omitempty,oneof=General Expenses Fuel"`
}

// ExpenseCategoryResponse represents an expense category in API responses
type ExpenseCategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

// ToExpenseCategoryResponse converts a domain expense category to a response
func ToExpenseCategoryResponse(c *ledger.ExpenseCategory) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Mode:      string(c.Mode),
		CreatedAt: c.CreatedAt,
	}
}

// CreatePaymentModeRequest represents a request to create a payment mode
type CreatePaymentModeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// PaymentModeResponse represents a payment mode in API responses
type PaymentModeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPaymentModeResponse converts a domain payment mode to a response
func ToPaymentModeResponse(m *ledger.PaymentMode) PaymentModeResponse {
	return PaymentModeResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// =============================================================================
// Shared list filter
// =============================================================================

// ListFilter represents common list query options
type ListFilter struct {
	Search   string     `form:"search"`
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// PageOrDefault returns the requested page, defaulting to the first
func (f ListFilter) PageOrDefault() int {
	if f.Page <= 0 {
		return 1
	}
	return f.Page
}

// PageSizeOrDefault returns the requested page size, defaulting to 20
func (f ListFilter) PageSizeOrDefault() int {
	if f.PageSize <= 0 {
		return 20
	}
	return f.PageSize
}

// toDomainFilter builds the domain filter with defaults applied
func (f ListFilter) toDomainFilter() shared.Filter {
	return shared.Filter{
		Page:     f.PageOrDefault(),
		PageSize: f.PageSizeOrDefault(),
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
		DateFrom: f.DateFrom,
		DateTo:   f.DateTo,
		Filters:  make(map[string]any),
	}
}
