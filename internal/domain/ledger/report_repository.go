package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TripReportFilter narrows the trip report.
type TripReportFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	VehNo      string
	DriverName string
}

// TripSummary aggregates the trips matched by a report filter.
type TripSummary struct {
	TotalTrips   int64           `json:"total_trips"`
	TotalFare    decimal.Decimal `json:"total_fare"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	TotalKm      float64         `json:"total_km"`
}

// BalanceSheet lists every account with a running balance, grouped by kind.
type BalanceSheet struct {
	Parties          []BillingParty  `json:"parties"`
	PartyTotal       decimal.Decimal `json:"party_total"`
	Drivers          []Driver        `json:"drivers"`
	DriverTotal      decimal.Decimal `json:"driver_total"`
	Transporters     []Transporter   `json:"transporters"`
	TransporterTotal decimal.Decimal `json:"transporter_total"`
}

// DashboardStats is the landing-page aggregate view.
type DashboardStats struct {
	TripCount        int64           `json:"trip_count"`
	VehicleCount     int64           `json:"vehicle_count"`
	DriverCount      int64           `json:"driver_count"`
	PartyCount       int64           `json:"party_count"`
	TransporterCount int64           `json:"transporter_count"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	RecentTrips      []Trip          `json:"recent_trips"`
}

// ReportRepository defines the read-side aggregation queries.
type ReportRepository interface {
	// TripReport returns the trips matching the filter with their summary
	TripReport(ctx context.Context, orgID uuid.UUID, filter TripReportFilter) ([]Trip, *TripSummary, error)

	// BalanceSheet returns all account listings with per-group totals
	BalanceSheet(ctx context.Context, orgID uuid.UUID) (*BalanceSheet, error)

	// DashboardStats returns entity counts and trip aggregates
	DashboardStats(ctx context.Context, orgID uuid.UUID) (*DashboardStats, error)
}
