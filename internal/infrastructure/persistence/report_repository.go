package persistence

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/infrastructure/persistence/orgscope"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReportRepository implements ReportRepository with SQL aggregation
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

type tripAggregateRow struct {
	TotalTrips   int64
	TotalFare    decimal.Decimal
	TotalExpense decimal.Decimal
	TotalProfit  decimal.Decimal
	TotalKm      float64
}

func (r *GormReportRepository) tripQuery(ctx context.Context, orgID uuid.UUID, filter ledger.TripReportFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&ledger.Trip{}).
		Scopes(orgscope.Scope(orgID))
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}
	if filter.VehNo != "" {
		query = query.Where("veh_no = ?", filter.VehNo)
	}
	if filter.DriverName != "" {
		query = query.Where("driver_name = ?", filter.DriverName)
	}
	return query
}

// TripReport returns the trips matching the filter with their summary
func (r *GormReportRepository) TripReport(ctx context.Context, orgID uuid.UUID, filter ledger.TripReportFilter) ([]ledger.Trip, *ledger.TripSummary, error) {
	var trips []ledger.Trip
	if err := r.tripQuery(ctx, orgID, filter).
		Order("date ASC, trip_no ASC").
		Find(&trips).Error; err != nil {
		return nil, nil, err
	}

	var agg tripAggregateRow
	if err := r.tripQuery(ctx, orgID, filter).
		Select(`COUNT(*) AS total_trips,
			COALESCE(SUM(total_trip_fare), 0) AS total_fare,
			COALESCE(SUM(trip_expense), 0) AS total_expense,
			COALESCE(SUM(profit_statement), 0) AS total_profit,
			COALESCE(SUM(trip_km), 0) AS total_km`).
		Scan(&agg).Error; err != nil {
		return nil, nil, err
	}

	summary := &ledger.TripSummary{
		TotalTrips:   agg.TotalTrips,
		TotalFare:    agg.TotalFare,
		TotalExpense: agg.TotalExpense,
		TotalProfit:  agg.TotalProfit,
		TotalKm:      agg.TotalKm,
	}
	return trips, summary, nil
}

// BalanceSheet returns all account listings with per-group totals
func (r *GormReportRepository) BalanceSheet(ctx context.Context, orgID uuid.UUID) (*ledger.BalanceSheet, error) {
	sheet := &ledger.BalanceSheet{}

	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Order("name ASC").
		Find(&sheet.Parties).Error; err != nil {
		return nil, err
	}
	for _, p := range sheet.Parties {
		sheet.PartyTotal = sheet.PartyTotal.Add(p.BalanceAmt)
	}

	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Order("name ASC").
		Find(&sheet.Drivers).Error; err != nil {
		return nil, err
	}
	for _, d := range sheet.Drivers {
		sheet.DriverTotal = sheet.DriverTotal.Add(d.CloseBal)
	}

	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Order("name ASC").
		Find(&sheet.Transporters).Error; err != nil {
		return nil, err
	}
	for _, t := range sheet.Transporters {
		sheet.TransporterTotal = sheet.TransporterTotal.Add(t.CloseBal)
	}

	return sheet, nil
}

// DashboardStats returns entity counts and trip aggregates
func (r *GormReportRepository) DashboardStats(ctx context.Context, orgID uuid.UUID) (*ledger.DashboardStats, error) {
	stats := &ledger.DashboardStats{}

	counts := []struct {
		model any
		dest  *int64
	}{
		{&ledger.Trip{}, &stats.TripCount},
		{&ledger.Vehicle{}, &stats.VehicleCount},
		{&ledger.Driver{}, &stats.DriverCount},
		{&ledger.BillingParty{}, &stats.PartyCount},
		{&ledger.Transporter{}, &stats.TransporterCount},
	}
	for _, c := range counts {
		if err := r.db.WithContext(ctx).
			Model(c.model).
			Scopes(orgscope.Scope(orgID)).
			Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var agg tripAggregateRow
	if err := r.db.WithContext(ctx).
		Model(&ledger.Trip{}).
		Scopes(orgscope.Scope(orgID)).
		Select(`COALESCE(SUM(total_trip_fare), 0) AS total_fare,
			COALESCE(SUM(trip_expense), 0) AS total_expense,
			COALESCE(SUM(profit_statement), 0) AS total_profit`).
		Scan(&agg).Error; err != nil {
		return nil, err
	}
	stats.TotalRevenue = agg.TotalFare
	stats.TotalExpense = agg.TotalExpense
	stats.TotalProfit = agg.TotalProfit

	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Order("date DESC, trip_no DESC").
		Limit(10).
		Find(&stats.RecentTrips).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// Ensure GormReportRepository implements ReportRepository
var _ ledger.ReportRepository = (*GormReportRepository)(nil)
