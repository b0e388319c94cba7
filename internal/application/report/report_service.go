package report

import (
	"context"
	"time"

	appledger "github.com/fleetledger/backend/internal/application/ledger"
	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService provides the read-side report operations
type ReportService struct {
	reportRepo ledger.ReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo ledger.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// TripReportFilter defines the request filter for the trip report
type TripReportFilter struct {
	DateFrom   *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo     *time.Time `form:"date_to" time_format:"2006-01-02"`
	VehNo      string     `form:"veh_no"`
	DriverName string     `form:"driver_name"`
}

// TripReportResponse is the trip listing with its aggregate summary
type TripReportResponse struct {
	Trips   []appledger.TripResponse `json:"trips"`
	Summary ledger.TripSummary       `json:"summary"`
}

// GetTripReport returns the trips matching the filter with their summary
func (s *ReportService) GetTripReport(ctx context.Context, orgID uuid.UUID, filter TripReportFilter) (*TripReportResponse, error) {
	trips, summary, err := s.reportRepo.TripReport(ctx, orgID, ledger.TripReportFilter{
		DateFrom:   filter.DateFrom,
		DateTo:     filter.DateTo,
		VehNo:      filter.VehNo,
		DriverName: filter.DriverName,
	})
	if err != nil {
		return nil, err
	}
	return &TripReportResponse{
		Trips:   appledger.ToTripResponses(trips),
		Summary: *summary,
	}, nil
}

// BalanceSheetResponse lists every account grouped by kind with totals
type BalanceSheetResponse struct {
	Parties          []appledger.BillingPartyResponse `json:"parties"`
	PartyTotal       decimal.Decimal                  `json:"party_total"`
	Drivers          []appledger.DriverResponse       `json:"drivers"`
	DriverTotal      decimal.Decimal                  `json:"driver_total"`
	Transporters     []appledger.TransporterResponse  `json:"transporters"`
	TransporterTotal decimal.Decimal                  `json:"transporter_total"`
}

// GetBalanceSheet returns the account listings with per-group totals
func (s *ReportService) GetBalanceSheet(ctx context.Context, orgID uuid.UUID) (*BalanceSheetResponse, error) {
	sheet, err := s.reportRepo.BalanceSheet(ctx, orgID)
	if err != nil {
		return nil, err
	}

	resp := &BalanceSheetResponse{
		Parties:          make([]appledger.BillingPartyResponse, len(sheet.Parties)),
		PartyTotal:       sheet.PartyTotal,
		Drivers:          make([]appledger.DriverResponse, len(sheet.Drivers)),
		DriverTotal:      sheet.DriverTotal,
		Transporters:     make([]appledger.TransporterResponse, len(sheet.Transporters)),
		TransporterTotal: sheet.TransporterTotal,
	}
	for i := range sheet.Parties {
		resp.Parties[i] = appledger.ToBillingPartyResponse(&sheet.Parties[i])
	}
	for i := range sheet.Drivers {
		resp.Drivers[i] = appledger.ToDriverResponse(&sheet.Drivers[i])
	}
	for i := range sheet.Transporters {
		resp.Transporters[i] = appledger.ToTransporterResponse(&sheet.Transporters[i])
	}
	return resp, nil
}

// DashboardStatsResponse is the landing-page aggregate view
type DashboardStatsResponse struct {
	TripCount        int64                    `json:"trip_count"`
	VehicleCount     int64                    `json:"vehicle_count"`
	DriverCount      int64                    `json:"driver_count"`
	PartyCount       int64                    `json:"party_count"`
	TransporterCount int64                    `json:"transporter_count"`
	TotalRevenue     decimal.Decimal          `json:"total_revenue"`
	TotalExpense     decimal.Decimal          `json:"total_expense"`
	TotalProfit      decimal.Decimal          `json:"total_profit"`
	RecentTrips      []appledger.TripResponse `json:"recent_trips"`
}

// GetDashboardStats returns entity counts and trip aggregates
func (s *ReportService) GetDashboardStats(ctx context.Context, orgID uuid.UUID) (*DashboardStatsResponse, error) {
	stats, err := s.reportRepo.DashboardStats(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return &DashboardStatsResponse{
		TripCount:        stats.TripCount,
		VehicleCount:     stats.VehicleCount,
		DriverCount:      stats.DriverCount,
		PartyCount:       stats.PartyCount,
		TransporterCount: stats.TransporterCount,
		TotalRevenue:     stats.TotalRevenue,
		TotalExpense:     stats.TotalExpense,
		TotalProfit:      stats.TotalProfit,
		RecentTrips:      appledger.ToTripResponses(stats.RecentTrips),
	}, nil
}
