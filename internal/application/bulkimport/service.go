package bulkimport

import (
	"context"
	"fmt"
	"strings"
	"time"

	appledger "github.com/fleetledger/backend/internal/application/ledger"
	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxReportedErrors caps the per-row errors returned to the client. Failed
// counts keep counting past the cap; only the detail list is truncated.
const maxReportedErrors = 100

// Config bounds a bulk import run. The zero value is usable; missing fields
// fall back to the defaults below.
type Config struct {
	// TxTimeout bounds the insert transaction
	TxTimeout time.Duration
	// MaxBatch caps the trip+expense rows accepted per request
	MaxBatch int
	// BatchSize is the number of rows per insert statement
	BatchSize int
	// IdempotencyTTL is how long a processed Idempotency-Key blocks replays
	IdempotencyTTL time.Duration
}

func (c Config) withDefaults() Config {
	if c.TxTimeout <= 0 {
		c.TxTimeout = 30 * time.Second
	}
	if c.MaxBatch <= 0 {
		c.MaxBatch = 5000
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 200
	}
	if c.IdempotencyTTL <= 0 {
		c.IdempotencyTTL = 24 * time.Hour
	}
	return c
}

// BulkImportService reconciles an external ledger dump into the books:
// category upserts, deduplicated trip and expense inserts in one bounded
// transaction, then aggregated vehicle counter updates.
type BulkImportService struct {
	scope        appledger.TransactionScope
	tripRepo     ledger.TripRepository
	vehicleRepo  ledger.VehicleRepository
	categoryRepo ledger.ExpenseCategoryRepository
	idempotency  shared.IdempotencyStore
	cfg          Config
	logger       *zap.Logger
}

// NewBulkImportService creates a new BulkImportService. The idempotency store
// may be nil, which disables replay protection.
func NewBulkImportService(
	scope appledger.TransactionScope,
	tripRepo ledger.TripRepository,
	vehicleRepo ledger.VehicleRepository,
	categoryRepo ledger.ExpenseCategoryRepository,
	idempotency shared.IdempotencyStore,
	cfg Config,
	logger *zap.Logger,
) *BulkImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BulkImportService{
		scope:        scope,
		tripRepo:     tripRepo,
		vehicleRepo:  vehicleRepo,
		categoryRepo: categoryRepo,
		idempotency:  idempotency,
		cfg:          cfg.withDefaults(),
		logger:       logger,
	}
}

// Import runs the reconciliation pipeline. idempotencyKey is the optional
// Idempotency-Key header value; a replay within the TTL is rejected as a
// conflict before any row is touched.
func (s *BulkImportService) Import(ctx context.Context, orgID uuid.UUID, idempotencyKey string, req *BulkImportRequest) (*BulkImportResult, error) {
	rows := len(req.Trips) + len(req.Expenses)
	if rows > s.cfg.MaxBatch {
		return nil, shared.NewValidationError("rows",
			fmt.Sprintf("batch of %d rows exceeds the limit of %d", rows, s.cfg.MaxBatch))
	}

	if idempotencyKey != "" && s.idempotency != nil {
		// Scope the key per organization so two organizations can reuse the same value.
		fresh, err := s.idempotency.MarkProcessed(ctx, orgID.String()+":"+idempotencyKey, s.cfg.IdempotencyTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to check idempotency key: %w", err)
		}
		if !fresh {
			return nil, shared.NewConflictError("An import with this idempotency key was already processed")
		}
	}

	result := &BulkImportResult{}

	// Categories first, outside the transaction. They are upserts by name, so
	// a later rollback of the row inserts leaves nothing inconsistent.
	s.upsertCategories(ctx, orgID, req.Categories, result)

	trips := s.buildTrips(ctx, orgID, req.Trips, result)
	expenses := s.buildExpenses(orgID, req.Expenses, result)

	var persisted []*ledger.Trip
	if len(trips) > 0 || len(expenses) > 0 {
		var err error
		if persisted, err = s.insertRows(ctx, orgID, trips, expenses, result); err != nil {
			return nil, err
		}
	}

	// Vehicle counters are updated after commit. The rows are already durable;
	// a failed counter update is logged and reported, not rolled back.
	if len(persisted) > 0 {
		s.rebalanceVehicles(ctx, orgID, persisted, result)
	}

	s.logger.Info("bulk import finished",
		zap.String("org_id", orgID.String()),
		zap.Int("trips_created", result.TripsCreated),
		zap.Int("trips_failed", result.TripsFailed),
		zap.Int("expenses_created", result.ExpensesCreated),
		zap.Int("expenses_failed", result.ExpensesFailed),
		zap.Int("categories_created", result.CategoriesCreated))

	return result, nil
}

func (s *BulkImportService) upsertCategories(ctx context.Context, orgID uuid.UUID, rows []CategoryImportRow, result *BulkImportResult) {
	for i, row := range rows {
		_, created, err := s.categoryRepo.GetOrCreate(ctx, orgID, row.Name, ledger.CategoryMode(row.Mode))
		if err != nil {
			s.addError(result, RowError{Kind: ErrorKindCategory, Index: i, Message: err.Error()})
			continue
		}
		if created {
			result.CategoriesCreated++
		}
	}
}

// buildTrips validates the trip rows and drops duplicates, both against the
// trip numbers already in the organization and within the payload itself.
func (s *BulkImportService) buildTrips(ctx context.Context, orgID uuid.UUID, rows []TripImportRow, result *BulkImportResult) []*ledger.Trip {
	if len(rows) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	existing, err := s.tripRepo.ListTripNos(ctx, orgID)
	if err != nil {
		// Worst case the database-level conflict skip catches what we missed.
		s.logger.Warn("failed to load existing trip numbers, relying on insert conflicts",
			zap.String("org_id", orgID.String()), zap.Error(err))
	}
	for _, no := range existing {
		seen[no] = struct{}{}
	}

	trips := make([]*ledger.Trip, 0, len(rows))
	for i, row := range rows {
		trip, err := ledger.NewTrip(orgID, row.TripNo, row.Date, row.VehNo)
		if err != nil {
			result.TripsFailed++
			s.addError(result, RowError{Kind: ErrorKindTrip, Index: i, TripNo: row.TripNo, Message: err.Error()})
			continue
		}
		if _, dup := seen[trip.TripNo]; dup {
			result.TripsFailed++
			s.addError(result, RowError{Kind: ErrorKindTrip, Index: i, TripNo: trip.TripNo, Message: "trip number already exists"})
			continue
		}

		trip.DriverName = strings.TrimSpace(row.DriverName)
		trip.FromLocation = strings.TrimSpace(row.FromLocation)
		trip.ToLocation = strings.TrimSpace(row.ToLocation)
		trip.StartMeter = row.StartMeter
		trip.EndMeter = row.EndMeter
		trip.DieselRate = row.DieselRate
		trip.Litres = row.Litres
		trip.FuelExpAmt = row.FuelExpAmt
		trip.TripFare = row.TripFare
		trip.RtFare = row.RtFare
		trip.TripExpense = row.TripExpense
		trip.ExIncome = row.ExIncome
		trip.DriverBal = row.DriverBal
		trip.IsMarketTrip = row.IsMarketTrip
		trip.PlantName = strings.TrimSpace(row.PlantName)
		trip.CarQty = row.CarQty
		trip.LoadKm = row.LoadKm
		trip.EmptyKm = row.EmptyKm

		if err := trip.Validate(); err != nil {
			result.TripsFailed++
			s.addError(result, RowError{Kind: ErrorKindTrip, Index: i, TripNo: trip.TripNo, Message: err.Error()})
			continue
		}
		trip.Recompute()

		seen[trip.TripNo] = struct{}{}
		trips = append(trips, trip)
	}
	return trips
}

func (s *BulkImportService) buildExpenses(orgID uuid.UUID, rows []ExpenseImportRow, result *BulkImportResult) []*ledger.Expense {
	if len(rows) == 0 {
		return nil
	}

	expenses := make([]*ledger.Expense, 0, len(rows))
	for i, row := range rows {
		expense, err := ledger.NewExpense(orgID, row.Date, row.ExpenseType, row.Amount)
		if err != nil {
			result.ExpensesFailed++
			s.addError(result, RowError{Kind: ErrorKindExpense, Index: i, TripNo: row.TripNo, Message: err.Error()})
			continue
		}
		expense.TripNo = strings.TrimSpace(row.TripNo)
		expense.FromAccount = strings.TrimSpace(row.FromAccount)
		expense.RefVehNo = strings.ToUpper(strings.TrimSpace(row.RefVehNo))
		expense.Remark1 = row.Remark1
		expense.Remark2 = row.Remark2
		expense.IsNonTripExp = row.IsNonTripExp
		expenses = append(expenses, expense)
	}
	return expenses
}

// insertRows writes all accepted rows in one transaction bounded by the
// configured timeout. The insert keeps ON CONFLICT DO NOTHING as a safety net
// for trip numbers created concurrently after the dedup pass. Returns the
// trips that actually landed, which can be fewer than were accepted when the
// safety net fired.
func (s *BulkImportService) insertRows(ctx context.Context, orgID uuid.UUID, trips []*ledger.Trip, expenses []*ledger.Expense, result *BulkImportResult) ([]*ledger.Trip, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.cfg.TxTimeout)
	defer cancel()

	var persisted []*ledger.Trip
	err := s.scope.Execute(txCtx, func(repos appledger.TransactionalRepositories) error {
		for start := 0; start < len(trips); start += s.cfg.BatchSize {
			end := min(start+s.cfg.BatchSize, len(trips))
			batch := trips[start:end]
			inserted, err := repos.Trips().CreateBatch(txCtx, batch)
			if err != nil {
				return fmt.Errorf("failed to insert trips: %w", err)
			}
			result.TripsCreated += int(inserted)
			result.TripsFailed += len(batch) - int(inserted)

			if int(inserted) == len(batch) {
				persisted = append(persisted, batch...)
				continue
			}
			// Conflict-skipped rows never got their generated IDs into the
			// table, so membership by ID tells the two sets apart.
			landed, err := filterInserted(txCtx, repos.Trips(), orgID, batch)
			if err != nil {
				return fmt.Errorf("failed to resolve inserted trips: %w", err)
			}
			s.logger.Warn("conflict-skipped trips excluded from vehicle counters",
				zap.String("org_id", orgID.String()),
				zap.Int("accepted", len(batch)),
				zap.Int("inserted", int(inserted)))
			persisted = append(persisted, landed...)
		}
		for start := 0; start < len(expenses); start += s.cfg.BatchSize {
			end := min(start+s.cfg.BatchSize, len(expenses))
			inserted, err := repos.Expenses().CreateBatch(txCtx, expenses[start:end])
			if err != nil {
				return fmt.Errorf("failed to insert expenses: %w", err)
			}
			result.ExpensesCreated += int(inserted)
			result.ExpensesFailed += (end - start) - int(inserted)
		}
		return nil
	})
	if err != nil {
		// The transaction rolled back whole; counters collected inside it are void.
		result.TripsCreated = 0
		result.ExpensesCreated = 0
		return nil, err
	}
	return persisted, nil
}

// filterInserted returns the subset of batch whose rows exist in the table
func filterInserted(ctx context.Context, repo ledger.TripRepository, orgID uuid.UUID, batch []*ledger.Trip) ([]*ledger.Trip, error) {
	ids := make([]uuid.UUID, len(batch))
	for i, trip := range batch {
		ids[i] = trip.ID
	}
	existing, err := repo.ExistingIDs(ctx, orgID, ids)
	if err != nil {
		return nil, err
	}
	keep := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		keep[id] = struct{}{}
	}
	landed := make([]*ledger.Trip, 0, len(existing))
	for _, trip := range batch {
		if _, ok := keep[trip.ID]; ok {
			landed = append(landed, trip)
		}
	}
	return landed, nil
}

// rebalanceVehicles applies one aggregated counter update per distinct vehicle
// instead of one per trip. Trips on vehicles the organization does not track
// are skipped by the repository.
func (s *BulkImportService) rebalanceVehicles(ctx context.Context, orgID uuid.UUID, trips []*ledger.Trip, result *BulkImportResult) {
	byVehNo := make(map[string]ledger.VehicleDelta)
	for _, trip := range trips {
		delta := byVehNo[trip.VehNo]
		delta.Trips++
		delta.Profit = delta.Profit.Add(trip.ProfitStatement)
		byVehNo[trip.VehNo] = delta
	}

	for vehNo, delta := range byVehNo {
		if err := s.vehicleRepo.ApplyDeltaByVehNo(ctx, orgID, vehNo, delta); err != nil {
			s.logger.Error("failed to update vehicle counters",
				zap.String("org_id", orgID.String()),
				zap.String("veh_no", vehNo),
				zap.Error(err))
			s.addError(result, RowError{Kind: ErrorKindVehicle, Message: "failed to update counters for vehicle " + vehNo})
		}
	}
}

func (s *BulkImportService) addError(result *BulkImportResult, rowErr RowError) {
	if len(result.Errors) >= maxReportedErrors {
		result.ErrorsTruncated = true
		return
	}
	result.Errors = append(result.Errors, rowErr)
}
