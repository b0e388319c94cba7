package ledger

import (
	"context"
	"strings"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TripService handles trip operations. Every write runs inside a transaction
// scope so the trip row and the vehicle counters it feeds commit together.
type TripService struct {
	scope    TransactionScope
	tripRepo ledger.TripRepository
}

// NewTripService creates a new TripService
func NewTripService(scope TransactionScope, tripRepo ledger.TripRepository) *TripService {
	return &TripService{scope: scope, tripRepo: tripRepo}
}

// Create records a trip. An empty trip number is assigned the next free one.
// The vehicle addressed by registration number picks up the trip count and
// profit; an unregistered vehicle absorbs nothing.
func (s *TripService) Create(ctx context.Context, orgID uuid.UUID, req CreateTripRequest) (*TripResponse, error) {
	var response TripResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		trips := repos.Trips()

		tripNo := req.TripNo
		if tripNo == "" {
			next, err := trips.NextTripNo(ctx, orgID)
			if err != nil {
				return err
			}
			tripNo = next
		} else {
			exists, err := trips.ExistsByTripNo(ctx, orgID, tripNo)
			if err != nil {
				return err
			}
			if exists {
				return shared.NewDomainError("ALREADY_EXISTS", "Trip with this number already exists")
			}
		}

		trip, err := ledger.NewTrip(orgID, tripNo, req.Date, req.VehNo)
		if err != nil {
			return err
		}
		trip.DriverName = req.DriverName
		trip.FromLocation = req.FromLocation
		trip.ToLocation = req.ToLocation
		trip.StartMeter = req.StartMeter
		trip.EndMeter = req.EndMeter
		trip.DieselRate = req.DieselRate
		trip.Litres = req.Litres
		trip.FuelExpAmt = req.FuelExpAmt
		trip.TripFare = req.TripFare
		trip.RtFare = req.RtFare
		trip.TripExpense = req.TripExpense
		trip.ExIncome = req.ExIncome
		trip.DriverBal = req.DriverBal
		trip.IsMarketTrip = req.IsMarketTrip
		trip.PlantName = req.PlantName
		trip.CarQty = req.CarQty
		trip.LoadKm = req.LoadKm
		trip.EmptyKm = req.EmptyKm
		if err := trip.Validate(); err != nil {
			return err
		}
		trip.Recompute()

		if err := trips.Save(ctx, trip); err != nil {
			return err
		}
		if err := repos.Vehicles().ApplyDeltaByVehNo(ctx, orgID, trip.VehNo, trip.VehicleContribution()); err != nil {
			return err
		}

		response = ToTripResponse(trip)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a trip by ID
func (s *TripService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*TripResponse, error) {
	trip, err := s.tripRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToTripResponse(trip)
	return &response, nil
}

// GetByTripNo retrieves a trip by its number
func (s *TripService) GetByTripNo(ctx context.Context, orgID uuid.UUID, tripNo string) (*TripResponse, error) {
	trip, err := s.tripRepo.FindByTripNo(ctx, orgID, tripNo)
	if err != nil {
		return nil, err
	}
	response := ToTripResponse(trip)
	return &response, nil
}

// List retrieves trips with filtering and pagination
func (s *TripService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter, vehNo, driverName string) ([]TripResponse, int64, error) {
	domainFilter := filter.toDomainFilter()
	if vehNo != "" {
		domainFilter.Filters["veh_no"] = vehNo
	}
	if driverName != "" {
		domainFilter.Filters["driver_name"] = driverName
	}

	trips, err := s.tripRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.tripRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToTripResponses(trips), total, nil
}

// NextTripNo returns the next free trip number
func (s *TripService) NextTripNo(ctx context.Context, orgID uuid.UUID) (string, error) {
	return s.tripRepo.NextTripNo(ctx, orgID)
}

// Update applies a partial update to a trip and moves the vehicle counters by
// the difference between the new and old contribution. Changing the vehicle
// number transfers the whole contribution from the old vehicle to the new one.
func (s *TripService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateTripRequest) (*TripResponse, error) {
	var response TripResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		trips := repos.Trips()

		trip, err := trips.FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}
		if trip.LockStatus && (req.LockStatus == nil || *req.LockStatus) {
			return shared.NewConflictError("Trip is locked")
		}

		oldVehNo := trip.VehNo
		oldContribution := trip.VehicleContribution()

		if req.Date != nil {
			trip.Date = *req.Date
		}
		if req.VehNo != nil {
			trip.VehNo = strings.ToUpper(strings.TrimSpace(*req.VehNo))
		}
		if req.DriverName != nil {
			trip.DriverName = *req.DriverName
		}
		if req.FromLocation != nil {
			trip.FromLocation = *req.FromLocation
		}
		if req.ToLocation != nil {
			trip.ToLocation = *req.ToLocation
		}
		if req.StartMeter != nil {
			trip.StartMeter = *req.StartMeter
		}
		if req.EndMeter != nil {
			trip.EndMeter = *req.EndMeter
		}
		if req.DieselRate != nil {
			trip.DieselRate = *req.DieselRate
		}
		if req.Litres != nil {
			trip.Litres = *req.Litres
		}
		if req.FuelExpAmt != nil {
			trip.FuelExpAmt = *req.FuelExpAmt
		}
		if req.TripFare != nil {
			trip.TripFare = *req.TripFare
		}
		if req.RtFare != nil {
			trip.RtFare = *req.RtFare
		}
		if req.TripExpense != nil {
			trip.TripExpense = *req.TripExpense
		}
		if req.ExIncome != nil {
			trip.ExIncome = *req.ExIncome
		}
		if req.DriverBal != nil {
			trip.DriverBal = *req.DriverBal
		}
		if req.IsMarketTrip != nil {
			trip.IsMarketTrip = *req.IsMarketTrip
		}
		if req.LockStatus != nil {
			trip.LockStatus = *req.LockStatus
		}
		if req.PlantName != nil {
			trip.PlantName = *req.PlantName
		}
		if req.CarQty != nil {
			trip.CarQty = *req.CarQty
		}
		if req.LoadKm != nil {
			trip.LoadKm = *req.LoadKm
		}
		if req.EmptyKm != nil {
			trip.EmptyKm = *req.EmptyKm
		}
		if err := trip.Validate(); err != nil {
			return err
		}
		trip.Recompute()

		if err := trips.Save(ctx, trip); err != nil {
			return err
		}

		vehicles := repos.Vehicles()
		newContribution := trip.VehicleContribution()
		if trip.VehNo != oldVehNo {
			if err := vehicles.ApplyDeltaByVehNo(ctx, orgID, oldVehNo, oldContribution.Neg()); err != nil {
				return err
			}
			if err := vehicles.ApplyDeltaByVehNo(ctx, orgID, trip.VehNo, newContribution); err != nil {
				return err
			}
		} else if diff := newContribution.Sub(oldContribution); !diff.IsZero() {
			if err := vehicles.ApplyDeltaByVehNo(ctx, orgID, trip.VehNo, diff); err != nil {
				return err
			}
		}

		response = ToTripResponse(trip)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete removes a trip and backs its contribution out of the vehicle counters
func (s *TripService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		trips := repos.Trips()

		trip, err := trips.FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}
		if trip.LockStatus {
			return shared.NewConflictError("Trip is locked")
		}

		if err := trips.Delete(ctx, orgID, id); err != nil {
			return err
		}
		return repos.Vehicles().ApplyDeltaByVehNo(ctx, orgID, trip.VehNo, trip.VehicleContribution().Neg())
	})
}
