package ledger

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BillingPartyService handles billing party account operations
type BillingPartyService struct {
	partyRepo      ledger.BillingPartyRepository
	tripBookRepo   ledger.TripBookRepository
	returnTripRepo ledger.ReturnTripRepository
	paymentRepo    ledger.PartyPaymentRepository
}

// NewBillingPartyService creates a new BillingPartyService
func NewBillingPartyService(
	partyRepo ledger.BillingPartyRepository,
	tripBookRepo ledger.TripBookRepository,
	returnTripRepo ledger.ReturnTripRepository,
	paymentRepo ledger.PartyPaymentRepository,
) *BillingPartyService {
	return &BillingPartyService{
		partyRepo:      partyRepo,
		tripBookRepo:   tripBookRepo,
		returnTripRepo: returnTripRepo,
		paymentRepo:    paymentRepo,
	}
}

// Create creates a new billing party
func (s *BillingPartyService) Create(ctx context.Context, orgID uuid.UUID, req CreateBillingPartyRequest) (*BillingPartyResponse, error) {
	exists, err := s.partyRepo.ExistsByName(ctx, orgID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Billing party with this name already exists")
	}

	party, err := ledger.NewBillingParty(orgID, req.Name, req.OpenBal, ledger.BalanceSide(req.DrCr))
	if err != nil {
		return nil, err
	}
	party.ContactNo = req.ContactNo
	party.Remark = req.Remark

	if err := s.partyRepo.Save(ctx, party); err != nil {
		return nil, err
	}

	response := ToBillingPartyResponse(party)
	return &response, nil
}

// GetByID retrieves a billing party by ID
func (s *BillingPartyService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*BillingPartyResponse, error) {
	party, err := s.partyRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToBillingPartyResponse(party)
	return &response, nil
}

// List retrieves billing parties with filtering and pagination
func (s *BillingPartyService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter) ([]BillingPartyResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	parties, err := s.partyRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.partyRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BillingPartyResponse, len(parties))
	for i := range parties {
		responses[i] = ToBillingPartyResponse(&parties[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a billing party
func (s *BillingPartyService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateBillingPartyRequest) (*BillingPartyResponse, error) {
	party, err := s.partyRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != party.Name {
		exists, err := s.partyRepo.ExistsByName(ctx, orgID, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Billing party with this name already exists")
		}
		party.Name = *req.Name
	}
	if req.ContactNo != nil {
		party.ContactNo = *req.ContactNo
	}
	if req.DrCr != nil {
		party.DrCr = ledger.BalanceSide(*req.DrCr)
	}
	if req.Remark != nil {
		party.Remark = *req.Remark
	}
	if req.OpenBal != nil {
		party.OpenBal = *req.OpenBal
	}

	// Only the detail columns are written; the balance is recomputed in the
	// database from the accumulators, which may have moved since the read.
	if err := s.partyRepo.SaveDetails(ctx, party); err != nil {
		return nil, err
	}
	party, err = s.partyRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	response := ToBillingPartyResponse(party)
	return &response, nil
}

// Delete removes a billing party. A party still referenced by trip books,
// return trips or payments cannot be deleted.
func (s *BillingPartyService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := s.partyRepo.FindByID(ctx, orgID, id); err != nil {
		return err
	}

	referenced, err := s.tripBookRepo.ExistsByBillingParty(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !referenced {
		referenced, err = s.returnTripRepo.ExistsByBillingParty(ctx, orgID, id)
		if err != nil {
			return err
		}
	}
	if !referenced {
		referenced, err = s.paymentRepo.ExistsByBillingParty(ctx, orgID, id)
		if err != nil {
			return err
		}
	}
	if referenced {
		return shared.NewConflictError("Billing party has ledger entries and cannot be deleted")
	}

	return s.partyRepo.Delete(ctx, orgID, id)
}

// DriverService handles driver account operations
type DriverService struct {
	driverRepo  ledger.DriverRepository
	advanceRepo ledger.DriverAdvanceRepository
}

// NewDriverService creates a new DriverService
func NewDriverService(driverRepo ledger.DriverRepository, advanceRepo ledger.DriverAdvanceRepository) *DriverService {
	return &DriverService{driverRepo: driverRepo, advanceRepo: advanceRepo}
}

// Create creates a new driver account
func (s *DriverService) Create(ctx context.Context, orgID uuid.UUID, req CreateDriverRequest) (*DriverResponse, error) {
	if existing, err := s.driverRepo.FindByName(ctx, orgID, req.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Driver with this name already exists")
	} else if err != nil && err != shared.ErrNotFound {
		return nil, err
	}

	driver, err := ledger.NewDriver(orgID, req.Name, req.OpenBal, ledger.BalanceSide(req.DrCr))
	if err != nil {
		return nil, err
	}
	driver.ContactNo = req.ContactNo
	driver.Remark = req.Remark

	if err := s.driverRepo.Save(ctx, driver); err != nil {
		return nil, err
	}

	response := ToDriverResponse(driver)
	return &response, nil
}

// GetByID retrieves a driver by ID
func (s *DriverService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*DriverResponse, error) {
	driver, err := s.driverRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToDriverResponse(driver)
	return &response, nil
}

// List retrieves drivers with filtering and pagination
func (s *DriverService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter) ([]DriverResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	drivers, err := s.driverRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.driverRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]DriverResponse, len(drivers))
	for i := range drivers {
		responses[i] = ToDriverResponse(&drivers[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a driver account. Renaming is rejected
// while advances reference the old name, since advances address drivers by
// name.
func (s *DriverService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateDriverRequest) (*DriverResponse, error) {
	driver, err := s.driverRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != driver.Name {
		referenced, err := s.advanceRepo.ExistsByDriverName(ctx, orgID, driver.Name)
		if err != nil {
			return nil, err
		}
		if referenced {
			return nil, shared.NewConflictError("Driver has advances recorded under this name and cannot be renamed")
		}
		if existing, err := s.driverRepo.FindByName(ctx, orgID, *req.Name); err == nil && existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Driver with this name already exists")
		} else if err != nil && err != shared.ErrNotFound {
			return nil, err
		}
		driver.Name = *req.Name
	}
	if req.ContactNo != nil {
		driver.ContactNo = *req.ContactNo
	}
	if req.DrCr != nil {
		driver.DrCr = ledger.BalanceSide(*req.DrCr)
	}
	if req.Remark != nil {
		driver.Remark = *req.Remark
	}
	if req.OpenBal != nil {
		driver.OpenBal = *req.OpenBal
	}

	if err := s.driverRepo.SaveDetails(ctx, driver); err != nil {
		return nil, err
	}
	driver, err = s.driverRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	response := ToDriverResponse(driver)
	return &response, nil
}

// Delete removes a driver. A driver with recorded advances cannot be deleted.
func (s *DriverService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	driver, err := s.driverRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return err
	}

	referenced, err := s.advanceRepo.ExistsByDriverName(ctx, orgID, driver.Name)
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewConflictError("Driver has advances recorded and cannot be deleted")
	}

	return s.driverRepo.Delete(ctx, orgID, id)
}

// TransporterService handles transporter account operations
type TransporterService struct {
	transporterRepo ledger.TransporterRepository
	tripBookRepo    ledger.TripBookRepository
	paymentRepo     ledger.MarketVehPaymentRepository
}

// NewTransporterService creates a new TransporterService
func NewTransporterService(
	transporterRepo ledger.TransporterRepository,
	tripBookRepo ledger.TripBookRepository,
	paymentRepo ledger.MarketVehPaymentRepository,
) *TransporterService {
	return &TransporterService{
		transporterRepo: transporterRepo,
		tripBookRepo:    tripBookRepo,
		paymentRepo:     paymentRepo,
	}
}

// Create creates a new transporter
func (s *TransporterService) Create(ctx context.Context, orgID uuid.UUID, req CreateTransporterRequest) (*TransporterResponse, error) {
	if existing, err := s.transporterRepo.FindByName(ctx, orgID, req.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Transporter with this name already exists")
	} else if err != nil && err != shared.ErrNotFound {
		return nil, err
	}

	transporter, err := ledger.NewTransporter(orgID, req.Name, req.VehNo, req.OpenBal)
	if err != nil {
		return nil, err
	}
	transporter.ContactNo = req.ContactNo
	transporter.Remark = req.Remark

	if err := s.transporterRepo.Save(ctx, transporter); err != nil {
		return nil, err
	}

	response := ToTransporterResponse(transporter)
	return &response, nil
}

// GetByID retrieves a transporter by ID
func (s *TransporterService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*TransporterResponse, error) {
	transporter, err := s.transporterRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToTransporterResponse(transporter)
	return &response, nil
}

// List retrieves transporters with filtering and pagination
func (s *TransporterService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter) ([]TransporterResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	transporters, err := s.transporterRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.transporterRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransporterResponse, len(transporters))
	for i := range transporters {
		responses[i] = ToTransporterResponse(&transporters[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a transporter
func (s *TransporterService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateTransporterRequest) (*TransporterResponse, error) {
	transporter, err := s.transporterRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != transporter.Name {
		if existing, err := s.transporterRepo.FindByName(ctx, orgID, *req.Name); err == nil && existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Transporter with this name already exists")
		} else if err != nil && err != shared.ErrNotFound {
			return nil, err
		}
		transporter.Name = *req.Name
	}
	if req.VehNo != nil {
		transporter.VehNo = *req.VehNo
	}
	if req.ContactNo != nil {
		transporter.ContactNo = *req.ContactNo
	}
	if req.Remark != nil {
		transporter.Remark = *req.Remark
	}
	if req.OpenBal != nil {
		transporter.OpenBal = *req.OpenBal
	}

	if err := s.transporterRepo.SaveDetails(ctx, transporter); err != nil {
		return nil, err
	}
	transporter, err = s.transporterRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	response := ToTransporterResponse(transporter)
	return &response, nil
}

// Delete removes a transporter. One referenced by trip books or payouts
// cannot be deleted.
func (s *TransporterService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := s.transporterRepo.FindByID(ctx, orgID, id); err != nil {
		return err
	}

	referenced, err := s.tripBookRepo.ExistsByTransporter(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !referenced {
		referenced, err = s.paymentRepo.ExistsByTransporter(ctx, orgID, id)
		if err != nil {
			return err
		}
	}
	if referenced {
		return shared.NewConflictError("Transporter has ledger entries and cannot be deleted")
	}

	return s.transporterRepo.Delete(ctx, orgID, id)
}

// StockItemService handles stock item operations
type StockItemService struct {
	itemRepo  ledger.StockItemRepository
	entryRepo ledger.StockEntryRepository
}

// NewStockItemService creates a new StockItemService
func NewStockItemService(itemRepo ledger.StockItemRepository, entryRepo ledger.StockEntryRepository) *StockItemService {
	return &StockItemService{itemRepo: itemRepo, entryRepo: entryRepo}
}

// Create creates a new stock item
func (s *StockItemService) Create(ctx context.Context, orgID uuid.UUID, req CreateStockItemRequest) (*StockItemResponse, error) {
	if existing, err := s.itemRepo.FindByName(ctx, orgID, req.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Stock item with this name already exists")
	} else if err != nil && err != shared.ErrNotFound {
		return nil, err
	}

	item, err := ledger.NewStockItem(orgID, req.Name, req.Unit, req.OpenQty)
	if err != nil {
		return nil, err
	}
	item.Remark = req.Remark

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToStockItemResponse(item)
	return &response, nil
}

// GetByID retrieves a stock item by ID
func (s *StockItemService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*StockItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToStockItemResponse(item)
	return &response, nil
}

// List retrieves stock items with filtering and pagination
func (s *StockItemService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter) ([]StockItemResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	items, err := s.itemRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.itemRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]StockItemResponse, len(items))
	for i := range items {
		responses[i] = ToStockItemResponse(&items[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a stock item
func (s *StockItemService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateStockItemRequest) (*StockItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != item.Name {
		if existing, err := s.itemRepo.FindByName(ctx, orgID, *req.Name); err == nil && existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Stock item with this name already exists")
		} else if err != nil && err != shared.ErrNotFound {
			return nil, err
		}
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Remark != nil {
		item.Remark = *req.Remark
	}
	if req.OpenQty != nil {
		item.OpenQty = *req.OpenQty
	}

	if err := s.itemRepo.SaveDetails(ctx, item); err != nil {
		return nil, err
	}
	item, err = s.itemRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	response := ToStockItemResponse(item)
	return &response, nil
}

// Delete removes a stock item. One with recorded movements cannot be deleted.
func (s *StockItemService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := s.itemRepo.FindByID(ctx, orgID, id); err != nil {
		return err
	}

	referenced, err := s.entryRepo.ExistsByStockItem(ctx, orgID, id)
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewConflictError("Stock item has movements and cannot be deleted")
	}

	return s.itemRepo.Delete(ctx, orgID, id)
}

// VehicleService handles fleet vehicle operations
type VehicleService struct {
	vehicleRepo ledger.VehicleRepository
	tripRepo    ledger.TripRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo ledger.VehicleRepository, tripRepo ledger.TripRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo, tripRepo: tripRepo}
}

// Create registers a new fleet vehicle
func (s *VehicleService) Create(ctx context.Context, orgID uuid.UUID, req CreateVehicleRequest) (*VehicleResponse, error) {
	if existing, err := s.vehicleRepo.FindByVehNo(ctx, orgID, req.VehNo); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Vehicle with this registration number already exists")
	} else if err != nil && err != shared.ErrNotFound {
		return nil, err
	}

	vehicle, err := ledger.NewVehicle(orgID, req.VehNo, req.VehType)
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// GetByID retrieves a vehicle by ID
func (s *VehicleService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// GetByVehNo retrieves a vehicle by registration number
func (s *VehicleService) GetByVehNo(ctx context.Context, orgID uuid.UUID, vehNo string) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByVehNo(ctx, orgID, vehNo)
	if err != nil {
		return nil, err
	}
	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// List retrieves vehicles with filtering and pagination
func (s *VehicleService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter) ([]VehicleResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	vehicles, err := s.vehicleRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.vehicleRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = ToVehicleResponse(&vehicles[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a vehicle
func (s *VehicleService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateVehicleRequest) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.VehType != nil {
		vehicle.VehType = *req.VehType
	}

	if err := s.vehicleRepo.SaveDetails(ctx, vehicle); err != nil {
		return nil, err
	}
	vehicle, err = s.vehicleRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// Delete removes a vehicle. One with recorded trips cannot be deleted.
func (s *VehicleService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	vehicle, err := s.vehicleRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return err
	}

	referenced, err := s.tripRepo.ExistsByVehNo(ctx, orgID, vehicle.VehNo)
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewConflictError("Vehicle has trips recorded and cannot be deleted")
	}

	return s.vehicleRepo.Delete(ctx, orgID, id)
}
