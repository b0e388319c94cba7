package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/infrastructure/persistence/orgscope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// FindByID finds a vehicle by ID within an organization
func (r *GormVehicleRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*ledger.Vehicle, error) {
	var vehicle ledger.Vehicle
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindByVehNo finds a vehicle by registration number within an organization
func (r *GormVehicleRepository) FindByVehNo(ctx context.Context, orgID uuid.UUID, vehNo string) (*ledger.Vehicle, error) {
	var vehicle ledger.Vehicle
	if err := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		First(&vehicle, "veh_no = ?", strings.ToUpper(strings.TrimSpace(vehNo))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindAll finds all vehicles matching the filter
func (r *GormVehicleRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]ledger.Vehicle, error) {
	var vehicles []ledger.Vehicle
	query := r.db.WithContext(ctx).
		Model(&ledger.Vehicle{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		query = query.Where("LOWER(veh_no) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	query = applyFilter(query, filter, map[string]bool{
		"id": true, "created_at": true, "updated_at": true, "veh_no": true, "total_trip": true,
	}, "veh_no ASC")
	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Count counts vehicles matching the filter
func (r *GormVehicleRepository) Count(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&ledger.Vehicle{}).
		Scopes(orgscope.Scope(orgID))
	if filter.Search != "" {
		query = query.Where("LOWER(veh_no) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, vehicle *ledger.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

// SaveDetails updates only the editable columns of an existing vehicle. The
// trip count and net profit counters are never written.
func (r *GormVehicleRepository) SaveDetails(ctx context.Context, vehicle *ledger.Vehicle) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Vehicle{}).
		Scopes(orgscope.Scope(vehicle.OrgID)).
		Where("id = ?", vehicle.ID).
		UpdateColumns(map[string]interface{}{
			"veh_type":   vehicle.VehType,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a vehicle within an organization
func (r *GormVehicleRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(orgscope.Scope(orgID)).
		Delete(&ledger.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ApplyDelta atomically increments the trip count and net profit
func (r *GormVehicleRepository) ApplyDelta(ctx context.Context, orgID, id uuid.UUID, delta ledger.VehicleDelta) error {
	if delta.IsZero() {
		return nil
	}
	query := r.db.WithContext(ctx).
		Model(&ledger.Vehicle{}).
		Scopes(orgscope.Scope(orgID)).
		Where("id = ?", id)
	return r.runDelta(query, delta, true)
}

// ApplyDeltaByVehNo applies a delta to the vehicle addressed by registration
// number. A missing vehicle is not an error; the delta is silently dropped.
func (r *GormVehicleRepository) ApplyDeltaByVehNo(ctx context.Context, orgID uuid.UUID, vehNo string, delta ledger.VehicleDelta) error {
	if delta.IsZero() || vehNo == "" {
		return nil
	}
	query := r.db.WithContext(ctx).
		Model(&ledger.Vehicle{}).
		Scopes(orgscope.Scope(orgID)).
		Where("veh_no = ?", strings.ToUpper(strings.TrimSpace(vehNo)))
	return r.runDelta(query, delta, false)
}

func (r *GormVehicleRepository) runDelta(query *gorm.DB, delta ledger.VehicleDelta, requireRow bool) error {
	result := query.UpdateColumns(map[string]interface{}{
		"total_trip": gorm.Expr("total_trip + ?", delta.Trips),
		"net_profit": gorm.Expr("net_profit + ?", delta.Profit),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if requireRow && result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormVehicleRepository implements VehicleRepository
var _ ledger.VehicleRepository = (*GormVehicleRepository)(nil)
