package vehiclerepo

import (
	"context"
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/vehicle"
	"orgtrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM. Availability
// flips are single conditional UPDATEs, same scheme as the carrier repository.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("vehicle", aggregate.Plate())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all vehicles.
func (r *GormVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllAvailable retrieves vehicles currently in the Available state.
func (r *GormVehicleRepository) GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).
		Where("availability = ?", int(kernel.Available)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// Reserve atomically flips the vehicle Available -> Unavailable.
func (r *GormVehicleRepository) Reserve(ctx context.Context, id kernel.UUID) error {
	affected, err := r.flip(ctx, id, kernel.Available, kernel.Unavailable)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.NewResourceUnavailableError("vehicle", id.String())
	}
	return nil
}

// MarkEnRoute atomically flips the vehicle Unavailable -> EnRoute.
func (r *GormVehicleRepository) MarkEnRoute(ctx context.Context, id kernel.UUID) error {
	affected, err := r.flip(ctx, id, kernel.Unavailable, kernel.EnRoute)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.NewInvalidStateError("vehicle", kernel.Unavailable.String())
	}
	return nil
}

// Release atomically returns the vehicle to Available from Unavailable or EnRoute.
func (r *GormVehicleRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND availability IN ?", id.Bytes(), []int{int(kernel.Unavailable), int(kernel.EnRoute)}).
		Update("availability", int(kernel.Available))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("vehicle", kernel.Available.String())
	}
	return nil
}

func (r *GormVehicleRepository) flip(ctx context.Context, id kernel.UUID, from, to kernel.Availability) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND availability = ?", id.Bytes(), int(from)).
		Update("availability", int(to))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toDomainAll(dtos []VehicleDTO) ([]*vehicle.Vehicle, error) {
	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}
