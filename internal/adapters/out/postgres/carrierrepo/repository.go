package carrierrepo

import (
	"context"
	"errors"

	"orgtrack/internal/core/domain/model/carrier"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM.
//
// Availability flips are single conditional UPDATEs: the WHERE clause names
// both the id and the expected current availability, so of two concurrent
// transitions exactly one sees RowsAffected == 1. There is no read before
// the write to race against.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier to the database.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("carrier", aggregate.DocumentID())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a carrier by ID.
func (r *GormCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the carrier linked to the given user account.
func (r *GormCarrierRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*carrier.Carrier, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all carriers.
func (r *GormCarrierRepository) GetAll(ctx context.Context) ([]*carrier.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllAvailable retrieves carriers currently in the Available state.
func (r *GormCarrierRepository) GetAllAvailable(ctx context.Context) ([]*carrier.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.db.WithContext(ctx).
		Where("availability = ?", int(kernel.Available)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// Reserve atomically flips the carrier Available -> Unavailable.
func (r *GormCarrierRepository) Reserve(ctx context.Context, id kernel.UUID) error {
	affected, err := r.flip(ctx, id, kernel.Available, kernel.Unavailable)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.NewResourceUnavailableError("carrier", id.String())
	}
	return nil
}

// MarkEnRoute atomically flips the carrier Unavailable -> EnRoute.
func (r *GormCarrierRepository) MarkEnRoute(ctx context.Context, id kernel.UUID) error {
	affected, err := r.flip(ctx, id, kernel.Unavailable, kernel.EnRoute)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.NewInvalidStateError("carrier", kernel.Unavailable.String())
	}
	return nil
}

// Release atomically returns the carrier to Available from Unavailable or EnRoute.
func (r *GormCarrierRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CarrierDTO{}).
		Where("id = ? AND availability IN ?", id.Bytes(), []int{int(kernel.Unavailable), int(kernel.EnRoute)}).
		Update("availability", int(kernel.Available))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("carrier", kernel.Available.String())
	}
	return nil
}

// flip performs one conditional availability update and reports how many
// rows matched.
func (r *GormCarrierRepository) flip(ctx context.Context, id kernel.UUID, from, to kernel.Availability) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&CarrierDTO{}).
		Where("id = ? AND availability = ?", id.Bytes(), int(from)).
		Update("availability", int(to))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toDomainAll(dtos []CarrierDTO) ([]*carrier.Carrier, error) {
	carriers := make([]*carrier.Carrier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}
	return carriers, nil
}
