package transportrepo

import (
	"context"
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/transport"
	"orgtrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransportTypeRepository implements TransportTypeRepository using GORM.
type GormTransportTypeRepository struct {
	db *gorm.DB
}

// NewGormTransportTypeRepository creates a new GORM transport type repository.
func NewGormTransportTypeRepository(db *gorm.DB) *GormTransportTypeRepository {
	return &GormTransportTypeRepository{db: db}
}

// Add saves a new catalog entry. Returns AlreadyExists on a duplicate name.
func (r *GormTransportTypeRepository) Add(ctx context.Context, entity *transport.TransportType) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("transport type", entity.Name())
		}
		return err
	}

	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormTransportTypeRepository) Get(ctx context.Context, id kernel.UUID) (*transport.TransportType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport type", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole catalog ordered by name.
func (r *GormTransportTypeRepository) GetAll(ctx context.Context) ([]*transport.TransportType, error) {
	var dtos []TransportTypeDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	types := make([]*transport.TransportType, 0, len(dtos))
	for _, dto := range dtos {
		tt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		types = append(types, tt)
	}
	return types, nil
}
