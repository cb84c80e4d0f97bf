package userrepo

import (
	"context"
	"errors"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user. Returns AlreadyExists when the email is taken.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *account.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("user", aggregate.Email())
		}
		return err
	}

	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by its normalized login email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRole retrieves all users with the given role.
func (r *GormUserRepository) GetAllByRole(ctx context.Context, role account.Role) ([]*account.User, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []UserDTO
	if err := r.db.WithContext(ctx).
		Where("role = ?", int(role)).
		Order("last_name, first_name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []UserDTO) ([]*account.User, error) {
	users := make([]*account.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
