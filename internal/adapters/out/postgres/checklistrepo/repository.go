package checklistrepo

import (
	"context"
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormChecklistRepository implements ChecklistRepository using GORM.
type GormChecklistRepository struct {
	db *gorm.DB
}

// NewGormChecklistRepository creates a new GORM checklist repository.
func NewGormChecklistRepository(db *gorm.DB) *GormChecklistRepository {
	return &GormChecklistRepository{db: db}
}

// AddPreTrip persists a pre-trip checklist. The unique index on
// assignment_id turns a duplicate submission into AlreadyExists.
func (r *GormChecklistRepository) AddPreTrip(ctx context.Context, checklist *shipment.PreTripChecklist) error {
	dto := preTripFromDomain(checklist)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("pre-trip checklist", checklist.AssignmentID().String())
		}
		return err
	}
	return nil
}

// GetPreTrip retrieves the pre-trip checklist for an assignment.
func (r *GormChecklistRepository) GetPreTrip(ctx context.Context, assignmentID kernel.UUID) (*shipment.PreTripChecklist, error) {
	if err := assignmentID.Validate(); err != nil {
		return nil, err
	}

	var dto PreTripChecklistDTO
	if err := r.db.WithContext(ctx).First(&dto, "assignment_id = ?", assignmentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pre-trip checklist", assignmentID.String())
		}
		return nil, err
	}

	return preTripToDomain(dto)
}

// HasPreTrip reports whether the assignment has a pre-trip checklist.
func (r *GormChecklistRepository) HasPreTrip(ctx context.Context, assignmentID kernel.UUID) (bool, error) {
	return r.exists(ctx, &PreTripChecklistDTO{}, assignmentID)
}

// AddPostTrip persists a post-trip checklist, write-once per assignment.
func (r *GormChecklistRepository) AddPostTrip(ctx context.Context, checklist *shipment.PostTripChecklist) error {
	dto := postTripFromDomain(checklist)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("post-trip checklist", checklist.AssignmentID().String())
		}
		return err
	}
	return nil
}

// GetPostTrip retrieves the post-trip checklist for an assignment.
func (r *GormChecklistRepository) GetPostTrip(ctx context.Context, assignmentID kernel.UUID) (*shipment.PostTripChecklist, error) {
	if err := assignmentID.Validate(); err != nil {
		return nil, err
	}

	var dto PostTripChecklistDTO
	if err := r.db.WithContext(ctx).First(&dto, "assignment_id = ?", assignmentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("post-trip checklist", assignmentID.String())
		}
		return nil, err
	}

	return postTripToDomain(dto)
}

// HasPostTrip reports whether the assignment has a post-trip checklist.
func (r *GormChecklistRepository) HasPostTrip(ctx context.Context, assignmentID kernel.UUID) (bool, error) {
	return r.exists(ctx, &PostTripChecklistDTO{}, assignmentID)
}

func (r *GormChecklistRepository) exists(ctx context.Context, model any, assignmentID kernel.UUID) (bool, error) {
	if err := assignmentID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("assignment_id = ?", assignmentID.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
