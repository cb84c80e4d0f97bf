package ports

import (
	"context"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Availability flips follow the same compare-and-swap semantics as
// CarrierRepository.
type VehicleRepository interface {
	// Add persists a new vehicle.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAll retrieves all vehicles.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)

	// GetAllAvailable retrieves vehicles currently in the Available state.
	GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error)

	// Reserve atomically flips the vehicle Available -> Unavailable.
	// Returns ResourceUnavailable if the vehicle is not Available at the
	// moment of the update.
	Reserve(ctx context.Context, id kernel.UUID) error

	// MarkEnRoute atomically flips the vehicle Unavailable -> EnRoute.
	MarkEnRoute(ctx context.Context, id kernel.UUID) error

	// Release atomically returns the vehicle to Available from Unavailable
	// or EnRoute.
	Release(ctx context.Context, id kernel.UUID) error
}
