package ports

import (
	"context"

	"orgtrack/internal/core/domain/model/carrier"
	"orgtrack/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
//
// Availability flips are compare-and-swap operations: each one is a single
// conditional update that succeeds only if the stored availability still
// matches the expected state, and returns ResourceUnavailable (for Reserve)
// or InvalidState otherwise. Two concurrent transitions on the same carrier
// can therefore never both succeed.
type CarrierRepository interface {
	// Add persists a new carrier.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetByUserID retrieves the carrier linked to the given user account.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*carrier.Carrier, error)

	// GetAll retrieves all carriers.
	GetAll(ctx context.Context) ([]*carrier.Carrier, error)

	// GetAllAvailable retrieves carriers currently in the Available state.
	GetAllAvailable(ctx context.Context) ([]*carrier.Carrier, error)

	// Reserve atomically flips the carrier Available -> Unavailable.
	// Returns ResourceUnavailable if the carrier is not Available at the
	// moment of the update.
	Reserve(ctx context.Context, id kernel.UUID) error

	// MarkEnRoute atomically flips the carrier Unavailable -> EnRoute.
	MarkEnRoute(ctx context.Context, id kernel.UUID) error

	// Release atomically returns the carrier to Available from Unavailable
	// or EnRoute. Used after delivery and as reservation compensation.
	Release(ctx context.Context, id kernel.UUID) error
}
