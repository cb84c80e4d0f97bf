package ports

import (
	"context"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/transport"
)

// TransportTypeRepository defines the persistence contract for the transport
// type catalog. Names are unique; Add returns AlreadyExists on a duplicate.
type TransportTypeRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, entity *transport.TransportType) error

	// Get retrieves a catalog entry by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*transport.TransportType, error)

	// GetAll retrieves the whole catalog ordered by name.
	GetAll(ctx context.Context) ([]*transport.TransportType, error)
}
