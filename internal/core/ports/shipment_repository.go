package ports

import (
	"context"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. A shipment is always loaded and saved together with all of its
// assignments and their cargo; the derived status column is written on every
// update so list queries never re-aggregate.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate with its assignments.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate, including
	// assignment transitions and newly appended assignments.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its identifier with all assignments.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByAssignmentID retrieves the shipment that owns the given
	// assignment. Used by assignment-scoped operations that must
	// re-aggregate the parent status.
	GetByAssignmentID(ctx context.Context, assignmentID kernel.UUID) (*shipment.Shipment, error)

	// GetAllForClient retrieves all shipments requested by one client,
	// newest first.
	GetAllForClient(ctx context.Context, clientID kernel.UUID) ([]*shipment.Shipment, error)

	// GetAll retrieves every shipment, newest first. Admin listings only.
	GetAll(ctx context.Context) ([]*shipment.Shipment, error)
}
