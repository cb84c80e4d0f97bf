package ports

import (
	"context"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
)

// ChecklistRepository defines the persistence contract for pre-trip and
// post-trip checklists. Each assignment has at most one of each, enforced by
// unique indexes: a second Add for the same assignment returns AlreadyExists
// regardless of who races whom.
type ChecklistRepository interface {
	// AddPreTrip persists a pre-trip checklist.
	// Returns AlreadyExists if the assignment already has one.
	AddPreTrip(ctx context.Context, checklist *shipment.PreTripChecklist) error

	// GetPreTrip retrieves the pre-trip checklist for an assignment.
	// Returns ObjectNotFound if none was submitted.
	GetPreTrip(ctx context.Context, assignmentID kernel.UUID) (*shipment.PreTripChecklist, error)

	// HasPreTrip reports whether the assignment has a pre-trip checklist.
	// Used by the start gate.
	HasPreTrip(ctx context.Context, assignmentID kernel.UUID) (bool, error)

	// AddPostTrip persists a post-trip checklist.
	// Returns AlreadyExists if the assignment already has one.
	AddPostTrip(ctx context.Context, checklist *shipment.PostTripChecklist) error

	// GetPostTrip retrieves the post-trip checklist for an assignment.
	// Returns ObjectNotFound if none was submitted.
	GetPostTrip(ctx context.Context, assignmentID kernel.UUID) (*shipment.PostTripChecklist, error)

	// HasPostTrip reports whether the assignment has a post-trip checklist.
	// Used by the finalization gate.
	HasPostTrip(ctx context.Context, assignmentID kernel.UUID) (bool, error)
}
