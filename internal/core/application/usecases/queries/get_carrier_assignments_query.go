package queries

import (
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/guard"
)

var ErrGetCarrierAssignmentsQueryIsNotConstructed = errors.New(
	"GetCarrierAssignmentsQuery must be created via NewGetCarrierAssignmentsQuery constructor",
)

// GetCarrierAssignmentsQuery lists one carrier's assignments across all
// shipments, newest first. It backs the carrier's work queue.
type GetCarrierAssignmentsQuery struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierAssignmentsQuery creates a query for one carrier's
// assignments.
func NewGetCarrierAssignmentsQuery(carrierID kernel.UUID) (GetCarrierAssignmentsQuery, error) {
	assignmentsQuery := GetCarrierAssignmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := carrierID.Validate(); err != nil {
		return GetCarrierAssignmentsQuery{}, err
	}

	assignmentsQuery.carrierID = carrierID
	return assignmentsQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierAssignmentsQueryIsNotConstructed)
}

// CarrierID returns the carrier whose assignments are listed.
func (q GetCarrierAssignmentsQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

// GetCarrierAssignmentsQueryResponse is the work queue read model: the
// assignment plus the schedule of its parent shipment.
type GetCarrierAssignmentsQueryResponse struct {
	ID          kernel.UUID
	ShipmentID  kernel.UUID
	VehicleID   kernel.UUID
	Status      shipment.AssignmentStatus
	AssignedAt  time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	PickupAt    time.Time
	DeliverBy   time.Time
}
