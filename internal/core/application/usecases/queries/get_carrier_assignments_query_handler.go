package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
)

// GetCarrierAssignmentsQueryHandler retrieves a carrier's work queue with
// direct SQL, joining the parent shipment for the schedule.
type GetCarrierAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierAssignmentsQueryHandler creates a handler for carrier work
// queue queries.
func NewGetCarrierAssignmentsQueryHandler(db *gorm.DB) GetCarrierAssignmentsQueryHandler {
	return GetCarrierAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve the carrier's assignments, newest
// first.
func (h GetCarrierAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierAssignmentsQuery,
) ([]GetCarrierAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]GetCarrierAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.shipment_id,
			a.vehicle_id,
			a.status,
			a.assigned_at,
			a.started_at,
			a.completed_at,
			s.pickup_at,
			s.deliver_by
		FROM assignments a
		JOIN shipments s ON s.id = a.shipment_id
		WHERE a.carrier_id = ?
		ORDER BY a.assigned_at DESC
	`, query.CarrierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var assignment GetCarrierAssignmentsQueryResponse
		var id, shipmentID, vehicleID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&shipmentID,
			&vehicleID,
			&status,
			&assignment.AssignedAt,
			&assignment.StartedAt,
			&assignment.CompletedAt,
			&assignment.PickupAt,
			&assignment.DeliverBy,
		)
		if err != nil {
			return nil, err
		}

		assignmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		assignment.ID = assignmentID

		parentID, idErr := kernel.UUIDFromBytes(shipmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		assignment.ShipmentID = parentID

		resourceID, idErr := kernel.UUIDFromBytes(vehicleID[:])
		if idErr != nil {
			return nil, idErr
		}
		assignment.VehicleID = resourceID

		assignment.Status = shipment.AssignmentStatus(status)
		assignments = append(assignments, assignment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
