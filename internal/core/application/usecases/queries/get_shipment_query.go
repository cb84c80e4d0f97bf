package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/geo"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment with its assignments and
// geographic document.
//
// requesterID scopes the result: for clients it is the client's account id
// and the shipment must belong to them; for carriers it is the carrier
// profile id and at least one assignment must belong to them; admins see
// everything.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	requesterID   kernel.UUID
	requesterRole account.Role

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one shipment.
func NewGetShipmentQuery(shipmentID, requesterID kernel.UUID, requesterRole account.Role) (GetShipmentQuery, error) {
	shipmentQuery := GetShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentID.Validate(),
		requesterID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return GetShipmentQuery{}, err
	}

	shipmentQuery.shipmentID = shipmentID
	shipmentQuery.requesterID = requesterID
	shipmentQuery.requesterRole = requesterRole
	return shipmentQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// RequesterID returns the scoping identity.
func (q GetShipmentQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// RequesterRole returns the requester's role.
func (q GetShipmentQuery) RequesterRole() account.Role {
	return q.requesterRole
}

// CargoResponse is the cargo read model.
type CargoResponse struct {
	ID        kernel.UUID
	Kind      string
	Variety   string
	Quantity  int
	Packaging string
	Weight    decimal.Decimal
}

// AssignmentResponse is the assignment read model nested in shipment
// responses.
type AssignmentResponse struct {
	ID          kernel.UUID
	CarrierID   kernel.UUID
	VehicleID   kernel.UUID
	Status      shipment.AssignmentStatus
	AssignedAt  time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	Cargo       []CargoResponse
}

// GetShipmentQueryResponse is the full shipment read model, including the
// geographic document resolved from the document store.
type GetShipmentQueryResponse struct {
	ID              kernel.UUID
	ClientID        kernel.UUID
	TransportTypeID kernel.UUID
	Status          shipment.Status
	Schedule        kernel.Schedule
	CreatedAt       time.Time
	Location        geo.Location
	Assignments     []AssignmentResponse
}

func assignmentResponses(assignments []*shipment.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		cargo := make([]CargoResponse, 0, len(assignment.Cargo()))
		for _, item := range assignment.Cargo() {
			cargo = append(cargo, CargoResponse{
				ID:        item.ID(),
				Kind:      item.Kind(),
				Variety:   item.Variety(),
				Quantity:  item.Quantity(),
				Packaging: item.Packaging(),
				Weight:    item.Weight(),
			})
		}

		responses = append(responses, AssignmentResponse{
			ID:          assignment.ID(),
			CarrierID:   assignment.CarrierID(),
			VehicleID:   assignment.VehicleID(),
			Status:      assignment.Status(),
			AssignedAt:  assignment.AssignedAt(),
			StartedAt:   assignment.StartedAt(),
			CompletedAt: assignment.CompletedAt(),
			Cargo:       cargo,
		})
	}

	return responses
}
