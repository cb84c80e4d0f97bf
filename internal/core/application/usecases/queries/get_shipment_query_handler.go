package queries

import (
	"context"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/core/ports"
	"orgtrack/internal/pkg/errs"
)

// GetShipmentQueryHandler assembles the full shipment read model: the
// relational aggregate plus the geographic document.
type GetShipmentQueryHandler struct {
	shipmentRepo  ports.ShipmentRepository
	locationStore ports.LocationStore
}

// NewGetShipmentQueryHandler creates a handler for shipment detail queries.
func NewGetShipmentQueryHandler(
	shipmentRepo ports.ShipmentRepository,
	locationStore ports.LocationStore,
) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{
		shipmentRepo:  shipmentRepo,
		locationStore: locationStore,
	}
}

// Handle retrieves the shipment if the requester may see it.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	aggregate, err := h.shipmentRepo.Get(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if !mayView(aggregate, query.RequesterID(), query.RequesterRole()) {
		return GetShipmentQueryResponse{}, errs.NewForbiddenError("shipment belongs to another account")
	}

	location, err := h.locationStore.Get(ctx, aggregate.LocationID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return GetShipmentQueryResponse{
		ID:              aggregate.ID(),
		ClientID:        aggregate.ClientID(),
		TransportTypeID: aggregate.TransportTypeID(),
		Status:          aggregate.Status(),
		Schedule:        aggregate.Schedule(),
		CreatedAt:       aggregate.CreatedAt(),
		Location:        location,
		Assignments:     assignmentResponses(aggregate.Assignments()),
	}, nil
}

func mayView(aggregate *shipment.Shipment, requesterID kernel.UUID, role account.Role) bool {
	switch role {
	case account.RoleAdmin:
		return true
	case account.RoleClient:
		return aggregate.IsOwnedBy(requesterID)
	case account.RoleCarrier:
		for _, assignment := range aggregate.Assignments() {
			if assignment.IsOwnedBy(requesterID) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
