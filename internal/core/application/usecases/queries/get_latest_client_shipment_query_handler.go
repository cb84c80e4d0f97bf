package queries

import (
	"context"

	"orgtrack/internal/core/ports"
	"orgtrack/internal/pkg/errs"
)

// GetLatestClientShipmentQueryHandler returns the client's most recent
// shipment with its assignments and geographic document.
type GetLatestClientShipmentQueryHandler struct {
	shipmentRepo  ports.ShipmentRepository
	locationStore ports.LocationStore
}

// NewGetLatestClientShipmentQueryHandler creates a handler for
// latest-shipment queries.
func NewGetLatestClientShipmentQueryHandler(
	shipmentRepo ports.ShipmentRepository,
	locationStore ports.LocationStore,
) GetLatestClientShipmentQueryHandler {
	return GetLatestClientShipmentQueryHandler{
		shipmentRepo:  shipmentRepo,
		locationStore: locationStore,
	}
}

// Handle retrieves the newest shipment for the client, or ObjectNotFound
// when the client has none.
func (h GetLatestClientShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetLatestClientShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	aggregates, err := h.shipmentRepo.GetAllForClient(ctx, query.ClientID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if len(aggregates) == 0 {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("clientID", query.ClientID())
	}

	// GetAllForClient sorts newest first.
	latest := aggregates[0]

	location, err := h.locationStore.Get(ctx, latest.LocationID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return GetShipmentQueryResponse{
		ID:              latest.ID(),
		ClientID:        latest.ClientID(),
		TransportTypeID: latest.TransportTypeID(),
		Status:          latest.Status(),
		Schedule:        latest.Schedule(),
		CreatedAt:       latest.CreatedAt(),
		Location:        location,
		Assignments:     assignmentResponses(latest.Assignments()),
	}, nil
}
