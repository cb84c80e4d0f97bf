package queries

import (
	"context"

	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/core/ports"
)

// GetClientShipmentsQueryHandler lists one client's shipments as summaries,
// resolving origin and destination names from the document store.
type GetClientShipmentsQueryHandler struct {
	shipmentRepo  ports.ShipmentRepository
	locationStore ports.LocationStore
}

// NewGetClientShipmentsQueryHandler creates a handler for client shipment
// listings.
func NewGetClientShipmentsQueryHandler(
	shipmentRepo ports.ShipmentRepository,
	locationStore ports.LocationStore,
) GetClientShipmentsQueryHandler {
	return GetClientShipmentsQueryHandler{
		shipmentRepo:  shipmentRepo,
		locationStore: locationStore,
	}
}

// Handle lists the client's shipments, newest first.
func (h GetClientShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetClientShipmentsQuery,
) ([]ShipmentSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.shipmentRepo.GetAllForClient(ctx, query.ClientID())
	if err != nil {
		return nil, err
	}

	return shipmentSummaries(ctx, h.locationStore, aggregates)
}

func shipmentSummaries(
	ctx context.Context,
	locationStore ports.LocationStore,
	aggregates []*shipment.Shipment,
) ([]ShipmentSummaryResponse, error) {
	summaries := make([]ShipmentSummaryResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		location, err := locationStore.Get(ctx, aggregate.LocationID())
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, ShipmentSummaryResponse{
			ID:              aggregate.ID(),
			ClientID:        aggregate.ClientID(),
			Status:          aggregate.Status(),
			OriginName:      location.OriginName,
			DestinationName: location.DestinationName,
			PickupAt:        aggregate.Schedule().PickupAt(),
			DeliverBy:       aggregate.Schedule().DeliverBy(),
			CreatedAt:       aggregate.CreatedAt(),
			AssignmentCount: len(aggregate.Assignments()),
		})
	}

	return summaries, nil
}
