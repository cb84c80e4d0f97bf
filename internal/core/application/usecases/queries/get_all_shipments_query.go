package queries

import (
	"context"

	"orgtrack/internal/core/ports"
)

// GetAllShipmentsQueryHandler lists every shipment as summaries. Admin
// listings only; role enforcement happens at the transport layer.
type GetAllShipmentsQueryHandler struct {
	shipmentRepo  ports.ShipmentRepository
	locationStore ports.LocationStore
}

// NewGetAllShipmentsQueryHandler creates a handler for the admin shipment
// listing.
func NewGetAllShipmentsQueryHandler(
	shipmentRepo ports.ShipmentRepository,
	locationStore ports.LocationStore,
) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{
		shipmentRepo:  shipmentRepo,
		locationStore: locationStore,
	}
}

// Handle lists all shipments, newest first.
func (h GetAllShipmentsQueryHandler) Handle(ctx context.Context) ([]ShipmentSummaryResponse, error) {
	aggregates, err := h.shipmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return shipmentSummaries(ctx, h.locationStore, aggregates)
}
