package ports

import (
	"context"

	"orgtrack/internal/core/domain/model/geo"
)

// RouteService fetches the driving route between two points from the
// external routing provider. A provider failure is not fatal to shipment
// creation: callers fall back to an empty route.
type RouteService interface {
	// GetRoute returns the route from origin to destination.
	GetRoute(ctx context.Context, origin, destination geo.Point) (geo.Route, error)
}
