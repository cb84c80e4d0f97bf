package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/application/usecases/queries"
	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
)

// CreateShipment handles POST /api/v1/shipments. Clients create unassigned
// shipments for themselves; admins may include partitions, which are
// reserved atomically.
func (s *Server) CreateShipment(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	caller := callerIdentity(c)
	clientID := caller.UserID
	if caller.Role == account.RoleAdmin {
		parsed, err := kernel.UUIDFromString(req.ClientID)
		if err != nil {
			return respondBadRequest(c, err)
		}
		clientID = parsed
	} else if len(req.Partitions) > 0 {
		return c.JSON(http.StatusForbidden, errorResponse{Message: "only admins may partition a shipment"})
	}

	origin, err := req.Origin.toPoint()
	if err != nil {
		return respondBadRequest(c, err)
	}
	destination, err := req.Destination.toPoint()
	if err != nil {
		return respondBadRequest(c, err)
	}

	transportTypeID, err := kernel.UUIDFromString(req.TransportTypeID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	schedule, err := kernel.NewSchedule(
		req.PickupAt, req.DeliverBy,
		req.PickupInstructions, req.DeliveryInstructions,
	)
	if err != nil {
		return respondBadRequest(c, err)
	}

	partitions := make([]commands.PartitionInput, 0, len(req.Partitions))
	for _, partition := range req.Partitions {
		input, err := partition.toInput()
		if err != nil {
			return respondBadRequest(c, err)
		}
		partitions = append(partitions, input)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, clientID,
		req.OriginName, origin,
		req.DestinationName, destination,
		transportTypeID, schedule, partitions,
	)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.createShipmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: shipmentID.String()})
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(c echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	requesterID, role, err := s.requesterScope(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID, requesterID, role)
	if err != nil {
		return respondBadRequest(c, err)
	}

	result, err := s.getShipmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toShipmentResponse(result))
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(c echo.Context) error {
	summaries, err := s.getAllShipmentsHandler.Handle(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toShipmentSummaries(summaries))
}

// GetMyShipments handles GET /api/v1/shipments/mine.
func (s *Server) GetMyShipments(c echo.Context) error {
	return s.listClientShipments(c, callerIdentity(c).UserID)
}

// GetClientShipments handles GET /api/v1/clients/:id/shipments.
func (s *Server) GetClientShipments(c echo.Context) error {
	clientID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	return s.listClientShipments(c, clientID)
}

// GetLatestClientShipment handles GET /api/v1/clients/:id/shipments/latest.
// The coordinator uses it to prefill a new request from the client's most
// recent one.
func (s *Server) GetLatestClientShipment(c echo.Context) error {
	clientID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	query, err := queries.NewGetLatestClientShipmentQuery(clientID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	result, err := s.getLatestClientShipmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toShipmentResponse(result))
}

func (s *Server) listClientShipments(c echo.Context, clientID kernel.UUID) error {
	query, err := queries.NewGetClientShipmentsQuery(clientID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	summaries, err := s.getClientShipmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toShipmentSummaries(summaries))
}

// AssignPartition handles POST /api/v1/shipments/:id/assignments.
func (s *Server) AssignPartition(c echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	var req assignPartitionRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewAssignPartitionCommand(shipmentID, input)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.assignPartitionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// PreviewRoute handles POST /api/v1/routes: a standalone route lookup so the
// UI can draw the path before the shipment exists.
func (s *Server) PreviewRoute(c echo.Context) error {
	var req routePreviewRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	origin, err := req.Origin.toPoint()
	if err != nil {
		return respondBadRequest(c, err)
	}
	destination, err := req.Destination.toPoint()
	if err != nil {
		return respondBadRequest(c, err)
	}

	route, err := s.routeService.GetRoute(c.Request().Context(), origin, destination)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusBadGateway, errorResponse{Message: "route provider unavailable"})
	}

	return c.JSON(http.StatusOK, routeResponse{
		Geometry:        route.Geometry,
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
	})
}
