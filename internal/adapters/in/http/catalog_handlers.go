package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/application/usecases/queries"
	"orgtrack/internal/core/domain/model/kernel"
)

// CreateCarrier handles POST /api/v1/carriers. Onboards the carrier account
// and profile in one transaction.
func (s *Server) CreateCarrier(c echo.Context) error {
	var req createCarrierRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	carrierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(
		carrierID, kernel.NewUUID(),
		req.FirstName, req.LastName, req.Email, req.Password,
		req.DocumentID, req.Phone,
	)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.createCarrierHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: carrierID.String()})
}

// GetCarriers handles GET /api/v1/carriers.
func (s *Server) GetCarriers(c echo.Context) error {
	carriers, err := s.getAllCarriersHandler.Handle(c.Request().Context(), queries.NewGetAllCarriersQuery())
	if err != nil {
		return respondError(c, err)
	}

	response := make([]carrierResponse, 0, len(carriers))
	for _, carrier := range carriers {
		response = append(response, carrierResponse{
			ID:           carrier.ID.String(),
			UserID:       carrier.UserID.String(),
			FirstName:    carrier.FirstName,
			LastName:     carrier.LastName,
			DocumentID:   carrier.DocumentID,
			Phone:        carrier.Phone,
			Availability: carrier.Availability.String(),
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetCarrier handles GET /api/v1/carriers/:id.
func (s *Server) GetCarrier(c echo.Context) error {
	carrierID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	query, err := queries.NewGetCarrierQuery(carrierID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	carrier, err := s.getCarrierHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, carrierResponse{
		ID:           carrier.ID.String(),
		UserID:       carrier.UserID.String(),
		FirstName:    carrier.FirstName,
		LastName:     carrier.LastName,
		DocumentID:   carrier.DocumentID,
		Phone:        carrier.Phone,
		Availability: carrier.Availability.String(),
	})
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(c echo.Context) error {
	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(vehicleID, req.Kind, req.Plate, req.Capacity)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.createVehicleHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: vehicleID.String()})
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(c echo.Context) error {
	vehicles, err := s.getAllVehiclesHandler.Handle(c.Request().Context(), queries.NewGetAllVehiclesQuery())
	if err != nil {
		return respondError(c, err)
	}

	response := make([]vehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		response = append(response, vehicleResponse{
			ID:           vehicle.ID.String(),
			Kind:         vehicle.Kind,
			Plate:        vehicle.Plate,
			Capacity:     vehicle.Capacity,
			Availability: vehicle.Availability.String(),
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicle(c echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	query, err := queries.NewGetVehicleQuery(vehicleID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	vehicle, err := s.getVehicleHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, vehicleResponse{
		ID:           vehicle.ID.String(),
		Kind:         vehicle.Kind,
		Plate:        vehicle.Plate,
		Capacity:     vehicle.Capacity,
		Availability: vehicle.Availability.String(),
	})
}

// CreateTransportType handles POST /api/v1/transport-types.
func (s *Server) CreateTransportType(c echo.Context) error {
	var req createTransportTypeRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	typeID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransportTypeCommand(typeID, req.Name, req.Description)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.createTransportTypeHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: typeID.String()})
}

// GetTransportTypes handles GET /api/v1/transport-types.
func (s *Server) GetTransportTypes(c echo.Context) error {
	types, err := s.getAllTransportTypesHandler.Handle(
		c.Request().Context(), queries.NewGetAllTransportTypesQuery(),
	)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]transportTypeResponse, 0, len(types))
	for _, transportType := range types {
		response = append(response, transportTypeResponse{
			ID:          transportType.ID.String(),
			Name:        transportType.Name,
			Description: transportType.Description,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetClients handles GET /api/v1/clients.
func (s *Server) GetClients(c echo.Context) error {
	clients, err := s.getAllClientsHandler.Handle(c.Request().Context(), queries.NewGetAllClientsQuery())
	if err != nil {
		return respondError(c, err)
	}

	response := make([]clientResponse, 0, len(clients))
	for _, client := range clients {
		response = append(response, clientResponse{
			ID:        client.ID.String(),
			FirstName: client.FirstName,
			LastName:  client.LastName,
			Email:     client.Email,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// SearchClients handles GET /api/v1/clients/search?q=.
func (s *Server) SearchClients(c echo.Context) error {
	query, err := queries.NewSearchClientsQuery(c.QueryParam("q"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	clients, err := s.searchClientsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]clientResponse, 0, len(clients))
	for _, client := range clients {
		response = append(response, clientResponse{
			ID:        client.ID.String(),
			FirstName: client.FirstName,
			LastName:  client.LastName,
			Email:     client.Email,
		})
	}

	return c.JSON(http.StatusOK, response)
}
