// Package http exposes the application over a REST API. Handlers translate
// requests into commands and queries and map domain errors onto status codes;
// they hold no business logic of their own.
package http

import (
	"github.com/labstack/echo/v4"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/application/usecases/queries"
	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/ports"
	"orgtrack/internal/pkg/authtoken"
)

// Server wires the HTTP routes to the command and query handlers.
type Server struct {
	tokens      authtoken.Codec
	carrierRepo ports.CarrierRepository

	registerUserHandler        commands.RegisterUserCommandHandler
	createCarrierHandler       commands.CreateCarrierCommandHandler
	createVehicleHandler       commands.CreateVehicleCommandHandler
	createTransportTypeHandler commands.CreateTransportTypeCommandHandler
	createShipmentHandler      commands.CreateShipmentCommandHandler
	assignPartitionHandler     commands.AssignPartitionCommandHandler
	startAssignmentHandler     commands.StartAssignmentCommandHandler
	finalizeAssignmentHandler  commands.FinalizeAssignmentCommandHandler
	submitPreTripHandler       commands.SubmitPreTripChecklistCommandHandler
	submitPostTripHandler      commands.SubmitPostTripChecklistCommandHandler
	submitSignatureHandler     commands.SubmitSignatureCommandHandler
	consumeQRHandler           commands.ConsumeQRCommandHandler

	authenticateUserHandler        queries.AuthenticateUserQueryHandler
	getShipmentHandler             queries.GetShipmentQueryHandler
	getClientShipmentsHandler      queries.GetClientShipmentsQueryHandler
	getAllShipmentsHandler         queries.GetAllShipmentsQueryHandler
	getCarrierAssignmentsHandler   queries.GetCarrierAssignmentsQueryHandler
	getAllCarriersHandler          queries.GetAllCarriersQueryHandler
	getAllVehiclesHandler          queries.GetAllVehiclesQueryHandler
	getAllTransportTypesHandler    queries.GetAllTransportTypesQueryHandler
	searchClientsHandler           queries.SearchClientsQueryHandler
	getAllClientsHandler           queries.GetAllClientsQueryHandler
	getCarrierHandler              queries.GetCarrierQueryHandler
	getVehicleHandler              queries.GetVehicleQueryHandler
	getLatestClientShipmentHandler queries.GetLatestClientShipmentQueryHandler
	getAssignmentQRHandler         queries.GetAssignmentQRQueryHandler
	getAssignmentSignaturesHandler queries.GetAssignmentSignaturesQueryHandler

	routeService ports.RouteService
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	RegisterUser        commands.RegisterUserCommandHandler
	CreateCarrier       commands.CreateCarrierCommandHandler
	CreateVehicle       commands.CreateVehicleCommandHandler
	CreateTransportType commands.CreateTransportTypeCommandHandler
	CreateShipment      commands.CreateShipmentCommandHandler
	AssignPartition     commands.AssignPartitionCommandHandler
	StartAssignment     commands.StartAssignmentCommandHandler
	FinalizeAssignment  commands.FinalizeAssignmentCommandHandler
	SubmitPreTrip       commands.SubmitPreTripChecklistCommandHandler
	SubmitPostTrip      commands.SubmitPostTripChecklistCommandHandler
	SubmitSignature     commands.SubmitSignatureCommandHandler
	ConsumeQR           commands.ConsumeQRCommandHandler

	AuthenticateUser        queries.AuthenticateUserQueryHandler
	GetShipment             queries.GetShipmentQueryHandler
	GetClientShipments      queries.GetClientShipmentsQueryHandler
	GetAllShipments         queries.GetAllShipmentsQueryHandler
	GetCarrierAssignments   queries.GetCarrierAssignmentsQueryHandler
	GetAllCarriers          queries.GetAllCarriersQueryHandler
	GetAllVehicles          queries.GetAllVehiclesQueryHandler
	GetAllTransportTypes    queries.GetAllTransportTypesQueryHandler
	SearchClients           queries.SearchClientsQueryHandler
	GetAllClients           queries.GetAllClientsQueryHandler
	GetCarrier              queries.GetCarrierQueryHandler
	GetVehicle              queries.GetVehicleQueryHandler
	GetLatestClientShipment queries.GetLatestClientShipmentQueryHandler
	GetAssignmentQR         queries.GetAssignmentQRQueryHandler
	GetAssignmentSignatures queries.GetAssignmentSignaturesQueryHandler
}

// NewServer creates the HTTP server. carrierRepo resolves the carrier
// profile behind an authenticated carrier account; routeService backs the
// standalone route preview endpoint.
func NewServer(
	tokens authtoken.Codec,
	carrierRepo ports.CarrierRepository,
	routeService ports.RouteService,
	handlers ServerHandlers,
) *Server {
	return &Server{
		tokens:      tokens,
		carrierRepo: carrierRepo,

		registerUserHandler:        handlers.RegisterUser,
		createCarrierHandler:       handlers.CreateCarrier,
		createVehicleHandler:       handlers.CreateVehicle,
		createTransportTypeHandler: handlers.CreateTransportType,
		createShipmentHandler:      handlers.CreateShipment,
		assignPartitionHandler:     handlers.AssignPartition,
		startAssignmentHandler:     handlers.StartAssignment,
		finalizeAssignmentHandler:  handlers.FinalizeAssignment,
		submitPreTripHandler:       handlers.SubmitPreTrip,
		submitPostTripHandler:      handlers.SubmitPostTrip,
		submitSignatureHandler:     handlers.SubmitSignature,
		consumeQRHandler:           handlers.ConsumeQR,

		authenticateUserHandler:        handlers.AuthenticateUser,
		getShipmentHandler:             handlers.GetShipment,
		getClientShipmentsHandler:      handlers.GetClientShipments,
		getAllShipmentsHandler:         handlers.GetAllShipments,
		getCarrierAssignmentsHandler:   handlers.GetCarrierAssignments,
		getAllCarriersHandler:          handlers.GetAllCarriers,
		getAllVehiclesHandler:          handlers.GetAllVehicles,
		getAllTransportTypesHandler:    handlers.GetAllTransportTypes,
		searchClientsHandler:           handlers.SearchClients,
		getAllClientsHandler:           handlers.GetAllClients,
		getCarrierHandler:              handlers.GetCarrier,
		getVehicleHandler:              handlers.GetVehicle,
		getLatestClientShipmentHandler: handlers.GetLatestClientShipment,
		getAssignmentQRHandler:         handlers.GetAssignmentQR,
		getAssignmentSignaturesHandler: handlers.GetAssignmentSignatures,

		routeService: routeService,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	authed := api.Group("", s.authenticate)

	admin := authed.Group("", s.requireRoles(account.RoleAdmin))
	admin.POST("/carriers", s.CreateCarrier)
	admin.GET("/carriers", s.GetCarriers)
	admin.GET("/carriers/:id", s.GetCarrier)
	admin.POST("/vehicles", s.CreateVehicle)
	admin.GET("/vehicles", s.GetVehicles)
	admin.GET("/vehicles/:id", s.GetVehicle)
	admin.POST("/transport-types", s.CreateTransportType)
	admin.GET("/clients", s.GetClients)
	admin.GET("/clients/search", s.SearchClients)
	admin.GET("/clients/:id/shipments", s.GetClientShipments)
	admin.GET("/clients/:id/shipments/latest", s.GetLatestClientShipment)
	admin.GET("/shipments", s.GetShipments)
	admin.POST("/shipments/:id/assignments", s.AssignPartition)

	authed.GET("/transport-types", s.GetTransportTypes)
	authed.POST("/routes", s.PreviewRoute)
	authed.GET("/shipments/:id", s.GetShipment)
	authed.GET("/assignments/:id/qr", s.GetAssignmentQR)
	authed.GET("/assignments/:id/signatures", s.GetAssignmentSignatures)
	authed.PUT("/assignments/:id/qr/consume", s.ConsumeQR)

	authed.POST("/shipments", s.CreateShipment, s.requireRoles(account.RoleClient, account.RoleAdmin))
	authed.GET("/shipments/mine", s.GetMyShipments, s.requireRoles(account.RoleClient))

	carriers := authed.Group("", s.requireRoles(account.RoleCarrier))
	carriers.GET("/assignments/mine", s.GetMyAssignments)
	carriers.PUT("/shipments/assignment/:id/start", s.StartAssignment)
	carriers.PUT("/shipments/assignment/:id/finalize", s.FinalizeAssignment)
	carriers.POST("/shipments/assignment/:id/checklist-pretrip", s.SubmitPreTripChecklist)
	carriers.POST("/shipments/assignment/:id/checklist-posttrip", s.SubmitPostTripChecklist)
	carriers.POST("/shipments/assignment/:id/signature", s.SubmitSignature)
	carriers.POST("/shipments/assignment/:id/carrier-signature", s.SubmitCarrierSignature)
}
