package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	httpserver "orgtrack/internal/adapters/in/http"
	"orgtrack/internal/adapters/out/mongodb/locationstore"
	"orgtrack/internal/adapters/out/mongodb/qrcredentialstore"
	"orgtrack/internal/adapters/out/mongodb/signaturestore"
	"orgtrack/internal/adapters/out/openroute"
	"orgtrack/internal/adapters/out/postgres"
	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/application/usecases/queries"
	"orgtrack/internal/core/domain/services"
	"orgtrack/internal/core/ports"
	"orgtrack/internal/jobs"
	"orgtrack/internal/pkg/authtoken"
)

// CompositionRoot wires adapters to use case handlers. All handlers are
// stateless; the root creates them on demand from the shared connections.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	locationStore   *locationstore.MongoLocationStore
	signatureStore  *signaturestore.MongoSignatureStore
	credentialStore *qrcredentialstore.MongoQRCredentialStore

	routeService     *openroute.Client
	tokens           authtoken.Codec
	credentialIssuer services.CredentialIssuer
	logger           *slog.Logger
}

// NewCompositionRoot builds the root from the shared database handles and
// configuration.
func NewCompositionRoot(
	configs Config, gormDB *gorm.DB, mongoDB *mongo.Database, logger *slog.Logger,
) (CompositionRoot, error) {
	routeService, err := openroute.NewClient(configs.OpenRouteBaseURL, configs.OpenRouteAPIKey)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("route service: %w", err)
	}

	tokens, err := authtoken.NewCodec(configs.JWTSecret, configs.JWTTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("token codec: %w", err)
	}

	credentialIssuer, err := services.NewCredentialIssuer(configs.QRCredentialTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("credential issuer: %w", err)
	}

	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		locationStore:    locationstore.NewMongoLocationStore(mongoDB),
		signatureStore:   signaturestore.NewMongoSignatureStore(mongoDB),
		credentialStore:  qrcredentialstore.NewMongoQRCredentialStore(mongoDB),
		routeService:     routeService,
		tokens:           tokens,
		credentialIssuer: credentialIssuer,
		logger:           logger,
	}, nil
}

// Tokens returns the shared token codec.
func (c *CompositionRoot) Tokens() authtoken.Codec {
	return c.tokens
}

// ShipmentRepository returns a repository that runs against the pool,
// outside any transaction.
func (c *CompositionRoot) ShipmentRepository() ports.ShipmentRepository {
	return c.uowFactory.Create().ShipmentRepository()
}

// CarrierRepository returns a repository that runs against the pool,
// outside any transaction.
func (c *CompositionRoot) CarrierRepository() ports.CarrierRepository {
	return c.uowFactory.Create().CarrierRepository()
}

// UserRepository returns a repository that runs against the pool, outside
// any transaction.
func (c *CompositionRoot) UserRepository() ports.UserRepository {
	return c.uowFactory.Create().UserRepository()
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.credentialStore, c.logger)
}

// EnsureDocumentIndexes creates the unique indexes the document stores rely
// on. Called once at startup.
func (c *CompositionRoot) EnsureDocumentIndexes(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := c.signatureStore.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("signature store indexes: %w", err)
	}
	if err := c.credentialStore.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("credential store indexes: %w", err)
	}
	return nil
}

// CreateServerHandlers bundles every use case handler for the HTTP server.
func (c *CompositionRoot) CreateServerHandlers() httpserver.ServerHandlers {
	return httpserver.ServerHandlers{
		RegisterUser:        c.CreateRegisterUserCommandHandler(),
		CreateCarrier:       c.CreateCreateCarrierCommandHandler(),
		CreateVehicle:       c.CreateCreateVehicleCommandHandler(),
		CreateTransportType: c.CreateCreateTransportTypeCommandHandler(),
		CreateShipment:      c.CreateCreateShipmentCommandHandler(),
		AssignPartition:     c.CreateAssignPartitionCommandHandler(),
		StartAssignment:     c.CreateStartAssignmentCommandHandler(),
		FinalizeAssignment:  c.CreateFinalizeAssignmentCommandHandler(),
		SubmitPreTrip:       c.CreateSubmitPreTripChecklistCommandHandler(),
		SubmitPostTrip:      c.CreateSubmitPostTripChecklistCommandHandler(),
		SubmitSignature:     c.CreateSubmitSignatureCommandHandler(),
		ConsumeQR:           c.CreateConsumeQRCommandHandler(),

		AuthenticateUser:        c.CreateAuthenticateUserQueryHandler(),
		GetShipment:             c.CreateGetShipmentQueryHandler(),
		GetClientShipments:      c.CreateGetClientShipmentsQueryHandler(),
		GetAllShipments:         c.CreateGetAllShipmentsQueryHandler(),
		GetCarrierAssignments:   c.CreateGetCarrierAssignmentsQueryHandler(),
		GetAllCarriers:          c.CreateGetAllCarriersQueryHandler(),
		GetAllVehicles:          c.CreateGetAllVehiclesQueryHandler(),
		GetAllTransportTypes:    c.CreateGetAllTransportTypesQueryHandler(),
		SearchClients:           c.CreateSearchClientsQueryHandler(),
		GetAllClients:           c.CreateGetAllClientsQueryHandler(),
		GetCarrier:              c.CreateGetCarrierQueryHandler(),
		GetVehicle:              c.CreateGetVehicleQueryHandler(),
		GetLatestClientShipment: c.CreateGetLatestClientShipmentQueryHandler(),
		GetAssignmentQR:         c.CreateGetAssignmentQRQueryHandler(),
		GetAssignmentSignatures: c.CreateGetAssignmentSignaturesQueryHandler(),
	}
}

// CreateServer builds the HTTP server with all routes wired.
func (c *CompositionRoot) CreateServer() *httpserver.Server {
	return httpserver.NewServer(c.tokens, c.CarrierRepository(), c.routeService, c.CreateServerHandlers())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTransportTypeCommandHandler() commands.CreateTransportTypeCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransportTypeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(
		f, c.locationStore, c.routeService, c.credentialStore, c.credentialIssuer, c.logger,
	)
}

func (c *CompositionRoot) CreateAssignPartitionCommandHandler() commands.AssignPartitionCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPartitionCommandHandler(f, c.credentialStore, c.credentialIssuer)
}

func (c *CompositionRoot) CreateStartAssignmentCommandHandler() commands.StartAssignmentCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeAssignmentCommandHandler() commands.FinalizeAssignmentCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeAssignmentCommandHandler(f, c.signatureStore)
}

func (c *CompositionRoot) CreateSubmitPreTripChecklistCommandHandler() commands.SubmitPreTripChecklistCommandHandler {
	var f commands.ChecklistUoWFactory = FuncChecklistUoWFactory(func() commands.ChecklistUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPreTripChecklistCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitPostTripChecklistCommandHandler() commands.SubmitPostTripChecklistCommandHandler {
	var f commands.ChecklistUoWFactory = FuncChecklistUoWFactory(func() commands.ChecklistUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPostTripChecklistCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitSignatureCommandHandler() commands.SubmitSignatureCommandHandler {
	return commands.NewSubmitSignatureCommandHandler(c.ShipmentRepository(), c.signatureStore)
}

func (c *CompositionRoot) CreateConsumeQRCommandHandler() commands.ConsumeQRCommandHandler {
	return commands.NewConsumeQRCommandHandler(c.credentialStore)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.UserRepository(), c.tokens)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.ShipmentRepository(), c.locationStore)
}

func (c *CompositionRoot) CreateGetClientShipmentsQueryHandler() queries.GetClientShipmentsQueryHandler {
	return queries.NewGetClientShipmentsQueryHandler(c.ShipmentRepository(), c.locationStore)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.ShipmentRepository(), c.locationStore)
}

func (c *CompositionRoot) CreateGetCarrierAssignmentsQueryHandler() queries.GetCarrierAssignmentsQueryHandler {
	return queries.NewGetCarrierAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCarriersQueryHandler() queries.GetAllCarriersQueryHandler {
	return queries.NewGetAllCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTransportTypesQueryHandler() queries.GetAllTransportTypesQueryHandler {
	return queries.NewGetAllTransportTypesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchClientsQueryHandler() queries.SearchClientsQueryHandler {
	return queries.NewSearchClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllClientsQueryHandler() queries.GetAllClientsQueryHandler {
	return queries.NewGetAllClientsQueryHandler(c.UserRepository())
}

func (c *CompositionRoot) CreateGetCarrierQueryHandler() queries.GetCarrierQueryHandler {
	return queries.NewGetCarrierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleQueryHandler() queries.GetVehicleQueryHandler {
	return queries.NewGetVehicleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestClientShipmentQueryHandler() queries.GetLatestClientShipmentQueryHandler {
	return queries.NewGetLatestClientShipmentQueryHandler(c.ShipmentRepository(), c.locationStore)
}

func (c *CompositionRoot) CreateGetAssignmentSignaturesQueryHandler() queries.GetAssignmentSignaturesQueryHandler {
	return queries.NewGetAssignmentSignaturesQueryHandler(c.ShipmentRepository(), c.signatureStore)
}

func (c *CompositionRoot) CreateGetAssignmentQRQueryHandler() queries.GetAssignmentQRQueryHandler {
	return queries.NewGetAssignmentQRQueryHandler(c.ShipmentRepository(), c.credentialStore)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncChecklistUoWFactory func() commands.ChecklistUoW

func (f FuncChecklistUoWFactory) Create() commands.ChecklistUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}
