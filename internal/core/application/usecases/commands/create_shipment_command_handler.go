package commands

import (
	"context"
	"log/slog"
	"time"

	"orgtrack/internal/core/domain/model/geo"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/core/domain/services"
	"orgtrack/internal/core/ports"
)

// CreateShipmentCommandHandler handles shipment creation.
//
// The geographic document is written to the document store first and its id
// is kept on the shipment row; if the relational transaction then fails, the
// document is deleted again as compensation. A route provider failure is not
// fatal: the location is stored with an empty route.
//
// When the command carries partitions, each partition reserves its carrier
// and vehicle through the availability ledger inside the same transaction,
// and a QR credential is issued for every created assignment after commit.
type CreateShipmentCommandHandler struct {
	uowFactory       AssignmentUoWFactory
	locationStore    ports.LocationStore
	routeService     ports.RouteService
	credentialStore  ports.QRCredentialStore
	credentialIssuer services.CredentialIssuer
	logger           *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory AssignmentUoWFactory,
	locationStore ports.LocationStore,
	routeService ports.RouteService,
	credentialStore ports.QRCredentialStore,
	credentialIssuer services.CredentialIssuer,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:       uowFactory,
		locationStore:    locationStore,
		routeService:     routeService,
		credentialStore:  credentialStore,
		credentialIssuer: credentialIssuer,
		logger:           logger,
	}
}

// Handle processes the shipment creation command.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	route, err := h.routeService.GetRoute(ctx, cmd.Origin(), cmd.Destination())
	if err != nil {
		h.logger.WarnContext(ctx, "route provider failed, storing location without route",
			"shipment_id", cmd.ShipmentID().String(), "error", err)
		route = geo.Route{}
	}

	locationID, err := h.locationStore.Add(ctx, geo.NewLocation(
		cmd.OriginName(), cmd.Origin(),
		cmd.DestinationName(), cmd.Destination(),
		route,
	))
	if err != nil {
		return err
	}

	assignments, err := h.persistShipment(ctx, cmd, locationID, now)
	if err != nil {
		_ = h.locationStore.Delete(ctx, locationID)
		return err
	}

	for _, assignment := range assignments {
		credential, err := h.credentialIssuer.Issue(assignment.ID(), now)
		if err != nil {
			return err
		}
		if err = h.credentialStore.Add(ctx, credential); err != nil {
			return err
		}
	}

	return nil
}

func (h *CreateShipmentCommandHandler) persistShipment(
	ctx context.Context,
	cmd CreateShipmentCommand,
	locationID string,
	now time.Time,
) ([]*shipment.Assignment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.TransportTypeRepository().Get(ctx, cmd.TransportTypeID()); err != nil {
		return nil, err
	}

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.ClientID(),
		locationID,
		cmd.TransportTypeID(),
		cmd.Schedule(),
		now,
	)
	if err != nil {
		return nil, err
	}

	created := make([]*shipment.Assignment, 0, len(cmd.Partitions()))
	for _, partition := range cmd.Partitions() {
		assignment, err := appendPartition(ctx, uow, newShipment, partition, now)
		if err != nil {
			return nil, err
		}
		created = append(created, assignment)
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// appendPartition reserves the partition's carrier and vehicle through the
// availability ledger and appends the assignment to the aggregate. The
// conditional reserve makes double-booking impossible: of two transactions
// racing for the same resource, exactly one sees its update apply.
func appendPartition(
	ctx context.Context,
	uow AssignmentUoW,
	aggregate *shipment.Shipment,
	partition PartitionInput,
	now time.Time,
) (*shipment.Assignment, error) {
	if err := uow.CarrierRepository().Reserve(ctx, partition.CarrierID); err != nil {
		return nil, err
	}

	if err := uow.VehicleRepository().Reserve(ctx, partition.VehicleID); err != nil {
		return nil, err
	}

	cargo, err := buildCargo(partition.Cargo)
	if err != nil {
		return nil, err
	}

	assignment, err := shipment.NewAssignment(
		kernel.NewUUID(),
		aggregate.ID(),
		partition.CarrierID,
		partition.VehicleID,
		cargo,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = aggregate.AddAssignment(assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

func buildCargo(inputs []CargoInput) ([]shipment.Cargo, error) {
	cargo := make([]shipment.Cargo, 0, len(inputs))
	for _, item := range inputs {
		record, err := shipment.NewCargo(
			kernel.NewUUID(),
			item.Kind,
			item.Variety,
			item.Quantity,
			item.Packaging,
			item.Weight,
		)
		if err != nil {
			return nil, err
		}
		cargo = append(cargo, record)
	}

	return cargo, nil
}
