package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"orgtrack/internal/core/domain/model/geo"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrOriginNameIsRequired      = errors.New("origin name is required")
	ErrDestinationNameIsRequired = errors.New("destination name is required")
	ErrPartitionCargoIsRequired  = errors.New("each partition needs at least one cargo item")
	ErrCargoKindIsRequired       = errors.New("cargo kind is required")
	ErrCargoQuantityIsInvalid    = errors.New("cargo quantity must be greater than 0")
	ErrCargoWeightIsInvalid      = errors.New("cargo weight must be greater than 0")
)

// CargoInput describes one cargo item of a partition as submitted by the
// caller.
type CargoInput struct {
	Kind      string
	Variety   string
	Quantity  int
	Packaging string
	Weight    decimal.Decimal
}

// PartitionInput describes one carrier+vehicle partition of a shipment as
// submitted by the caller.
type PartitionInput struct {
	CarrierID kernel.UUID
	VehicleID kernel.UUID
	Cargo     []CargoInput
}

// CreateShipmentCommand represents a request to create a shipment. Clients
// create unpartitioned shipments (no partitions); coordinators may create a
// shipment already split into carrier+vehicle partitions, which reserves
// those resources up front.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	clientID        kernel.UUID
	originName      string
	origin          geo.Point
	destinationName string
	destination     geo.Point
	transportTypeID kernel.UUID
	schedule        kernel.Schedule
	partitions      []PartitionInput

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a shipment.
// partitions may be empty.
func NewCreateShipmentCommand(
	shipmentID, clientID kernel.UUID,
	originName string, origin geo.Point,
	destinationName string, destination geo.Point,
	transportTypeID kernel.UUID,
	schedule kernel.Schedule,
	partitions []PartitionInput,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setClientID(clientID),
		shipmentCommand.setOrigin(originName, origin),
		shipmentCommand.setDestination(destinationName, destination),
		shipmentCommand.setTransportTypeID(transportTypeID),
		shipmentCommand.setSchedule(schedule),
		shipmentCommand.setPartitions(partitions),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ClientID returns the requesting client's identifier.
func (c CreateShipmentCommand) ClientID() kernel.UUID {
	return c.clientID
}

// OriginName returns the human-readable pickup place name.
func (c CreateShipmentCommand) OriginName() string {
	return c.originName
}

// Origin returns the pickup coordinates.
func (c CreateShipmentCommand) Origin() geo.Point {
	return c.origin
}

// DestinationName returns the human-readable delivery place name.
func (c CreateShipmentCommand) DestinationName() string {
	return c.destinationName
}

// Destination returns the delivery coordinates.
func (c CreateShipmentCommand) Destination() geo.Point {
	return c.destination
}

// TransportTypeID returns the requested transport type.
func (c CreateShipmentCommand) TransportTypeID() kernel.UUID {
	return c.transportTypeID
}

// Schedule returns the pickup and delivery window.
func (c CreateShipmentCommand) Schedule() kernel.Schedule {
	return c.schedule
}

// Partitions returns the upfront carrier+vehicle partitions, possibly empty.
func (c CreateShipmentCommand) Partitions() []PartitionInput {
	return c.partitions
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateShipmentCommand) setOrigin(name string, point geo.Point) error {
	if name == "" {
		return ErrOriginNameIsRequired
	}

	c.originName = name
	c.origin = point
	return nil
}

func (c *CreateShipmentCommand) setDestination(name string, point geo.Point) error {
	if name == "" {
		return ErrDestinationNameIsRequired
	}

	c.destinationName = name
	c.destination = point
	return nil
}

func (c *CreateShipmentCommand) setTransportTypeID(transportTypeID kernel.UUID) error {
	if err := transportTypeID.Validate(); err != nil {
		return err
	}

	c.transportTypeID = transportTypeID
	return nil
}

func (c *CreateShipmentCommand) setSchedule(schedule kernel.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	c.schedule = schedule
	return nil
}

func (c *CreateShipmentCommand) setPartitions(partitions []PartitionInput) error {
	for _, partition := range partitions {
		if err := errors.Join(
			partition.CarrierID.Validate(),
			partition.VehicleID.Validate(),
			validateCargoInputs(partition.Cargo),
		); err != nil {
			return err
		}
	}

	c.partitions = partitions
	return nil
}

func validateCargoInputs(cargo []CargoInput) error {
	if len(cargo) == 0 {
		return ErrPartitionCargoIsRequired
	}

	for _, item := range cargo {
		if item.Kind == "" {
			return ErrCargoKindIsRequired
		}
		if item.Quantity <= 0 {
			return ErrCargoQuantityIsInvalid
		}
		if !item.Weight.IsPositive() {
			return ErrCargoWeightIsInvalid
		}
	}

	return nil
}
