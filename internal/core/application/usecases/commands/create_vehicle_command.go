package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrVehicleKindIsRequired = errors.New("vehicle kind is required")
	ErrPlateIsRequired       = errors.New("plate is required")
	ErrCapacityIsInvalid     = errors.New("capacity must be greater than 0")
)

// CreateVehicleCommand represents a request to register a vehicle in the
// fleet.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	kind      string
	plate     string
	capacity  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	kind, plate string,
	capacity decimal.Decimal,
) (CreateVehicleCommand, error) {
	vehicleCommand := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicleCommand.setVehicleID(vehicleID),
		vehicleCommand.setKind(kind),
		vehicleCommand.setPlate(plate),
		vehicleCommand.setCapacity(capacity),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return vehicleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier for the new vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Kind returns the vehicle kind, e.g. refrigerated truck.
func (c CreateVehicleCommand) Kind() string {
	return c.kind
}

// Plate returns the unique registration plate.
func (c CreateVehicleCommand) Plate() string {
	return c.plate
}

// Capacity returns the load capacity in kilograms.
func (c CreateVehicleCommand) Capacity() decimal.Decimal {
	return c.capacity
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setKind(kind string) error {
	if kind == "" {
		return ErrVehicleKindIsRequired
	}

	c.kind = kind
	return nil
}

func (c *CreateVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}

	c.plate = plate
	return nil
}

func (c *CreateVehicleCommand) setCapacity(capacity decimal.Decimal) error {
	if !capacity.IsPositive() {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
