package commands

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrAssignPartitionCommandIsNotConstructed = errors.New(
	"AssignPartitionCommand must be created via NewAssignPartitionCommand constructor",
)

// AssignPartitionCommand represents a request to split off one partition of
// an existing shipment to a carrier and vehicle.
type AssignPartitionCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	partition  PartitionInput

	guard guard.ConstructorGuard
}

// NewAssignPartitionCommand creates a command to assign one partition.
func NewAssignPartitionCommand(
	shipmentID kernel.UUID,
	partition PartitionInput,
) (AssignPartitionCommand, error) {
	partitionCommand := AssignPartitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partitionCommand.setShipmentID(shipmentID),
		partitionCommand.setPartition(partition),
	); err != nil {
		return AssignPartitionCommand{}, err
	}

	return partitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPartitionCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartitionCommandIsNotConstructed)
}

// ShipmentID returns the shipment being partitioned.
func (c AssignPartitionCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Partition returns the carrier, vehicle and cargo of the new partition.
func (c AssignPartitionCommand) Partition() PartitionInput {
	return c.partition
}

func (c *AssignPartitionCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AssignPartitionCommand) setPartition(partition PartitionInput) error {
	if err := errors.Join(
		partition.CarrierID.Validate(),
		partition.VehicleID.Validate(),
		validateCargoInputs(partition.Cargo),
	); err != nil {
		return err
	}

	c.partition = partition
	return nil
}
