package commands

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrStartAssignmentCommandIsNotConstructed = errors.New(
	"StartAssignmentCommand must be created via NewStartAssignmentCommand constructor",
)

// StartAssignmentCommand represents a carrier starting the trip for one
// assignment.
type StartAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	carrierID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartAssignmentCommand creates a command to start an assignment.
func NewStartAssignmentCommand(assignmentID, carrierID kernel.UUID) (StartAssignmentCommand, error) {
	startCommand := StartAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		startCommand.setAssignmentID(assignmentID),
		startCommand.setCarrierID(carrierID),
	); err != nil {
		return StartAssignmentCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrStartAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment to start.
func (c StartAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CarrierID returns the acting carrier.
func (c StartAssignmentCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *StartAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *StartAssignmentCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}
