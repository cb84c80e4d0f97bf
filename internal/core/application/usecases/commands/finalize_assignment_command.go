package commands

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrFinalizeAssignmentCommandIsNotConstructed = errors.New(
	"FinalizeAssignmentCommand must be created via NewFinalizeAssignmentCommand constructor",
)

// FinalizeAssignmentCommand represents a carrier completing the delivery of
// one assignment.
type FinalizeAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	carrierID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinalizeAssignmentCommand creates a command to finalize an assignment.
func NewFinalizeAssignmentCommand(assignmentID, carrierID kernel.UUID) (FinalizeAssignmentCommand, error) {
	finalizeCommand := FinalizeAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		finalizeCommand.setAssignmentID(assignmentID),
		finalizeCommand.setCarrierID(carrierID),
	); err != nil {
		return FinalizeAssignmentCommand{}, err
	}

	return finalizeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment to finalize.
func (c FinalizeAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CarrierID returns the acting carrier.
func (c FinalizeAssignmentCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *FinalizeAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *FinalizeAssignmentCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}
