package commands

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var (
	ErrConsumeQRCommandIsNotConstructed = errors.New(
		"ConsumeQRCommand must be created via NewConsumeQRCommand constructor",
	)
	ErrTokenIsRequired = errors.New("token is required")
)

// ConsumeQRCommand represents a scan of a carrier's QR credential at
// handoff. The assignment id names which assignment the scanner expects the
// token to verify.
type ConsumeQRCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	token        string

	guard guard.ConstructorGuard
}

// NewConsumeQRCommand creates a command to redeem a QR token for the given
// assignment.
func NewConsumeQRCommand(assignmentID kernel.UUID, token string) (ConsumeQRCommand, error) {
	consumeCommand := ConsumeQRCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		consumeCommand.setAssignmentID(assignmentID),
		consumeCommand.setToken(token),
	); err != nil {
		return ConsumeQRCommand{}, err
	}

	return consumeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConsumeQRCommand) Validate() error {
	return c.guard.Validate(ErrConsumeQRCommandIsNotConstructed)
}

// AssignmentID returns the assignment the scan is expected to verify.
func (c ConsumeQRCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Token returns the scanned token.
func (c ConsumeQRCommand) Token() string {
	return c.token
}

func (c *ConsumeQRCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *ConsumeQRCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}
