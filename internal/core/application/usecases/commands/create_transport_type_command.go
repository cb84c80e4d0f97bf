package commands

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var (
	ErrCreateTransportTypeCommandIsNotConstructed = errors.New(
		"CreateTransportTypeCommand must be created via NewCreateTransportTypeCommand constructor",
	)
	ErrTransportTypeNameIsRequired = errors.New("transport type name is required")
)

// CreateTransportTypeCommand represents a request to add an entry to the
// transport type catalog.
type CreateTransportTypeCommand struct { //nolint:recvcheck //using for validation
	transportTypeID kernel.UUID
	name            string
	description     string

	guard guard.ConstructorGuard
}

// NewCreateTransportTypeCommand creates a command to add a catalog entry.
func NewCreateTransportTypeCommand(
	transportTypeID kernel.UUID,
	name, description string,
) (CreateTransportTypeCommand, error) {
	catalogCommand := CreateTransportTypeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		catalogCommand.setTransportTypeID(transportTypeID),
		catalogCommand.setName(name),
	); err != nil {
		return CreateTransportTypeCommand{}, err
	}

	catalogCommand.description = description
	return catalogCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransportTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportTypeCommandIsNotConstructed)
}

// TransportTypeID returns the identifier for the catalog entry.
func (c CreateTransportTypeCommand) TransportTypeID() kernel.UUID {
	return c.transportTypeID
}

// Name returns the unique catalog name.
func (c CreateTransportTypeCommand) Name() string {
	return c.name
}

// Description returns the optional free-form description.
func (c CreateTransportTypeCommand) Description() string {
	return c.description
}

func (c *CreateTransportTypeCommand) setTransportTypeID(transportTypeID kernel.UUID) error {
	if err := transportTypeID.Validate(); err != nil {
		return err
	}

	c.transportTypeID = transportTypeID
	return nil
}

func (c *CreateTransportTypeCommand) setName(name string) error {
	if name == "" {
		return ErrTransportTypeNameIsRequired
	}

	c.name = name
	return nil
}
