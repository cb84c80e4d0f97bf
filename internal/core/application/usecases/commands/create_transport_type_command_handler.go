package commands

import (
	"context"

	"orgtrack/internal/core/domain/model/transport"
)

// CreateTransportTypeCommandHandler handles catalog maintenance. Names are
// unique; a duplicate surfaces as an AlreadyExists error.
type CreateTransportTypeCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateTransportTypeCommandHandler creates a handler for catalog entries.
func NewCreateTransportTypeCommandHandler(uowFactory CatalogUoWFactory) CreateTransportTypeCommandHandler {
	return CreateTransportTypeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog command.
func (h *CreateTransportTypeCommandHandler) Handle(ctx context.Context, cmd CreateTransportTypeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := transport.NewTransportType(cmd.TransportTypeID(), cmd.Name(), cmd.Description())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TransportTypeRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
