package commands

import (
	"context"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/carrier"
)

// CreateCarrierCommandHandler handles carrier onboarding. The user account
// and the carrier profile are written in one transaction so a carrier can
// never exist without a login or the other way around.
type CreateCarrierCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier onboarding.
func NewCreateCarrierCommandHandler(uowFactory AccountUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier onboarding command. The new carrier starts
// in the Available state.
func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := account.NewUser(
		cmd.UserID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.Password(),
		account.RoleCarrier,
	)
	if err != nil {
		return err
	}

	profile, err := carrier.NewCarrier(cmd.CarrierID(), cmd.UserID(), cmd.DocumentID(), cmd.Phone())
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

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return err
	}

	if err = uow.CarrierRepository().Add(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
