package commands

import (
	"context"

	"orgtrack/internal/core/domain/model/account"
)

// RegisterUserCommandHandler handles the business logic for account creation.
// The account aggregate hashes the password; the repository's unique email
// index turns a duplicate registration into an AlreadyExists error.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := account.NewUser(
		cmd.UserID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.Password(),
		cmd.Role(),
	)
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
