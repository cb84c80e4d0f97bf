package queries

import (
	"context"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/ports"
)

// GetAllClientsQueryHandler lists client accounts through the user
// repository. Unlike the other listings this read goes through the
// aggregate port because the client read model is the account itself.
type GetAllClientsQueryHandler struct {
	userRepo ports.UserRepository
}

// NewGetAllClientsQueryHandler creates a handler for client listing
// queries.
func NewGetAllClientsQueryHandler(userRepo ports.UserRepository) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{userRepo: userRepo}
}

// Handle retrieves every account with the client role.
func (h GetAllClientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllClientsQuery,
) ([]SearchClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users, err := h.userRepo.GetAllByRole(ctx, account.RoleClient)
	if err != nil {
		return nil, err
	}

	clients := make([]SearchClientsQueryResponse, 0, len(users))
	for _, user := range users {
		clients = append(clients, SearchClientsQueryResponse{
			ID:        user.ID(),
			FirstName: user.FirstName(),
			LastName:  user.LastName(),
			Email:     user.Email(),
		})
	}

	return clients, nil
}
