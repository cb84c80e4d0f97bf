package queries

import (
	"errors"

	"orgtrack/internal/pkg/guard"
)

var ErrGetAllClientsQueryIsNotConstructed = errors.New(
	"GetAllClientsQuery must be created via NewGetAllClientsQuery constructor",
)

// GetAllClientsQuery retrieves every client account. The coordinator uses
// it to pick the requesting client when creating a shipment on their
// behalf; SearchClientsQuery covers the filtered variant.
type GetAllClientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllClientsQuery creates a query to retrieve all clients.
func NewGetAllClientsQuery() GetAllClientsQuery {
	return GetAllClientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllClientsQueryIsNotConstructed)
}
