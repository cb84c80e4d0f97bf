package queries

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrGetAllTransportTypesQueryIsNotConstructed = errors.New(
	"GetAllTransportTypesQuery must be created via NewGetAllTransportTypesQuery constructor",
)

// GetAllTransportTypesQuery retrieves the transport type catalog. Clients
// use it to pick a type when requesting a shipment.
type GetAllTransportTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTransportTypesQuery creates a query to retrieve the catalog.
func NewGetAllTransportTypesQuery() GetAllTransportTypesQuery {
	return GetAllTransportTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllTransportTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTransportTypesQueryIsNotConstructed)
}

// GetAllTransportTypesQueryResponse is the catalog entry read model.
type GetAllTransportTypesQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
}
