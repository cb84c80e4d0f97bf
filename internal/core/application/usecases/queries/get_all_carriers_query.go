package queries

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrGetAllCarriersQueryIsNotConstructed = errors.New(
	"GetAllCarriersQuery must be created via NewGetAllCarriersQuery constructor",
)

// GetAllCarriersQuery retrieves every carrier profile joined with its
// account identity. The coordinator uses it to pick carriers when
// partitioning a shipment.
type GetAllCarriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCarriersQuery creates a query to retrieve all carriers.
func NewGetAllCarriersQuery() GetAllCarriersQuery {
	return GetAllCarriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCarriersQueryIsNotConstructed)
}

// GetAllCarriersQueryResponse is the carrier read model: profile fields
// plus the account name and the current ledger state.
type GetAllCarriersQueryResponse struct {
	ID           kernel.UUID
	UserID       kernel.UUID
	FirstName    string
	LastName     string
	DocumentID   string
	Phone        string
	Availability kernel.Availability
}
