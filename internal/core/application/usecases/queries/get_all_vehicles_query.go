package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
	"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
)

// GetAllVehiclesQuery retrieves the whole vehicle fleet with its current
// ledger state.
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query to retrieve all vehicles.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// GetAllVehiclesQueryResponse is the vehicle read model.
type GetAllVehiclesQueryResponse struct {
	ID           kernel.UUID
	Kind         string
	Plate        string
	Capacity     decimal.Decimal
	Availability kernel.Availability
}
