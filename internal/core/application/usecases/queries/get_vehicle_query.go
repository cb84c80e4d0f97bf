package queries

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrGetVehicleQueryIsNotConstructed = errors.New(
	"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
)

// GetVehicleQuery retrieves one vehicle with its current ledger state.
type GetVehicleQuery struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehicleQuery creates a query for one vehicle.
func NewGetVehicleQuery(vehicleID kernel.UUID) (GetVehicleQuery, error) {
	vehicleQuery := GetVehicleQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := vehicleID.Validate(); err != nil {
		return GetVehicleQuery{}, err
	}

	vehicleQuery.vehicleID = vehicleID
	return vehicleQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

// VehicleID returns the requested vehicle.
func (q GetVehicleQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}
