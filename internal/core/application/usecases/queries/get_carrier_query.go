package queries

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrGetCarrierQueryIsNotConstructed = errors.New(
	"GetCarrierQuery must be created via NewGetCarrierQuery constructor",
)

// GetCarrierQuery retrieves one carrier profile joined with its account
// identity.
type GetCarrierQuery struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierQuery creates a query for one carrier.
func NewGetCarrierQuery(carrierID kernel.UUID) (GetCarrierQuery, error) {
	carrierQuery := GetCarrierQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := carrierID.Validate(); err != nil {
		return GetCarrierQuery{}, err
	}

	carrierQuery.carrierID = carrierID
	return carrierQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierQueryIsNotConstructed)
}

// CarrierID returns the requested carrier.
func (q GetCarrierQuery) CarrierID() kernel.UUID {
	return q.carrierID
}
