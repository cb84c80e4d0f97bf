package queries

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrGetLatestClientShipmentQueryIsNotConstructed = errors.New(
	"GetLatestClientShipmentQuery must be created via NewGetLatestClientShipmentQuery constructor",
)

// GetLatestClientShipmentQuery retrieves the client's most recent shipment
// in full. The coordinator uses it to prefill a new request from the
// previous one instead of retyping cargo and route details.
type GetLatestClientShipmentQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLatestClientShipmentQuery creates a query for one client's most
// recent shipment.
func NewGetLatestClientShipmentQuery(clientID kernel.UUID) (GetLatestClientShipmentQuery, error) {
	latestQuery := GetLatestClientShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := clientID.Validate(); err != nil {
		return GetLatestClientShipmentQuery{}, err
	}

	latestQuery.clientID = clientID
	return latestQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestClientShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestClientShipmentQueryIsNotConstructed)
}

// ClientID returns the client whose latest shipment is requested.
func (q GetLatestClientShipmentQuery) ClientID() kernel.UUID {
	return q.clientID
}
