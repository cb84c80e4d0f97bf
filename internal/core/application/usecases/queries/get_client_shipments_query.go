package queries

import (
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/guard"
)

var ErrGetClientShipmentsQueryIsNotConstructed = errors.New(
	"GetClientShipmentsQuery must be created via NewGetClientShipmentsQuery constructor",
)

// GetClientShipmentsQuery lists one client's shipments, newest first. It
// backs both the client's own listing and the coordinator's per-client view.
type GetClientShipmentsQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientShipmentsQuery creates a query for one client's shipments.
func NewGetClientShipmentsQuery(clientID kernel.UUID) (GetClientShipmentsQuery, error) {
	shipmentsQuery := GetClientShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := clientID.Validate(); err != nil {
		return GetClientShipmentsQuery{}, err
	}

	shipmentsQuery.clientID = clientID
	return shipmentsQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetClientShipmentsQueryIsNotConstructed)
}

// ClientID returns the client whose shipments are listed.
func (q GetClientShipmentsQuery) ClientID() kernel.UUID {
	return q.clientID
}

// ShipmentSummaryResponse is the list read model: enough for a table row
// without loading assignments or cargo details.
type ShipmentSummaryResponse struct {
	ID              kernel.UUID
	ClientID        kernel.UUID
	Status          shipment.Status
	OriginName      string
	DestinationName string
	PickupAt        time.Time
	DeliverBy       time.Time
	CreatedAt       time.Time
	AssignmentCount int
}
