package queries_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"orgtrack/internal/core/domain/model/geo"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
)

const testLocationID = "68b1c2d3e4f5a6b7c8d9e0f1"

func testSchedule(t *testing.T) kernel.Schedule {
	t.Helper()
	pickupAt := time.Now().UTC().Add(24 * time.Hour)
	schedule, err := kernel.NewSchedule(pickupAt, pickupAt.Add(48*time.Hour), "dock 4", "call ahead")
	require.NoError(t, err)
	return schedule
}

func testLocation(t *testing.T) geo.Location {
	t.Helper()
	origin, err := geo.NewPoint(-58.3816, -34.6037)
	require.NoError(t, err)
	destination, err := geo.NewPoint(-60.6393, -32.9468)
	require.NoError(t, err)
	return geo.NewLocation("Buenos Aires depot", origin, "Rosario warehouse", destination, geo.Route{})
}

// clientShipment builds a persisted-looking aggregate owned by clientID with
// one pending assignment for carrierID.
func clientShipment(
	t *testing.T,
	clientID, carrierID kernel.UUID,
) (*shipment.Shipment, *shipment.Assignment) {
	t.Helper()

	now := time.Now().UTC()
	shipmentID := kernel.NewUUID()

	cargo, err := shipment.NewCargo(kernel.NewUUID(), "produce", "oranges", 120, "crates", decimal.NewFromInt(900))
	require.NoError(t, err)

	assignment, err := shipment.RestoreAssignment(
		kernel.NewUUID(), shipmentID, carrierID, kernel.NewUUID(),
		[]shipment.Cargo{cargo},
		shipment.AssignmentPending,
		now.Add(-2*time.Hour),
		nil, nil,
	)
	require.NoError(t, err)

	assignments := []*shipment.Assignment{assignment}
	aggregate, err := shipment.RestoreShipment(
		shipmentID, clientID,
		testLocationID,
		kernel.NewUUID(),
		testSchedule(t),
		shipment.AggregateStatus(assignments),
		now.Add(-3*time.Hour),
		assignments,
	)
	require.NoError(t, err)

	return aggregate, assignment
}
