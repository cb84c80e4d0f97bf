package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSchedule(t *testing.T) kernel.Schedule {
	t.Helper()
	pickupAt := time.Now().UTC().Add(24 * time.Hour)
	schedule, err := kernel.NewSchedule(pickupAt, pickupAt.Add(48*time.Hour), "dock 4", "call ahead")
	require.NoError(t, err)
	return schedule
}

func testCargoInput() commands.CargoInput {
	return commands.CargoInput{
		Kind:      "produce",
		Variety:   "oranges",
		Quantity:  120,
		Packaging: "crates",
		Weight:    decimal.NewFromInt(900),
	}
}

// shipmentWithAssignment builds a persisted-looking aggregate holding one
// assignment in the given status for the given carrier.
func shipmentWithAssignment(
	t *testing.T,
	carrierID kernel.UUID,
	status shipment.AssignmentStatus,
) (*shipment.Shipment, *shipment.Assignment) {
	t.Helper()

	now := time.Now().UTC()
	shipmentID := kernel.NewUUID()

	cargo, err := shipment.NewCargo(kernel.NewUUID(), "produce", "oranges", 120, "crates", decimal.NewFromInt(900))
	require.NoError(t, err)

	var startedAt, completedAt *time.Time
	if status == shipment.AssignmentInProgress || status == shipment.AssignmentDelivered {
		started := now.Add(-time.Hour)
		startedAt = &started
	}
	if status == shipment.AssignmentDelivered {
		completed := now.Add(-time.Minute)
		completedAt = &completed
	}

	assignment, err := shipment.RestoreAssignment(
		kernel.NewUUID(), shipmentID, carrierID, kernel.NewUUID(),
		[]shipment.Cargo{cargo},
		status,
		now.Add(-2*time.Hour),
		startedAt, completedAt,
	)
	require.NoError(t, err)

	assignments := []*shipment.Assignment{assignment}
	aggregate, err := shipment.RestoreShipment(
		shipmentID, kernel.NewUUID(),
		"68b1c2d3e4f5a6b7c8d9e0f1",
		kernel.NewUUID(),
		testSchedule(t),
		shipment.AggregateStatus(assignments),
		now.Add(-3*time.Hour),
		assignments,
	)
	require.NoError(t, err)

	return aggregate, assignment
}
