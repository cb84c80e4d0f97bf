package shipment

import (
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
	"orgtrack/internal/pkg/guard"
)

// Assignment errors.
var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not
	// created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment")
	// ErrCargoIsRequired is returned when an assignment has no cargo records.
	ErrCargoIsRequired = errs.NewValueIsRequiredError("cargo")
)

// Assignment is one partition of a shipment: a carrier+vehicle pair executing
// part of the cargo within the shipment's schedule. It is the unit of
// lifecycle state.
//
// Invariants:
//   - Status only moves Pending -> InProgress -> Delivered, never backward
//   - Carries at least one cargo record; the set never changes after creation
//   - StartedAt is set exactly when the status leaves Pending,
//     CompletedAt exactly when it reaches Delivered
//   - Assignments are never deleted; history is append-only
//
// The availability of the referenced carrier and vehicle is NOT tracked here;
// the lifecycle command handlers flip it through the resource repositories as
// a side effect of the transitions below.
type Assignment struct {
	id          kernel.UUID
	shipmentID  kernel.UUID
	carrierID   kernel.UUID
	vehicleID   kernel.UUID
	cargo       []Cargo
	status      AssignmentStatus
	assignedAt  time.Time
	startedAt   *time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates a Pending assignment for the given shipment, carrier
// and vehicle, carrying at least one cargo record.
func NewAssignment(
	id, shipmentID, carrierID, vehicleID kernel.UUID,
	cargo []Cargo,
	assignedAt time.Time,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		carrierID.Validate(),
		vehicleID.Validate(),
	); err != nil {
		return nil, err
	}
	if len(cargo) == 0 {
		return nil, ErrCargoIsRequired
	}
	if assignedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("assignedAt")
	}

	return &Assignment{
		id:         id,
		shipmentID: shipmentID,
		carrierID:  carrierID,
		vehicleID:  vehicleID,
		cargo:      cargo,
		status:     AssignmentPending,
		assignedAt: assignedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreAssignment reconstructs an Assignment from persistence, including
// its current status and transition timestamps.
func RestoreAssignment(
	id, shipmentID, carrierID, vehicleID kernel.UUID,
	cargo []Cargo,
	status AssignmentStatus,
	assignedAt time.Time,
	startedAt, completedAt *time.Time,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		carrierID.Validate(),
		vehicleID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Assignment{
		id:          id,
		shipmentID:  shipmentID,
		carrierID:   carrierID,
		vehicleID:   vehicleID,
		cargo:       cargo,
		status:      status,
		assignedAt:  assignedAt,
		startedAt:   startedAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// ShipmentID returns the parent shipment identifier.
func (a *Assignment) ShipmentID() kernel.UUID {
	return a.shipmentID
}

// CarrierID returns the assigned carrier identifier.
func (a *Assignment) CarrierID() kernel.UUID {
	return a.carrierID
}

// VehicleID returns the assigned vehicle identifier.
func (a *Assignment) VehicleID() kernel.UUID {
	return a.vehicleID
}

// Cargo returns the cargo records carried by this assignment.
func (a *Assignment) Cargo() []Cargo {
	return a.cargo
}

// Status returns the current lifecycle status.
func (a *Assignment) Status() AssignmentStatus {
	return a.status
}

// AssignedAt returns when the assignment was created.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// StartedAt returns when the trip started, or nil while Pending.
func (a *Assignment) StartedAt() *time.Time {
	return a.startedAt
}

// CompletedAt returns when the cargo was delivered, or nil before that.
func (a *Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// IsOwnedBy reports whether the given carrier owns this assignment.
// Lifecycle transitions are only permitted to the owning carrier.
func (a *Assignment) IsOwnedBy(carrierID kernel.UUID) bool {
	return a.carrierID.IsEqual(carrierID)
}

// Start transitions the assignment Pending -> InProgress and records the
// start time. Returns InvalidState if the assignment is not Pending.
//
// The pre-trip checklist gate is checked by the command handler before this
// is called; the domain transition itself only guards the state machine.
func (a *Assignment) Start(now time.Time) error {
	newStatus, err := a.status.Start()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.startedAt = &now
	return nil
}

// Deliver transitions the assignment InProgress -> Delivered and records the
// completion time. Returns InvalidState if the assignment is not InProgress.
func (a *Assignment) Deliver(now time.Time) error {
	newStatus, err := a.status.Deliver()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.completedAt = &now
	return nil
}
