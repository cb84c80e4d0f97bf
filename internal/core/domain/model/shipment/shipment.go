package shipment

import (
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
	"orgtrack/internal/pkg/guard"
)

// Shipment errors.
var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
	// ErrLocationIDIsRequired is returned when the document-store location
	// reference is missing.
	ErrLocationIDIsRequired = errs.NewValueIsRequiredError("locationID")
	// ErrAssignmentNotFound is returned when a referenced assignment does not
	// belong to this shipment.
	ErrAssignmentNotFound = errors.New("assignment does not belong to this shipment")
	// ErrAssignmentShipmentMismatch is returned when adding an assignment
	// created for a different shipment.
	ErrAssignmentShipmentMismatch = errors.New("assignment was created for a different shipment")
)

// Shipment is the aggregate root for a client's delivery request. A shipment
// may be partitioned into multiple assignments, each executed by one
// carrier+vehicle pair; the shipment status is always derived from the
// statuses of those assignments via AggregateStatus.
//
// Invariants:
//   - Status is never set directly; every mutation that touches an
//     assignment re-derives it
//   - Assignments are append-only: they are added by partitioning
//     operations and never removed
//   - The location document (origin/destination, route geometry) lives in
//     the document store and is referenced here by its opaque id
type Shipment struct {
	id              kernel.UUID
	clientID        kernel.UUID
	locationID      string
	transportTypeID kernel.UUID
	schedule        kernel.Schedule
	status          Status
	createdAt       time.Time
	assignments     []*Assignment

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment with no assignments. The derived status of
// an unpartitioned shipment is Pending.
func NewShipment(
	id, clientID kernel.UUID,
	locationID string,
	transportTypeID kernel.UUID,
	schedule kernel.Schedule,
	createdAt time.Time,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		transportTypeID.Validate(),
		schedule.Validate(),
	); err != nil {
		return nil, err
	}
	if locationID == "" {
		return nil, ErrLocationIDIsRequired
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Shipment{
		id:              id,
		clientID:        clientID,
		locationID:      locationID,
		transportTypeID: transportTypeID,
		schedule:        schedule,
		status:          StatusPending,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistence together
// with all of its assignments. The stored status is validated but the
// aggregate keeps it as-is; callers that transition assignments re-derive it.
func RestoreShipment(
	id, clientID kernel.UUID,
	locationID string,
	transportTypeID kernel.UUID,
	schedule kernel.Schedule,
	status Status,
	createdAt time.Time,
	assignments []*Assignment,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		transportTypeID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Shipment{
		id:              id,
		clientID:        clientID,
		locationID:      locationID,
		transportTypeID: transportTypeID,
		schedule:        schedule,
		status:          status,
		createdAt:       createdAt,
		assignments:     assignments,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// ClientID returns the owning client's user identifier.
func (s *Shipment) ClientID() kernel.UUID {
	return s.clientID
}

// LocationID returns the opaque document-store id of the shipment's
// origin/destination/route document.
func (s *Shipment) LocationID() string {
	return s.locationID
}

// TransportTypeID returns the requested transport type.
func (s *Shipment) TransportTypeID() kernel.UUID {
	return s.transportTypeID
}

// Schedule returns the pickup/delivery window.
func (s *Shipment) Schedule() kernel.Schedule {
	return s.schedule
}

// Status returns the derived aggregate status.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns when the shipment was requested.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Assignments returns all partitions of this shipment.
func (s *Shipment) Assignments() []*Assignment {
	return s.assignments
}

// Assignment returns the partition with the given id, or
// ErrAssignmentNotFound if it does not belong to this shipment.
func (s *Shipment) Assignment(assignmentID kernel.UUID) (*Assignment, error) {
	for _, a := range s.assignments {
		if a.ID().IsEqual(assignmentID) {
			return a, nil
		}
	}
	return nil, ErrAssignmentNotFound
}

// IsOwnedBy reports whether the given client created this shipment.
func (s *Shipment) IsOwnedBy(clientID kernel.UUID) bool {
	return s.clientID.IsEqual(clientID)
}

// AddAssignment appends a new partition and re-derives the shipment status.
// The assignment must have been created for this shipment. Resource
// reservation has already happened by the time this is called; the aggregate
// only records the partition.
func (s *Shipment) AddAssignment(assignment *Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}
	if !assignment.ShipmentID().IsEqual(s.id) {
		return ErrAssignmentShipmentMismatch
	}

	s.assignments = append(s.assignments, assignment)
	s.refreshStatus()
	return nil
}

// StartAssignment transitions one of this shipment's assignments from
// Pending to InProgress on behalf of the owning carrier, then re-derives the
// shipment status.
//
// Returns Forbidden if the carrier does not own the assignment,
// InvalidState if the assignment is not Pending, or ErrAssignmentNotFound.
// The pre-trip checklist gate is evaluated by the command handler before
// calling this.
func (s *Shipment) StartAssignment(assignmentID, carrierID kernel.UUID, now time.Time) (*Assignment, error) {
	assignment, err := s.Assignment(assignmentID)
	if err != nil {
		return nil, err
	}
	if !assignment.IsOwnedBy(carrierID) {
		return nil, errs.NewForbiddenError("assignment belongs to another carrier")
	}
	if err = assignment.Start(now); err != nil {
		return nil, err
	}

	s.refreshStatus()
	return assignment, nil
}

// DeliverAssignment transitions one of this shipment's assignments from
// InProgress to Delivered on behalf of the owning carrier, then re-derives
// the shipment status. Error semantics mirror StartAssignment; the post-trip
// checklist and signature gates are evaluated by the command handler.
func (s *Shipment) DeliverAssignment(assignmentID, carrierID kernel.UUID, now time.Time) (*Assignment, error) {
	assignment, err := s.Assignment(assignmentID)
	if err != nil {
		return nil, err
	}
	if !assignment.IsOwnedBy(carrierID) {
		return nil, errs.NewForbiddenError("assignment belongs to another carrier")
	}
	if err = assignment.Deliver(now); err != nil {
		return nil, err
	}

	s.refreshStatus()
	return assignment, nil
}

// refreshStatus re-derives the aggregate status from current assignment
// statuses. Idempotent.
func (s *Shipment) refreshStatus() {
	s.status = AggregateStatus(s.assignments)
}
