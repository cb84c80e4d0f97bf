package shipment

import (
	"fmt"

	"orgtrack/internal/pkg/errs"
)

// AssignmentStatus represents the lifecycle state of a single partition of a
// shipment. It implements a strictly forward state machine:
//
//	Pending ──> InProgress ──> Delivered
//
// No transition skips a state and no backward transition exists; Delivered is
// terminal. Transitions are only performed through the methods below, which
// return the next state or an error, so a status can never regress or jump.
type AssignmentStatus int

const (
	// AssignmentUnknown represents an invalid or undefined status.
	// The zero value helps catch uninitialized AssignmentStatus values.
	AssignmentUnknown AssignmentStatus = iota

	// AssignmentPending is the initial status: the partition is created and
	// its carrier and vehicle are reserved, but the trip has not started.
	AssignmentPending

	// AssignmentInProgress means the carrier has started the trip.
	AssignmentInProgress

	// AssignmentDelivered means the cargo has been delivered.
	// This is a terminal state with no further transitions.
	AssignmentDelivered
)

func getAssignmentStatusStrings() map[AssignmentStatus]string {
	return map[AssignmentStatus]string{
		AssignmentUnknown:    "Unknown",
		AssignmentPending:    "Pending",
		AssignmentInProgress: "InProgress",
		AssignmentDelivered:  "Delivered",
	}
}

func getValidAssignmentStatusStrings() map[AssignmentStatus]string {
	//nolint:exhaustive // AssignmentUnknown is intentionally excluded as invalid
	return map[AssignmentStatus]string{
		AssignmentPending:    "Pending",
		AssignmentInProgress: "InProgress",
		AssignmentDelivered:  "Delivered",
	}
}

// Validate checks if the AssignmentStatus value is one of the defined states.
// Used when reconstructing assignments from persistence.
func (s AssignmentStatus) Validate() error {
	if _, ok := getValidAssignmentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("assignment status is invalid",
			fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; returns "Unknown" for invalid values.
func (s AssignmentStatus) String() string {
	if str, ok := getAssignmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s AssignmentStatus) IsTerminal() bool {
	return s == AssignmentDelivered
}

// Start transitions Pending -> InProgress.
// Returns InvalidState for any other current status.
func (s AssignmentStatus) Start() (AssignmentStatus, error) {
	if s != AssignmentPending {
		return 0, errs.NewInvalidStateError("assignment", s.String())
	}
	return AssignmentInProgress, nil
}

// Deliver transitions InProgress -> Delivered.
// Returns InvalidState for any other current status.
func (s AssignmentStatus) Deliver() (AssignmentStatus, error) {
	if s != AssignmentInProgress {
		return 0, errs.NewInvalidStateError("assignment", s.String())
	}
	return AssignmentDelivered, nil
}
