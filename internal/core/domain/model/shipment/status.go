package shipment

import (
	"fmt"

	"orgtrack/internal/pkg/errs"
)

// Status is the aggregate status of a shipment, derived from the statuses of
// its partitioned assignments. It is never set directly: AggregateStatus
// recomputes it from the full multiset of child statuses after every
// assignment transition, so the value is deterministic and order-independent.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the shipment has no assignments yet.
	StatusPending

	// StatusAssigned means every assignment is still Pending.
	StatusAssigned

	// StatusInProgress means at least one assignment is underway and none
	// have been delivered yet.
	StatusInProgress

	// StatusPartiallyDelivered means some, but not all, assignments have
	// been delivered.
	StatusPartiallyDelivered

	// StatusDelivered means every assignment has been delivered.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "Unknown",
		StatusPending:            "Pending",
		StatusAssigned:           "Assigned",
		StatusInProgress:         "InProgress",
		StatusPartiallyDelivered: "PartiallyDelivered",
		StatusDelivered:          "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as invalid
	return map[Status]string{
		StatusPending:            "Pending",
		StatusAssigned:           "Assigned",
		StatusInProgress:         "InProgress",
		StatusPartiallyDelivered: "PartiallyDelivered",
		StatusDelivered:          "Delivered",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipment status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; returns "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AggregateStatus derives a shipment's status from the statuses of all its
// assignments. It is a pure function of the status multiset:
//
//   - no assignments                      -> Pending
//   - all Delivered                       -> Delivered
//   - all Pending                         -> Assigned
//   - some Delivered and some not         -> PartiallyDelivered
//   - some InProgress, none Delivered     -> InProgress
//   - anything else                       -> Assigned
//
// Because only counts matter, shuffling the assignment list never changes the
// result, and re-running against the same statuses is idempotent.
func AggregateStatus(assignments []*Assignment) Status {
	if len(assignments) == 0 {
		return StatusPending
	}

	var pending, inProgress, delivered int
	for _, a := range assignments {
		switch a.Status() {
		case AssignmentPending:
			pending++
		case AssignmentInProgress:
			inProgress++
		case AssignmentDelivered:
			delivered++
		}
	}

	total := len(assignments)
	switch {
	case delivered == total:
		return StatusDelivered
	case pending == total:
		return StatusAssigned
	case delivered > 0:
		return StatusPartiallyDelivered
	case inProgress > 0:
		return StatusInProgress
	default:
		return StatusAssigned
	}
}
