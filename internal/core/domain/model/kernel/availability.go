package kernel

import (
	"fmt"

	"orgtrack/internal/pkg/errs"
)

// Availability represents the reservation state of a carrier or vehicle.
// It is the unit of the resource availability ledger: only assignment
// lifecycle transitions may move it, never callers directly.
//
// State transitions:
//
//	Available ──> Unavailable ──> EnRoute
//	    ▲              │             │
//	    └──────────────┴─────────────┘
//	              (release)
//
// A resource is reserved (Available → Unavailable) when an assignment is
// created against it, marked EnRoute when the assignment starts, and released
// back to Available when the assignment is delivered. The persistence layer
// performs the Available → Unavailable flip as a single conditional update so
// that two concurrent reservations cannot both succeed.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined state.
	// The zero value helps catch uninitialized Availability values.
	AvailabilityUnknown Availability = iota

	// Available means the resource can be reserved for a new assignment.
	Available

	// Unavailable means the resource is reserved by a pending assignment.
	Unavailable

	// EnRoute means the resource is executing an in-progress assignment.
	EnRoute
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "Unknown",
		Available:           "Available",
		Unavailable:         "Unavailable",
		EnRoute:             "EnRoute",
	}
}

func getValidAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // AvailabilityUnknown is intentionally excluded as invalid
	return map[Availability]string{
		Available:   "Available",
		Unavailable: "Unavailable",
		EnRoute:     "EnRoute",
	}
}

// Validate checks if the Availability value is one of the defined states.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability is invalid",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the human-readable name of the availability state.
// Implements fmt.Stringer; returns "Unknown" for invalid values.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// Reserve transitions Available -> Unavailable.
// Returns ResourceUnavailable for any other current state.
func (a Availability) Reserve() (Availability, error) {
	if a != Available {
		return 0, errs.NewResourceUnavailableErrorWithCause("resource", a.String(),
			fmt.Errorf("%s is not a valid availability to reserve from", a.String()))
	}
	return Unavailable, nil
}

// Depart transitions Unavailable -> EnRoute.
// The resource must have been reserved before the assignment starts.
func (a Availability) Depart() (Availability, error) {
	if a != Unavailable {
		return 0, errs.NewValueIsInvalidErrorWithCause("availability is invalid",
			fmt.Errorf("%s is not a valid availability to depart from", a.String()))
	}
	return EnRoute, nil
}

// Release transitions Unavailable or EnRoute back to Available.
// Releasing from Unavailable covers compensating releases when a multi-step
// creation fails after the resource was reserved.
func (a Availability) Release() (Availability, error) {
	if a != Unavailable && a != EnRoute {
		return 0, errs.NewValueIsInvalidErrorWithCause("availability is invalid",
			fmt.Errorf("%s is not a valid availability to release from", a.String()))
	}
	return Available, nil
}
