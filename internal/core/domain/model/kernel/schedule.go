package kernel

import (
	"fmt"
	"time"

	"orgtrack/internal/pkg/errs"
)

// Schedule errors.
var (
	// ErrPickupAtIsRequired is returned when the pickup time is missing.
	ErrPickupAtIsRequired = errs.NewValueIsRequiredError("pickupAt")
	// ErrDeliverByIsRequired is returned when the delivery deadline is missing.
	ErrDeliverByIsRequired = errs.NewValueIsRequiredError("deliverBy")
)

// Schedule is the pickup/delivery window attached to a shipment: when the
// cargo must be collected, by when it must be delivered, and free-text
// handling instructions for both ends.
//
// Schedule is an immutable value object; the zero value is invalid and fails
// Validate. Instructions may be empty.
type Schedule struct {
	pickupAt             time.Time
	deliverBy            time.Time
	pickupInstructions   string
	deliveryInstructions string
}

// NewSchedule creates a validated Schedule. Both times are required and the
// pickup must precede the delivery deadline.
func NewSchedule(pickupAt, deliverBy time.Time, pickupInstructions, deliveryInstructions string) (Schedule, error) {
	if pickupAt.IsZero() {
		return Schedule{}, ErrPickupAtIsRequired
	}
	if deliverBy.IsZero() {
		return Schedule{}, ErrDeliverByIsRequired
	}
	if !pickupAt.Before(deliverBy) {
		return Schedule{}, errs.NewValueIsInvalidErrorWithCause("schedule is invalid",
			fmt.Errorf("pickup %s is not before delivery deadline %s",
				pickupAt.Format(time.RFC3339), deliverBy.Format(time.RFC3339)))
	}

	return Schedule{
		pickupAt:             pickupAt,
		deliverBy:            deliverBy,
		pickupInstructions:   pickupInstructions,
		deliveryInstructions: deliveryInstructions,
	}, nil
}

// PickupAt returns the scheduled pickup time.
func (s Schedule) PickupAt() time.Time {
	return s.pickupAt
}

// DeliverBy returns the delivery deadline.
func (s Schedule) DeliverBy() time.Time {
	return s.deliverBy
}

// PickupInstructions returns the free-text pickup instructions.
func (s Schedule) PickupInstructions() string {
	return s.pickupInstructions
}

// DeliveryInstructions returns the free-text delivery instructions.
func (s Schedule) DeliveryInstructions() string {
	return s.deliveryInstructions
}

// Validate checks that the schedule was built through NewSchedule.
func (s Schedule) Validate() error {
	if s.pickupAt.IsZero() {
		return ErrPickupAtIsRequired
	}
	if s.deliverBy.IsZero() {
		return ErrDeliverByIsRequired
	}
	return nil
}
