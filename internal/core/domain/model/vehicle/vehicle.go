package vehicle

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
	"orgtrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for vehicle operations.
var (
	// ErrKindIsRequired is returned when the vehicle kind is missing.
	ErrKindIsRequired = errs.NewValueIsRequiredError("kind")
	// ErrPlateIsRequired is returned when the license plate is missing.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is a reservable transport unit. Together with Carrier it forms the
// resource pair an assignment holds: reserving one without the other never
// happens, and both move through the availability ledger in lockstep with the
// assignment lifecycle.
type Vehicle struct {
	id           kernel.UUID
	kind         string
	plate        string
	capacity     decimal.Decimal
	availability kernel.Availability

	guard guard.ConstructorGuard
}

// NewVehicle creates an Available vehicle. Kind and plate are required and
// capacity must be greater than zero.
func NewVehicle(id kernel.UUID, kind, plate string, capacity decimal.Decimal) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if kind == "" {
		return nil, ErrKindIsRequired
	}
	if plate == "" {
		return nil, ErrPlateIsRequired
	}
	if !capacity.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("capacity is invalid",
			errors.New(capacity.String()+" is not greater than 0"))
	}

	return &Vehicle{
		id:           id,
		kind:         kind,
		plate:        plate,
		capacity:     capacity,
		availability: kernel.Available,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreVehicle reconstructs a Vehicle from persistence.
func RestoreVehicle(id kernel.UUID, kind, plate string, capacity decimal.Decimal, availability kernel.Availability) (*Vehicle, error) {
	if err := errors.Join(
		id.Validate(),
		availability.Validate(),
	); err != nil {
		return nil, err
	}

	return &Vehicle{
		id:           id,
		kind:         kind,
		plate:        plate,
		capacity:     capacity,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Kind returns the vehicle kind (e.g. truck, van).
func (v *Vehicle) Kind() string {
	return v.kind
}

// Plate returns the license plate.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Capacity returns the load capacity.
func (v *Vehicle) Capacity() decimal.Decimal {
	return v.capacity
}

// Availability returns the current reservation state.
func (v *Vehicle) Availability() kernel.Availability {
	return v.availability
}

// IsAvailable reports whether the vehicle can be reserved.
func (v *Vehicle) IsAvailable() bool {
	return v.availability == kernel.Available
}

// Reserve marks the vehicle as held by a new assignment.
// Returns ResourceUnavailable if the vehicle is not Available.
func (v *Vehicle) Reserve() error {
	next, err := v.availability.Reserve()
	if err != nil {
		return errs.NewResourceUnavailableErrorWithCause("vehicle", v.id, err)
	}
	v.availability = next
	return nil
}

// Depart marks the vehicle as executing its assignment.
func (v *Vehicle) Depart() error {
	next, err := v.availability.Depart()
	if err != nil {
		return err
	}
	v.availability = next
	return nil
}

// Release returns the vehicle to the available pool.
func (v *Vehicle) Release() error {
	next, err := v.availability.Release()
	if err != nil {
		return err
	}
	v.availability = next
	return nil
}
