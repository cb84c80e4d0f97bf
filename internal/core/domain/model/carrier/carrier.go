package carrier

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
	"orgtrack/internal/pkg/guard"
)

// Domain errors for carrier operations.
var (
	// ErrDocumentIDIsRequired is returned when the national document id is missing.
	ErrDocumentIDIsRequired = errs.NewValueIsRequiredError("documentID")
	// ErrPhoneIsRequired is returned when the contact phone is missing.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
)

// Carrier is a driver who executes shipment assignments. It is one of the two
// reservable resources (the other being Vehicle): at most one active
// assignment may hold it at a time.
//
// Business rules:
//   - A carrier is linked to exactly one user account, which carries the
//     carrier role and is used for authentication
//   - Availability moves Available -> Unavailable on reservation,
//     Unavailable -> EnRoute when the trip starts, and back to Available
//     when the cargo is delivered
//   - The actual reservation race is resolved by the persistence layer with
//     a conditional update; the methods here only encode which transitions
//     are legal
type Carrier struct {
	id           kernel.UUID
	userID       kernel.UUID
	documentID   string
	phone        string
	availability kernel.Availability

	guard guard.ConstructorGuard
}

// NewCarrier creates an Available carrier linked to the given user account.
func NewCarrier(id, userID kernel.UUID, documentID, phone string) (*Carrier, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
	); err != nil {
		return nil, err
	}
	if documentID == "" {
		return nil, ErrDocumentIDIsRequired
	}
	if phone == "" {
		return nil, ErrPhoneIsRequired
	}

	return &Carrier{
		id:           id,
		userID:       userID,
		documentID:   documentID,
		phone:        phone,
		availability: kernel.Available,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreCarrier reconstructs a Carrier from persistence.
func RestoreCarrier(id, userID kernel.UUID, documentID, phone string, availability kernel.Availability) (*Carrier, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		availability.Validate(),
	); err != nil {
		return nil, err
	}

	return &Carrier{
		id:           id,
		userID:       userID,
		documentID:   documentID,
		phone:        phone,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Carrier was created through a constructor.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// ID returns the carrier identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// UserID returns the linked user account identifier.
func (c *Carrier) UserID() kernel.UUID {
	return c.userID
}

// DocumentID returns the carrier's national document id.
func (c *Carrier) DocumentID() string {
	return c.documentID
}

// Phone returns the carrier's contact phone.
func (c *Carrier) Phone() string {
	return c.phone
}

// Availability returns the current reservation state.
func (c *Carrier) Availability() kernel.Availability {
	return c.availability
}

// IsAvailable reports whether the carrier can be reserved.
func (c *Carrier) IsAvailable() bool {
	return c.availability == kernel.Available
}

// Reserve marks the carrier as held by a new assignment.
// Returns ResourceUnavailable if the carrier is not Available.
func (c *Carrier) Reserve() error {
	next, err := c.availability.Reserve()
	if err != nil {
		return errs.NewResourceUnavailableErrorWithCause("carrier", c.id, err)
	}
	c.availability = next
	return nil
}

// Depart marks the carrier as executing its assignment.
func (c *Carrier) Depart() error {
	next, err := c.availability.Depart()
	if err != nil {
		return err
	}
	c.availability = next
	return nil
}

// Release returns the carrier to the available pool after delivery, or as a
// compensating step when a reservation could not be completed.
func (c *Carrier) Release() error {
	next, err := c.availability.Release()
	if err != nil {
		return err
	}
	c.availability = next
	return nil
}
