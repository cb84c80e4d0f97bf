package commands

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
	ErrDocumentIDIsRequired = errors.New("document id is required")
	ErrPhoneIsRequired      = errors.New("phone is required")
)

// CreateCarrierCommand represents a request to onboard a carrier: a user
// account with the carrier role plus the carrier profile holding the
// identity document, contact phone and availability.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID  kernel.UUID
	userID     kernel.UUID
	firstName  string
	lastName   string
	email      string
	password   string
	documentID string
	phone      string

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to onboard a new carrier.
func NewCreateCarrierCommand(
	carrierID, userID kernel.UUID,
	firstName, lastName, email, password, documentID, phone string,
) (CreateCarrierCommand, error) {
	carrierCommand := CreateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrierCommand.setCarrierID(carrierID),
		carrierCommand.setUserID(userID),
		carrierCommand.setFirstName(firstName),
		carrierCommand.setLastName(lastName),
		carrierCommand.setEmail(email),
		carrierCommand.setPassword(password),
		carrierCommand.setDocumentID(documentID),
		carrierCommand.setPhone(phone),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return carrierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the identifier for the carrier profile.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// UserID returns the identifier for the carrier's user account.
func (c CreateCarrierCommand) UserID() kernel.UUID {
	return c.userID
}

// FirstName returns the carrier's first name.
func (c CreateCarrierCommand) FirstName() string {
	return c.firstName
}

// LastName returns the carrier's last name.
func (c CreateCarrierCommand) LastName() string {
	return c.lastName
}

// Email returns the carrier's login email.
func (c CreateCarrierCommand) Email() string {
	return c.email
}

// Password returns the plain text password to be hashed.
func (c CreateCarrierCommand) Password() string {
	return c.password
}

// DocumentID returns the carrier's identity document number.
func (c CreateCarrierCommand) DocumentID() string {
	return c.documentID
}

// Phone returns the carrier's contact phone.
func (c CreateCarrierCommand) Phone() string {
	return c.phone
}

func (c *CreateCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *CreateCarrierCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateCarrierCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *CreateCarrierCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *CreateCarrierCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateCarrierCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *CreateCarrierCommand) setDocumentID(documentID string) error {
	if documentID == "" {
		return ErrDocumentIDIsRequired
	}

	c.documentID = documentID
	return nil
}

func (c *CreateCarrierCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
