package commands

import (
	"errors"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
	ErrEmailIsRequired     = errors.New("email is required")
	ErrPasswordIsRequired  = errors.New("password is required")
)

// RegisterUserCommand represents a request to create a new user account.
// Deep credential validation (email format, password strength, hashing)
// happens in the account aggregate; the command checks presence only.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	firstName string
	lastName  string
	email     string
	password  string
	role      account.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user account
// with the given role.
func NewRegisterUserCommand(
	userID kernel.UUID,
	firstName, lastName, email, password string,
	role account.Role,
) (RegisterUserCommand, error) {
	userCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setFirstName(firstName),
		userCommand.setLastName(lastName),
		userCommand.setEmail(email),
		userCommand.setPassword(password),
		userCommand.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// FirstName returns the user's first name.
func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the user's last name.
func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

// Email returns the login email as submitted.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plain text password to be hashed.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the role granted to the new account.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *RegisterUserCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
