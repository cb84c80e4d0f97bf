package account

import (
	"errors"
	"strings"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
	"orgtrack/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for user operations.
var (
	// ErrFirstNameIsRequired is returned when the first name is missing.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("firstName")
	// ErrLastNameIsRequired is returned when the last name is missing.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("lastName")
	// ErrEmailIsInvalid is returned when the email is missing or malformed.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrPasswordIsTooShort is returned when the plain password is below the minimum length.
	ErrPasswordIsTooShort = errs.NewValueIsInvalidError("password is too short")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// minPasswordLength is the minimum plain password length accepted at registration.
const minPasswordLength = 8

// User is an authenticated account. The plain password never leaves the
// constructor: only its bcrypt hash is stored, and VerifyPassword performs a
// constant-time comparison against it.
type User struct {
	id           kernel.UUID
	firstName    string
	lastName     string
	email        string
	passwordHash string
	role         Role

	guard guard.ConstructorGuard
}

// NewUser creates a user from registration data, hashing the plain password
// with bcrypt at the default cost.
func NewUser(id kernel.UUID, firstName, lastName, email, plainPassword string, role Role) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if firstName == "" {
		return nil, ErrFirstNameIsRequired
	}
	if lastName == "" {
		return nil, ErrLastNameIsRequired
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !isEmail(email) {
		return nil, ErrEmailIsInvalid
	}
	if len(plainPassword) < minPasswordLength {
		return nil, ErrPasswordIsTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password is invalid", err)
	}

	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: string(hash),
		role:         role,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser reconstructs a User from persistence with the stored hash.
func RestoreUser(id kernel.UUID, firstName, lastName, email, passwordHash string, role Role) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns the display name used in listings.
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

// Email returns the normalized login email.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash for persistence.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// VerifyPassword reports whether the plain password matches the stored hash.
func (u *User) VerifyPassword(plainPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(plainPassword)) == nil
}

// isEmail applies the minimal structural check used at registration: one "@"
// with a dot somewhere after it. Deliverability is not our problem.
func isEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
