// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// AuthenticateUserQuery represents a login attempt.
type AuthenticateUserQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	authQuery := AuthenticateUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if email == "" {
		return AuthenticateUserQuery{}, ErrEmailIsRequired
	}
	if password == "" {
		return AuthenticateUserQuery{}, ErrPasswordIsRequired
	}

	authQuery.email = email
	authQuery.password = password
	return authQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the submitted login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the submitted plain text password.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse is the login read model: the signed bearer
// token plus the account facts the UI needs without decoding it.
type AuthenticateUserQueryResponse struct {
	Token     string
	ExpiresAt time.Time
	UserID    kernel.UUID
	FullName  string
	Role      account.Role
}
