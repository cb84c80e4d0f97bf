package ports

import (
	"context"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
// Emails are unique; Add returns AlreadyExists on a duplicate.
type UserRepository interface {
	// Add persists a new user.
	Add(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by its normalized login email.
	GetByEmail(ctx context.Context, email string) (*account.User, error)

	// GetAllByRole retrieves all users with the given role.
	GetAllByRole(ctx context.Context, role account.Role) ([]*account.User, error)
}
