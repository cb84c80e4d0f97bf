package queries

import (
	"context"
	"errors"
	"time"

	"orgtrack/internal/core/ports"
	"orgtrack/internal/pkg/authtoken"
	"orgtrack/internal/pkg/errs"
)

// AuthenticateUserQueryHandler verifies login credentials and issues the
// bearer token. Unknown emails and wrong passwords both come back as
// ErrInvalidCredentials.
type AuthenticateUserQueryHandler struct {
	userRepo ports.UserRepository
	tokens   authtoken.Codec
}

// NewAuthenticateUserQueryHandler creates a handler for login attempts.
func NewAuthenticateUserQueryHandler(userRepo ports.UserRepository, tokens authtoken.Codec) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Handle verifies the credentials and returns the signed token.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	user, err := h.userRepo.GetByEmail(ctx, query.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
		}
		return AuthenticateUserQueryResponse{}, err
	}

	if !user.VerifyPassword(query.Password()) {
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}

	token, expiresAt, err := h.tokens.Issue(user.ID().String(), user.Role().String(), time.Now().UTC())
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID(),
		FullName:  user.FullName(),
		Role:      user.Role(),
	}, nil
}
