package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
)

const identityKey = "identity"

// identity is the authenticated caller, decoded from the bearer token.
type identity struct {
	UserID kernel.UUID
	Role   account.Role
}

// authenticate verifies the bearer token and stores the caller identity on
// the request context.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "missing bearer token"})
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid or expired token"})
		}

		userID, err := kernel.UUIDFromString(claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid or expired token"})
		}

		role, err := account.RoleFromString(claims.Role)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid or expired token"})
		}

		c.Set(identityKey, identity{UserID: userID, Role: role})
		return next(c)
	}
}

// requireRoles rejects callers whose role is not in the allowed set.
func (s *Server) requireRoles(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := c.Get(identityKey).(identity)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorResponse{Message: "missing bearer token"})
			}

			for _, role := range roles {
				if caller.Role == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, errorResponse{Message: "insufficient role"})
		}
	}
}

func callerIdentity(c echo.Context) identity {
	caller, _ := c.Get(identityKey).(identity)
	return caller
}

// carrierProfileID resolves the carrier profile behind the authenticated
// account. Assignment ownership is checked against the profile id, not the
// account id.
func (s *Server) carrierProfileID(c echo.Context) (kernel.UUID, error) {
	caller := callerIdentity(c)
	profile, err := s.carrierRepo.GetByUserID(c.Request().Context(), caller.UserID)
	if err != nil {
		return kernel.UUID{}, err
	}
	return profile.ID(), nil
}

// requesterScope returns the identity the query layer scopes reads by: the
// account id for clients and admins, the carrier profile id for carriers.
func (s *Server) requesterScope(c echo.Context) (kernel.UUID, account.Role, error) {
	caller := callerIdentity(c)
	if caller.Role != account.RoleCarrier {
		return caller.UserID, caller.Role, nil
	}

	profileID, err := s.carrierProfileID(c)
	if err != nil {
		return kernel.UUID{}, account.RoleUnknown, err
	}
	return profileID, caller.Role, nil
}
