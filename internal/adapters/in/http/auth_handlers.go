package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/application/usecases/queries"
	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
)

// Register handles POST /api/v1/auth/register. Self-registration always
// creates a client account; carriers are onboarded by an admin.
func (s *Server) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID, req.FirstName, req.LastName, req.Email, req.Password, account.RoleClient,
	)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.registerUserHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: userID.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return respondBadRequest(c, err)
	}

	result, err := s.authenticateUserHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		UserID:    result.UserID.String(),
		FullName:  result.FullName,
		Role:      result.Role.String(),
	})
}
