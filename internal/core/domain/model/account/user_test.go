package account_test

import (
	"testing"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create user and hash the password", func(t *testing.T) {
		u, err := account.NewUser(validID, "Ana", "Paredes", "ana@example.com", "s3cret-pass", account.RoleClient)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, validID, u.ID())
		assert.Equal(t, "Ana", u.FirstName())
		assert.Equal(t, "Paredes", u.LastName())
		assert.Equal(t, "Ana Paredes", u.FullName())
		assert.Equal(t, "ana@example.com", u.Email())
		assert.Equal(t, account.RoleClient, u.Role())
		assert.NotEqual(t, "s3cret-pass", u.PasswordHash())
		assert.NotEmpty(t, u.PasswordHash())
	})

	t.Run("should normalize the email", func(t *testing.T) {
		u, err := account.NewUser(validID, "Ana", "Paredes", "  Ana@Example.COM ", "s3cret-pass", account.RoleClient)

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", u.Email())
	})

	t.Run("should return error when names are missing", func(t *testing.T) {
		_, err := account.NewUser(validID, "", "Paredes", "ana@example.com", "s3cret-pass", account.RoleClient)
		assert.ErrorIs(t, err, account.ErrFirstNameIsRequired)

		_, err = account.NewUser(validID, "Ana", "", "ana@example.com", "s3cret-pass", account.RoleClient)
		assert.ErrorIs(t, err, account.ErrLastNameIsRequired)
	})

	t.Run("should return error for malformed emails", func(t *testing.T) {
		for _, email := range []string{"", "ana", "ana@", "@example.com", "ana@example", "ana@.com"} {
			_, err := account.NewUser(validID, "Ana", "Paredes", email, "s3cret-pass", account.RoleClient)

			assert.ErrorIs(t, err, account.ErrEmailIsInvalid, "email %q", email)
		}
	})

	t.Run("should return error for short passwords", func(t *testing.T) {
		_, err := account.NewUser(validID, "Ana", "Paredes", "ana@example.com", "short", account.RoleClient)

		assert.ErrorIs(t, err, account.ErrPasswordIsTooShort)
	})

	t.Run("should return error for invalid role", func(t *testing.T) {
		_, err := account.NewUser(validID, "Ana", "Paredes", "ana@example.com", "s3cret-pass", account.RoleUnknown)

		require.Error(t, err)
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	u, err := account.NewUser(kernel.NewUUID(), "Ana", "Paredes", "ana@example.com", "s3cret-pass", account.RoleClient)
	require.NoError(t, err)

	t.Run("should accept the original password", func(t *testing.T) {
		assert.True(t, u.VerifyPassword("s3cret-pass"))
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		assert.False(t, u.VerifyPassword("wrong-pass"))
	})

	t.Run("should verify against a restored hash", func(t *testing.T) {
		restored, err := account.RestoreUser(
			u.ID(), u.FirstName(), u.LastName(), u.Email(), u.PasswordHash(), u.Role())
		require.NoError(t, err)

		assert.True(t, restored.VerifyPassword("s3cret-pass"))
	})
}

func TestRole(t *testing.T) {
	t.Run("should validate defined roles", func(t *testing.T) {
		for _, role := range []account.Role{account.RoleAdmin, account.RoleClient, account.RoleCarrier} {
			require.NoError(t, role.Validate())
		}
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		require.Error(t, account.RoleUnknown.Validate())
		require.Error(t, account.Role(9).Validate())
	})

	t.Run("should round-trip through wire names", func(t *testing.T) {
		for _, role := range []account.Role{account.RoleAdmin, account.RoleClient, account.RoleCarrier} {
			parsed, err := account.RoleFromString(role.String())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("should reject unknown wire name", func(t *testing.T) {
		_, err := account.RoleFromString("superuser")

		require.Error(t, err)
	})
}
