package carrier_test

import (
	"testing"

	"orgtrack/internal/core/domain/model/carrier"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarrier(t *testing.T) {
	validID := kernel.NewUUID()
	validUserID := kernel.NewUUID()

	t.Run("should create available carrier with valid parameters", func(t *testing.T) {
		c, err := carrier.NewCarrier(validID, validUserID, "1723456789", "+593991234567")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, validID, c.ID())
		assert.Equal(t, validUserID, c.UserID())
		assert.Equal(t, "1723456789", c.DocumentID())
		assert.Equal(t, "+593991234567", c.Phone())
		assert.Equal(t, kernel.Available, c.Availability())
		assert.True(t, c.IsAvailable())
	})

	t.Run("should return error when document id is empty", func(t *testing.T) {
		_, err := carrier.NewCarrier(validID, validUserID, "", "+593991234567")

		assert.ErrorIs(t, err, carrier.ErrDocumentIDIsRequired)
	})

	t.Run("should return error when phone is empty", func(t *testing.T) {
		_, err := carrier.NewCarrier(validID, validUserID, "1723456789", "")

		assert.ErrorIs(t, err, carrier.ErrPhoneIsRequired)
	})

	t.Run("should return error when ids are not constructed", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.UUID{}, validUserID, "1723456789", "+593991234567")

		require.Error(t, err)
	})
}

func TestRestoreCarrier(t *testing.T) {
	t.Run("should restore carrier with stored availability", func(t *testing.T) {
		c, err := carrier.RestoreCarrier(
			kernel.NewUUID(), kernel.NewUUID(), "1723456789", "+593991234567", kernel.EnRoute)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, kernel.EnRoute, c.Availability())
		assert.False(t, c.IsAvailable())
	})

	t.Run("should return error for invalid availability", func(t *testing.T) {
		_, err := carrier.RestoreCarrier(
			kernel.NewUUID(), kernel.NewUUID(), "1723456789", "+593991234567", kernel.AvailabilityUnknown)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCarrier_Validate(t *testing.T) {
	t.Run("should return error for nil carrier", func(t *testing.T) {
		var c *carrier.Carrier

		assert.ErrorIs(t, c.Validate(), carrier.ErrCarrierIsNotConstructed)
	})

	t.Run("should return error for zero-value carrier", func(t *testing.T) {
		c := &carrier.Carrier{}

		assert.ErrorIs(t, c.Validate(), carrier.ErrCarrierIsNotConstructed)
	})
}

func TestCarrier_Lifecycle(t *testing.T) {
	newCarrier := func(t *testing.T) *carrier.Carrier {
		t.Helper()
		c, err := carrier.NewCarrier(kernel.NewUUID(), kernel.NewUUID(), "1723456789", "+593991234567")
		require.NoError(t, err)
		return c
	}

	t.Run("should reserve available carrier", func(t *testing.T) {
		c := newCarrier(t)

		require.NoError(t, c.Reserve())

		assert.Equal(t, kernel.Unavailable, c.Availability())
		assert.False(t, c.IsAvailable())
	})

	t.Run("should not reserve carrier twice", func(t *testing.T) {
		c := newCarrier(t)
		require.NoError(t, c.Reserve())

		err := c.Reserve()

		require.ErrorIs(t, err, errs.ErrResourceUnavailable)
		assert.Equal(t, kernel.Unavailable, c.Availability())
	})

	t.Run("should depart after reservation", func(t *testing.T) {
		c := newCarrier(t)
		require.NoError(t, c.Reserve())

		require.NoError(t, c.Depart())

		assert.Equal(t, kernel.EnRoute, c.Availability())
	})

	t.Run("should not depart without reservation", func(t *testing.T) {
		c := newCarrier(t)

		require.Error(t, c.Depart())
		assert.Equal(t, kernel.Available, c.Availability())
	})

	t.Run("should release carrier after delivery", func(t *testing.T) {
		c := newCarrier(t)
		require.NoError(t, c.Reserve())
		require.NoError(t, c.Depart())

		require.NoError(t, c.Release())

		assert.True(t, c.IsAvailable())
	})

	t.Run("should release reserved carrier as compensation", func(t *testing.T) {
		c := newCarrier(t)
		require.NoError(t, c.Reserve())

		require.NoError(t, c.Release())

		assert.True(t, c.IsAvailable())
	})

	t.Run("should not release available carrier", func(t *testing.T) {
		c := newCarrier(t)

		require.Error(t, c.Release())
	})
}
