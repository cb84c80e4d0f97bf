package kernel_test

import (
	"fmt"
	"testing"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailability_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(kernel.AvailabilityUnknown))
		assert.Equal(t, 1, int(kernel.Available))
		assert.Equal(t, 2, int(kernel.Unavailable))
		assert.Equal(t, 3, int(kernel.EnRoute))
	})
}

func TestAvailability_Validate(t *testing.T) {
	t.Run("should validate valid states", func(t *testing.T) {
		validStates := []kernel.Availability{
			kernel.Available,
			kernel.Unavailable,
			kernel.EnRoute,
		}

		for _, state := range validStates {
			t.Run(fmt.Sprintf("should validate %s", state.String()), func(t *testing.T) {
				require.NoError(t, state.Validate())
			})
		}
	})

	t.Run("should reject invalid states", func(t *testing.T) {
		invalidStates := []kernel.Availability{
			kernel.AvailabilityUnknown,
			kernel.Availability(-1),
			kernel.Availability(4),
		}

		for _, state := range invalidStates {
			t.Run(fmt.Sprintf("should reject value %d", int(state)), func(t *testing.T) {
				err := state.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestAvailability_String(t *testing.T) {
	t.Run("should return correct string for valid states", func(t *testing.T) {
		testCases := []struct {
			state    kernel.Availability
			expected string
		}{
			{kernel.Available, "Available"},
			{kernel.Unavailable, "Unavailable"},
			{kernel.EnRoute, "EnRoute"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.state.String())
		}
	})

	t.Run("should return Unknown for invalid states", func(t *testing.T) {
		assert.Equal(t, "Unknown", kernel.AvailabilityUnknown.String())
		assert.Equal(t, "Unknown", kernel.Availability(99).String())
	})
}

func TestAvailability_Reserve(t *testing.T) {
	t.Run("should allow reservation from Available", func(t *testing.T) {
		next, err := kernel.Available.Reserve()

		require.NoError(t, err)
		assert.Equal(t, kernel.Unavailable, next)
	})

	t.Run("should reject reservation from any other state", func(t *testing.T) {
		for _, state := range []kernel.Availability{
			kernel.AvailabilityUnknown,
			kernel.Unavailable,
			kernel.EnRoute,
		} {
			t.Run(fmt.Sprintf("should reject from %s", state.String()), func(t *testing.T) {
				next, err := state.Reserve()

				require.Error(t, err)
				assert.Equal(t, kernel.Availability(0), next)
				require.ErrorIs(t, err, errs.ErrResourceUnavailable)
			})
		}
	})
}

func TestAvailability_Depart(t *testing.T) {
	t.Run("should allow departure from Unavailable", func(t *testing.T) {
		next, err := kernel.Unavailable.Depart()

		require.NoError(t, err)
		assert.Equal(t, kernel.EnRoute, next)
	})

	t.Run("should reject departure from any other state", func(t *testing.T) {
		for _, state := range []kernel.Availability{
			kernel.AvailabilityUnknown,
			kernel.Available,
			kernel.EnRoute,
		} {
			next, err := state.Depart()

			require.Error(t, err)
			assert.Equal(t, kernel.Availability(0), next)
		}
	})
}

func TestAvailability_Release(t *testing.T) {
	t.Run("should allow release from EnRoute", func(t *testing.T) {
		next, err := kernel.EnRoute.Release()

		require.NoError(t, err)
		assert.Equal(t, kernel.Available, next)
	})

	t.Run("should allow compensating release from Unavailable", func(t *testing.T) {
		next, err := kernel.Unavailable.Release()

		require.NoError(t, err)
		assert.Equal(t, kernel.Available, next)
	})

	t.Run("should reject release from Available", func(t *testing.T) {
		next, err := kernel.Available.Release()

		require.Error(t, err)
		assert.Equal(t, kernel.Availability(0), next)
	})
}
