package kernel_test

import (
	"testing"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedule(t *testing.T) {
	pickup := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	deliver := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)

	t.Run("should create valid schedule", func(t *testing.T) {
		schedule, err := kernel.NewSchedule(pickup, deliver, "ring the bell", "leave at the gate")

		require.NoError(t, err)
		assert.Equal(t, pickup, schedule.PickupAt())
		assert.Equal(t, deliver, schedule.DeliverBy())
		assert.Equal(t, "ring the bell", schedule.PickupInstructions())
		assert.Equal(t, "leave at the gate", schedule.DeliveryInstructions())
		require.NoError(t, schedule.Validate())
	})

	t.Run("should allow empty instructions", func(t *testing.T) {
		schedule, err := kernel.NewSchedule(pickup, deliver, "", "")

		require.NoError(t, err)
		assert.Empty(t, schedule.PickupInstructions())
		assert.Empty(t, schedule.DeliveryInstructions())
	})

	t.Run("should reject zero pickup time", func(t *testing.T) {
		_, err := kernel.NewSchedule(time.Time{}, deliver, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero delivery deadline", func(t *testing.T) {
		_, err := kernel.NewSchedule(pickup, time.Time{}, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject pickup after delivery deadline", func(t *testing.T) {
		_, err := kernel.NewSchedule(deliver, pickup, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject pickup equal to delivery deadline", func(t *testing.T) {
		_, err := kernel.NewSchedule(pickup, pickup, "", "")

		require.Error(t, err)
	})
}

func TestSchedule_Validate(t *testing.T) {
	t.Run("zero value schedule is invalid", func(t *testing.T) {
		var schedule kernel.Schedule

		require.Error(t, schedule.Validate())
	})
}
