package driver_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	validID, _ := kernel.NewDriverID(1)
	availableAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("should create valid driver", func(t *testing.T) {
		d, err := driver.NewDriver(validID, "John", availableAt)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(validID))
		assert.Equal(t, "John", d.Name())
		assert.Equal(t, availableAt, d.NextAvailableAt())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.DriverID

		d, err := driver.NewDriver(invalidID, "John", availableAt)

		require.Error(t, err)
		assert.Nil(t, d)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		d, err := driver.NewDriver(validID, "", availableAt)

		require.ErrorIs(t, err, driver.ErrNameIsRequired)
		assert.Nil(t, d)
	})

	t.Run("should fail with zero availability time", func(t *testing.T) {
		d, err := driver.NewDriver(validID, "John", time.Time{})

		require.ErrorIs(t, err, driver.ErrAvailabilityTimeIsRequired)
		assert.Nil(t, d)
	})

	t.Run("zero value driver fails validation", func(t *testing.T) {
		var d driver.Driver
		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}

func TestDriver_SetNextAvailableAt(t *testing.T) {
	validID, _ := kernel.NewDriverID(1)
	availableAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("should update availability time", func(t *testing.T) {
		d, _ := driver.NewDriver(validID, "John", availableAt)
		busyUntil := availableAt.Add(30 * time.Minute)

		require.NoError(t, d.SetNextAvailableAt(busyUntil))

		assert.Equal(t, busyUntil, d.NextAvailableAt())
	})

	t.Run("should reject zero time", func(t *testing.T) {
		d, _ := driver.NewDriver(validID, "John", availableAt)

		require.ErrorIs(t, d.SetNextAvailableAt(time.Time{}), driver.ErrAvailabilityTimeIsRequired)
		assert.Equal(t, availableAt, d.NextAvailableAt())
	})
}

func TestDriver_IsAvailableAt(t *testing.T) {
	validID, _ := kernel.NewDriverID(1)
	availableAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	d, _ := driver.NewDriver(validID, "Sarah", availableAt)

	assert.True(t, d.IsAvailableAt(availableAt))
	assert.True(t, d.IsAvailableAt(availableAt.Add(time.Second)))
	assert.False(t, d.IsAvailableAt(availableAt.Add(-time.Second)))
}

func TestDriver_IsEqual(t *testing.T) {
	id1, _ := kernel.NewDriverID(1)
	id2, _ := kernel.NewDriverID(2)
	availableAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	a, _ := driver.NewDriver(id1, "John", availableAt)
	b, _ := driver.NewDriver(id1, "Different Name", availableAt.Add(time.Hour))
	c, _ := driver.NewDriver(id2, "John", availableAt)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
