package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should create sequential identifiers", func(t *testing.T) {
		id, err := kernel.NewOrderID(1)
		require.NoError(t, err)
		assert.Equal(t, "ORD1", id.String())

		id, err = kernel.NewOrderID(42)
		require.NoError(t, err)
		assert.Equal(t, "ORD42", id.String())
	})

	t.Run("should fail with non-positive sequence", func(t *testing.T) {
		_, err := kernel.NewOrderID(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewOrderID(-3)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ORD15")

		require.NoError(t, err)
		assert.Equal(t, "ORD15", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should reject malformed identifiers", func(t *testing.T) {
		for _, input := range []string{"", "ORD", "ORD0", "ORD007", "ORDx", "DRV1", "15"} {
			_, err := kernel.OrderIDFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", input)
		}
	})
}

func TestDriverID(t *testing.T) {
	t.Run("should create and parse roster identifiers", func(t *testing.T) {
		id, err := kernel.NewDriverID(5)
		require.NoError(t, err)
		assert.Equal(t, "DRV5", id.String())

		parsed, err := kernel.DriverIDFromString("DRV5")
		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("should reject order identifiers", func(t *testing.T) {
		_, err := kernel.DriverIDFromString("ORD5")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestIDValidate(t *testing.T) {
	t.Run("zero values are invalid", func(t *testing.T) {
		var orderID kernel.OrderID
		var driverID kernel.DriverID

		require.ErrorIs(t, orderID.Validate(), errs.ErrValueIsRequired)
		require.ErrorIs(t, driverID.Validate(), errs.ErrValueIsRequired)
	})

	t.Run("constructed values are valid", func(t *testing.T) {
		orderID, _ := kernel.NewOrderID(1)
		driverID, _ := kernel.NewDriverID(1)

		require.NoError(t, orderID.Validate())
		require.NoError(t, driverID.Validate())
	})
}

func TestIDIsEqual(t *testing.T) {
	a, _ := kernel.NewOrderID(7)
	b, _ := kernel.NewOrderID(7)
	c, _ := kernel.NewOrderID(8)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
