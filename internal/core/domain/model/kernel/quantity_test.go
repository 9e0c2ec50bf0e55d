package kernel_test

import (
	"testing"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	t.Run("creates_quantity_from_positive_decimal", func(t *testing.T) {
		qty, err := kernel.NewQuantity(decimal.RequireFromString("2.5"))

		require.NoError(t, err)
		assert.Equal(t, "2.5", qty.String())
		assert.InDelta(t, 2.5, qty.Float64(), 0.0001)
		require.NoError(t, qty.Validate())
	})

	t.Run("rejects_zero", func(t *testing.T) {
		_, err := kernel.NewQuantity(decimal.Zero)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_value", func(t *testing.T) {
		_, err := kernel.NewQuantity(decimal.NewFromInt(-5))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewQuantityFromFloat(t *testing.T) {
	t.Run("creates_quantity_from_float_wire_value", func(t *testing.T) {
		qty, err := kernel.NewQuantityFromFloat(5)

		require.NoError(t, err)
		assert.True(t, qty.Decimal().Equal(decimal.NewFromInt(5)))
	})

	t.Run("rejects_non_positive_float", func(t *testing.T) {
		_, err := kernel.NewQuantityFromFloat(0)

		require.Error(t, err)
	})
}

func TestQuantity_IsEqual(t *testing.T) {
	t.Run("compares_by_numeric_value", func(t *testing.T) {
		a, err := kernel.NewQuantity(decimal.RequireFromString("4.0"))
		require.NoError(t, err)
		b, err := kernel.NewQuantityFromFloat(4)
		require.NoError(t, err)
		c, err := kernel.NewQuantityFromFloat(3)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestQuantity_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var qty kernel.Quantity

		err := qty.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrQuantityIsNotConstructed, err)
	})
}
