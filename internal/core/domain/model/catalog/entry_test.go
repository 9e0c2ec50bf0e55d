package catalog_test

import (
	"testing"

	"fulfilment/internal/core/domain/model/catalog"
	"fulfilment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("creates_valid_entry", func(t *testing.T) {
		entry, err := catalog.NewEntry(42, "6408430000135", "Oat Milk 1L", decimal.NewFromInt(3), "BOT")

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, 42, entry.ID().Int())
		assert.Equal(t, "6408430000135", entry.ProductCode())
		assert.Equal(t, "Oat Milk 1L", entry.Name())
		assert.True(t, entry.OnHand().Equal(decimal.NewFromInt(3)))
		assert.Equal(t, "BOT", entry.Unit())
	})

	t.Run("allows_zero_on_hand", func(t *testing.T) {
		entry, err := catalog.NewEntry(42, "6408430000135", "", decimal.Zero, "ST")

		require.NoError(t, err)
		assert.True(t, entry.OnHand().IsZero())
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		_, err := catalog.NewEntry(0, "6408430000135", "", decimal.NewFromInt(1), "ST")

		require.Error(t, err)
	})

	t.Run("rejects_empty_product_code", func(t *testing.T) {
		_, err := catalog.NewEntry(42, "", "", decimal.NewFromInt(1), "ST")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_negative_on_hand", func(t *testing.T) {
		_, err := catalog.NewEntry(42, "6408430000135", "", decimal.NewFromInt(-1), "ST")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_unit", func(t *testing.T) {
		_, err := catalog.NewEntry(42, "6408430000135", "", decimal.NewFromInt(1), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestEntry_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var entry catalog.Entry

		require.ErrorIs(t, entry.Validate(), catalog.ErrEntryIsNotConstructed)
	})
}
