package decision_test

import (
	"testing"

	"fulfilment/internal/core/domain/model/decision"
	"fulfilment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Run("parses_wire_actions", func(t *testing.T) {
		cases := map[string]decision.Action{
			"KEEP":    decision.Keep,
			"REPLACE": decision.Replace,
			"DELETE":  decision.Delete,
		}
		for wire, want := range cases {
			got, err := decision.ParseAction(wire)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, wire, got.String())
		}
	})

	t.Run("rejects_unknown_action", func(t *testing.T) {
		_, err := decision.ParseAction("SWAP")

		require.Error(t, err)
	})

	t.Run("unknown_action_fails_validation", func(t *testing.T) {
		require.Error(t, decision.Unknown.Validate())
		assert.Equal(t, "UNKNOWN", decision.Unknown.String())
	})
}

func TestNewKeepDecision(t *testing.T) {
	t.Run("creates_keep_without_quantity", func(t *testing.T) {
		d, err := decision.NewKeepDecision(1)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, decision.Keep, d.Action())
		assert.Equal(t, kernel.OrderLineID(1), d.LineID())

		_, hasQty := d.ReplacementQty()
		assert.False(t, hasQty)
	})

	t.Run("rejects_invalid_line_id", func(t *testing.T) {
		_, err := decision.NewKeepDecision(0)

		require.Error(t, err)
	})
}

func TestNewDeleteDecision(t *testing.T) {
	t.Run("creates_delete_without_quantity", func(t *testing.T) {
		d, err := decision.NewDeleteDecision(2)

		require.NoError(t, err)
		assert.Equal(t, decision.Delete, d.Action())

		_, hasQty := d.ReplacementQty()
		assert.False(t, hasQty)
	})
}

func TestNewReplaceDecision(t *testing.T) {
	t.Run("creates_replace_with_quantity", func(t *testing.T) {
		qty, err := kernel.NewQuantityFromFloat(4)
		require.NoError(t, err)

		d, err := decision.NewReplaceDecision(1, &qty)

		require.NoError(t, err)
		assert.Equal(t, decision.Replace, d.Action())

		got, hasQty := d.ReplacementQty()
		require.True(t, hasQty)
		assert.True(t, got.IsEqual(qty))
	})

	t.Run("creates_replace_without_quantity", func(t *testing.T) {
		d, err := decision.NewReplaceDecision(1, nil)

		require.NoError(t, err)

		_, hasQty := d.ReplacementQty()
		assert.False(t, hasQty)
	})

	t.Run("rejects_unconstructed_quantity", func(t *testing.T) {
		_, err := decision.NewReplaceDecision(1, &kernel.Quantity{})

		require.Error(t, err)
	})
}

func TestShortageDecision_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var d decision.ShortageDecision

		require.ErrorIs(t, d.Validate(), decision.ErrDecisionIsNotConstructed)
	})
}
