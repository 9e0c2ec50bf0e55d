package services

import (
	"fulfilment/internal/core/domain/model/catalog"
	"fulfilment/internal/core/domain/model/decision"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/order"
)

// OrderFinalizer is a domain service that applies shortage decisions to an
// order, producing the final item list that gets persisted.
//
// Key responsibilities:
//   - Applying keep/replace/delete decisions in original item order
//   - Rewriting replaced lines from resolved warehouse catalog entries
//   - Failing open: any line whose replacement cannot be applied is kept as
//     originally ordered, never dropped and never an error
//
// Business rules:
//   - A line without a decision, or with a Keep decision, stays untouched
//   - A Delete decision removes the line; surviving lines keep their ordering
//   - A Replace decision takes the first candidate suggested for the line; the
//     rewritten line carries the catalog entry's product code, name, and unit,
//     and the decided replacement quantity when one was given, otherwise the
//     originally ordered quantity
//   - A Replace decision with no suggested candidate, or whose candidate has no
//     resolvable catalog entry, falls back to keeping the original line
//
// Example usage:
//
//	finalizer := services.NewOrderFinalizer()
//	unresolved, err := finalizer.Finalize(ord, decisions, candidates, entries)
//	if err != nil {
//	    // the order or a decision was malformed; the order is unchanged
//	}
//	if len(unresolved) > 0 {
//	    // these lines were decided for replacement but kept as ordered
//	}
type OrderFinalizer struct{}

// NewOrderFinalizer creates a new OrderFinalizer instance.
func NewOrderFinalizer() OrderFinalizer {
	return OrderFinalizer{}
}

// Finalize applies the decided outcome to every line of the order, in the
// original item order.
//
// Parameters:
//   - ord: the order to finalize (must be valid; mutated in place)
//   - decisions: decided outcome per line; lines without an entry are kept
//   - candidates: ranked replacement candidates per line, as previously
//     suggested; only the first candidate of a line is ever applied
//   - entries: resolved warehouse catalog records for candidate identifiers
//
// Returns the identifiers of lines that were decided for replacement but fell
// back to the original item (no candidate suggested, or the candidate had no
// resolvable catalog entry), and an error only if the order or a decision is
// structurally invalid.
func (f OrderFinalizer) Finalize(
	ord *order.Order,
	decisions map[kernel.OrderLineID]decision.ShortageDecision,
	candidates map[kernel.OrderLineID][]kernel.CatalogEntryID,
	entries map[kernel.CatalogEntryID]catalog.Entry,
) ([]kernel.OrderLineID, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	var unresolved []kernel.OrderLineID

	for _, item := range ord.Items() {
		lineID := item.LineID()

		d, decided := decisions[lineID]
		if !decided {
			continue
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}

		switch d.Action() {
		case decision.Keep:
			// Item stays exactly as ordered.

		case decision.Delete:
			if err := ord.RemoveItem(lineID); err != nil {
				return nil, err
			}

		case decision.Replace:
			applied, err := f.applyReplacement(ord, item, d, candidates, entries)
			if err != nil {
				return nil, err
			}
			if !applied {
				unresolved = append(unresolved, lineID)
			}

		case decision.Unknown:
			// Treat like a missing decision: keep the line.
		}
	}

	return unresolved, nil
}

// applyReplacement rewrites one line from its first suggested candidate.
// Returns false when the replacement could not be applied and the original
// line was kept instead.
func (f OrderFinalizer) applyReplacement(
	ord *order.Order,
	item *order.Item,
	d decision.ShortageDecision,
	candidates map[kernel.OrderLineID][]kernel.CatalogEntryID,
	entries map[kernel.CatalogEntryID]catalog.Entry,
) (bool, error) {
	suggested := candidates[item.LineID()]
	if len(suggested) == 0 {
		return false, nil
	}

	entry, ok := entries[suggested[0]]
	if !ok {
		return false, nil
	}
	if err := entry.Validate(); err != nil {
		return false, err
	}

	qty := item.Qty()
	if replacementQty, hasQty := d.ReplacementQty(); hasQty {
		qty = replacementQty
	}

	if err := ord.ReplaceItem(item.LineID(), entry.ProductCode(), entry.Name(), entry.Unit(), qty); err != nil {
		return false, err
	}

	return true, nil
}
