// Package decision models the per-line outcome of the shortage decision
// collaborator. Decisions are transient values: they are applied to the order
// and discarded, never persisted on their own.
package decision

import (
	"errors"
	"fmt"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
)

// ErrDecisionIsNotConstructed is returned when a ShortageDecision was not
// created through one of the constructor functions.
var ErrDecisionIsNotConstructed = errors.New(
	"ShortageDecision must be created via NewKeepDecision, NewReplaceDecision, or NewDeleteDecision")

// Action is the decided outcome for one order line.
//
// Valid actions:
//
//	Keep    — the line stays exactly as ordered
//	Replace — the line is rewritten with a suggested replacement product
//	Delete  — the line is dropped from the final order
type Action int

const (
	// Unknown represents an invalid or undefined action.
	// This value (0) helps catch uninitialized Action values.
	Unknown Action = iota

	// Keep leaves the order line unchanged.
	Keep

	// Replace rewrites the order line with a replacement product.
	Replace

	// Delete removes the order line from the final order.
	Delete
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		Unknown: "UNKNOWN",
		Keep:    "KEEP",
		Replace: "REPLACE",
		Delete:  "DELETE",
	}
}

// ParseAction converts the wire representation of an action to an Action.
// Returns an error for anything other than KEEP, REPLACE, or DELETE.
func ParseAction(s string) (Action, error) {
	switch s {
	case "KEEP":
		return Keep, nil
	case "REPLACE":
		return Replace, nil
	case "DELETE":
		return Delete, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a known decision action", s))
	}
}

// String returns the wire representation of the action.
func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks that the action is one of Keep, Replace, or Delete.
func (a Action) Validate() error {
	switch a {
	case Keep, Replace, Delete:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid action", int(a)))
	}
}

// ShortageDecision is the decided outcome for one order line. It is a tagged
// value: a replacement quantity can only be attached to a Replace decision,
// so a Keep or Delete carrying a quantity is unrepresentable.
//
// Example:
//
//	qty, _ := kernel.NewQuantityFromFloat(4)
//	d, err := decision.NewReplaceDecision(lineID, &qty)
//	if err != nil {
//	    // handle validation error
//	}
//	if replacementQty, ok := d.ReplacementQty(); ok {
//	    // use the decided quantity
//	}
type ShortageDecision struct {
	lineID         kernel.OrderLineID
	action         Action
	replacementQty *kernel.Quantity

	isConstructed bool
}

// NewKeepDecision creates a decision that leaves the line unchanged.
func NewKeepDecision(lineID kernel.OrderLineID) (ShortageDecision, error) {
	return newDecision(lineID, Keep, nil)
}

// NewDeleteDecision creates a decision that removes the line from the final order.
func NewDeleteDecision(lineID kernel.OrderLineID) (ShortageDecision, error) {
	return newDecision(lineID, Delete, nil)
}

// NewReplaceDecision creates a decision that rewrites the line with a suggested
// replacement. replacementQty is optional: when nil, the original ordered
// quantity is kept on the rewritten line.
func NewReplaceDecision(lineID kernel.OrderLineID, replacementQty *kernel.Quantity) (ShortageDecision, error) {
	if replacementQty != nil {
		if err := replacementQty.Validate(); err != nil {
			return ShortageDecision{}, err
		}
	}
	return newDecision(lineID, Replace, replacementQty)
}

func newDecision(
	lineID kernel.OrderLineID,
	action Action,
	replacementQty *kernel.Quantity,
) (ShortageDecision, error) {
	if err := lineID.Validate(); err != nil {
		return ShortageDecision{}, err
	}

	return ShortageDecision{
		lineID:         lineID,
		action:         action,
		replacementQty: replacementQty,
		isConstructed:  true,
	}, nil
}

// Validate ensures the decision was created through a constructor.
func (d ShortageDecision) Validate() error {
	if !d.isConstructed {
		return ErrDecisionIsNotConstructed
	}
	return nil
}

// LineID returns the identifier of the decided order line.
func (d ShortageDecision) LineID() kernel.OrderLineID {
	return d.lineID
}

// Action returns the decided outcome for the line.
func (d ShortageDecision) Action() Action {
	return d.action
}

// ReplacementQty returns the decided replacement quantity, if one was given.
// Only Replace decisions can carry a quantity.
func (d ShortageDecision) ReplacementQty() (kernel.Quantity, bool) {
	if d.replacementQty == nil {
		return kernel.Quantity{}, false
	}
	return *d.replacementQty, true
}
