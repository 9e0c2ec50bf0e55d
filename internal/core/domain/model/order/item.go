package order

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item represents a single line of a customer order: the product the customer
// asked for, how much of it, and in which unit of measure.
//
// Item follows these invariants:
//   - Must have a valid line identifier (unique within its order)
//   - Must have a non-empty product code and unit of measure
//   - Quantity must be a properly constructed positive amount
//   - The display name may be empty; not every catalog record carries one
//
// An item is mutable only through its owning Order aggregate: substitution
// rewrites it in place, shortage deletion removes it from the order.
type Item struct {
	// lineID identifies the line within its order
	lineID kernel.OrderLineID

	// productCode is the customer-facing product identifier (GTIN)
	productCode string

	// name is the display name of the product, possibly empty
	name string

	// qty is the ordered amount
	qty kernel.Quantity

	// unit is the unit-of-measure code (ST, KG, BOT, ...)
	unit string

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a new order line with validation. This is the only way to
// create a valid Item.
//
// Parameters:
//   - lineID: identifier of the line within the order (must be positive)
//   - productCode: product identifier (must be non-empty)
//   - name: display name of the product (may be empty)
//   - qty: ordered amount (must be constructed and positive)
//   - unit: unit-of-measure code (must be non-empty)
func NewItem(
	lineID kernel.OrderLineID,
	productCode string,
	name string,
	qty kernel.Quantity,
	unit string,
) (*Item, error) {
	item := &Item{
		name:          name,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setLineID(lineID),
		item.setProductCode(productCode),
		item.setQty(qty),
		item.setUnit(unit),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// LineID returns the identifier of the line within its order.
func (i *Item) LineID() kernel.OrderLineID {
	return i.lineID
}

// ProductCode returns the product identifier of the line.
func (i *Item) ProductCode() string {
	return i.productCode
}

// Name returns the display name of the product. May be empty.
func (i *Item) Name() string {
	return i.name
}

// Qty returns the ordered amount.
func (i *Item) Qty() kernel.Quantity {
	return i.qty
}

// Unit returns the unit-of-measure code.
func (i *Item) Unit() string {
	return i.unit
}

// IsEqual reports whether two items carry exactly the same line data.
// Used by tests to assert that an item survived the pipeline unchanged.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil &&
		i.lineID == other.lineID &&
		i.productCode == other.productCode &&
		i.name == other.name &&
		i.qty.IsEqual(other.qty) &&
		i.unit == other.unit
}

// Clone returns an independent copy of the item.
func (i *Item) Clone() *Item {
	copied := *i
	return &copied
}

// rewrite substitutes the line's product data in place, keeping the line
// identifier. Called by the owning Order aggregate when a replacement
// decision is applied.
func (i *Item) rewrite(productCode string, name string, unit string, qty kernel.Quantity) error {
	if err := errors.Join(
		validateProductCode(productCode),
		validateUnit(unit),
		qty.Validate(),
	); err != nil {
		return err
	}

	i.productCode = productCode
	i.name = name
	i.unit = unit
	i.qty = qty
	return nil
}

func (i *Item) setLineID(lineID kernel.OrderLineID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	i.lineID = lineID
	return nil
}

func (i *Item) setProductCode(productCode string) error {
	if err := validateProductCode(productCode); err != nil {
		return err
	}
	i.productCode = productCode
	return nil
}

func (i *Item) setQty(qty kernel.Quantity) error {
	if err := qty.Validate(); err != nil {
		return err
	}
	i.qty = qty
	return nil
}

func (i *Item) setUnit(unit string) error {
	if err := validateUnit(unit); err != nil {
		return err
	}
	i.unit = unit
	return nil
}

func validateProductCode(productCode string) error {
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}
	return nil
}

func validateUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	return nil
}
