// Package catalog provides the warehouse catalog value object consumed by the
// fulfilment pipeline. Catalog entries describe replacement-candidate products
// available in the warehouse; the pipeline only ever reads them.
package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// the NewEntry factory method.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is an immutable warehouse catalog record. It carries the product data
// that rewrites an order line when a replacement decision is applied, plus the
// on-hand quantity the warehouse reported for the product.
type Entry struct {
	// id is the warehouse catalog identifier of the record
	id kernel.CatalogEntryID

	// productCode is the product identifier (GTIN)
	productCode string

	// name is the display name of the product, possibly empty
	name string

	// onHand is the quantity currently available in the warehouse
	onHand decimal.Decimal

	// unit is the unit-of-measure code
	unit string

	// isConstructed ensures the entry was created via NewEntry
	isConstructed bool
}

// NewEntry creates a catalog entry with validation.
//
// Parameters:
//   - id: warehouse catalog identifier (must be positive)
//   - productCode: product identifier (must be non-empty)
//   - name: display name (may be empty)
//   - onHand: available quantity (must not be negative; zero means out of stock)
//   - unit: unit-of-measure code (must be non-empty)
func NewEntry(
	id kernel.CatalogEntryID,
	productCode string,
	name string,
	onHand decimal.Decimal,
	unit string,
) (Entry, error) {
	if err := id.Validate(); err != nil {
		return Entry{}, err
	}
	if productCode == "" {
		return Entry{}, errs.NewValueIsRequiredError("productCode")
	}
	if onHand.IsNegative() {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("onHand",
			fmt.Errorf("%s is negative", onHand.String()))
	}
	if unit == "" {
		return Entry{}, errs.NewValueIsRequiredError("unit")
	}

	return Entry{
		id:            id,
		productCode:   productCode,
		name:          name,
		onHand:        onHand,
		unit:          unit,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was properly constructed through NewEntry.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the warehouse catalog identifier of the record.
func (e Entry) ID() kernel.CatalogEntryID {
	return e.id
}

// ProductCode returns the product identifier of the record.
func (e Entry) ProductCode() string {
	return e.productCode
}

// Name returns the display name of the product. May be empty.
func (e Entry) Name() string {
	return e.name
}

// OnHand returns the quantity available in the warehouse.
func (e Entry) OnHand() decimal.Decimal {
	return e.onHand
}

// Unit returns the unit-of-measure code of the record.
func (e Entry) Unit() string {
	return e.unit
}
