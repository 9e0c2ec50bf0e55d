package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"fulfilment/internal/pkg/errs"
)

// OrderID is the globally unique identifier of a customer order.
// It is assigned by the intake caller and must be non-blank.
// The zero value is invalid and fails validation.
//
// Example:
//
//	id, err := kernel.NewOrderID("ord-2031")
//	if err != nil {
//	    // handle validation error
//	}
type OrderID string

// NewOrderID creates an OrderID from its string representation.
// Returns an error if the string is empty or blank.
func NewOrderID(s string) (OrderID, error) {
	if strings.TrimSpace(s) == "" {
		return "", errs.NewValueIsRequiredError("orderId")
	}
	return OrderID(s), nil
}

// String returns the string representation of the order identifier.
func (id OrderID) String() string {
	return string(id)
}

// Validate checks that the identifier is not blank.
func (id OrderID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	return nil
}

// OrderLineID identifies a line within a single order.
// Line identifiers are unique within an order, not globally.
type OrderLineID int

// NewOrderLineID creates an OrderLineID from its numeric wire value.
// Returns an error if the value is not positive.
func NewOrderLineID(v int) (OrderLineID, error) {
	id := OrderLineID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Int returns the numeric wire value of the line identifier.
func (id OrderLineID) Int() int {
	return int(id)
}

// String returns the decimal string representation of the line identifier.
func (id OrderLineID) String() string {
	return strconv.Itoa(int(id))
}

// Validate checks that the identifier is positive.
func (id OrderLineID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("lineId",
			fmt.Errorf("%d is not greater than 0", int(id)))
	}
	return nil
}

// CatalogEntryID identifies a record in the warehouse catalog.
// It shares the numeric identifier space of OrderLineID on the wire, because
// the substitution service suggests warehouse line identifiers, but the two
// types are kept distinct in the domain model.
type CatalogEntryID int

// NewCatalogEntryID creates a CatalogEntryID from its numeric wire value.
// Returns an error if the value is not positive.
func NewCatalogEntryID(v int) (CatalogEntryID, error) {
	id := CatalogEntryID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Int returns the numeric wire value of the catalog entry identifier.
func (id CatalogEntryID) Int() int {
	return int(id)
}

// String returns the decimal string representation of the catalog entry identifier.
func (id CatalogEntryID) String() string {
	return strconv.Itoa(int(id))
}

// Validate checks that the identifier is positive.
func (id CatalogEntryID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("catalogEntryId",
			fmt.Errorf("%d is not greater than 0", int(id)))
	}
	return nil
}
