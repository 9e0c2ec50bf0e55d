package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when a Quantity was not created through
// one of the constructor functions. The zero value of Quantity is invalid.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via NewQuantity or NewQuantityFromFloat")

// Quantity is an immutable positive decimal amount of an order line.
// Ordered quantities are decimals on the wire (a line can ask for 2.5 KG),
// so the value is backed by shopspring/decimal rather than a float.
//
// Example:
//
//	qty, err := kernel.NewQuantityFromFloat(2.5)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(qty) // Output: 2.5
type Quantity struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity from a decimal value.
// The value must be strictly positive.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if !value.IsPositive() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", value.String()))
	}

	return Quantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewQuantityFromFloat creates a Quantity from a float wire value.
// The value must be strictly positive.
func NewQuantityFromFloat(value float64) (Quantity, error) {
	return NewQuantity(decimal.NewFromFloat(value))
}

// Decimal returns the underlying decimal value.
func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

// Float64 returns the float wire representation of the quantity.
// Precision may be lost for values that do not fit a float64 exactly.
func (q Quantity) Float64() float64 {
	f, _ := q.value.Float64()
	return f
}

// String returns the decimal string representation of the quantity.
func (q Quantity) String() string {
	return q.value.String()
}

// IsEqual compares two quantities by numeric value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value.Equal(other.value)
}

// Validate checks that the quantity was properly constructed.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}
