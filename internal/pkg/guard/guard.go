// Package guard provides a small defensive-construction primitive shared by
// domain value objects and commands. Embedding a ConstructorGuard lets a type
// distinguish instances created through its constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error. Validation always fails with a meaningful message
// even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value of
// the guard reports the object as not constructed, so any struct created by
// direct initialization instead of its constructor fails validation.
//
// Example:
//
//	type Quantity struct {
//	    value decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuantity(value decimal.Decimal) (Quantity, error) {
//	    if !value.IsPositive() {
//	        return Quantity{}, errors.New("quantity must be positive")
//	    }
//	    return Quantity{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quantity) Validate() error {
//	    return q.guard.Validate(ErrQuantityIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
