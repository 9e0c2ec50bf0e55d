// Package kernel provides core domain primitives for the fulfilment system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - OrderID: the globally unique identifier of a customer order
//   - OrderLineID: the identifier of a line within one order
//   - CatalogEntryID: the identifier of a warehouse catalog record
//   - Quantity: a positive decimal amount with validation and comparison capabilities
//
// OrderLineID and CatalogEntryID share the same numeric wire representation for
// compatibility with the external prediction and substitution services, but they
// are deliberately distinct types: an order line ordinal is not a warehouse
// catalog key, and the compiler keeps the two from being mixed.
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
