// Package order provides domain entities and business logic for customer orders
// in the fulfilment system. It implements the Order aggregate root together with
// its line items, contact details, and degrade bookkeeping.
//
// The package includes:
//   - Order: the aggregate root holding the order header and its ordered line items
//   - Item: a single order line with product code, quantity, and unit of measure
//   - Contact: optional customer contact details attached to the order header
//   - FallbackStage: a marker recording which pipeline stage degraded while the
//     order was processed
//
// Key business rules:
//   - Orders must have a valid identifier, customer, timestamps, and at least one item
//   - Line identifiers are unique within an order
//   - Items can be rewritten in place (substitution) or removed (shortage delete);
//     the relative ordering of surviving items is always preserved
//   - An order lives in memory through the fulfilment pipeline and is persisted
//     exactly once, after all decisions have been applied
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
