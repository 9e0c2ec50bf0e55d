// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfilment system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderFinalizer: a domain service that applies shortage decisions to an
//     order, turning the originally submitted items into the final item list
//
// Domain services coordinate between aggregates and value objects, implementing
// business logic that spans multiple domain concepts following Domain-Driven
// Design principles.
package services
