package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for finalized orders.
// The fulfilment engine writes each order exactly once; orders are immutable
// through this engine after that write.
type OrderRepository interface {
	// Add persists a finalized order with all of its items.
	// The write is atomic: a reader never observes the header without its items.
	// Adding an order whose identifier already exists fails with a conflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a persisted order by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
