// Package queries contains read-only operations against the order store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the domain
// model.
package queries

import (
	"errors"
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one finalized order by its identifier, including
// the item lines as they were persisted and any degraded pipeline stages
// recorded while the order was processed.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by identifier.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier being looked up.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetOrderQueryResponse represents one persisted order.
type GetOrderQueryResponse struct {
	ID             string
	CustomerID     string
	CreatedAt      time.Time
	DeliveryDate   time.Time
	DegradedStages []string
	Items          []GetOrderQueryItemResponse
}

// GetOrderQueryItemResponse represents one persisted order line.
type GetOrderQueryItemResponse struct {
	LineID      int
	ProductCode string
	Name        string
	Qty         float64
	Unit        string
}
