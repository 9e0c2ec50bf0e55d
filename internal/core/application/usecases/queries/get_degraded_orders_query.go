package queries

import (
	"errors"

	"fulfilment/internal/pkg/guard"
)

var ErrGetDegradedOrdersQueryIsNotConstructed = errors.New(
	"GetDegradedOrdersQuery must be created via NewGetDegradedOrdersQuery constructor",
)

// GetDegradedOrdersQuery retrieves every order that was finalized on at least
// one fallback path. Feeds the periodic degraded-order report so silent
// collaborator failures stay visible to operators.
type GetDegradedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDegradedOrdersQuery creates a query to retrieve degraded orders.
// This is a parameterless query.
func NewGetDegradedOrdersQuery() GetDegradedOrdersQuery {
	return GetDegradedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDegradedOrdersQueryIsNotConstructed if validation fails.
func (q GetDegradedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDegradedOrdersQueryIsNotConstructed)
}

// GetDegradedOrdersQueryResponse represents one degraded order and the
// pipeline stages that fell back while it was processed.
type GetDegradedOrdersQueryResponse struct {
	ID             string
	DegradedStages []string
}
