package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetDegradedOrdersQueryHandler retrieves degraded orders from the database.
type GetDegradedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDegradedOrdersQueryHandler creates a handler for degraded-order queries.
// Requires a GORM database connection for query execution.
func NewGetDegradedOrdersQueryHandler(db *gorm.DB) GetDegradedOrdersQueryHandler {
	return GetDegradedOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns every order whose processing fell back
// on at least one pipeline stage, sorted by order ID for consistent output.
func (h GetDegradedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDegradedOrdersQuery,
) ([]GetDegradedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDegradedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			degraded_stages
		FROM orders
		WHERE degraded_stages != ''
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetDegradedOrdersQueryResponse
		var stages string

		err = rows.Scan(&orderResp.ID, &stages)
		if err != nil {
			return nil, err
		}

		orderResp.DegradedStages = strings.Split(stages, ",")
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
