package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one persisted order from the database.
// Reads bypass the domain model and return response structs directly.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// with the requested identifier has been persisted.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var degradedStages string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			created_at,
			delivery_date,
			degraded_stages
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.CreatedAt,
		&resp.DeliveryDate,
		&degradedStages,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("orderId", query.OrderID().String(), err)
		}
		// Anything else is a persistence failure and must surface as one,
		// not as a missing order.
		return GetOrderQueryResponse{}, err
	}

	if degradedStages != "" {
		resp.DegradedStages = strings.Split(degradedStages, ",")
	}

	items, err := h.readItems(ctx, resp.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, orderID string) ([]GetOrderQueryItemResponse, error) {
	items := make([]GetOrderQueryItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			line_id,
			product_code,
			name,
			qty,
			unit
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItemResponse

		err = rows.Scan(
			&item.LineID,
			&item.ProductCode,
			&item.Name,
			&item.Qty,
			&item.Unit,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
