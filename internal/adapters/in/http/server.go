// Package http exposes the fulfilment API: order intake and order lookup.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/order"
	"fulfilment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Server implements the HTTP handlers for order intake and lookup.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	processOrderHandler commands.ProcessOrderCommandHandler
	getOrderHandler     queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processOrderHandler commands.ProcessOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		processOrderHandler: processOrderHandler,
		getOrderHandler:     getOrderHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.ProcessOrder)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ContactDTO carries customer contact details on the intake payload.
type ContactDTO struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Language string `json:"language"`
}

// OrderItemDTO is one order line on the wire.
type OrderItemDTO struct {
	LineID      int     `json:"line_id"`
	ProductCode string  `json:"product_code"`
	Name        string  `json:"name"`
	Qty         float64 `json:"qty"`
	Unit        string  `json:"unit"`
}

// OrderRequest is the intake payload posted by the ordering system.
type OrderRequest struct {
	OrderID         string         `json:"order_id"`
	CustomerID      string         `json:"customer_id"`
	CreatedAt       time.Time      `json:"created_at"`
	DeliveryDate    time.Time      `json:"delivery_date"`
	CustomerContact ContactDTO     `json:"customer_contact"`
	Items           []OrderItemDTO `json:"items"`
}

// OrderResponse describes an order after the fulfilment pipeline has run.
type OrderResponse struct {
	OrderID        string         `json:"order_id"`
	CustomerID     string         `json:"customer_id"`
	CreatedAt      time.Time      `json:"created_at"`
	DeliveryDate   time.Time      `json:"delivery_date"`
	DegradedStages []string       `json:"degraded_stages"`
	Items          []OrderItemDTO `json:"items"`
}

// ProcessOrder handles POST /api/v1/orders - runs one order through the
// fulfilment pipeline and persists the result. Processing is synchronous;
// the response body carries the finalized order.
//
// Returns 409 when an order with the same identifier was already processed.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ord, err := toDomain(req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	cmd, err := commands.NewProcessOrderCommand(ord)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.processOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, gorm.ErrDuplicatedKey) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Order " + req.OrderID + " was already processed",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process order",
		})
	}

	return ctx.JSON(http.StatusCreated, fromDomain(ord))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one processed order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order " + orderID.String() + " not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	response := OrderResponse{
		OrderID:        result.ID,
		CustomerID:     result.CustomerID,
		CreatedAt:      result.CreatedAt,
		DeliveryDate:   result.DeliveryDate,
		DegradedStages: result.DegradedStages,
		Items:          make([]OrderItemDTO, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		response.Items = append(response.Items, OrderItemDTO{
			LineID:      item.LineID,
			ProductCode: item.ProductCode,
			Name:        item.Name,
			Qty:         item.Qty,
			Unit:        item.Unit,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// toDomain builds the order aggregate from the intake payload.
func toDomain(req OrderRequest) (*order.Order, error) {
	orderID, err := kernel.NewOrderID(req.OrderID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		lineID, lineErr := kernel.NewOrderLineID(itemReq.LineID)
		if lineErr != nil {
			return nil, lineErr
		}

		qty, qtyErr := kernel.NewQuantityFromFloat(itemReq.Qty)
		if qtyErr != nil {
			return nil, qtyErr
		}

		item, itemErr := order.NewItem(lineID, itemReq.ProductCode, itemReq.Name, qty, itemReq.Unit)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	contact := order.NewContact(
		req.CustomerContact.Phone,
		req.CustomerContact.Email,
		req.CustomerContact.Language,
	)

	return order.NewOrder(orderID, req.CustomerID, req.CreatedAt, req.DeliveryDate, contact, items)
}

// fromDomain renders the finalized aggregate as a response body.
func fromDomain(ord *order.Order) OrderResponse {
	stages := ord.FallbackStages()
	stageNames := make([]string, 0, len(stages))
	for _, stage := range stages {
		stageNames = append(stageNames, stage.String())
	}

	items := ord.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			LineID:      item.LineID().Int(),
			ProductCode: item.ProductCode(),
			Name:        item.Name(),
			Qty:         item.Qty().Float64(),
			Unit:        item.Unit(),
		})
	}

	return OrderResponse{
		OrderID:        ord.ID().String(),
		CustomerID:     ord.CustomerID(),
		CreatedAt:      ord.CreatedAt(),
		DeliveryDate:   ord.DeliveryDate(),
		DegradedStages: stageNames,
		Items:          itemDTOs,
	}
}
