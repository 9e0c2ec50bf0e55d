// Package gateways provides HTTP clients for the three fulfilment
// collaborators: shortage prediction, substitution suggestion, and shortage
// decision.
//
// The clients share one failure policy: any transport error, timeout,
// non-2xx status, or malformed response body is absorbed and reported to the
// caller through the boolean return value. The fulfilment pipeline never
// fails because a collaborator is down; each stage has its own safe default.
package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/order"
)

// PredictClient calls the shortage prediction collaborator over HTTP.
// Implements ports.ShortagePredictor.
type PredictClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewPredictClient creates a prediction gateway client. The timeout bounds
// each call so a slow collaborator cannot stall an order; a timed-out call
// degrades exactly like an unreachable one.
func NewPredictClient(baseURL string, timeout time.Duration, logger *slog.Logger) *PredictClient {
	return &PredictClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("component", "predict_client"),
	}
}

type predictOrderItemRequest struct {
	LineID      int     `json:"line_id"`
	ProductCode string  `json:"product_code"`
	Name        string  `json:"name"`
	Qty         float64 `json:"qty"`
	Unit        string  `json:"unit"`
}

type predictContactRequest struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Language string `json:"language"`
}

type predictOrderRequest struct {
	OrderID         string                    `json:"order_id"`
	CustomerID      string                    `json:"customer_id"`
	CreatedAt       string                    `json:"created_at"`
	DeliveryDate    string                    `json:"delivery_date"`
	CustomerContact predictContactRequest     `json:"customer_contact"`
	Items           []predictOrderItemRequest `json:"items"`
}

type predictOrderResponse struct {
	LineIDs []int `json:"lineIds"`
}

// PredictAtRiskLines sends the full order to the prediction collaborator and
// returns the line identifiers it flags as at risk of shortage. The second
// return value is false when the collaborator could not be consulted; the
// caller then treats no line as at risk.
func (c *PredictClient) PredictAtRiskLines(ctx context.Context, ord *order.Order) ([]kernel.OrderLineID, bool) {
	items := ord.Items()
	reqBody := predictOrderRequest{
		OrderID:      ord.ID().String(),
		CustomerID:   ord.CustomerID(),
		CreatedAt:    ord.CreatedAt().Format(time.RFC3339),
		DeliveryDate: ord.DeliveryDate().Format(time.RFC3339),
		CustomerContact: predictContactRequest{
			Phone:    ord.Contact().Phone(),
			Email:    ord.Contact().Email(),
			Language: ord.Contact().Language(),
		},
		Items: make([]predictOrderItemRequest, 0, len(items)),
	}
	for _, item := range items {
		reqBody.Items = append(reqBody.Items, predictOrderItemRequest{
			LineID:      item.LineID().Int(),
			ProductCode: item.ProductCode(),
			Name:        item.Name(),
			Qty:         item.Qty().Float64(),
			Unit:        item.Unit(),
		})
	}

	var resp predictOrderResponse
	if err := postJSON(ctx, c.client, c.baseURL+"/predict/order", reqBody, &resp); err != nil {
		c.logger.WarnContext(ctx, "Shortage prediction call failed",
			"order_id", ord.ID().String(), "error", err)
		return nil, false
	}

	lineIDs := make([]kernel.OrderLineID, 0, len(resp.LineIDs))
	for _, raw := range resp.LineIDs {
		lineID, err := kernel.NewOrderLineID(raw)
		if err != nil {
			c.logger.WarnContext(ctx, "Prediction response contains invalid line id",
				"order_id", ord.ID().String(), "line_id", raw)
			continue
		}
		lineIDs = append(lineIDs, lineID)
	}

	return lineIDs, true
}

// postJSON performs one JSON request/response round trip. Any transport
// error, non-2xx status, or undecodable body is returned as an error.
func postJSON(ctx context.Context, client *http.Client, url string, reqBody any, respBody any) error {
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
