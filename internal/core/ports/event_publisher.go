package ports

import (
	"context"
	"time"
)

// OrderFinalizedEvent announces that an order completed the fulfilment
// pipeline and was durably persisted. Published best-effort after commit;
// downstream consumers (notifications, analytics) subscribe to it.
type OrderFinalizedEvent struct {
	EventID        string    `json:"eventId"`
	OrderID        string    `json:"orderId"`
	CustomerID     string    `json:"customerId"`
	ItemCount      int       `json:"itemCount"`
	FallbackStages []string  `json:"fallbackStages,omitempty"`
	FinalizedAt    time.Time `json:"finalizedAt"`
}

// OrderEventPublisher publishes order lifecycle events to interested
// consumers. Publish failures never fail order processing; the engine logs
// them and moves on.
type OrderEventPublisher interface {
	PublishOrderFinalized(ctx context.Context, event OrderFinalizedEvent) error
}
