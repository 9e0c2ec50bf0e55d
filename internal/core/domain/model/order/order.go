package order

import (
	"errors"
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDuplicateLineID is returned when two items of one order share a line identifier.
	ErrDuplicateLineID = errors.New("line identifiers must be unique within an order")
)

// Order represents a customer order moving through the fulfilment pipeline.
// It is the aggregate root that owns the order header and the ordered sequence
// of line items.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a customer identifier
//   - Must carry creation and delivery timestamps
//   - Must have at least one item, and line identifiers are unique within the order
//   - Items are only rewritten in place or removed; surviving items keep their
//     relative ordering
//   - Can only be created through NewOrder or restored through RestoreOrder
//
// The aggregate additionally records which pipeline stages fell back to their
// safety defaults while the order was processed; those markers persist with
// the final order for observability.
type Order struct {
	// id is the globally unique order identifier assigned by the intake caller
	id kernel.OrderID

	// customerID identifies the ordering customer
	customerID string

	// createdAt is the order creation timestamp from the intake payload
	createdAt time.Time

	// deliveryDate is the requested delivery date
	deliveryDate time.Time

	// contact holds optional customer contact details
	contact Contact

	// items is the ordered sequence of line items
	items []*Item

	// fallbackStages records pipeline stages that degraded while processing
	fallbackStages []FallbackStage

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order from an intake payload.
//
// Returns an error if the identifier, customer, timestamps, or items are
// invalid, or if two items share a line identifier.
func NewOrder(
	id kernel.OrderID,
	customerID string,
	createdAt time.Time,
	deliveryDate time.Time,
	contact Contact,
	items []*Item,
) (*Order, error) {
	o := &Order{
		contact:       contact,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCreatedAt(createdAt),
		o.setDeliveryDate(deliveryDate),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including the fallback
// stages recorded when it was processed. Used by repositories only.
//
// Unlike NewOrder, the item list may be empty: an order whose every line was
// decided for deletion legitimately persists with zero items and must still
// load back.
func RestoreOrder(
	id kernel.OrderID,
	customerID string,
	createdAt time.Time,
	deliveryDate time.Time,
	contact Contact,
	items []*Item,
	fallbackStages []FallbackStage,
) (*Order, error) {
	o := &Order{
		contact:       contact,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCreatedAt(createdAt),
		o.setDeliveryDate(deliveryDate),
		o.restoreItems(items),
	); err != nil {
		return nil, err
	}

	for _, stage := range fallbackStages {
		if stageErr := stage.Validate(); stageErr != nil {
			return nil, stageErr
		}
		o.MarkFallback(stage)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Contact returns the optional customer contact details.
func (o *Order) Contact() Contact {
	return o.contact
}

// Items returns the line items in their current order.
// The slice is a copy; the items themselves are the aggregate's entities.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the line with the given identifier, if present.
func (o *Order) Item(lineID kernel.OrderLineID) (*Item, bool) {
	for _, item := range o.items {
		if item.LineID() == lineID {
			return item, true
		}
	}
	return nil, false
}

// ReplaceItem rewrites the line with the given identifier to carry the
// replacement product's code, name, and unit, and the given quantity.
// The line identifier and the item's position within the order are preserved.
//
// Returns an error if no such line exists or the replacement data is invalid.
func (o *Order) ReplaceItem(
	lineID kernel.OrderLineID,
	productCode string,
	name string,
	unit string,
	qty kernel.Quantity,
) error {
	item, ok := o.Item(lineID)
	if !ok {
		return errs.NewObjectNotFoundError("lineId", lineID.String())
	}

	return item.rewrite(productCode, name, unit, qty)
}

// RemoveItem drops the line with the given identifier from the order.
// The relative ordering of the remaining items is preserved.
//
// Returns an error if no such line exists.
func (o *Order) RemoveItem(lineID kernel.OrderLineID) error {
	for idx, item := range o.items {
		if item.LineID() == lineID {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("lineId", lineID.String())
}

// MarkFallback records that a pipeline stage degraded to its safety default
// while this order was processed. Marking the same stage twice is a no-op.
func (o *Order) MarkFallback(stage FallbackStage) {
	for _, existing := range o.fallbackStages {
		if existing == stage {
			return
		}
	}
	o.fallbackStages = append(o.fallbackStages, stage)
}

// FallbackStages returns the pipeline stages that degraded while this order
// was processed, in the order they were recorded.
func (o *Order) FallbackStages() []FallbackStage {
	stages := make([]FallbackStage, len(o.fallbackStages))
	copy(stages, o.fallbackStages)
	return stages
}

// IsDegraded reports whether any pipeline stage fell back while processing.
func (o *Order) IsDegraded() bool {
	return len(o.fallbackStages) > 0
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	o.deliveryDate = deliveryDate
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	return o.restoreItems(items)
}

// restoreItems accepts an empty item list, which only the persistence restore
// path produces.
func (o *Order) restoreItems(items []*Item) error {
	seen := make(map[kernel.OrderLineID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.LineID()]; dup {
			return ErrDuplicateLineID
		}
		seen[item.LineID()] = struct{}{}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
