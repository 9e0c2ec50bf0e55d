package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/order"
	"fulfilment/internal/pkg/guard"
)

var ErrProcessOrderCommandIsNotConstructed = errors.New(
	"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
)

// ProcessOrderCommand represents a request to run one inbound order through
// the fulfilment pipeline: predict shortages, gather substitution suggestions,
// apply the decided outcome per line, and persist the final order.
//
// Example:
//
//	ord, _ := order.NewOrder(id, customerID, createdAt, deliveryDate, contact, items)
//	cmd, err := NewProcessOrderCommand(ord)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewProcessOrderCommandHandler(uowFactory, predictor, suggester, decider, catalogReader, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to process order: %w", err)
//	}
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	ord *order.Order

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command to process one inbound order.
// The order must be a properly constructed aggregate.
func NewProcessOrderCommand(ord *order.Order) (ProcessOrderCommand, error) {
	if err := ord.Validate(); err != nil {
		return ProcessOrderCommand{}, err
	}

	return ProcessOrderCommand{
		ord:   ord,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// Order returns the order aggregate to be processed.
func (c ProcessOrderCommand) Order() *order.Order {
	return c.ord
}
