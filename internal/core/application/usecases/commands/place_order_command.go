package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's request to place a delivery
// order. The address and item list are accepted as-is: placement validates
// nothing and has no failure path.
//
// Example:
//
//	cmd := NewPlaceOrderCommand("1 Main St", []string{"Burger", "Fries"})
//	handler := NewPlaceOrderCommandHandler(uowFactory, time.Now)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed and awaiting driver assignment", placed.ID())
type PlaceOrderCommand struct {
	deliveryAddress string
	items           []string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new delivery order.
// Any address and item list are accepted.
func NewPlaceOrderCommand(deliveryAddress string, items []string) PlaceOrderCommand {
	copied := make([]string, len(items))
	copy(copied, items)

	return PlaceOrderCommand{
		deliveryAddress: deliveryAddress,
		items:           copied,
		guard:           guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// DeliveryAddress returns the destination address for the order.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Items returns the ordered item list.
func (c PlaceOrderCommand) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}
