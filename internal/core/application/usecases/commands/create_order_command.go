package commands

import (
	"errors"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request from the external ordering workflow
// to create a new delivery job. The customer, pharmacy and destination are
// captured here; the order starts life in the assigned state.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    customerID, &pharmacyID, "MedPlus Koramangala",
//	    items, "221B Baker Street", destination, "cod",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	pharmacyID    *kernel.UUID
	pharmacyName  string
	items         []order.Item
	address       string
	destination   kernel.GeoPoint
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates the customer reference, destination coordinates, address and
// payment method; items may be empty for a non-item service order.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	pharmacyID *kernel.UUID,
	pharmacyName string,
	items []order.Item,
	address string,
	destination kernel.GeoPoint,
	paymentMethod string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		pharmacyID:   pharmacyID,
		pharmacyName: pharmacyName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setAddress(address),
		cmd.setDestination(destination),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the opaque customer reference.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PharmacyID returns the optional opaque pharmacy reference.
func (c CreateOrderCommand) PharmacyID() *kernel.UUID {
	return c.pharmacyID
}

// PharmacyName returns the pharmacy display name copied onto the order.
func (c CreateOrderCommand) PharmacyName() string {
	return c.pharmacyName
}

// Items returns the ordered lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Address returns the destination text.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Destination returns the customer coordinates.
func (c CreateOrderCommand) Destination() kernel.GeoPoint {
	return c.destination
}

// PaymentMethod returns the payment method label.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	c.paymentMethod = paymentMethod
	return nil
}
