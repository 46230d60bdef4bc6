package commands

import (
	"errors"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand moves an order to the next delivery status. The actor
// is the delivery partner reporting the transition; only the assigned partner
// may advance an order. OccurredAt is the partner-reported time of the
// transition, not the time the report reached the server; it stamps the
// history entry and the pickup/delivery tracking fields.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	target     order.Status
	actor      kernel.UUID
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command to advance an order's delivery
// status to the given target.
func NewAdvanceDeliveryCommand(
	orderID kernel.UUID,
	target order.Status,
	actor kernel.UUID,
	occurredAt time.Time,
) (AdvanceDeliveryCommand, error) {
	cmd := AdvanceDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
		cmd.setOccurredAt(occurredAt),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c AdvanceDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested delivery status.
func (c AdvanceDeliveryCommand) Target() order.Status {
	return c.target
}

// Actor returns the identity of the partner reporting the transition.
func (c AdvanceDeliveryCommand) Actor() kernel.UUID {
	return c.actor
}

// OccurredAt returns the partner-reported time of the transition.
func (c AdvanceDeliveryCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *AdvanceDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceDeliveryCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *AdvanceDeliveryCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor id", err)
	}
	c.actor = actor
	return nil
}

func (c *AdvanceDeliveryCommand) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurred at")
	}
	c.occurredAt = occurredAt
	return nil
}
