package commands

import (
	"errors"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand attaches a delivery partner to an order. The partner
// name and phone are snapshots taken at assignment time.
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	partnerID    kernel.UUID
	partnerName  string
	partnerPhone string

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command to assign a partner to an order.
// The partner name is required; the phone may be empty.
func NewAssignPartnerCommand(
	orderID kernel.UUID,
	partnerID kernel.UUID,
	partnerName string,
	partnerPhone string,
) (AssignPartnerCommand, error) {
	cmd := AssignPartnerCommand{
		partnerPhone: partnerPhone,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerID(partnerID),
		cmd.setPartnerName(partnerName),
	); err != nil {
		return AssignPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c AssignPartnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the opaque delivery partner reference.
func (c AssignPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// PartnerName returns the partner display name snapshot.
func (c AssignPartnerCommand) PartnerName() string {
	return c.partnerName
}

// PartnerPhone returns the partner contact phone snapshot.
func (c AssignPartnerCommand) PartnerPhone() string {
	return c.partnerPhone
}

func (c *AssignPartnerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *AssignPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("partner id", err)
	}
	c.partnerID = partnerID
	return nil
}

func (c *AssignPartnerCommand) setPartnerName(partnerName string) error {
	if partnerName == "" {
		return errs.NewValueIsRequiredError("partner name")
	}
	c.partnerName = partnerName
	return nil
}
