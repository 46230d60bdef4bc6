package commands

import (
	"errors"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/guard"
)

var ErrReportLocationCommandIsNotConstructed = errors.New(
	"ReportLocationCommand must be created via NewReportLocationCommand constructor",
)

// ReportLocationCommand carries a delivery partner position sample for an in-flight
// order. OccurredAt is the device timestamp of the sample, not the time the
// report reached the server; samples older than the stored position are
// silently dropped downstream.
type ReportLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lat        float64
	lng        float64
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewReportLocationCommand creates a command to report a partner position.
// Coordinate range checks happen in the domain when the sample is applied.
func NewReportLocationCommand(
	orderID kernel.UUID,
	lat float64,
	lng float64,
	occurredAt time.Time,
) (ReportLocationCommand, error) {
	cmd := ReportLocationCommand{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOccurredAt(occurredAt),
	); err != nil {
		return ReportLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c ReportLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lat returns the reported latitude.
func (c ReportLocationCommand) Lat() float64 {
	return c.lat
}

// Lng returns the reported longitude.
func (c ReportLocationCommand) Lng() float64 {
	return c.lng
}

// OccurredAt returns the device timestamp of the sample.
func (c ReportLocationCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *ReportLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *ReportLocationCommand) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurred at")
	}
	c.occurredAt = occurredAt
	return nil
}
