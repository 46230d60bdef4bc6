package queries

import (
	"errors"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/guard"
)

var ErrGetStaleDeliveriesQueryIsNotConstructed = errors.New(
	"GetStaleDeliveriesQuery must be created via NewGetStaleDeliveriesQuery constructor",
)

// GetStaleDeliveriesQuery finds in-flight orders that have shown no progress
// for longer than the given threshold. No progress means neither a status
// change nor an accepted location report. Used by the delivery watchdog to
// surface stuck deliveries.
type GetStaleDeliveriesQuery struct {
	threshold time.Duration
	now       time.Time

	guard guard.ConstructorGuard
}

// NewGetStaleDeliveriesQuery creates a query for deliveries silent for at
// least threshold, measured against now.
func NewGetStaleDeliveriesQuery(threshold time.Duration, now time.Time) (GetStaleDeliveriesQuery, error) {
	if threshold <= 0 {
		return GetStaleDeliveriesQuery{}, errs.NewValueIsInvalidError("threshold")
	}
	if now.IsZero() {
		return GetStaleDeliveriesQuery{}, errs.NewValueIsRequiredError("now")
	}

	return GetStaleDeliveriesQuery{
		threshold: threshold,
		now:       now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleDeliveriesQueryIsNotConstructed)
}

// Threshold returns the silence duration after which a delivery counts as stale.
func (q GetStaleDeliveriesQuery) Threshold() time.Duration {
	return q.threshold
}

// Now returns the reference time the threshold is measured against.
func (q GetStaleDeliveriesQuery) Now() time.Time {
	return q.now
}

// StaleDeliveryResponse describes one stuck delivery.
type StaleDeliveryResponse struct {
	ID             kernel.UUID
	PartnerID      *kernel.UUID
	PartnerName    string
	Status         string
	LastProgressAt time.Time
}
