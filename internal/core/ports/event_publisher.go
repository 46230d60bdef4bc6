package ports

import (
	"context"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
)

// StatusChangedEvent describes a successful delivery status transition.
// From equals To for the initial event emitted at order creation.
type StatusChangedEvent struct {
	OrderID kernel.UUID
	From    order.Status
	To      order.Status
	At      time.Time
}

// LocationUpdatedEvent describes an accepted location report.
type LocationUpdatedEvent struct {
	OrderID kernel.UUID
	Lat     float64
	Lng     float64
	At      time.Time
}

// EventPublisher receives event-like notifications after each successful
// transition and location update. The delivery mechanism behind it (polling
// feed, push, log) is an external concern; publishing must not fail the
// originating operation, so implementations return no error.
type EventPublisher interface {
	StatusChanged(ctx context.Context, event StatusChangedEvent)
	LocationUpdated(ctx context.Context, event LocationUpdatedEvent)
}
