// Package notifier publishes delivery lifecycle events.
// The current implementation emits structured log records; swapping in a
// message broker only requires another ports.EventPublisher.
package notifier

import (
	"context"
	"log/slog"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/ports"
)

// SlogEventPublisher writes lifecycle events to the structured log.
// Publishing never fails the originating operation.
type SlogEventPublisher struct {
	logger *slog.Logger
}

// NewSlogEventPublisher creates a publisher writing to the given logger.
func NewSlogEventPublisher(logger *slog.Logger) *SlogEventPublisher {
	return &SlogEventPublisher{
		logger: logger.With("component", "event_publisher"),
	}
}

// StatusChanged records a committed delivery status transition.
func (p *SlogEventPublisher) StatusChanged(ctx context.Context, event ports.StatusChangedEvent) {
	p.logger.InfoContext(ctx, "Order status changed",
		"order_id", event.OrderID.String(),
		"from", event.From.String(),
		"to", event.To.String(),
		"at", event.At,
	)
}

// LocationUpdated records an accepted partner position report.
func (p *SlogEventPublisher) LocationUpdated(ctx context.Context, event ports.LocationUpdatedEvent) {
	p.logger.InfoContext(ctx, "Partner location updated",
		"order_id", event.OrderID.String(),
		"lat", event.Lat,
		"lng", event.Lng,
		"at", event.At,
	)
}
