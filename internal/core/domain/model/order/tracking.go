package order

import (
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
)

// Tracking is the location trail attached to an order's delivery lifecycle:
// the partner's last reported position plus the pickup and delivery
// confirmations recorded by the state machine.
//
// Tracking is mutated only from inside the Order aggregate. Position updates
// are last-write-wins by report time and independent of status transitions;
// the pickup/delivery stamps are set exactly once, on the transitions into
// picked_up and delivered.
type Tracking struct {
	position      *kernel.GeoPoint
	lastUpdatedAt *time.Time
	pickedUpAt    *time.Time
	pickedUpBy    *kernel.UUID
	deliveredAt   *time.Time
	deliveredBy   *kernel.UUID
}

// RestoreTracking reconstructs a Tracking block from persistence.
func RestoreTracking(
	position *kernel.GeoPoint,
	lastUpdatedAt *time.Time,
	pickedUpAt *time.Time,
	pickedUpBy *kernel.UUID,
	deliveredAt *time.Time,
	deliveredBy *kernel.UUID,
) Tracking {
	return Tracking{
		position:      position,
		lastUpdatedAt: lastUpdatedAt,
		pickedUpAt:    pickedUpAt,
		pickedUpBy:    pickedUpBy,
		deliveredAt:   deliveredAt,
		deliveredBy:   deliveredBy,
	}
}

// Position returns the partner's last reported coordinates.
// Returns nil before the first location report.
func (t Tracking) Position() *kernel.GeoPoint {
	return t.position
}

// LastUpdatedAt returns the report time of the current position.
// Returns nil before the first location report.
func (t Tracking) LastUpdatedAt() *time.Time {
	return t.lastUpdatedAt
}

// PickedUpAt returns when the order was picked up, or nil.
func (t Tracking) PickedUpAt() *time.Time {
	return t.pickedUpAt
}

// PickedUpBy returns the partner who picked the order up, or nil.
func (t Tracking) PickedUpBy() *kernel.UUID {
	return t.pickedUpBy
}

// DeliveredAt returns when the order was delivered, or nil.
func (t Tracking) DeliveredAt() *time.Time {
	return t.deliveredAt
}

// DeliveredBy returns the partner who delivered the order, or nil.
func (t Tracking) DeliveredBy() *kernel.UUID {
	return t.deliveredBy
}

// updatePosition overwrites the live position with a newer report.
// Returns false when the report is older than the stored one; stale reports
// are discarded silently to tolerate out-of-order network delivery.
func (t *Tracking) updatePosition(position kernel.GeoPoint, occurredAt time.Time) bool {
	if t.lastUpdatedAt != nil && occurredAt.Before(*t.lastUpdatedAt) {
		return false
	}

	t.position = &position
	t.lastUpdatedAt = &occurredAt
	return true
}

// markPickedUp records the pickup confirmation. Set exactly once.
func (t *Tracking) markPickedUp(by kernel.UUID, at time.Time) {
	if t.pickedUpAt != nil {
		return
	}
	t.pickedUpAt = &at
	t.pickedUpBy = &by
}

// markDelivered records the delivery confirmation. Set exactly once.
func (t *Tracking) markDelivered(by kernel.UUID, at time.Time) {
	if t.deliveredAt != nil {
		return
	}
	t.deliveredAt = &at
	t.deliveredBy = &by
}
