package order

import (
	"errors"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
)

// PaymentStatus is the payment snapshot carried on the order.
// Payment processing itself is an external collaborator concern; this core only
// stores the flag it is handed.
type PaymentStatus string

const (
	// PaymentUnpaid is the default payment status at order creation.
	PaymentUnpaid PaymentStatus = "unpaid"
	// PaymentPaid indicates the external payment workflow settled the order.
	PaymentPaid PaymentStatus = "paid"
)

// Validate checks that the payment status is one of the known values.
func (p PaymentStatus) Validate() error {
	if p != PaymentUnpaid && p != PaymentPaid {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents one pharmacy delivery job. It is the aggregate root that
// manages the delivery lifecycle from creation in the assigned state through
// pickup, transit, and final delivery.
//
// Order maintains these invariants:
//   - status moves strictly forward along the fixed sequence; delivered is terminal
//   - history is append-only and its last entry always equals status
//   - no transition past assigned before a delivery partner is set, and only
//     that partner may drive transitions
//   - the pickup and delivery stamps in tracking are set exactly once
//   - total is never negative
//
// The struct uses private fields so the invariants can only be touched through
// AssignPartner, Advance, and RecordLocation. The delivered/picked-up flags of
// the old storage schema are computed accessors here (Delivered, PickedUp);
// the persistence layer derives its indexable columns from them at write time.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	// pharmacyID is optional; pharmacyName is a denormalized display copy.
	pharmacyID   *kernel.UUID
	pharmacyName string

	// partnerID is nil until a delivery partner is assigned. The name and
	// phone are a point-in-time snapshot taken at assignment; they are never
	// re-synced with the identity store.
	partnerID    *kernel.UUID
	partnerName  string
	partnerPhone string

	items         []Item
	total         kernel.Money
	paymentMethod string
	paymentStatus PaymentStatus

	// address is the destination text; destination the customer coordinates
	// captured at creation.
	address     string
	destination kernel.GeoPoint

	status   Status
	history  []StatusChange
	tracking Tracking

	createdAt time.Time
	updatedAt time.Time

	// version is the optimistic-concurrency token checked by conditional
	// repository updates.
	version int64

	isConstructed bool
}

// NewOrder creates a delivery job in the assigned state.
//
// The history is seeded with the initial assigned entry and the total is
// derived from the item line totals. An empty item list is allowed: it
// represents a non-item service order with a zero total.
//
// Parameters:
//   - id: unique order identifier
//   - customerID: opaque reference into the external customer store
//   - pharmacyID: optional opaque pharmacy reference; pharmacyName is its display copy
//   - items: the ordered lines; each must come from NewItem
//   - address: destination text, required
//   - destination: customer coordinates captured at creation
//   - paymentMethod: required free-form method label (e.g. "cod", "card")
//   - now: creation instant, supplied by the caller for testability
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pharmacyID *kernel.UUID,
	pharmacyName string,
	items []Item,
	address string,
	destination kernel.GeoPoint,
	paymentMethod string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Assigned,
		paymentStatus: PaymentUnpaid,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPharmacy(pharmacyID, pharmacyName),
		o.setItems(items),
		o.setAddress(address),
		o.setDestination(destination),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.total = TotalOf(o.items)
	o.history = []StatusChange{{Status: Assigned, At: now}}
	return o, nil
}

// RestoreOrderParams carries the persisted state needed to reconstruct an
// Order aggregate. Used only by repository implementations.
type RestoreOrderParams struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	PharmacyID    *kernel.UUID
	PharmacyName  string
	PartnerID     *kernel.UUID
	PartnerName   string
	PartnerPhone  string
	Items         []Item
	Total         kernel.Money
	PaymentMethod string
	PaymentStatus PaymentStatus
	Address       string
	Destination   kernel.GeoPoint
	Status        Status
	History       []StatusChange
	Tracking      Tracking
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

// RestoreOrder reconstructs an Order from persistence, re-validating the
// invariants the stored record must satisfy. Returns an error for records
// whose history disagrees with the status or whose version token is not positive.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		pharmacyID:    p.PharmacyID,
		pharmacyName:  p.PharmacyName,
		partnerID:     p.PartnerID,
		partnerName:   p.PartnerName,
		partnerPhone:  p.PartnerPhone,
		total:         p.Total,
		paymentStatus: p.PaymentStatus,
		history:       p.History,
		tracking:      p.Tracking,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		version:       p.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCustomerID(p.CustomerID),
		o.setItems(p.Items),
		o.setAddress(p.Address),
		o.setDestination(p.Destination),
		o.setPaymentMethod(p.PaymentMethod),
		p.Status.Validate(),
		p.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = p.Status

	if len(o.history) == 0 || o.history[len(o.history)-1].Status != o.status {
		return nil, errs.NewValueIsInvalidError("delivery status history")
	}
	if o.version <= 0 {
		return nil, errs.NewVersionIsInvalidError("order version")
	}
	if o.partnerID == nil && o.status.HasReached(PickedUp) {
		return nil, errs.NewValueIsInvalidError("delivery partner")
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the opaque customer reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PharmacyID returns the opaque pharmacy reference, or nil.
func (o *Order) PharmacyID() *kernel.UUID {
	return o.pharmacyID
}

// PharmacyName returns the denormalized pharmacy display name.
func (o *Order) PharmacyName() string {
	return o.pharmacyName
}

// PartnerID returns the assigned delivery partner, or nil before assignment.
func (o *Order) PartnerID() *kernel.UUID {
	return o.partnerID
}

// PartnerName returns the partner display name snapshot taken at assignment.
func (o *Order) PartnerName() string {
	return o.partnerName
}

// PartnerPhone returns the partner phone snapshot taken at assignment.
func (o *Order) PartnerPhone() string {
	return o.partnerPhone
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total. Never negative.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PaymentMethod returns the payment method label.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentStatus returns the payment snapshot, unpaid by default.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Address returns the destination text.
func (o *Order) Address() string {
	return o.address
}

// Destination returns the customer coordinates captured at creation.
func (o *Order) Destination() kernel.GeoPoint {
	return o.destination
}

// Status returns the current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only status history.
// Its last entry always equals Status().
func (o *Order) History() []StatusChange {
	history := make([]StatusChange, len(o.history))
	copy(history, o.history)
	return history
}

// Tracking returns the order's location trail.
func (o *Order) Tracking() Tracking {
	return o.tracking
}

// Delivered reports whether the order has reached the terminal state.
// Computed from status rather than stored, so it can never disagree with it.
func (o *Order) Delivered() bool {
	return o.status == Delivered
}

// PickedUp reports whether the order has reached or passed picked_up.
func (o *Order) PickedUp() bool {
	return o.status.HasReached(PickedUp)
}

// DeliveredAt returns when the order was delivered, or nil.
// Set exactly once, on the transition into delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.tracking.DeliveredAt()
}

// PickedUpAt returns when the order was picked up, or nil.
func (o *Order) PickedUpAt() *time.Time {
	return o.tracking.PickedUpAt()
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification instant.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency token of the loaded record.
func (o *Order) Version() int64 {
	return o.version
}

// AdvanceVersion moves the version token forward after a successful
// conditional write, keeping the in-memory aggregate aligned with the stored
// row. Called by the persistence layer only.
func (o *Order) AdvanceVersion() {
	o.version++
}

// AssignPartner sets the delivery partner and takes the name/phone snapshot.
//
// Business rules:
//   - a partner can be set once; repeating the call with the same partner is a no-op
//   - assigning a different partner fails with PartnerAlreadyAssignedError
//   - a delivered order accepts no assignment
func (o *Order) AssignPartner(partnerID kernel.UUID, name, phone string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}

	if o.partnerID != nil {
		if o.partnerID.IsEqual(partnerID) {
			return nil
		}
		return NewPartnerAlreadyAssignedError(o.id, *o.partnerID, partnerID)
	}

	o.partnerID = &partnerID
	o.partnerName = name
	o.partnerPhone = phone
	o.updatedAt = now
	return nil
}

// Advance transitions the order to target, driven by actor at occurredAt.
//
// Exactly one step forward along the fixed sequence is accepted. Re-requesting
// the current status is a no-op success so that clients may deliver transition
// requests at-least-once; it appends nothing to the history.
//
// Returns:
//   - TerminalStateError when the order is already delivered
//   - UnauthorizedActorError when no partner is assigned or actor is not the partner
//   - InvalidTransitionError for regressions and skips, naming both states
//
// On success the status is set, a history entry {target, occurredAt} is
// appended, and for picked_up and delivered the corresponding tracking stamp
// is recorded with the acting partner.
func (o *Order) Advance(target Status, actor kernel.UUID, occurredAt time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := errors.Join(target.Validate(), actor.Validate()); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}

	// At-least-once accommodation: repeating the current status succeeds
	// without a second history entry.
	if target == o.status {
		return nil
	}

	if o.partnerID == nil || !o.partnerID.IsEqual(actor) {
		return NewUnauthorizedActorError(o.id, actor)
	}

	if err := o.status.CanAdvanceTo(target); err != nil {
		return err
	}

	o.status = target
	o.history = append(o.history, StatusChange{Status: target, At: occurredAt})
	o.updatedAt = occurredAt

	switch target {
	case PickedUp:
		o.tracking.markPickedUp(actor, occurredAt)
	case Delivered:
		o.tracking.markDelivered(actor, occurredAt)
	case Unknown, Assigned, EnRoute, OutForDelivery:
	}

	return nil
}

// RecordLocation stores a live position report from the delivery partner.
//
// The report is independent of status transitions and never appends to the
// history. Last write wins by occurredAt: a report older than the stored
// tracking time is discarded silently, tolerating out-of-order network
// delivery. Reports against a delivered order fail with TerminalStateError;
// out-of-range coordinates fail with the coordinate range error from
// kernel.NewGeoPoint.
func (o *Order) RecordLocation(lat, lng float64, occurredAt time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}

	position, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return err
	}

	if o.tracking.updatePosition(position, occurredAt) {
		o.updatedAt = occurredAt
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPharmacy(pharmacyID *kernel.UUID, name string) error {
	if pharmacyID != nil {
		if err := pharmacyID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("pharmacy id", err)
		}
	}
	o.pharmacyID = pharmacyID
	o.pharmacyName = name
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = paymentMethod
	return nil
}
