package order

import (
	"fmt"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
// It implements a state machine whose transitions run strictly forward along a
// fixed total order; there is no regression and no skipping.
//
// State sequence:
//
//	assigned ──> picked_up ──> en_route ──> out_for_delivery ──> delivered
//
// delivered is terminal. Status is a value object that validates transitions
// and provides the snake_case string representation used in storage and on
// the wire.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Assigned is the initial status: the order exists and is waiting for the
	// delivery partner to collect it from the pharmacy.
	Assigned

	// PickedUp indicates the partner has collected the order at the pharmacy.
	PickedUp

	// EnRoute indicates the partner is travelling towards the customer's area.
	EnRoute

	// OutForDelivery indicates the partner is on the final leg to the
	// customer's address.
	OutForDelivery

	// Delivered indicates the order has been handed to the customer.
	// This is the terminal state; no further transitions are allowed.
	Delivered
)

// getStatusStrings returns the storage/wire representation of every Status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Assigned:       "assigned",
		PickedUp:       "picked_up",
		EnRoute:        "en_route",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:       "assigned",
		PickedUp:       "picked_up",
		EnRoute:        "en_route",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
	}
}

// StatusFromString parses the snake_case representation back into a Status.
// Returns an error for unrecognized input, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that the Status is one of the five lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the immediate successor in the fixed sequence.
// The second return value is false for Delivered (terminal) and for invalid
// statuses.
func (s Status) Next() (Status, bool) {
	if s.Validate() != nil || s.IsTerminal() {
		return Unknown, false
	}
	return s + 1, true
}

// HasReached reports whether the status is at or past the given milestone in
// the fixed sequence. Used for the picked-up/delivered projections.
func (s Status) HasReached(milestone Status) bool {
	if s.Validate() != nil || milestone.Validate() != nil {
		return false
	}
	return s >= milestone
}

// CanAdvanceTo checks whether a transition to target is legal from s without
// performing it. Exactly one step forward is allowed.
//
// Returns:
//   - nil when target is the immediate successor of s
//   - TerminalStateError when s is Delivered
//   - InvalidTransitionError for regressions, skips, and repeats
//
// The same-status no-op accommodation is handled by Order.Advance before this
// check; CanAdvanceTo itself treats a repeat as an invalid transition.
func (s Status) CanAdvanceTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return NewTerminalStateError(s)
	}

	next, ok := s.Next()
	if !ok || target != next {
		return NewInvalidTransitionError(s, target)
	}

	return nil
}

// StatusChange is one entry of an order's append-only delivery history:
// the status entered and the instant the transition occurred.
type StatusChange struct {
	Status Status
	At     time.Time
}
