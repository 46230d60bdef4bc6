package order

import (
	"errors"
	"fmt"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
)

// Sentinel errors for the delivery-specific failure kinds. Callers classify
// with errors.Is; the typed errors below carry the context needed to render a
// user-facing message.
var (
	// ErrInvalidTransition marks a status jump that is not the immediate next
	// step in the fixed sequence (regression, skip, or repeat past the no-op
	// accommodation).
	ErrInvalidTransition = errors.New("invalid delivery status transition")

	// ErrTerminalState marks any mutation attempted after delivered.
	ErrTerminalState = errors.New("order is in a terminal state")

	// ErrUnauthorizedActor marks a transition requested by anyone other than
	// the assigned delivery partner, or before a partner is assigned.
	ErrUnauthorizedActor = errors.New("actor is not the assigned delivery partner")

	// ErrPartnerAlreadyAssigned marks an attempt to assign a second, different
	// delivery partner to an order.
	ErrPartnerAlreadyAssigned = errors.New("delivery partner already assigned")
)

// InvalidTransitionError reports an illegal status jump, naming the current
// and requested states.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given states.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TerminalStateError reports a mutation attempted on an order that has already
// reached its terminal status.
type TerminalStateError struct {
	Current Status
}

// NewTerminalStateError creates a TerminalStateError for the given terminal status.
func NewTerminalStateError(current Status) *TerminalStateError {
	return &TerminalStateError{Current: current}
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: %s accepts no further changes", ErrTerminalState, e.Current)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// UnauthorizedActorError reports a transition requested by an actor who is not
// the order's assigned delivery partner.
type UnauthorizedActorError struct {
	OrderID kernel.UUID
	Actor   kernel.UUID
}

// NewUnauthorizedActorError creates an UnauthorizedActorError for the given order and actor.
func NewUnauthorizedActorError(orderID, actor kernel.UUID) *UnauthorizedActorError {
	return &UnauthorizedActorError{OrderID: orderID, Actor: actor}
}

func (e *UnauthorizedActorError) Error() string {
	return fmt.Sprintf("%s: actor %s, order %s", ErrUnauthorizedActor, e.Actor, e.OrderID)
}

func (e *UnauthorizedActorError) Unwrap() error {
	return ErrUnauthorizedActor
}

// PartnerAlreadyAssignedError reports an attempt to replace an order's
// delivery partner.
type PartnerAlreadyAssignedError struct {
	OrderID   kernel.UUID
	Assigned  kernel.UUID
	Requested kernel.UUID
}

// NewPartnerAlreadyAssignedError creates a PartnerAlreadyAssignedError.
func NewPartnerAlreadyAssignedError(orderID, assigned, requested kernel.UUID) *PartnerAlreadyAssignedError {
	return &PartnerAlreadyAssignedError{OrderID: orderID, Assigned: assigned, Requested: requested}
}

func (e *PartnerAlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: order %s has partner %s, requested %s",
		ErrPartnerAlreadyAssigned, e.OrderID, e.Assigned, e.Requested)
}

func (e *PartnerAlreadyAssignedError) Unwrap() error {
	return ErrPartnerAlreadyAssigned
}
