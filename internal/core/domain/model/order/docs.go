// Package order provides the Order aggregate root of the pharmacy delivery
// domain: the delivery job tying a customer, a delivery partner, and a set of
// prescription items to a status, a payment snapshot, and a location trail.
//
// The package includes:
//   - Order: the aggregate root managing the delivery lifecycle
//   - Status: the state machine enforcing forward-only delivery transitions
//   - Item: an ordered line of the order (name, quantity, unit price)
//   - Tracking: the partner's live position and pickup/delivery confirmations
//
// Key business rules:
//   - Status moves strictly forward along
//     assigned -> picked_up -> en_route -> out_for_delivery -> delivered
//   - Re-requesting the current status is a no-op success, never a second
//     history entry
//   - The status history is append-only and its last entry always equals the
//     current status
//   - No transition past assigned is accepted before a delivery partner is set,
//     and only that partner may drive transitions
//   - delivered is terminal; afterwards the aggregate accepts no mutation
//
// All mutation goes through Advance, RecordLocation, and AssignPartner; fields
// are private so the invariants above cannot be bypassed.
package order
