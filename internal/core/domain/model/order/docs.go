// Package order contains the Order aggregate of the ordering domain.
//
// The package implements the order lifecycle:
//   - Order: the aggregate root owning the item collection and the status
//   - Item: a child entity holding a product reference, quantity, and a unit
//     price snapshot; its subtotal is always derived, never stored
//   - Status: a closed state machine over a static transition table driving
//     the payment and fulfilment workflow
//
// All mutation of the item collection goes through Order.AddItem and
// Order.RemoveItem so the aggregate can keep owner references consistent.
// Status changes go through Order.ChangeStatus, which consults the transition
// table before mutating anything.
package order
