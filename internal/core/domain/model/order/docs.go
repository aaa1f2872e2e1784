// Package order provides the Order aggregate root and its supporting value
// objects: line items, the status state machine, the payment method enum,
// and the derived totals calculator.
//
// Key business rules:
//   - Orders are created only through the creation workflow and never empty
//   - Status follows CREATED -> ACCEPTED -> SENT -> DELIVERED, with CREATED
//     also allowed to go to CANCELLED; terminal states allow nothing further
//   - Cash orders start ACCEPTED, all other payment methods start CREATED
//   - Unit prices are captured at creation time and never recomputed
//   - Totals are derived from line items, never stored; an order whose items
//     are not loaded reports absent totals rather than zero
package order
