// Package order contains the Order aggregate and its lifecycle state machine.
//
// The aggregate owns every mutation of an order after checkout: payment,
// cancellation, shipping with rider assignment, and the delivery outcome.
// All transitions are validated against a single role-aware transition table
// in status.go; there is deliberately no other place in the codebase where a
// status change is decided.
//
// Line items, the shipping address, and the totals are snapshots captured at
// creation time. They never change afterwards, so an order remains an accurate
// historical record even when catalog prices or the customer's profile address
// move on.
package order
