// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created in Pending status when a customer places it, becomes
// Active when the dispatch process assigns a driver, and reaches the terminal
// Completed status when the delivery is confirmed. No other transitions are
// permitted and an order is never deleted: completed orders are retained for
// the lifetime of the process as a historical record.
package order
