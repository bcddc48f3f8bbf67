// Package kernel contains shared value objects used across the domain model.
//
// The package provides the identifier types for the two aggregates of the
// dispatch domain: OrderID ("ORD<n>") and DriverID ("DRV<n>"). Both are
// sequential, human-readable identifiers; orders receive theirs at creation
// time and driver identifiers are fixed when the roster is built at startup.
//
// Identifiers are immutable value objects. The zero value of either type is
// invalid and must be created through the provided constructor functions.
package kernel
