// Package driver contains the Driver aggregate.
//
// A driver is a delivery agent with a fixed identity and a single mutable
// field: the timestamp at which the driver next becomes available. The
// roster of drivers is created once at startup and never grows or shrinks;
// assignment and completion only move each driver's availability time.
package driver
