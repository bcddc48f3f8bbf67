// Package services contains domain services of the dispatch system.
//
// A domain service hosts business logic that spans more than one aggregate.
// The Dispatcher couples the two state changes of an assignment — the order
// moving to Active and the driver's busy window — so that they always happen
// together and with the same delivery deadline.
package services
