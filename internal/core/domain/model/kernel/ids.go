package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"dispatch/internal/pkg/errs"
)

const (
	// orderIDPrefix is the prefix of every order identifier, e.g. "ORD12".
	orderIDPrefix = "ORD"
	// driverIDPrefix is the prefix of every driver identifier, e.g. "DRV3".
	driverIDPrefix = "DRV"
)

// Validation errors for identifier value objects.
var (
	// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
	ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
		"OrderID must be created via NewOrderID or OrderIDFromString")
	// ErrDriverIDIsNotConstructed is returned when validating a zero-value DriverID.
	ErrDriverIDIsNotConstructed = errs.NewValueIsRequiredError(
		"DriverID must be created via NewDriverID or DriverIDFromString")
)

// OrderID is a value object identifying an order. Order identifiers are
// allocated sequentially at order creation and rendered as "ORD<n>" with
// n starting at 1. Identifiers are never reused.
//
// Example usage:
//
//	id, err := kernel.NewOrderID(7)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "ORD7"
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from a positive sequence number.
// Returns an error if seq is not greater than zero.
func NewOrderID(seq int) (OrderID, error) {
	if seq <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order sequence number",
			fmt.Errorf("%d is not greater than 0", seq))
	}
	return OrderID{value: orderIDPrefix + strconv.Itoa(seq)}, nil
}

// OrderIDFromString parses an OrderID from its string representation.
// Accepts only the canonical "ORD<n>" format with a positive n. This function
// is typically used when identifiers arrive from external callers.
func OrderIDFromString(s string) (OrderID, error) {
	seq, err := parseSequence(s, orderIDPrefix)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return NewOrderID(seq)
}

// String returns the canonical "ORD<n>" representation.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was created through a constructor.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// DriverID is a value object identifying a driver. Driver identifiers are
// assigned once when the roster is created at startup and rendered as
// "DRV<n>" with n starting at 1. The roster never grows or shrinks, so the
// set of valid driver identifiers is fixed for the process lifetime.
type DriverID struct {
	value string
}

// NewDriverID creates a DriverID from a positive roster position.
// Returns an error if seq is not greater than zero.
func NewDriverID(seq int) (DriverID, error) {
	if seq <= 0 {
		return DriverID{}, errs.NewValueIsInvalidErrorWithCause("driver sequence number",
			fmt.Errorf("%d is not greater than 0", seq))
	}
	return DriverID{value: driverIDPrefix + strconv.Itoa(seq)}, nil
}

// DriverIDFromString parses a DriverID from its string representation.
// Accepts only the canonical "DRV<n>" format with a positive n.
func DriverIDFromString(s string) (DriverID, error) {
	seq, err := parseSequence(s, driverIDPrefix)
	if err != nil {
		return DriverID{}, errs.NewValueIsInvalidErrorWithCause("driver id", err)
	}
	return NewDriverID(seq)
}

// String returns the canonical "DRV<n>" representation.
func (id DriverID) String() string {
	return id.value
}

// IsEqual compares two driver identifiers for equality.
func (id DriverID) IsEqual(other DriverID) bool {
	return id.value == other.value
}

// Validate checks that the DriverID was created through a constructor.
// Returns ErrDriverIDIsNotConstructed for the zero value.
func (id DriverID) Validate() error {
	if id.value == "" {
		return ErrDriverIDIsNotConstructed
	}
	return nil
}

// parseSequence extracts the numeric suffix of an identifier with the given
// prefix. Leading zeros are rejected so each identifier has exactly one
// canonical spelling.
func parseSequence(s, prefix string) (int, error) {
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("%q does not start with %q", s, prefix)
	}

	suffix := strings.TrimPrefix(s, prefix)
	if suffix == "" {
		return 0, fmt.Errorf("%q has no sequence number", s)
	}
	if len(suffix) > 1 && suffix[0] == '0' {
		return 0, fmt.Errorf("%q has a non-canonical sequence number", s)
	}

	seq, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, fmt.Errorf("%q has a non-numeric sequence number", s)
	}
	return seq, nil
}
