package cmd

import "time"

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultHTTPPort         = "8080"
	DefaultDeliveryDuration = 30 * time.Minute
)

// DefaultDriverNames is the roster registered at startup when DRIVER_NAMES
// is unset. Drivers get sequential identifiers DRV1..DRVn in this order.
func DefaultDriverNames() []string {
	return []string{"John", "Sarah", "Mike", "Emma", "David"}
}

type Config struct {
	HTTPPort         string
	DeliveryDuration time.Duration
	DriverNames      []string
	AssignJobEnabled bool
}
