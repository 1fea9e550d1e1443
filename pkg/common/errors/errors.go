package errors

import "errors"

// Common error types used across the pushflow library

var (
	// ErrStop signals that the downstream side wants no further values.
	// It is normal control flow, not a failure: composition operators
	// propagate it upstream and driving loops treat it as clean termination.
	ErrStop = errors.New("stop requested")

	// ErrClosed indicates that an operation was attempted on a closed resource
	ErrClosed = errors.New("resource is closed")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsStop returns true if the error is a graceful stop request rather than
// a real failure.
func IsStop(err error) bool {
	return errors.Is(err, ErrStop)
}
