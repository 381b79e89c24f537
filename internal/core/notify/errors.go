package notify

import "fmt"

// ValidationError is returned by Enqueue when the payload is rejected. Err holds
// the per-field criterio errors.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid notification: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
