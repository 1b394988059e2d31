package ai

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse means the service answered but produced no text.
var ErrEmptyResponse = errors.New("inference service returned an empty response")

// GatewayError wraps a transport or service-level failure (network, auth,
// quota). The cause is kept for diagnostics; callers treat it as a single
// "analysis failed" condition.
type GatewayError struct {
	Cause error
}

func (e *GatewayError) Error() string { return fmt.Sprintf("inference gateway: %v", e.Cause) }

func (e *GatewayError) Unwrap() error { return e.Cause }
