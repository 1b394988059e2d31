package insight

import (
	"errors"
	"fmt"
)

// Decode errors are the trust boundary's failure modes. Callers surface them
// all as one "could not interpret result" condition; the concrete type stays
// in the chain for diagnostics.

type MalformedPayloadError struct {
	Cause error
}

func (e *MalformedPayloadError) Error() string { return fmt.Sprintf("malformed payload: %v", e.Cause) }
func (e *MalformedPayloadError) Unwrap() error { return e.Cause }

type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string { return fmt.Sprintf("missing required field %q", e.Path) }

type InvalidEnumError struct {
	Path  string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("field %q holds %q, not a member of its enum", e.Path, e.Value)
}

type InvalidValueError struct {
	Path   string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("field %q is invalid: %s", e.Path, e.Reason)
}

// IsDecodeError reports whether err (or anything it wraps) is one of the
// decode failure kinds.
func IsDecodeError(err error) bool {
	var mp *MalformedPayloadError
	var mf *MissingFieldError
	var ie *InvalidEnumError
	var iv *InvalidValueError
	return errors.As(err, &mp) || errors.As(err, &mf) || errors.As(err, &ie) || errors.As(err, &iv)
}
