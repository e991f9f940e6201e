package engine

import (
	"errors"
	"fmt"
)

// FailureKind is the stable classification of a failed engine call.
type FailureKind string

const (
	// FailureServiceDown covers refused connections and 5xx answers.
	FailureServiceDown FailureKind = "service_down"
	// FailureTimeout covers calls cut off by the configured deadline.
	FailureTimeout FailureKind = "timeout"
	// FailureRateLimited covers HTTP 429 answers.
	FailureRateLimited FailureKind = "rate_limited"
	// FailureGeneric covers every other transport or HTTP error.
	FailureGeneric FailureKind = "generic"
)

// Error is a classified engine call failure.
type Error struct {
	Kind  FailureKind
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("engine failure: %s", e.Kind)
	}
	return fmt.Sprintf("engine failure (%s): %v", e.Kind, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewError wraps cause with a failure classification.
func NewError(kind FailureKind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// KindOf extracts the failure classification from an error returned by
// Process. Unclassified errors map to FailureGeneric.
func KindOf(err error) FailureKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return FailureGeneric
}
