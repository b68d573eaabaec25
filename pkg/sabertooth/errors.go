package sabertooth

import (
	"errors"
	"fmt"
)

// Kind classifies driver errors for programmatic dispatch.
type Kind int

const (
	// KindUnknown is the catch-all and should not occur in normal
	// operation.
	KindUnknown Kind = iota
	// KindTransport reports a failure from the underlying transport.
	// The transport's own error is wrapped and reachable through
	// errors.As / errors.Is.
	KindTransport
	// KindInvalidInput reports a caller-supplied value outside its
	// legal range. Fix the call site instead of retrying.
	KindInvalidInput
	// KindResponse reports a malformed controller response. The packet
	// protocol never reads, so this kind is reserved for the text
	// protocol sibling.
	KindResponse
)

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindInvalidInput:
		return "invalid_input"
	case KindResponse:
		return "response"
	}
	return "unknown"
}

// Error is returned by every fallible operation in this package. It is
// constructed at the failure site and never mutated afterwards.
type Error struct {
	// Kind of error this is.
	Kind Kind

	// Description of the error suitable for end users.
	Description string

	err error
}

// Error implements error.
func (e *Error) Error() string { return e.Description }

// Unwrap exposes the wrapped transport error, if any.
func (e *Error) Unwrap() error { return e.err }

// IsKind reports whether err is a driver Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func invalidInputf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Description: fmt.Sprintf(format, args...)}
}

// wrapTransport wraps a transport failure, preserving the transport's own
// error for sub-kind matching. Driver errors pass through unchanged.
func wrapTransport(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindTransport, Description: err.Error(), err: err}
}
