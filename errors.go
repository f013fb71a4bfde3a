package extop

import (
	"errors"
	"fmt"
)

// Registry errors
var (
	// ErrUnknownOID is returned when no constructor is registered for the
	// requested OID.
	ErrUnknownOID = errors.New("extop: unknown extended operation OID")
	// ErrNilConstructor is returned when attempting to register a nil
	// constructor.
	ErrNilConstructor = errors.New("extop: cannot register nil constructor")
	// ErrEmptyOID is returned when attempting to register a constructor with
	// an empty OID.
	ErrEmptyOID = errors.New("extop: cannot register constructor with empty OID")
)

// StartTLS errors
var (
	// ErrTLSAlreadyStarted is returned when Start is called on a session
	// that already negotiated TLS.
	ErrTLSAlreadyStarted = errors.New("extop: TLS already started")
	// ErrTLSNotStarted is returned when Close is called before TLS was
	// negotiated.
	ErrTLSNotStarted = errors.New("extop: TLS not started")
	// ErrNoTLSNegotiator is returned when the connection cannot upgrade its
	// transport to TLS.
	ErrNoTLSNegotiator = errors.New("extop: connection does not support TLS negotiation")
)

// ResultError reports a non-success directory result for an extended
// operation.
type ResultError struct {
	Code              ResultCode
	MatchedDN         string
	DiagnosticMessage string
}

// Error implements the error interface.
func (e *ResultError) Error() string {
	if e.DiagnosticMessage != "" {
		return fmt.Sprintf("extop: directory result %d (%s): %s", int32(e.Code), e.Code, e.DiagnosticMessage)
	}
	return fmt.Sprintf("extop: directory result %d (%s)", int32(e.Code), e.Code)
}

// Is matches two ResultErrors on their result code, so callers can test
// against a bare &ResultError{Code: ...} with errors.Is.
func (e *ResultError) Is(target error) bool {
	t, ok := target.(*ResultError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
