package extop

import (
	"crypto/tls"
	"sync"
)

// StartTLSOID is the OID for the StartTLS extended operation, as defined in
// RFC 4511 Section 4.14.
const StartTLSOID = "1.3.6.1.4.1.1466.20037"

// StartTLS implements the client side of the StartTLS extended operation.
// It asks the server to upgrade the connection to TLS and, if accepted,
// delegates the handshake to the connection's TLSNegotiator.
//
// Neither the request nor the response carries a value.
type StartTLS struct {
	conn Conn
	// mu protects negotiated
	mu sync.Mutex
	// negotiated is set once the TLS upgrade completed
	negotiated bool
}

// NewStartTLS creates a StartTLS bound to the given connection.
func NewStartTLS(conn Conn) *StartTLS {
	return &StartTLS{conn: conn}
}

// OID returns the object identifier for the StartTLS extended operation.
func (s *StartTLS) OID() string {
	return StartTLSOID
}

// Started reports whether TLS has been negotiated on the connection.
func (s *StartTLS) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.negotiated
}

// Start issues the StartTLS operation and performs the TLS upgrade.
// Returns ErrTLSAlreadyStarted if TLS was already negotiated,
// ErrNoTLSNegotiator if the connection cannot upgrade its transport, and a
// *ResultError if the server refuses the operation.
func (s *StartTLS) Start(config *tls.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.negotiated {
		return ErrTLSAlreadyStarted
	}

	negotiator, ok := s.conn.(TLSNegotiator)
	if !ok {
		return ErrNoTLSNegotiator
	}

	resp, err := s.conn.Extended(&Request{OID: StartTLSOID})
	if err != nil {
		return err
	}
	if err := resp.Result.Err(); err != nil {
		return err
	}

	if err := negotiator.NegotiateTLS(config); err != nil {
		return err
	}

	s.negotiated = true
	return nil
}

// Close marks the TLS layer as closed. Returns ErrTLSNotStarted if TLS was
// never negotiated.
func (s *StartTLS) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.negotiated {
		return ErrTLSNotStarted
	}
	s.negotiated = false
	return nil
}
