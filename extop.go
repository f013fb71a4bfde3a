package extop

import "crypto/tls"

// Conn is the transport collaborator: anything that can issue an LDAP
// extended operation and return its response. Connecting, binding and
// message framing all live behind this interface.
//
// Implementations are expected to surface directory results verbatim; a
// non-success result code is carried in the Response, not turned into an
// error, so extensions can decide how to report it.
type Conn interface {
	// Extended sends an extended request and returns the server's response.
	Extended(req *Request) (*Response, error)
}

// TLSNegotiator is optionally implemented by Conns whose transport can be
// upgraded to TLS in place. StartTLS delegates the upgrade to it after the
// server accepts the operation.
type TLSNegotiator interface {
	// NegotiateTLS performs the client-side TLS handshake on the
	// connection's transport.
	NegotiateTLS(config *tls.Config) error
}

// Extension is an extended operation bound to a connection. Concrete
// extension types expose their own operation methods; the interface carries
// only the identity used for registration and capability checks.
type Extension interface {
	// OID returns the object identifier of the extended operation.
	OID() string
}
