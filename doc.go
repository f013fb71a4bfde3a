// Package extop builds and parses the payloads of LDAPv3 extended
// operations (RFC 4511 Section 4.12) on the client side.
//
// An extended operation is a generic request/response envelope identified by
// an object identifier (OID) whose value is an opaque byte string. This
// package supplies the BER codec those byte strings are built from (see the
// ber subpackage), the envelope model, and implementations of the common
// extensions:
//
//   - Password Modify (RFC 3062)
//   - Who Am I (RFC 4532)
//   - StartTLS (RFC 4511 Section 4.14)
//   - Active Directory capability markers and unicodePwd encoding
//
// # Transport
//
// The package performs no I/O. Everything that talks to a directory server
// sits behind the Conn interface:
//
//	type Conn interface {
//	    Extended(req *Request) (*Response, error)
//	}
//
// A Conn that can upgrade its transport to TLS additionally implements
// TLSNegotiator; StartTLS uses it after a successful response.
//
// # Extensions
//
// Extensions are composed through an explicit Registry; there is no
// package-level default:
//
//	r := extop.NewRegistry()
//	if err := extop.RegisterDefaults(r); err != nil {
//	    // handle error
//	}
//	ext, err := r.New(extop.PasswordModifyOID, conn)
//	pm := ext.(*extop.PasswordModify)
//	gen, err := pm.ChangePassword("uid=alice,dc=example,dc=com", "old", "new")
//
// # Server classification
//
// DetectServerType classifies a directory server from its advertised
// supportedExtension/supportedCapabilities OIDs. Fetching that list is the
// caller's job; the function itself is pure.
package extop
