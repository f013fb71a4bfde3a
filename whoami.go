package extop

// WhoAmIOID is the OID for the Who Am I extended operation.
// Per RFC 4532: "LDAP Who am I? Operation"
const WhoAmIOID = "1.3.6.1.4.1.4203.1.11.3"

// WhoAmI implements the client side of the Who Am I extended operation
// (RFC 4532). It returns the authorization identity the server associates
// with the connection, which is useful for debugging and connection pooling
// scenarios.
//
// Per RFC 4532, the response value is:
//   - an empty string for anonymous connections
//   - "dn:<DN>" for connections bound with a distinguished name
//   - "u:<userid>" for connections bound with a plain user identity
//
// The request carries no value, and the response value is the raw
// authorization identity with no BER wrapping.
type WhoAmI struct {
	conn Conn
}

// NewWhoAmI creates a WhoAmI bound to the given connection.
func NewWhoAmI(conn Conn) *WhoAmI {
	return &WhoAmI{conn: conn}
}

// OID returns the object identifier for the Who Am I extended operation.
func (w *WhoAmI) OID() string {
	return WhoAmIOID
}

// Identity returns the authorization identity of the connection. A
// non-success directory result is returned as a *ResultError.
func (w *WhoAmI) Identity() (string, error) {
	resp, err := w.conn.Extended(&Request{OID: WhoAmIOID})
	if err != nil {
		return "", err
	}
	if err := resp.Result.Err(); err != nil {
		return "", err
	}
	return string(resp.Value), nil
}
