package extop

// ResultCode represents an LDAP result code as defined in RFC 4511
// Section 4.1.9, restricted to the codes extended operations produce.
// resultCode ENUMERATED {
//
//	success                      (0),
//	operationsError              (1),
//	protocolError                (2),
//	authMethodNotSupported       (7),
//	unavailableCriticalExtension (12),
//	confidentialityRequired      (13),
//	constraintViolation          (19),
//	invalidCredentials           (49),
//	insufficientAccessRights     (50),
//	unavailable                  (52),
//	unwillingToPerform           (53),
//	other                        (80),
//	...
//
// }
type ResultCode int32

// LDAP result codes per RFC 4511 Section 4.1.9
const (
	// ResultSuccess indicates the operation completed successfully.
	ResultSuccess ResultCode = 0

	// ResultOperationsError indicates an error occurred during processing
	// that is not covered by another result code.
	ResultOperationsError ResultCode = 1

	// ResultProtocolError indicates the server received data that is not
	// well-formed or violates the protocol.
	ResultProtocolError ResultCode = 2

	// ResultAuthMethodNotSupported indicates the authentication method
	// or mechanism is not supported.
	ResultAuthMethodNotSupported ResultCode = 7

	// ResultUnavailableCriticalExtension indicates a critical control or
	// extension was not recognized or is not supported.
	ResultUnavailableCriticalExtension ResultCode = 12

	// ResultConfidentialityRequired indicates the operation requires
	// confidentiality protection (e.g., TLS).
	ResultConfidentialityRequired ResultCode = 13

	// ResultConstraintViolation indicates an attribute value violates a
	// constraint, such as a password policy.
	ResultConstraintViolation ResultCode = 19

	// ResultInvalidCredentials indicates the supplied credentials are
	// invalid, such as a wrong old password.
	ResultInvalidCredentials ResultCode = 49

	// ResultInsufficientAccessRights indicates the client lacks the access
	// rights to perform the operation.
	ResultInsufficientAccessRights ResultCode = 50

	// ResultUnavailable indicates the server or a required subsystem is
	// unavailable.
	ResultUnavailable ResultCode = 52

	// ResultUnwillingToPerform indicates the server is unwilling to perform
	// the operation.
	ResultUnwillingToPerform ResultCode = 53

	// ResultOther indicates an error not covered by another result code.
	ResultOther ResultCode = 80
)

// String returns the RFC 4511 name of the result code.
func (r ResultCode) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultOperationsError:
		return "operationsError"
	case ResultProtocolError:
		return "protocolError"
	case ResultAuthMethodNotSupported:
		return "authMethodNotSupported"
	case ResultUnavailableCriticalExtension:
		return "unavailableCriticalExtension"
	case ResultConfidentialityRequired:
		return "confidentialityRequired"
	case ResultConstraintViolation:
		return "constraintViolation"
	case ResultInvalidCredentials:
		return "invalidCredentials"
	case ResultInsufficientAccessRights:
		return "insufficientAccessRights"
	case ResultUnavailable:
		return "unavailable"
	case ResultUnwillingToPerform:
		return "unwillingToPerform"
	case ResultOther:
		return "other"
	default:
		return "unknown"
	}
}
