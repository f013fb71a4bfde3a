package extop

import (
	"github.com/oba-ldap/extop/ber"
)

// Application tags for the extended operation envelope per RFC 4511.
const (
	// TagExtendedRequest is [APPLICATION 23], constructed.
	TagExtendedRequest = ber.ClassApplication | ber.TypeConstructed | 23 // 0x77
	// TagExtendedResponse is [APPLICATION 24], constructed.
	TagExtendedResponse = ber.ClassApplication | ber.TypeConstructed | 24 // 0x78
)

// Context tags inside the envelope.
const (
	tagRequestName   = ber.ClassContextSpecific | 0  // 0x80
	tagRequestValue  = ber.ClassContextSpecific | 1  // 0x81
	tagResponseName  = ber.ClassContextSpecific | 10 // 0x8A
	tagResponseValue = ber.ClassContextSpecific | 11 // 0x8B
)

// Request represents an LDAP Extended Request.
// Per RFC 4511 Section 4.12:
// ExtendedRequest ::= [APPLICATION 23] SEQUENCE {
//
//	requestName      [0] LDAPOID,
//	requestValue     [1] OCTET STRING OPTIONAL
//
// }
type Request struct {
	// OID is the object identifier for the extended operation
	OID string
	// Value is the optional request value
	Value []byte
}

// Response represents an LDAP Extended Response.
// Per RFC 4511 Section 4.12:
// ExtendedResponse ::= [APPLICATION 24] SEQUENCE {
//
//	COMPONENTS OF LDAPResult,
//	responseName     [10] LDAPOID OPTIONAL,
//	responseValue    [11] OCTET STRING OPTIONAL
//
// }
type Response struct {
	// Result contains the LDAP result code and messages
	Result Result
	// OID is the optional response OID
	OID string
	// Value is the optional response value
	Value []byte
}

// Result carries the LDAPResult components of a response.
type Result struct {
	// Code is the LDAP result code
	Code ResultCode
	// MatchedDN is the matched DN from the result
	MatchedDN string
	// DiagnosticMessage is the human-readable diagnostic from the server
	DiagnosticMessage string
}

// Err returns a *ResultError for a non-success result, nil otherwise.
func (r Result) Err() error {
	if r.Code == ResultSuccess {
		return nil
	}
	return &ResultError{
		Code:              r.Code,
		MatchedDN:         r.MatchedDN,
		DiagnosticMessage: r.DiagnosticMessage,
	}
}

// EncodeExtendedRequest encodes a Request as the [APPLICATION 23] envelope.
// The message ID and outer LDAPMessage framing belong to the transport and
// are not included.
func EncodeExtendedRequest(req *Request) ([]byte, error) {
	encoder := ber.NewBEREncoder(64 + len(req.OID) + len(req.Value))

	encoder.BeginSequence(TagExtendedRequest)

	// requestName [0] LDAPOID
	if err := encoder.WriteOctetStringWithTag([]byte(req.OID), tagRequestName); err != nil {
		return nil, err
	}

	// requestValue [1] OCTET STRING OPTIONAL
	if req.Value != nil {
		if err := encoder.WriteOctetStringWithTag(req.Value, tagRequestValue); err != nil {
			return nil, err
		}
	}

	if err := encoder.EndSequence(); err != nil {
		return nil, err
	}
	return encoder.TrimmedBytes()
}

// ParseExtendedResponse parses an [APPLICATION 24] envelope into a Response.
func ParseExtendedResponse(data []byte) (*Response, error) {
	decoder := ber.NewBERDecoder(data)
	resp := &Response{}

	if _, err := decoder.ExpectSequence(TagExtendedResponse); err != nil {
		return nil, err
	}

	// resultCode ENUMERATED
	code, err := decoder.ReadEnumerated()
	if err != nil {
		return nil, err
	}
	resp.Result.Code = ResultCode(code)

	// matchedDN LDAPDN
	matchedDN, _, err := decoder.ReadStringWithTag(ber.TagOctetString, ber.EncodingUTF8)
	if err != nil {
		return nil, err
	}
	resp.Result.MatchedDN = matchedDN

	// diagnosticMessage LDAPString
	diagnostic, _, err := decoder.ReadStringWithTag(ber.TagOctetString, ber.EncodingUTF8)
	if err != nil {
		return nil, err
	}
	resp.Result.DiagnosticMessage = diagnostic

	// responseName [10] LDAPOID OPTIONAL
	if decoder.Remaining() > 0 {
		tag, err := decoder.PeekByte()
		if err != nil {
			return nil, err
		}
		if tag == tagResponseName {
			oid, _, err := decoder.ReadStringWithTag(tagResponseName, ber.EncodingUTF8)
			if err != nil {
				return nil, err
			}
			resp.OID = oid
		}
	}

	// responseValue [11] OCTET STRING OPTIONAL
	if decoder.Remaining() > 0 {
		tag, err := decoder.PeekByte()
		if err != nil {
			return nil, err
		}
		if tag == tagResponseValue {
			value, _, err := decoder.ReadOctetString(tagResponseValue)
			if err != nil {
				return nil, err
			}
			resp.Value = value
		}
	}

	return resp, nil
}
