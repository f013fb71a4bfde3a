package extop

import (
	"github.com/oba-ldap/extop/ber"
)

// PasswordModifyOID is the OID for the Password Modify extended operation.
// Per RFC 3062: "LDAP Password Modify Extended Operation"
const PasswordModifyOID = "1.3.6.1.4.1.4203.1.11.1"

// Context tags of the Password Modify payload fields.
const (
	tagUserIdentity = ber.ClassContextSpecific | 0 // 0x80
	tagOldPasswd    = ber.ClassContextSpecific | 1 // 0x81
	tagNewPasswd    = ber.ClassContextSpecific | 2 // 0x82
	tagGenPasswd    = ber.ClassContextSpecific | 0 // 0x80
)

// PasswordModifyRequest represents a Password Modify request payload.
// Per RFC 3062:
// PasswdModifyRequestValue ::= SEQUENCE {
//
//	userIdentity    [0]  OCTET STRING OPTIONAL
//	oldPasswd       [1]  OCTET STRING OPTIONAL
//	newPasswd       [2]  OCTET STRING OPTIONAL
//
// }
type PasswordModifyRequest struct {
	// UserIdentity identifies the user whose password is being modified,
	// usually a DN. If empty, the bound user's password is modified.
	UserIdentity string
	// OldPassword is the current password (optional).
	OldPassword string
	// NewPassword is the new password (optional).
	// If empty, the server generates a password.
	NewPassword string
}

// EncodePasswordModifyRequest encodes the RFC 3062 request payload.
// Empty fields are omitted; if every field is empty, no payload is produced
// (an empty request asks the server to generate a password for the bound
// user). The user identity is encoded ISO-8859-1, passwords UTF-8, matching
// the charsets directory servers accept for each field.
func EncodePasswordModifyRequest(userIdentity, oldPasswd, newPasswd string) ([]byte, error) {
	if userIdentity == "" && oldPasswd == "" && newPasswd == "" {
		return nil, nil
	}

	encoder := ber.NewBEREncoder(64)
	encoder.BeginSequence(ber.ClassUniversal | ber.TypeConstructed | ber.TagSequence)

	if userIdentity != "" {
		if err := encoder.WriteStringWithTag(userIdentity, tagUserIdentity, ber.EncodingISO8859_1); err != nil {
			return nil, err
		}
	}
	if oldPasswd != "" {
		if err := encoder.WriteStringWithTag(oldPasswd, tagOldPasswd, ber.EncodingUTF8); err != nil {
			return nil, err
		}
	}
	if newPasswd != "" {
		if err := encoder.WriteStringWithTag(newPasswd, tagNewPasswd, ber.EncodingUTF8); err != nil {
			return nil, err
		}
	}

	if err := encoder.EndSequence(); err != nil {
		return nil, err
	}
	return encoder.TrimmedBytes()
}

// ParsePasswordModifyRequest parses the RFC 3062 request payload. Empty
// data is valid and yields an all-empty request. Unknown tags inside the
// sequence are skipped.
func ParsePasswordModifyRequest(data []byte) (*PasswordModifyRequest, error) {
	req := &PasswordModifyRequest{}

	if len(data) == 0 {
		return req, nil
	}

	decoder := ber.NewBERDecoder(data)
	if _, err := decoder.ExpectSequence(ber.ClassUniversal | ber.TypeConstructed | ber.TagSequence); err != nil {
		return nil, err
	}

	for decoder.Remaining() > 0 {
		tag, err := decoder.PeekByte()
		if err != nil {
			return nil, err
		}

		switch tag {
		case tagUserIdentity:
			s, _, err := decoder.ReadStringWithTag(tagUserIdentity, ber.EncodingISO8859_1)
			if err != nil {
				return nil, err
			}
			req.UserIdentity = s

		case tagOldPasswd:
			s, _, err := decoder.ReadStringWithTag(tagOldPasswd, ber.EncodingUTF8)
			if err != nil {
				return nil, err
			}
			req.OldPassword = s

		case tagNewPasswd:
			s, _, err := decoder.ReadStringWithTag(tagNewPasswd, ber.EncodingUTF8)
			if err != nil {
				return nil, err
			}
			req.NewPassword = s

		default:
			if err := decoder.Skip(); err != nil {
				return nil, err
			}
		}
	}

	return req, nil
}

// EncodePasswordModifyResponse encodes the RFC 3062 response payload.
// Per RFC 3062:
// PasswdModifyResponseValue ::= SEQUENCE {
//
//	genPasswd       [0]     OCTET STRING OPTIONAL
//
// }
//
// An empty generated password produces no payload.
func EncodePasswordModifyResponse(genPasswd string) ([]byte, error) {
	if genPasswd == "" {
		return nil, nil
	}

	encoder := ber.NewBEREncoder(64)
	encoder.BeginSequence(ber.ClassUniversal | ber.TypeConstructed | ber.TagSequence)
	if err := encoder.WriteStringWithTag(genPasswd, tagGenPasswd, ber.EncodingUTF8); err != nil {
		return nil, err
	}
	if err := encoder.EndSequence(); err != nil {
		return nil, err
	}
	return encoder.TrimmedBytes()
}

// ParsePasswordModifyResponse parses the RFC 3062 response payload,
// returning the server-generated password. Empty or absent data yields an
// empty string, as does a sequence without the optional genPasswd field.
func ParsePasswordModifyResponse(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	decoder := ber.NewBERDecoder(data)
	if _, err := decoder.ExpectSequence(ber.ClassUniversal | ber.TypeConstructed | ber.TagSequence); err != nil {
		return "", err
	}
	if decoder.Remaining() == 0 {
		return "", nil
	}

	genPasswd, _, err := decoder.ReadStringWithTag(tagGenPasswd, ber.EncodingUTF8)
	if err != nil {
		return "", err
	}
	return genPasswd, nil
}

// PasswordModify implements the client side of the Password Modify extended
// operation (RFC 3062), supported by most LDAPv3 servers. It changes the
// password of directory entries holding userPassword-style attributes; the
// server decides how the password is stored.
type PasswordModify struct {
	conn Conn
}

// NewPasswordModify creates a PasswordModify bound to the given connection.
func NewPasswordModify(conn Conn) *PasswordModify {
	return &PasswordModify{conn: conn}
}

// OID returns the object identifier for the Password Modify extended
// operation.
func (p *PasswordModify) OID() string {
	return PasswordModifyOID
}

// ChangePassword changes the password of userIdentity (usually a DN; empty
// means the bound user). oldPasswd may be empty when the bind credentials
// already authorize the change. An empty newPasswd asks the server to
// generate one; the generated password is returned when the server supplies
// it. A non-success directory result is returned as a *ResultError.
func (p *PasswordModify) ChangePassword(userIdentity, oldPasswd, newPasswd string) (string, error) {
	value, err := EncodePasswordModifyRequest(userIdentity, oldPasswd, newPasswd)
	if err != nil {
		return "", err
	}

	resp, err := p.conn.Extended(&Request{OID: PasswordModifyOID, Value: value})
	if err != nil {
		return "", err
	}
	if err := resp.Result.Err(); err != nil {
		return "", err
	}

	return ParsePasswordModifyResponse(resp.Value)
}
