package extop

import (
	"golang.org/x/text/encoding/unicode"
)

// Active Directory capability OIDs advertised in the root DSE. They mark
// server generations rather than invocable operations.
const (
	// ActiveDirectoryWin2kOID is the LDAP_CAP_ACTIVE_DIRECTORY_OID
	// capability, advertised by Windows 2000 and later.
	ActiveDirectoryWin2kOID = "1.2.840.113556.1.4.800"
	// ActiveDirectoryWin2k3OID is the LDAP_CAP_ACTIVE_DIRECTORY_V51_OID
	// capability, advertised by Windows Server 2003 and later.
	ActiveDirectoryWin2k3OID = "1.2.840.113556.1.4.1670"
)

// ActiveDirectoryWin2k is the capability marker for Windows 2000 Active
// Directory. It carries no operation of its own; its presence in a registry
// lets callers test for AD-specific behavior such as unicodePwd password
// changes.
type ActiveDirectoryWin2k struct {
	conn Conn
}

// NewActiveDirectoryWin2k creates the marker bound to the given connection.
func NewActiveDirectoryWin2k(conn Conn) *ActiveDirectoryWin2k {
	return &ActiveDirectoryWin2k{conn: conn}
}

// OID returns the Windows 2000 Active Directory capability OID.
func (a *ActiveDirectoryWin2k) OID() string {
	return ActiveDirectoryWin2kOID
}

// ActiveDirectoryWin2k3 is the capability marker for Windows Server 2003
// Active Directory.
type ActiveDirectoryWin2k3 struct {
	conn Conn
}

// NewActiveDirectoryWin2k3 creates the marker bound to the given connection.
func NewActiveDirectoryWin2k3(conn Conn) *ActiveDirectoryWin2k3 {
	return &ActiveDirectoryWin2k3{conn: conn}
}

// OID returns the Windows Server 2003 Active Directory capability OID.
func (a *ActiveDirectoryWin2k3) OID() string {
	return ActiveDirectoryWin2k3OID
}

// EncodeUnicodePassword encodes a password for the Active Directory
// unicodePwd attribute: the password surrounded by ASCII double quotes,
// encoded as UTF-16LE without a byte order mark. AD rejects password
// modifications in any other form.
func EncodeUnicodePassword(password string) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	return enc.Bytes([]byte(`"` + password + `"`))
}
