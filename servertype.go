package extop

import "strings"

// Root-DSE attribute names used to discover server capabilities and naming
// contexts. Fetching them is the transport's job; they are defined here so
// collaborators agree on the names.
const (
	// AttrSupportedExtension lists the supported LDAPv3 extensions.
	AttrSupportedExtension = "supportedExtension"
	// AttrNamingContexts is the OpenLDAP base DN attribute.
	AttrNamingContexts = "namingContexts"
	// AttrDefaultNamingContext is the Active Directory base DN attribute.
	AttrDefaultNamingContext = "defaultNamingContext"
	// AttrDSAName is the Novell eDirectory base DN attribute.
	AttrDSAName = "dsaName"
)

// OID prefixes identifying server families.
const (
	openLDAPPrefix  = "1.3.6.1.4.1.4203"
	microsoftPrefix = "1.2.840.113556.1"
)

// ServerType denotes the directory server families this package can
// classify.
type ServerType int

const (
	// ServerUnknown means the OID list matched no known family.
	ServerUnknown ServerType = iota
	// ServerOpenLDAP is an OpenLDAP server.
	ServerOpenLDAP
	// ServerActiveDirectory is a Windows 2000 era Active Directory.
	ServerActiveDirectory
	// ServerActiveDirectory2003 is Active Directory on Windows Server 2003
	// or later.
	ServerActiveDirectory2003
)

// String returns a display name for the server type.
func (s ServerType) String() string {
	switch s {
	case ServerOpenLDAP:
		return "OpenLDAP"
	case ServerActiveDirectory:
		return "Active Directory Win2k or later"
	case ServerActiveDirectory2003:
		return "Active Directory Win2k3 or later"
	default:
		return "Unknown LDAP server"
	}
}

// DetectServerType classifies a server from the OIDs it advertises in its
// root DSE (supportedExtension and supportedCapabilities values). Any
// OpenLDAP-arc OID identifies OpenLDAP immediately; Microsoft-arc OIDs
// identify Active Directory, with the Win2k3 capability OID upgrading the
// generation. The function is pure; callers fetch the OID list themselves.
func DetectServerType(oids []string) ServerType {
	result := ServerUnknown

	for _, oid := range oids {
		oid = strings.TrimSpace(oid)

		if strings.HasPrefix(oid, openLDAPPrefix) {
			return ServerOpenLDAP
		}
		if strings.HasPrefix(oid, microsoftPrefix) {
			switch oid {
			case ActiveDirectoryWin2k3OID:
				result = ServerActiveDirectory2003
			case ActiveDirectoryWin2kOID:
				if result != ServerActiveDirectory2003 {
					result = ServerActiveDirectory
				}
			default:
				if result == ServerUnknown {
					result = ServerActiveDirectory
				}
			}
		}
	}

	return result
}
