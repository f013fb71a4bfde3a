package extop

import (
	"sort"
	"sync"
)

// Constructor builds an Extension bound to a connection.
type Constructor func(conn Conn) Extension

// Registry maps extended operation OIDs to extension constructors. It is an
// explicit object handed to whatever composes extensions; the package
// defines no ambient default registry.
//
// A Registry is safe for concurrent use.
type Registry struct {
	// constructors maps OIDs to their extension constructors
	constructors map[string]Constructor
	// mu protects concurrent access to constructors
	mu sync.RWMutex
}

// NewRegistry creates a new, empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// Register registers a constructor for the given OID. An existing
// registration for the OID is replaced. Returns an error if the constructor
// is nil or the OID is empty.
func (r *Registry) Register(oid string, ctor Constructor) error {
	if ctor == nil {
		return ErrNilConstructor
	}
	if oid == "" {
		return ErrEmptyOID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.constructors[oid] = ctor
	return nil
}

// Unregister removes the constructor for the specified OID.
// Returns true if a constructor was removed, false if none was registered.
func (r *Registry) Unregister(oid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[oid]; exists {
		delete(r.constructors, oid)
		return true
	}
	return false
}

// New builds the extension registered for the OID, bound to conn.
// Returns ErrUnknownOID if no constructor is registered.
func (r *Registry) New(oid string, conn Conn) (Extension, error) {
	r.mu.RLock()
	ctor, exists := r.constructors[oid]
	r.mu.RUnlock()

	if !exists {
		return nil, ErrUnknownOID
	}
	return ctor(conn), nil
}

// Extensions builds every registered extension bound to conn, ordered by OID.
func (r *Registry) Extensions(conn Conn) []Extension {
	oids := r.SupportedOIDs()

	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]Extension, 0, len(oids))
	for _, oid := range oids {
		if ctor, exists := r.constructors[oid]; exists {
			exts = append(exts, ctor(conn))
		}
	}
	return exts
}

// Has returns true if a constructor is registered for the specified OID.
func (r *Registry) Has(oid string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.constructors[oid]
	return exists
}

// SupportedOIDs returns a sorted list of all registered OIDs.
func (r *Registry) SupportedOIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	oids := make([]string, 0, len(r.constructors))
	for oid := range r.constructors {
		oids = append(oids, oid)
	}
	sort.Strings(oids)
	return oids
}

// Count returns the number of registered constructors.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.constructors)
}

// RegisterDefaults registers the built-in extensions: Password Modify,
// Who Am I, StartTLS and the Active Directory capability markers.
func RegisterDefaults(r *Registry) error {
	defaults := map[string]Constructor{
		PasswordModifyOID:        func(conn Conn) Extension { return NewPasswordModify(conn) },
		WhoAmIOID:                func(conn Conn) Extension { return NewWhoAmI(conn) },
		StartTLSOID:              func(conn Conn) Extension { return NewStartTLS(conn) },
		ActiveDirectoryWin2kOID:  func(conn Conn) Extension { return NewActiveDirectoryWin2k(conn) },
		ActiveDirectoryWin2k3OID: func(conn Conn) Extension { return NewActiveDirectoryWin2k3(conn) },
	}

	for oid, ctor := range defaults {
		if err := r.Register(oid, ctor); err != nil {
			return err
		}
	}
	return nil
}
