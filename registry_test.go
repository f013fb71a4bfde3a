package extop

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(WhoAmIOID, func(conn Conn) Extension { return NewWhoAmI(conn) }))
	assert.True(t, r.Has(WhoAmIOID))
	assert.Equal(t, 1, r.Count())

	t.Run("nil constructor", func(t *testing.T) {
		assert.ErrorIs(t, r.Register("1.2.3", nil), ErrNilConstructor)
	})

	t.Run("empty OID", func(t *testing.T) {
		err := r.Register("", func(conn Conn) Extension { return NewWhoAmI(conn) })
		assert.ErrorIs(t, err, ErrEmptyOID)
	})

	t.Run("replace existing", func(t *testing.T) {
		require.NoError(t, r.Register(WhoAmIOID, func(conn Conn) Extension { return NewWhoAmI(conn) }))
		assert.Equal(t, 1, r.Count())
	})
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterDefaults(r))

	assert.True(t, r.Unregister(StartTLSOID))
	assert.False(t, r.Has(StartTLSOID))
	assert.False(t, r.Unregister(StartTLSOID))
}

func TestRegistry_New(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterDefaults(r))
	conn := newFakeConn()

	ext, err := r.New(PasswordModifyOID, conn)
	require.NoError(t, err)
	assert.Equal(t, PasswordModifyOID, ext.OID())
	assert.IsType(t, &PasswordModify{}, ext)

	_, err = r.New("9.9.9", conn)
	assert.ErrorIs(t, err, ErrUnknownOID)
}

func TestRegistry_Defaults(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterDefaults(r))

	// Lexicographic order: "...1.4.1670" sorts before "...1.4.800".
	assert.Equal(t, []string{
		ActiveDirectoryWin2k3OID,
		ActiveDirectoryWin2kOID,
		StartTLSOID,
		PasswordModifyOID,
		WhoAmIOID,
	}, r.SupportedOIDs())
}

func TestRegistry_Extensions(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterDefaults(r))
	conn := newFakeConn()

	exts := r.Extensions(conn)
	require.Len(t, exts, 5)

	oids := make([]string, len(exts))
	for i, ext := range exts {
		oids[i] = ext.OID()
	}
	assert.Equal(t, r.SupportedOIDs(), oids)
}

func TestRegistry_Concurrency(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterDefaults(r))
	conn := newFakeConn()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = r.New(WhoAmIOID, conn)
				_ = r.SupportedOIDs()
				_ = r.Register(WhoAmIOID, func(conn Conn) Extension { return NewWhoAmI(conn) })
			}
		}()
	}
	wg.Wait()
}
