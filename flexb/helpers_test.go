package flexb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustRoot binds data's root or fails the test.
func mustRoot(t *testing.T, data []byte) Ref {
	t.Helper()
	ref, err := Root(data)
	require.NoError(t, err)
	return ref
}

// mustLookup resolves a map key or fails the test.
func mustLookup(t *testing.T, m Map, key string) Ref {
	t.Helper()
	ref, err := m.Lookup(key)
	require.NoError(t, err, "lookup %q", key)
	return ref
}
