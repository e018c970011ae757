package flexkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/flexkit/flexb/verify"
	"github.com/joshuapare/flexkit/internal/testutil"
	"github.com/joshuapare/flexkit/pkg/types"
)

func openMap(t *testing.T, opts OpenOptions) *Buffer {
	t.Helper()
	path := testutil.WriteFixture(t, "map.flexb", testutil.MapBytes)
	b, err := Open(path, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestOpen_Mapped(t *testing.T) {
	b := openMap(t, OpenOptions{})
	require.Equal(t, testutil.MapBytes, b.Bytes())

	root, err := b.Root()
	require.NoError(t, err)
	require.Equal(t, types.TypeMap, root.Type())
}

func TestOpen_CopyAndVerify(t *testing.T) {
	b := openMap(t, OpenOptions{Copy: true, Verify: true})
	require.NoError(t, b.Verify())
}

func TestFind(t *testing.T) {
	b := openMap(t, OpenOptions{})

	tests := []struct {
		path string
		want string
	}{
		{"vec/1", "Fred"},
		{"/mymap/sbool2", "false"},
		{"mymap//foo/", "Fred"},
	}
	for _, tt := range tests {
		ref, err := b.Find(tt.path)
		require.NoError(t, err, tt.path)
		s, err := ref.AsString()
		require.NoError(t, err, tt.path)
		require.Equal(t, tt.want, s, tt.path)
	}

	ref, err := b.Find("bar3/2")
	require.NoError(t, err)
	n, err := ref.AsInt64()
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	root, err := b.Find("/")
	require.NoError(t, err)
	require.True(t, root.IsMap())
}

func TestFind_Errors(t *testing.T) {
	b := openMap(t, OpenOptions{})

	tests := []struct {
		path string
		want error
	}{
		{"nope", types.ErrNotFound},
		{"bar/3", types.ErrNotFound},
		{"bar/-1", types.ErrNotFound},
		{"foo/x", types.ErrNotFound},
		{"vec/x", types.ErrInvalidArgument},
	}
	for _, tt := range tests {
		_, err := b.Find(tt.path)
		require.ErrorIs(t, err, tt.want, tt.path)
	}

	_, err := b.Find("vec/1/0")
	require.ErrorContains(t, err, `at "vec/1"`)
}

func TestInfo(t *testing.T) {
	b := openMap(t, OpenOptions{})
	info, err := b.Info()
	require.NoError(t, err)
	require.Equal(t, Info{
		Size:        len(testutil.MapBytes),
		RootType:    types.TypeMap,
		RootOffset:  testutil.MapRootOffset,
		ParentWidth: 1,
		ByteWidth:   4,
		Len:         6,
	}, info)

	scalar, err := FromBytes(testutil.LongInt, OpenOptions{})
	require.NoError(t, err)
	info, err = scalar.Info()
	require.NoError(t, err)
	require.Equal(t, -1, info.Len)
	require.Equal(t, uint8(8), info.ParentWidth)
}

func TestClose(t *testing.T) {
	path := testutil.WriteFixture(t, "map.flexb", testutil.MapBytes)
	b, err := Open(path, OpenOptions{})
	require.NoError(t, err)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, err = b.Root()
	require.ErrorIs(t, err, types.ErrClosed)
	_, err = b.Find("vec")
	require.ErrorIs(t, err, types.ErrClosed)
	_, err = b.Info()
	require.ErrorIs(t, err, types.ErrClosed)
	require.ErrorIs(t, b.Verify(), types.ErrClosed)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.flexb"), OpenOptions{})
	require.True(t, os.IsNotExist(err), "got %v", err)

	empty := testutil.WriteFixture(t, "empty.flexb", nil)
	_, err = Open(empty, OpenOptions{})
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	big := testutil.WriteFixture(t, "big.flexb", testutil.MapBytes)
	_, err = Open(big, OpenOptions{MaxSize: 16})
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	bad := testutil.WriteFixture(t, "bad.flexb", testutil.BadType)
	_, err = Open(bad, OpenOptions{})
	require.ErrorIs(t, err, types.ErrCorrupt)
}

func TestOpen_VerifyRejectsUnsortedKeys(t *testing.T) {
	data := testutil.Clone(testutil.MapBytes)
	data[25] = 'z' // "bar" -> "zar"
	path := testutil.WriteFixture(t, "unsorted.flexb", data)

	// Navigation alone does not notice.
	b, err := Open(path, OpenOptions{})
	require.NoError(t, err)
	require.NoError(t, b.Close())

	_, err = Open(path, OpenOptions{Verify: true})
	var verr *verify.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "MapKey", verr.Type)
}

func TestFromBytes_VerifySharedContainers(t *testing.T) {
	b, err := FromBytes(testutil.SharedFanout(40), OpenOptions{Verify: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	ref, err := b.Find("1/1/0")
	require.NoError(t, err)
	require.True(t, ref.IsVector())
}
