package flexb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/flexkit/internal/format"
	"github.com/joshuapare/flexkit/internal/testutil"
	"github.com/joshuapare/flexkit/pkg/types"
)

func TestRoot_IntWidths(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int64
	}{
		{"byte", testutil.ByteInt, 1},
		{"short", testutil.ShortInt, 0x0201},
		{"int", testutil.Int, 0x04030201},
		{"long", testutil.LongInt, 0x0807060504030201},
		{"negative byte", testutil.ByteNegInt, -1},
		{"uint byte as int", testutil.ByteUint, 0xff},
		{"indirect", testutil.IndirectInt, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustRoot(t, tt.data).AsInt64()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRoot_UintWidths(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
	}{
		{"byte", testutil.ByteUint, 0xff},
		{"short", testutil.ShortUint, 0xff01},
		{"int", testutil.Uint, 0xff030201},
		{"long", testutil.LongUint, 0xff07060504030201},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustRoot(t, tt.data).AsUint64()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRoot_Geometry(t *testing.T) {
	ref := mustRoot(t, testutil.Int)
	require.Equal(t, types.TypeInt, ref.Type())
	require.Equal(t, 0, ref.Offset())
	require.Equal(t, uint8(4), ref.ParentWidth())
	require.Equal(t, uint8(1), ref.ByteWidth())

	ref = mustRoot(t, testutil.MapBytes)
	require.Equal(t, types.TypeMap, ref.Type())
	require.Equal(t, testutil.MapRootOffset, ref.Offset())
	require.Equal(t, uint8(1), ref.ParentWidth())
	require.Equal(t, uint8(4), ref.ByteWidth())
	require.Equal(t, "Map@194(w1/4)", ref.String())
}

func TestRoot_SignedAndUnsignedEveryWidth(t *testing.T) {
	samples := map[uint8][]int64{
		1: {-128, -1, 0, 1, 127},
		2: {-32768, -2, 0, 300, 32767},
		4: {-2147483648, -70000, 0, 70000, 2147483647},
		8: {-9223372036854775808, -1, 0, 1 << 40, 9223372036854775807},
	}
	for width, values := range samples {
		mask := ^uint64(0)
		if width < 8 {
			mask = uint64(1)<<(8*uint(width)) - 1
		}
		for _, v := range values {
			i, err := mustRoot(t, testutil.ScalarRoot(format.TagInt, width, uint64(v))).AsInt64()
			require.NoError(t, err)
			require.Equal(t, v, i, "int w=%d", width)

			u, err := mustRoot(t, testutil.ScalarRoot(2, width, uint64(v))).AsUint64()
			require.NoError(t, err)
			require.Equal(t, uint64(v)&mask, u, "uint w=%d", width)
		}
	}
}

func TestRoot_IndirectEveryWidthPair(t *testing.T) {
	for _, vw := range []uint8{1, 2, 4, 8} {
		for _, rw := range []uint8{1, 2, 4, 8} {
			ref := mustRoot(t, testutil.IndirectRoot(6, vw, rw, uint64(0x7f)))
			require.Equal(t, types.TypeIndirectInt, ref.Type())
			require.Equal(t, rw, ref.ParentWidth())
			require.Equal(t, vw, ref.ByteWidth())
			got, err := ref.AsInt64()
			require.NoError(t, err)
			require.Equal(t, int64(0x7f), got, "value w=%d root w=%d", vw, rw)
		}
	}
}

func TestRoot_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"nil buffer", nil, types.ErrInvalidArgument},
		{"empty buffer", []byte{}, types.ErrInvalidArgument},
		{"two bytes", []byte{4, 1}, types.ErrInvalidArgument},
		{"bad byte width", testutil.BadByteWidth, types.ErrCorrupt},
		{"bad type", testutil.BadType, types.ErrCorrupt},
		{"slot wider than buffer", []byte{1, 4, 8}, types.ErrCorrupt},
		{"zero width", []byte{1, 4, 0}, types.ErrCorrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Root(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRoot_EveryTag(t *testing.T) {
	for tag := 0; tag < 64; tag++ {
		data := []byte{0, byte(tag << 2), 1}
		_, err := Root(data)
		if types.Type(tag).Valid() {
			require.NoError(t, err, "tag %d", tag)
		} else {
			require.ErrorIs(t, err, types.ErrCorrupt, "tag %d", tag)
		}
	}
}
