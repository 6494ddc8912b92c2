package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestScalarRoundTrip(t *testing.T) {
	var w Buffer
	w.Uint64(1, math.MaxUint64)
	w.Uint32(2, math.MaxUint32)
	w.Int32(3, -7)
	w.Sint32(4, math.MinInt32)
	w.Bool(5, true)
	w.String(6, "dydx")
	w.Bytes(7, []byte{0xde, 0xad})

	got := map[protowire.Number]any{}
	err := Walk(w.Output(), func(f Field) (err error) {
		switch f.Num {
		case 1:
			got[f.Num], err = f.AsUint64()
		case 2:
			got[f.Num], err = f.AsUint32()
		case 3:
			got[f.Num], err = f.AsInt32()
		case 4:
			got[f.Num], err = f.AsSint32()
		case 5:
			got[f.Num], err = f.AsBool()
		case 6:
			got[f.Num], err = f.AsString()
		case 7:
			got[f.Num], err = f.AsBytes()
		}
		return err
	})
	require.NoError(t, err)
	require.Equal(t, map[protowire.Number]any{
		1: uint64(math.MaxUint64),
		2: uint32(math.MaxUint32),
		3: int32(-7),
		4: int32(math.MinInt32),
		5: true,
		6: "dydx",
		7: []byte{0xde, 0xad},
	}, got)
}

func TestNegativeInt32IsSignExtended(t *testing.T) {
	var w Buffer
	w.Int32(1, -1)
	// tag plus a ten byte varint
	require.Len(t, w.Output(), 11)
}

func TestZeroScalarsAreOmitted(t *testing.T) {
	var w Buffer
	w.Uint64(1, 0)
	w.Uint32(2, 0)
	w.Int32(3, 0)
	w.Sint32(4, 0)
	w.Bool(5, false)
	w.String(6, "")
	w.Bytes(7, nil)
	require.NotNil(t, w.Output())
	require.Empty(t, w.Output())
}

func TestWalkErrors(t *testing.T) {
	noop := func(Field) error { return nil }

	// truncated varint
	require.Error(t, Walk([]byte{0x08, 0xff}, noop))
	// length prefix past the end
	require.Error(t, Walk([]byte{0x0a, 0x05, 0x01}, noop))

	// a varint where a string is expected
	err := Walk([]byte{0x08, 0x01}, func(f Field) error {
		_, err := f.AsString()
		return err
	})
	require.Error(t, err)
}
