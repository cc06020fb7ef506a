package blob

import (
	"math/rand/v2"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlob4FromHex(t *testing.T) {
	b, err := Blob4FromHex("01020304")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, b.Bytes())
	assert.Equal(t, "01020304", b.String())

	_, err = Blob4FromHex("0102")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrLengthMismatch)

	var lengthErr *LengthError
	require.True(t, ierrors.As(err, &lengthErr))
	assert.Equal(t, 4, lengthErr.Expected)
	assert.Equal(t, 2, lengthErr.Actual)
}

func TestBlobFromHexInvalid(t *testing.T) {
	_, err := Blob4FromHex("zz020304")
	require.ErrorIs(t, err, ErrInvalidHex)
	assert.NotErrorIs(t, err, ErrLengthMismatch)

	_, err = Blob4FromHex("0102030")
	require.ErrorIs(t, err, ErrInvalidHex)
}

func TestBlobFromSliceLengthEnforcement(t *testing.T) {
	for _, length := range []int{0, 1, 31, 33, 64} {
		_, err := Blob32FromSlice(make([]byte, length))
		require.ErrorIs(t, err, ErrLengthMismatch)

		var lengthErr *LengthError
		require.True(t, ierrors.As(err, &lengthErr))
		assert.Equal(t, 32, lengthErr.Expected)
		assert.Equal(t, length, lengthErr.Actual)
	}

	b, err := Blob11FromSlice(make([]byte, 11))
	require.NoError(t, err)
	assert.True(t, b.IsZero())
}

func TestBlobHexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		var b Blob32
		for i := range b {
			b[i] = byte(rng.UintN(256))
		}

		parsed, err := Blob32FromHex(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}
}

func TestBlobUppercaseHexIsAccepted(t *testing.T) {
	b, err := Blob4FromHex("DEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", b.String())
}

func TestBlobIndexing(t *testing.T) {
	b := NewBlob4([4]byte{9, 8, 7, 6})
	assert.Equal(t, byte(7), b.At(2))
	assert.Equal(t, []byte{8, 7}, b.Slice(1, 3))
	assert.Equal(t, 4, b.Len())
	assert.Panics(t, func() { b.At(4) })
	assert.Panics(t, func() { b.Slice(2, 5) })
}

func TestBlobBytesIsACopy(t *testing.T) {
	b := NewBlob4([4]byte{1, 2, 3, 4})
	out := b.Bytes()
	out[0] = 0xff
	assert.Equal(t, byte(1), b.At(0))
}

func TestBlobGoString(t *testing.T) {
	b := MustBlob4FromHex("0a0b0c0d")
	assert.Equal(t, "Blob4(0a0b0c0d)", b.GoString())
}

func TestBlobCBOR(t *testing.T) {
	b := MustBlob4FromHex("01020304")
	data, err := cbor.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x44, 1, 2, 3, 4}, data)

	var decoded Blob4
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	assert.Equal(t, b, decoded)

	var wrongWidth Blob11
	require.ErrorIs(t, cbor.Unmarshal(data, &wrongWidth), ErrLengthMismatch)

	text, err := cbor.Marshal("01020304")
	require.NoError(t, err)
	require.Error(t, cbor.Unmarshal(text, &decoded))
}

func TestTxIDDisplayIsReversed(t *testing.T) {
	var raw [32]byte
	raw[0] = 0x01
	raw[31] = 0xff
	id := TxIDFromBytes(raw)

	s := id.String()
	assert.Equal(t, "ff", s[:2])
	assert.Equal(t, "01", s[62:])

	parsed, err := TxIDFromHex(s)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.Equal(t, raw[:], parsed.Bytes())
}

func TestTxIDCBOR(t *testing.T) {
	id := TxIDFromBytes([32]byte{1, 2, 3})
	data, err := cbor.Marshal(id)
	require.NoError(t, err)

	var decoded TxID
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	assert.Equal(t, id, decoded)
	assert.Equal(t, 0, id.Compare(decoded))
}

func TestNewARIDIsRandom(t *testing.T) {
	a, b := NewARID(), NewARID()
	assert.NotEqual(t, a, b)

	parsed, err := ARIDFromHex(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}
