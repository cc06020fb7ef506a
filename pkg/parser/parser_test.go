package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactSizeRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 252, 253, 254, 255, 0xfffe, 0xffff, 0x10000,
		0xfffffffe, 0xffffffff, 0x100000000, 0xffffffffffffffff,
	}

	for _, v := range values {
		encoded := AppendCompactSize(nil, v)
		assert.Equal(t, CompactSizeLen(v), len(encoded), "width of %d", v)

		p := New(encoded)
		decoded, err := p.ReadCompactSize()
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, decoded)
		require.NoError(t, p.Finished())
	}
}

func TestCompactSizeWidths(t *testing.T) {
	tests := []struct {
		value   uint64
		encoded []byte
	}{
		{0, []byte{0x00}},
		{252, []byte{0xfc}},
		{253, []byte{0xfd, 0xfd, 0x00}},
		{65535, []byte{0xfd, 0xff, 0xff}},
		{65536, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		{1<<32 - 1, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		{1 << 32, []byte{0xff, 0, 0, 0, 0, 1, 0, 0, 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.encoded, AppendCompactSize(nil, tt.value))
	}
}

func TestCompactSizeRejectsNonCanonical(t *testing.T) {
	inputs := [][]byte{
		{0xfd, 0xfc, 0x00},
		{0xfe, 0xff, 0xff, 0x00, 0x00},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00},
	}

	for _, input := range inputs {
		p := New(input)
		_, err := p.ReadCompactSize()
		require.ErrorIs(t, err, ErrNonCanonical)
		assert.Equal(t, 0, p.Offset(), "cursor must not advance on failure")
	}
}

func TestCompactSizeUnderrun(t *testing.T) {
	p := New([]byte{0xfe, 0x01, 0x02})
	_, err := p.ReadCompactSize()
	require.ErrorIs(t, err, ErrBufferUnderrun)
	assert.Equal(t, 0, p.Offset())
}

func TestReadLengthBound(t *testing.T) {
	p := New(AppendCompactSize(nil, MaxSize+1))
	_, err := p.ReadLength()
	require.ErrorIs(t, err, ErrNumericOverflow)
	assert.Equal(t, 0, p.Offset())
}

func TestReadIntegers(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0xab)
	w.WriteU16(0x1234)
	w.WriteU32(0xdeadbeef)
	w.WriteU64(0x0102030405060708)
	w.WriteI64(-5)
	w.WriteBool(true)
	w.WriteBytes([]byte("zcash"))

	p := New(w.Bytes())
	u8, err := p.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xab), u8)

	u16, err := p.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	u32, err := p.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), u32)

	u64, err := p.ReadU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64)

	i64, err := p.ReadI64()
	require.NoError(t, err)
	assert.Equal(t, int64(-5), i64)

	b, err := p.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	s, err := p.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("zcash"), s)

	require.NoError(t, p.Finished())
}

func TestReadBoolInvalid(t *testing.T) {
	p := New([]byte{0x02})
	_, err := p.ReadBool()
	require.ErrorIs(t, err, ErrInvalidDiscriminant)
	assert.Equal(t, 0, p.Offset())
}

func TestReadBlob(t *testing.T) {
	data := make([]byte, 32)
	data[0] = 7
	p := New(data)

	b, err := p.ReadBlob32()
	require.NoError(t, err)
	assert.Equal(t, byte(7), b.At(0))

	_, err = p.ReadBlob11()
	require.ErrorIs(t, err, ErrBufferUnderrun)
}

func TestFinishedReportsTrailingBytes(t *testing.T) {
	p := New([]byte{1, 2})
	_, err := p.ReadU8()
	require.NoError(t, err)
	require.ErrorIs(t, p.Finished(), ErrTrailingBytes)
}

func TestFieldAnnotation(t *testing.T) {
	assert.NoError(t, Field("anything", nil))

	p := New(nil)
	_, err := p.ReadU32()
	err = Field("expiry_height", err)
	require.ErrorIs(t, err, ErrBufferUnderrun)
	assert.Contains(t, err.Error(), "expiry_height")
}

func TestNarrowing(t *testing.T) {
	v, err := Uint32(0xffffffff)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xffffffff), v)

	_, err = Uint32(1 << 32)
	require.ErrorIs(t, err, ErrNumericOverflow)

	_, err = Uint8(256)
	require.ErrorIs(t, err, ErrNumericOverflow)
}

type pair struct {
	a uint8
	b uint16
}

func (v *pair) ParseFrom(p *Parser) error {
	var err error
	if v.a, err = p.ReadU8(); err != nil {
		return Field("a", err)
	}
	if v.b, err = p.ReadU16(); err != nil {
		return Field("b", err)
	}

	return nil
}

func TestParseRewindsOnFailure(t *testing.T) {
	p := New([]byte{1, 2})
	_, err := Parse[pair](p, "pair")
	require.ErrorIs(t, err, ErrBufferUnderrun)
	assert.Equal(t, 0, p.Offset())
	assert.Contains(t, err.Error(), "pair")
}

func TestParseVector(t *testing.T) {
	w := NewWriter()
	w.WriteCompactSize(2)
	w.WriteU8(1)
	w.WriteU16(10)
	w.WriteU8(2)
	w.WriteU16(20)

	p := New(w.Bytes())
	values, err := ParseVector[pair](p, "pairs")
	require.NoError(t, err)
	assert.Equal(t, []pair{{1, 10}, {2, 20}}, values)
}
