// Package parser reads the binary structures written by legacy Zcash
// wallets (zcashd's CDataStream serialization): little-endian integers,
// compact-size counts and lengths, optional markers and fixed-width blobs.
//
// A Parser is a cursor over an immutable byte slice. Every Read method
// either succeeds and advances the cursor, or fails and leaves it where it
// was, so a caller may inspect Offset after an error.
package parser

import (
	"bytes"
	"encoding/binary"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
)

// MaxSize is the largest length zcashd accepts for a serialized vector or
// byte string (MAX_SIZE in serialize.h).
const MaxSize = 0x02000000

// Parser is a cursor over a byte buffer.
type Parser struct {
	data   []byte
	offset int
}

// New returns a Parser positioned at the start of data. The slice must not
// be modified while the parser is in use.
func New(data []byte) *Parser {
	return &Parser{data: data}
}

// Offset returns the number of bytes consumed so far.
func (p *Parser) Offset() int {
	return p.offset
}

// Seek moves the cursor to an absolute offset, typically one returned
// earlier by Offset so a caller can undo a partial read. It panics if
// offset is outside the buffer.
func (p *Parser) Seek(offset int) {
	if offset < 0 || offset > len(p.data) {
		panic("parser: seek out of range")
	}
	p.offset = offset
}

// Remaining returns the number of unread bytes.
func (p *Parser) Remaining() int {
	return len(p.data) - p.offset
}

// Peek returns the next n bytes without advancing.
func (p *Parser) Peek(n int) ([]byte, error) {
	if n < 0 || n > p.Remaining() {
		return nil, ierrors.Wrapf(ErrBufferUnderrun, "need %d bytes at offset %d, %d remaining", n, p.offset, p.Remaining())
	}

	return bytes.Clone(p.data[p.offset : p.offset+n]), nil
}

// Next returns a copy of the next n bytes and advances past them.
func (p *Parser) Next(n int) ([]byte, error) {
	b, err := p.Peek(n)
	if err != nil {
		return nil, err
	}
	p.offset += n

	return b, nil
}

// Finished returns an error if unread bytes remain.
func (p *Parser) Finished() error {
	if p.Remaining() != 0 {
		return ierrors.Wrapf(ErrTrailingBytes, "%d bytes left at offset %d", p.Remaining(), p.offset)
	}

	return nil
}

func (p *Parser) ReadU8() (uint8, error) {
	b, err := p.Next(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (p *Parser) ReadU16() (uint16, error) {
	b, err := p.Next(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

func (p *Parser) ReadU32() (uint32, error) {
	b, err := p.Next(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (p *Parser) ReadU64() (uint64, error) {
	b, err := p.Next(8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b), nil
}

func (p *Parser) ReadI64() (int64, error) {
	v, err := p.ReadU64()

	return int64(v), err
}

// ReadBool reads a one-byte boolean. Values other than 0 and 1 are
// rejected.
func (p *Parser) ReadBool() (bool, error) {
	b, err := p.Peek(1)
	if err != nil {
		return false, err
	}

	switch b[0] {
	case 0:
		p.offset++
		return false, nil
	case 1:
		p.offset++
		return true, nil
	default:
		return false, ierrors.Wrapf(ErrInvalidDiscriminant, "boolean byte 0x%02x at offset %d", b[0], p.offset)
	}
}

// ReadOptional reads the presence marker of an optional value (zcashd's
// boost::optional serialization).
func (p *Parser) ReadOptional() (bool, error) {
	present, err := p.ReadBool()
	if err != nil {
		return false, ierrors.Wrap(err, "optional marker")
	}

	return present, nil
}

// ReadCompactSize reads a compact-size integer. Encodings wider than
// necessary are rejected, as zcashd does.
func (p *Parser) ReadCompactSize() (uint64, error) {
	start := p.offset
	marker, err := p.ReadU8()
	if err != nil {
		return 0, err
	}

	var value, minimum uint64
	switch marker {
	case 0xfd:
		var v uint16
		v, err = p.ReadU16()
		value, minimum = uint64(v), 0xfd
	case 0xfe:
		var v uint32
		v, err = p.ReadU32()
		value, minimum = uint64(v), 0x10000
	case 0xff:
		value, err = p.ReadU64()
		minimum = 0x100000000
	default:
		return uint64(marker), nil
	}
	if err != nil {
		p.offset = start
		return 0, err
	}

	if value < minimum {
		p.offset = start
		return 0, ierrors.Wrapf(ErrNonCanonical, "value %d with marker 0x%02x at offset %d", value, marker, start)
	}

	return value, nil
}

// ReadLength reads a compact-size length and checks it against MaxSize.
func (p *Parser) ReadLength() (int, error) {
	start := p.offset
	n, err := p.ReadCompactSize()
	if err != nil {
		return 0, err
	}
	if n > MaxSize {
		p.offset = start
		return 0, ierrors.Wrapf(ErrNumericOverflow, "length %d exceeds %d", n, MaxSize)
	}

	return int(n), nil
}

// ReadBytes reads a compact-size length followed by that many bytes.
func (p *Parser) ReadBytes() ([]byte, error) {
	start := p.offset
	n, err := p.ReadLength()
	if err != nil {
		return nil, err
	}

	b, err := p.Next(n)
	if err != nil {
		p.offset = start
		return nil, err
	}

	return b, nil
}

func (p *Parser) ReadBlob11() (blob.Blob11, error) {
	b, err := p.Next(11)
	if err != nil {
		return blob.Blob11{}, err
	}

	return blob.Blob11FromSlice(b)
}

func (p *Parser) ReadBlob20() (blob.Blob20, error) {
	b, err := p.Next(20)
	if err != nil {
		return blob.Blob20{}, err
	}

	return blob.Blob20FromSlice(b)
}

func (p *Parser) ReadBlob32() (blob.Blob32, error) {
	b, err := p.Next(32)
	if err != nil {
		return blob.Blob32{}, err
	}

	return blob.Blob32FromSlice(b)
}

func (p *Parser) ReadBlob64() (blob.Blob64, error) {
	b, err := p.Next(64)
	if err != nil {
		return blob.Blob64{}, err
	}

	return blob.Blob64FromSlice(b)
}

// Uint32 narrows a decoded integer, failing with ErrNumericOverflow when
// it does not fit.
func Uint32(v uint64) (uint32, error) {
	if v > 0xffffffff {
		return 0, ierrors.Wrapf(ErrNumericOverflow, "%d does not fit in uint32", v)
	}

	return uint32(v), nil
}

// Uint8 narrows a decoded integer to a byte.
func Uint8(v uint64) (uint8, error) {
	if v > 0xff {
		return 0, ierrors.Wrapf(ErrNumericOverflow, "%d does not fit in uint8", v)
	}

	return uint8(v), nil
}
