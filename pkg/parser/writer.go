package parser

import (
	"bytes"
	"encoding/binary"
)

// Writer produces the byte layout read by Parser.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return bytes.Clone(w.buf.Bytes())
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

func (w *Writer) WriteU8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *Writer) WriteU16(v uint16) {
	w.buf.Write(binary.LittleEndian.AppendUint16(nil, v))
}

func (w *Writer) WriteU32(v uint32) {
	w.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
}

func (w *Writer) WriteU64(v uint64) {
	w.buf.Write(binary.LittleEndian.AppendUint64(nil, v))
}

func (w *Writer) WriteI64(v int64) {
	w.WriteU64(uint64(v))
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// WriteOptional writes the presence marker of an optional value.
func (w *Writer) WriteOptional(present bool) {
	w.WriteBool(present)
}

// WriteCompactSize writes v in the narrowest compact-size form.
func (w *Writer) WriteCompactSize(v uint64) {
	w.buf.Write(AppendCompactSize(nil, v))
}

// WriteBytes writes a compact-size length followed by b.
func (w *Writer) WriteBytes(b []byte) {
	w.WriteCompactSize(uint64(len(b)))
	w.buf.Write(b)
}

// WriteFixed writes b with no length prefix, for fixed-width fields.
func (w *Writer) WriteFixed(b []byte) {
	w.buf.Write(b)
}

// AppendCompactSize appends the canonical compact-size encoding of v:
// one byte below 0xfd, otherwise a 0xfd/0xfe/0xff marker followed by a
// little-endian u16/u32/u64.
func AppendCompactSize(dst []byte, v uint64) []byte {
	switch {
	case v < 0xfd:
		return append(dst, byte(v))
	case v <= 0xffff:
		return binary.LittleEndian.AppendUint16(append(dst, 0xfd), uint16(v))
	case v <= 0xffffffff:
		return binary.LittleEndian.AppendUint32(append(dst, 0xfe), uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(append(dst, 0xff), v)
	}
}

// CompactSizeLen returns the encoded width of v: 1, 3, 5 or 9.
func CompactSizeLen(v uint64) int {
	switch {
	case v < 0xfd:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}
