// Package archive frames an encoded zewif document for storage.
//
// An archive is
//
//	"ZWIF" || version u32le || compression u8 || flags u8 ||
//	size u64le || [checksum 32] || payload
//
// where size is the length of the uncompressed CBOR payload and the
// checksum, present when flag bit 0 is set, is a keyed BLAKE3 hash of the
// uncompressed payload.
package archive

import (
	"bytes"
	"io"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/zeebo/blake3"

	"github.com/suffix-labs/zewif/pkg/document"
	"github.com/suffix-labs/zewif/pkg/parser"
)

// Version is the format version written by this package.
const Version uint32 = 1

// MaxPayloadSize bounds the uncompressed payload accepted by Open.
const MaxPayloadSize = 1 << 30

const flagChecksum = 0x01

var magic = []byte("ZWIF")

// checksumKey is the BLAKE3 key of payload checksums: the ASCII domain
// name zero-padded to 32 bytes.
var checksumKey = [32]byte{
	'z', 'e', 'w', 'i', 'f', '.', 'a', 'r', 'c', 'h', 'i', 'v', 'e', '.',
	'p', 'a', 'y', 'l', 'o', 'a', 'd',
}

// Options controls how an archive is written.
type Options struct {
	Compression Compression
	Checksum    bool
}

// Header describes a decoded archive.
type Header struct {
	Version     uint32
	Compression Compression
	Size        uint64
	Checksum    *[32]byte
}

// Checksum returns the keyed BLAKE3 hash stored for payload.
func Checksum(payload []byte) [32]byte {
	hasher, err := blake3.NewKeyed(checksumKey[:])
	if err != nil {
		panic("archive: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(payload)

	var sum [32]byte
	copy(sum[:], hasher.Sum(nil))

	return sum
}

// IsArchive reports whether data starts with the archive magic.
func IsArchive(data []byte) bool {
	return bytes.HasPrefix(data, magic)
}

// Seal frames payload. The compression actually used is recorded in the
// header and may be CompressionNone when compressing would not help.
func Seal(payload []byte, opts Options) ([]byte, error) {
	compressed, used, err := compress(payload, opts.Compression)
	if err != nil {
		return nil, err
	}

	var flags uint8
	if opts.Checksum {
		flags |= flagChecksum
	}

	w := parser.NewWriter()
	w.WriteFixed(magic)
	w.WriteU32(Version)
	w.WriteU8(uint8(used))
	w.WriteU8(flags)
	w.WriteU64(uint64(len(payload)))
	if opts.Checksum {
		sum := Checksum(payload)
		w.WriteFixed(sum[:])
	}
	w.WriteFixed(compressed)

	return w.Bytes(), nil
}

// Open checks the framing of data and returns the uncompressed payload.
func Open(data []byte) ([]byte, Header, error) {
	var header Header

	p := parser.New(data)
	m, err := p.Next(len(magic))
	if err != nil || !bytes.Equal(m, magic) {
		return nil, header, ErrBadMagic
	}

	if header.Version, err = p.ReadU32(); err != nil {
		return nil, header, parser.Field("version", err)
	}
	if header.Version == 0 || header.Version > Version {
		return nil, header, ierrors.Wrapf(ErrUnsupportedVersion, "version %d", header.Version)
	}

	tag, err := p.ReadU8()
	if err != nil {
		return nil, header, parser.Field("compression", err)
	}
	header.Compression = Compression(tag)

	flags, err := p.ReadU8()
	if err != nil {
		return nil, header, parser.Field("flags", err)
	}
	if flags&^flagChecksum != 0 {
		return nil, header, ierrors.Wrapf(ErrUnsupportedVersion, "unknown flags 0x%02x", flags)
	}

	if header.Size, err = p.ReadU64(); err != nil {
		return nil, header, parser.Field("size", err)
	}
	if header.Size > MaxPayloadSize {
		return nil, header, ierrors.Wrapf(ErrCorrupt, "payload size %d exceeds %d", header.Size, MaxPayloadSize)
	}

	if flags&flagChecksum != 0 {
		sum, err := p.ReadBlob32()
		if err != nil {
			return nil, header, parser.Field("checksum", err)
		}
		checksum := [32]byte(sum)
		header.Checksum = &checksum
	}

	compressed, err := p.Next(p.Remaining())
	if err != nil {
		return nil, header, parser.Field("payload", err)
	}

	payload, err := decompress(compressed, header.Compression, int(header.Size))
	if err != nil {
		return nil, header, err
	}

	if header.Checksum != nil && Checksum(payload) != *header.Checksum {
		return nil, header, ErrChecksumMismatch
	}

	return payload, header, nil
}

// Write encodes d and writes it to w as an archive.
func Write(w io.Writer, d *document.Document, opts Options) error {
	payload, err := document.Marshal(d)
	if err != nil {
		return err
	}

	data, err := Seal(payload, opts)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// Read reads an archive from r and decodes its document.
func Read(r io.Reader) (*document.Document, Header, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Header{}, err
	}

	payload, header, err := Open(data)
	if err != nil {
		return nil, header, err
	}

	d, err := document.Unmarshal(payload)
	if err != nil {
		return nil, header, ierrors.Wrap(err, "payload")
	}

	return d, header, nil
}
