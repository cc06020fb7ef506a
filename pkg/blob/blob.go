// Package blob implements the fixed-width binary values used for every
// cryptographic field of the interchange format: hashes, keys, diversifiers,
// transaction ids.
//
// Each width is its own Go array type (Blob4, Blob11, Blob20, Blob32,
// Blob64), generated from a single template so that all widths share the
// same construction and encoding rules:
//
//   - NewBlobN takes an exact-length array and cannot fail.
//   - BlobNFromSlice and BlobNFromHex fail with a *LengthError (matching
//     ErrLengthMismatch) when the source length differs from N. Values are
//     never truncated or padded.
//   - The canonical text form is lowercase hex without prefix or separators.
//     It is used for String, MarshalText and debug output.
//   - In a document, a blob is a CBOR byte string of exactly N bytes.
//
// Being arrays, blobs are comparable with == and usable as map keys.
// Equality is by raw byte content.
package blob

//go:generate go run ./internal/gen -output blob_gen.go

import (
	"encoding/hex"

	"github.com/fxamacker/cbor/v2"
	"github.com/iotaledger/hive.go/ierrors"
)

// U256 is the 32-byte value used for note commitments, tree nodes, keys
// and commitment randomness.
type U256 = Blob32

// fill copies src into dst after checking that the lengths agree.
func fill(dst, src []byte) error {
	if len(src) != len(dst) {
		return &LengthError{Expected: len(dst), Actual: len(src)}
	}
	copy(dst, src)

	return nil
}

// fillHex decodes s into dst. The decoded length must equal len(dst).
func fillHex(dst []byte, s string) error {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return &HexError{Cause: err}
	}

	return fill(dst, decoded)
}

// marshalBytes encodes b as a CBOR byte string.
func marshalBytes(b []byte) ([]byte, error) {
	return cbor.Marshal(b)
}

// unmarshalBytes decodes a CBOR byte string of exactly len(dst) bytes.
func unmarshalBytes(dst []byte, data []byte) error {
	if len(data) == 0 || data[0]>>5 != 2 {
		return ierrors.New("expected CBOR byte string")
	}

	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return ierrors.Wrap(err, "failed to decode byte string")
	}

	return fill(dst, raw)
}

// unmarshalHex is the text counterpart of unmarshalBytes.
func unmarshalHex(dst []byte, text []byte) error {
	return fillHex(dst, string(text))
}
