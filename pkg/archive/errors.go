package archive

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrBadMagic is returned when the input does not start with the
	// archive magic.
	ErrBadMagic = ierrors.New("not a zewif archive")
	// ErrUnsupportedVersion is returned for archives written by a newer
	// format version.
	ErrUnsupportedVersion = ierrors.New("unsupported archive version")
	// ErrUnknownCompression is returned for an unknown compression tag.
	ErrUnknownCompression = ierrors.New("unknown compression")
	// ErrChecksumMismatch is returned when the payload does not match the
	// stored checksum.
	ErrChecksumMismatch = ierrors.New("checksum mismatch")
	// ErrCorrupt is returned when the payload cannot be decompressed to
	// the recorded size.
	ErrCorrupt = ierrors.New("corrupt archive")
)
