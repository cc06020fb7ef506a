package archive

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how the payload of an archive is compressed. The
// values are stored in the header.
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionLZ4  Compression = 1
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression parses a compression name.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, ierrors.Wrapf(ErrUnknownCompression, "%q", name)
	}
}

// zstd.Encoder and zstd.Decoder are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("archive: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("archive: zstd decoder initialization failed: " + err.Error())
	}
}

// compress returns data compressed with c. When compression does not
// shrink the data it returns the data unchanged with CompressionNone.
func compress(data []byte, c Compression) ([]byte, Compression, error) {
	var compressed []byte
	switch c {
	case CompressionNone:
		return data, CompressionNone, nil

	case CompressionLZ4:
		destination := make([]byte, lz4.CompressBlockBound(len(data)))
		written, err := lz4.CompressBlock(data, destination, nil)
		if err != nil {
			return nil, 0, ierrors.Wrap(err, "lz4 compress")
		}
		compressed = destination[:written]

	case CompressionZstd:
		compressed = zstdEncoder.EncodeAll(data, nil)

	default:
		return nil, 0, ierrors.Wrapf(ErrUnknownCompression, "tag %d", uint8(c))
	}

	// lz4 reports incompressible input with a zero length.
	if len(compressed) == 0 || len(compressed) >= len(data) {
		return data, CompressionNone, nil
	}

	return compressed, c, nil
}

// decompress reverses compress. The result must be exactly size bytes.
func decompress(data []byte, c Compression, size int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(data) != size {
			return nil, ierrors.Wrapf(ErrCorrupt, "payload of %d bytes, expected %d", len(data), size)
		}

		return data, nil

	case CompressionLZ4:
		destination := make([]byte, size)
		read, err := lz4.UncompressBlock(data, destination)
		if err != nil {
			return nil, ierrors.Join(ErrCorrupt, ierrors.Wrap(err, "lz4 decompress"))
		}
		if read != size {
			return nil, ierrors.Wrapf(ErrCorrupt, "lz4 decompressed %d bytes, expected %d", read, size)
		}

		return destination, nil

	case CompressionZstd:
		result, err := zstdDecoder.DecodeAll(data, make([]byte, 0, size))
		if err != nil {
			return nil, ierrors.Join(ErrCorrupt, ierrors.Wrap(err, "zstd decompress"))
		}
		if len(result) != size {
			return nil, ierrors.Wrapf(ErrCorrupt, "zstd decompressed %d bytes, expected %d", len(result), size)
		}

		return result, nil

	default:
		return nil, ierrors.Wrapf(ErrUnknownCompression, "tag %d", uint8(c))
	}
}
