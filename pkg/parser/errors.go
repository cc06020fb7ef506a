package parser

import "github.com/iotaledger/hive.go/ierrors"

// Decoder failure kinds. Errors returned by Parser wrap exactly one of
// these; callers attach the name of the field they were decoding with
// Field.
var (
	ErrBufferUnderrun      = ierrors.New("buffer underrun")
	ErrInvalidDiscriminant = ierrors.New("invalid discriminant")
	ErrNumericOverflow     = ierrors.New("numeric overflow")
	ErrNonCanonical        = ierrors.New("non-canonical compact size")
	ErrTrailingBytes       = ierrors.New("trailing bytes")
)

// Field annotates err with the name of the field being decoded. It returns
// nil when err is nil.
func Field(name string, err error) error {
	if err == nil {
		return nil
	}

	return ierrors.Wrap(err, name)
}
