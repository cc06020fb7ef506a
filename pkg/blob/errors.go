package blob

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrLengthMismatch is matched by every *LengthError.
	ErrLengthMismatch = ierrors.New("length mismatch")

	// ErrInvalidHex is matched by every *HexError.
	ErrInvalidHex = ierrors.New("invalid hex")
)

// LengthError is returned when a fixed-width value is built from a source
// of the wrong length. The source is never truncated or padded.
type LengthError struct {
	Expected int // Width of the target type in bytes
	Actual   int // Length of the source in bytes
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("expected %d bytes, got %d", e.Expected, e.Actual)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// HexError wraps the diagnostic of the underlying hex decoder.
type HexError struct {
	Cause error
}

func (e *HexError) Error() string {
	return fmt.Sprintf("not a valid hex string: %v", e.Cause)
}

func (e *HexError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidHex.
func (e *HexError) Is(target error) bool {
	return target == ErrInvalidHex
}
