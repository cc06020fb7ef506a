package crypto

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrUnsupportedTransaction is returned for transaction versions whose
	// body this package cannot parse.
	ErrUnsupportedTransaction = ierrors.New("unsupported transaction version")
	// ErrInvalidAddress is returned when a transparent address fails to
	// decode or carries an unknown prefix.
	ErrInvalidAddress = ierrors.New("invalid transparent address")
	// ErrInvalidKey is returned for malformed key material.
	ErrInvalidKey = ierrors.New("invalid key")
)
