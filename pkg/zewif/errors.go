package zewif

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrAmountOutOfRange is returned for amounts beyond ±MaxMoney.
	ErrAmountOutOfRange = ierrors.New("amount out of range")
	// ErrInvalidNetwork is returned for an unknown network name.
	ErrInvalidNetwork = ierrors.New("invalid network")
	// ErrInvalidReceiverType is returned for an unknown receiver type.
	ErrInvalidReceiverType = ierrors.New("invalid receiver type")
	// ErrProtocolMismatch is returned when a witness or tree does not
	// belong to the protocol its owner expects.
	ErrProtocolMismatch = ierrors.New("protocol mismatch")
	// ErrTxIDMismatch is returned when a transaction's raw bytes hash to a
	// different id than the one it is stored under.
	ErrTxIDMismatch = ierrors.New("transaction id mismatch")
	// ErrDuplicateTransaction is returned when a container holds two
	// transactions with the same id.
	ErrDuplicateTransaction = ierrors.New("duplicate transaction")
	// ErrAlreadyOwned is returned when an entity that already holds a
	// position in a container is added to another one.
	ErrAlreadyOwned = ierrors.New("entity already belongs to a container")
)
