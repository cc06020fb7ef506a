package zewif

import (
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/parser"
)

// COIN is the number of zatoshis in one ZEC.
const COIN = 100_000_000

// MaxMoney is the largest amount, in zatoshis, that can exist.
const MaxMoney = 21_000_000 * COIN

// Amount is a signed zatoshi value in [-MaxMoney, MaxMoney].
type Amount int64

// NewAmount checks that zats is within range.
func NewAmount(zats int64) (Amount, error) {
	if zats < -MaxMoney || zats > MaxMoney {
		return 0, ierrors.Wrapf(ErrAmountOutOfRange, "%d zatoshis", zats)
	}

	return Amount(zats), nil
}

// MustAmount is like NewAmount but panics on error.
func MustAmount(zats int64) Amount {
	a, err := NewAmount(zats)
	if err != nil {
		panic(err)
	}

	return a
}

// Zats returns the amount in zatoshis.
func (a Amount) Zats() int64 {
	return int64(a)
}

// String formats the amount in ZEC with eight decimals.
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%08d ZEC", sign, v/COIN, v%COIN)
}

func (a Amount) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(int64(a))
}

func (a *Amount) UnmarshalCBOR(data []byte) error {
	var v int64
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}

	amount, err := NewAmount(v)
	if err != nil {
		return err
	}
	*a = amount

	return nil
}

// BlockHeight is a block height.
type BlockHeight uint32

func (h BlockHeight) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// Position is the index of a leaf in a note commitment tree.
type Position uint32

// PositionFrom converts a tree position, failing when it does not fit in
// 32 bits.
func PositionFrom(v uint64) (Position, error) {
	p, err := parser.Uint32(v)

	return Position(p), err
}

func (p Position) String() string {
	return fmt.Sprintf("Position(%d)", uint32(p))
}

// Network identifies the chain a wallet belongs to.
type Network uint8

const (
	NetworkMain Network = iota
	NetworkTest
	NetworkRegtest
)

var networkNames = []string{"main", "test", "regtest"}

// ParseNetwork parses a network name.
func ParseNetwork(s string) (Network, error) {
	for i, name := range networkNames {
		if s == name {
			return Network(i), nil
		}
	}

	return 0, ierrors.Wrapf(ErrInvalidNetwork, "%q", s)
}

func (n Network) String() string {
	if int(n) < len(networkNames) {
		return networkNames[n]
	}

	return fmt.Sprintf("Network(%d)", uint8(n))
}

// Testnet reports whether the network uses testnet address prefixes.
func (n Network) Testnet() bool {
	return n != NetworkMain
}

func (n Network) MarshalCBOR() ([]byte, error) {
	if int(n) >= len(networkNames) {
		return nil, ierrors.Wrapf(ErrInvalidNetwork, "%d", uint8(n))
	}

	return cbor.Marshal(n.String())
}

func (n *Network) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}

	network, err := ParseNetwork(s)
	if err != nil {
		return err
	}
	*n = network

	return nil
}

// ReceiverType identifies one receiver of a unified address. The numeric
// values are the typecodes of the binary unified address encoding.
type ReceiverType uint8

const (
	ReceiverP2PKH   ReceiverType = 0x00
	ReceiverP2SH    ReceiverType = 0x01
	ReceiverSapling ReceiverType = 0x02
	ReceiverOrchard ReceiverType = 0x03
)

var receiverTypeNames = []string{"P2PKH", "P2SH", "Sapling", "Orchard"}

// ParseReceiverType parses the text form of a receiver type.
func ParseReceiverType(s string) (ReceiverType, error) {
	for i, name := range receiverTypeNames {
		if s == name {
			return ReceiverType(i), nil
		}
	}

	return 0, ierrors.Wrapf(ErrInvalidReceiverType, "%q", s)
}

func (r ReceiverType) String() string {
	if int(r) < len(receiverTypeNames) {
		return receiverTypeNames[r]
	}

	return fmt.Sprintf("ReceiverType(0x%02x)", uint8(r))
}

// ParseFrom reads a receiver type from its compact-size typecode.
func (r *ReceiverType) ParseFrom(p *parser.Parser) error {
	start := p.Offset()
	v, err := p.ReadCompactSize()
	if err != nil {
		return err
	}
	if v >= uint64(len(receiverTypeNames)) {
		p.Seek(start)
		return ierrors.Wrapf(parser.ErrInvalidDiscriminant, "receiver type 0x%02x", v)
	}
	*r = ReceiverType(v)

	return nil
}

// Write writes the compact-size typecode.
func (r ReceiverType) Write(w *parser.Writer) {
	w.WriteCompactSize(uint64(r))
}

func (r ReceiverType) MarshalCBOR() ([]byte, error) {
	if int(r) >= len(receiverTypeNames) {
		return nil, ierrors.Wrapf(ErrInvalidReceiverType, "0x%02x", uint8(r))
	}

	return cbor.Marshal(r.String())
}

func (r *ReceiverType) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := ParseReceiverType(s)
	if err != nil {
		return err
	}
	*r = t

	return nil
}
