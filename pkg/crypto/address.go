package crypto

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
)

// AddressKind distinguishes the two transparent address forms.
type AddressKind uint8

const (
	P2PKH AddressKind = iota
	P2SH
)

func (k AddressKind) String() string {
	if k == P2SH {
		return "P2SH"
	}

	return "P2PKH"
}

// AddressPrefix is the two-byte Base58Check version of a transparent
// address.
type AddressPrefix [2]byte

// Transparent address prefixes. Regtest uses the testnet values.
var (
	MainnetP2PKH = AddressPrefix{0x1c, 0xb8}
	MainnetP2SH  = AddressPrefix{0x1c, 0xbd}
	TestnetP2PKH = AddressPrefix{0x1d, 0x25}
	TestnetP2SH  = AddressPrefix{0x1c, 0xba}
)

type prefixInfo struct {
	kind    AddressKind
	testnet bool
}

var prefixes = map[AddressPrefix]prefixInfo{
	MainnetP2PKH: {P2PKH, false},
	MainnetP2SH:  {P2SH, false},
	TestnetP2PKH: {P2PKH, true},
	TestnetP2SH:  {P2SH, true},
}

// TransparentAddress is a decoded t-address: a known prefix and the
// HASH160 of a public key or script.
type TransparentAddress struct {
	Prefix AddressPrefix
	Hash   blob.Blob20
}

// NewTransparentAddress builds an address of the given kind and network.
func NewTransparentAddress(kind AddressKind, testnet bool, hash blob.Blob20) TransparentAddress {
	prefix := MainnetP2PKH
	switch {
	case kind == P2PKH && testnet:
		prefix = TestnetP2PKH
	case kind == P2SH && testnet:
		prefix = TestnetP2SH
	case kind == P2SH:
		prefix = MainnetP2SH
	}

	return TransparentAddress{Prefix: prefix, Hash: hash}
}

// P2PKHAddress returns the pay-to-pubkey-hash address of pub.
func P2PKHAddress(pub *PublicKey, testnet bool) TransparentAddress {
	return NewTransparentAddress(P2PKH, testnet, pub.Hash160())
}

// ParseTransparentAddress decodes a Base58Check t-address.
//
// base58.CheckDecode treats only the first byte as the version, so the
// second prefix byte arrives at the front of the payload.
func ParseTransparentAddress(s string) (TransparentAddress, error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return TransparentAddress{}, ierrors.Wrapf(ErrInvalidAddress, "%q: %v", s, err)
	}
	if len(payload) != 21 {
		return TransparentAddress{}, ierrors.Wrapf(ErrInvalidAddress, "%q: payload of %d bytes", s, len(payload))
	}

	prefix := AddressPrefix{version, payload[0]}
	if _, ok := prefixes[prefix]; !ok {
		return TransparentAddress{}, ierrors.Wrapf(ErrInvalidAddress, "%q: unknown prefix %x", s, prefix[:])
	}

	hash, err := blob.Blob20FromSlice(payload[1:])
	if err != nil {
		return TransparentAddress{}, err
	}

	return TransparentAddress{Prefix: prefix, Hash: hash}, nil
}

// Kind reports whether the address pays to a key hash or a script hash.
func (a TransparentAddress) Kind() AddressKind {
	return prefixes[a.Prefix].kind
}

// Testnet reports whether the prefix belongs to testnet or regtest.
func (a TransparentAddress) Testnet() bool {
	return prefixes[a.Prefix].testnet
}

// String returns the Base58Check encoding.
func (a TransparentAddress) String() string {
	payload := make([]byte, 0, 21)
	payload = append(payload, a.Prefix[1])
	payload = append(payload, a.Hash[:]...)

	return base58.CheckEncode(payload, a.Prefix[0])
}
