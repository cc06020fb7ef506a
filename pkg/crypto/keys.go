// Package crypto implements the Zcash primitives a wallet export needs to
// check the data it carries: transparent keys and addresses, and
// transaction identifiers.
//
// Transparent public keys are Bitcoin-style secp256k1 keys in compressed
// (33 bytes) or uncompressed (65 bytes) SEC form.
//
// Transaction ids follow ZIP 244 for v5 transactions and the legacy
// double SHA-256 of the raw encoding for earlier versions.
package crypto

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/iotaledger/hive.go/ierrors"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // HASH160 is defined over RIPEMD-160

	"github.com/suffix-labs/zewif/pkg/blob"
)

// PublicKey wraps a secp256k1 public key.
type PublicKey struct {
	key        *secp256k1.PublicKey
	compressed bool
}

// ParsePublicKey parses a compressed or uncompressed SEC public key.
func ParsePublicKey(pubKeyBytes []byte) (*PublicKey, error) {
	if len(pubKeyBytes) != secp256k1.PubKeyBytesLenCompressed && len(pubKeyBytes) != secp256k1.PubKeyBytesLenUncompressed {
		return nil, ierrors.Wrapf(ErrInvalidKey, "public key must be 33 or 65 bytes, got %d", len(pubKeyBytes))
	}

	pubKey, err := secp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return nil, ierrors.Join(ErrInvalidKey, err)
	}

	return &PublicKey{key: pubKey, compressed: len(pubKeyBytes) == secp256k1.PubKeyBytesLenCompressed}, nil
}

// Bytes returns the public key in the form it was parsed in.
func (pub *PublicKey) Bytes() []byte {
	if pub.compressed {
		return pub.key.SerializeCompressed()
	}

	return pub.key.SerializeUncompressed()
}

// Hash160 returns RIPEMD-160(SHA-256(pubkey)), the payload of a P2PKH
// address.
func (pub *PublicKey) Hash160() blob.Blob20 {
	return Hash160(pub.Bytes())
}

// Hash160 returns RIPEMD-160(SHA-256(data)).
func Hash160(data []byte) blob.Blob20 {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])

	var out blob.Blob20
	copy(out[:], h.Sum(nil))

	return out
}
