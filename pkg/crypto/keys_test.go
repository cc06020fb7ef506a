package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/zewif/pkg/blob"
)

// Public keys of the secp256k1 private key 1 and a WIF string used as a
// malformed address.
const (
	wifOneCompressed   = "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn"
	pubOneCompressed   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	pubOneUncompressed = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	hash160One = "751e76e8199196d454941c45d1b3a323f1433bd6"
)

func pubOne(t *testing.T) *PublicKey {
	t.Helper()

	raw, err := hex.DecodeString(pubOneCompressed)
	require.NoError(t, err)
	pub, err := ParsePublicKey(raw)
	require.NoError(t, err)

	return pub
}

func TestPublicKeyHash160(t *testing.T) {
	pub := pubOne(t)
	assert.Equal(t, pubOneCompressed, hex.EncodeToString(pub.Bytes()))
	assert.Equal(t, hash160One, pub.Hash160().String())

	raw, err := hex.DecodeString(pubOneUncompressed)
	require.NoError(t, err)
	uncompressed, err := ParsePublicKey(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, uncompressed.Bytes())
	assert.NotEqual(t, pub.Hash160(), uncompressed.Hash160())

	_, err = ParsePublicKey(make([]byte, 32))
	require.ErrorIs(t, err, ErrInvalidKey)

	bad := make([]byte, 33)
	bad[0] = 0x02
	for i := 1; i < len(bad); i++ {
		bad[i] = 0xff
	}
	_, err = ParsePublicKey(bad)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestTransparentAddress(t *testing.T) {
	hash := blob.MustBlob20FromHex(hash160One)

	tests := []struct {
		encoded string
		kind    AddressKind
		testnet bool
	}{
		{"t1UYsZVJkLPeMjxEtACvSxfWuNmddpWfxzs", P2PKH, false},
		{"tmLPctKo9j49rtCSKpwEBpLBeykiTGomGQs", P2PKH, true},
		{"t3VEtV2oBtHxjq7wKHJb3PHsqXHvMRgUmVw", P2SH, false},
	}

	for _, tt := range tests {
		addr, err := ParseTransparentAddress(tt.encoded)
		require.NoError(t, err, tt.encoded)
		assert.Equal(t, tt.kind, addr.Kind(), tt.encoded)
		assert.Equal(t, tt.testnet, addr.Testnet(), tt.encoded)
		assert.Equal(t, hash, addr.Hash, tt.encoded)
		assert.Equal(t, tt.encoded, addr.String())
		assert.Equal(t, addr, NewTransparentAddress(tt.kind, tt.testnet, hash))
	}
}

func TestP2PKHAddressOfKey(t *testing.T) {
	pub := pubOne(t)

	addr := P2PKHAddress(pub, false)
	assert.Equal(t, "t1UYsZVJkLPeMjxEtACvSxfWuNmddpWfxzs", addr.String())
	assert.Equal(t, pub.Hash160(), addr.Hash)

	testnet, err := ParseTransparentAddress(P2PKHAddress(pub, true).String())
	require.NoError(t, err)
	assert.Equal(t, P2PKH, testnet.Kind())
	assert.Equal(t, pub.Hash160(), testnet.Hash)
}

func TestParseTransparentAddressErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"t1UYsZVJkLPeMjxEtACvSxfWuNmddpWfxzt", // checksum
		wifOneCompressed,                      // wrong length
		"1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH",  // bitcoin prefix
	} {
		_, err := ParseTransparentAddress(s)
		assert.ErrorIs(t, err, ErrInvalidAddress, s)
	}
}
