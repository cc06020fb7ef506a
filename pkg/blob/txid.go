package blob

import (
	"crypto/rand"
	"encoding/hex"
	"slices"
)

// TxID identifies a transaction. It is stored in internal byte order and
// displayed byte-reversed, the way zcashd prints transaction ids.
type TxID [32]byte

// TxIDFromBytes wraps internal-order bytes.
func TxIDFromBytes(data [32]byte) TxID {
	return TxID(data)
}

// TxIDFromSlice copies internal-order bytes into a TxID.
func TxIDFromSlice(data []byte) (TxID, error) {
	var id TxID
	if err := fill(id[:], data); err != nil {
		return TxID{}, err
	}

	return id, nil
}

// TxIDFromHex parses the display (byte-reversed) form.
func TxIDFromHex(s string) (TxID, error) {
	var id TxID
	if err := fillHex(id[:], s); err != nil {
		return TxID{}, err
	}
	slices.Reverse(id[:])

	return id, nil
}

// Bytes returns the internal-order bytes.
func (id TxID) Bytes() []byte {
	return id[:]
}

func (id TxID) String() string {
	reversed := id
	slices.Reverse(reversed[:])

	return hex.EncodeToString(reversed[:])
}

func (id TxID) GoString() string {
	return "TxID(" + id.String() + ")"
}

// Compare orders ids by their internal bytes.
func (id TxID) Compare(other TxID) int {
	return slices.Compare(id[:], other[:])
}

func (id TxID) MarshalCBOR() ([]byte, error) {
	return marshalBytes(id[:])
}

func (id *TxID) UnmarshalCBOR(data []byte) error {
	return unmarshalBytes(id[:], data)
}

// ARID is the random identifier of a top-level interchange container.
type ARID [32]byte

// NewARID draws a fresh identifier from crypto/rand.
func NewARID() ARID {
	var id ARID
	if _, err := rand.Read(id[:]); err != nil {
		panic("blob: crypto/rand failed: " + err.Error())
	}

	return id
}

// ARIDFromHex parses the hex form of an ARID.
func ARIDFromHex(s string) (ARID, error) {
	var id ARID
	if err := fillHex(id[:], s); err != nil {
		return ARID{}, err
	}

	return id, nil
}

func (id ARID) String() string {
	return hex.EncodeToString(id[:])
}

func (id ARID) GoString() string {
	return "ARID(" + id.String() + ")"
}

func (id ARID) MarshalCBOR() ([]byte, error) {
	return marshalBytes(id[:])
}

func (id *ARID) UnmarshalCBOR(data []byte) error {
	return unmarshalBytes(id[:], data)
}
