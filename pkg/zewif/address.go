package zewif

import (
	"slices"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/crypto"
	"github.com/suffix-labs/zewif/pkg/document"
)

// ProtocolAddress is the protocol-specific part of an address. It is
// implemented by *TransparentAddress, *ShieldedAddress and
// *UnifiedAddress only.
type ProtocolAddress interface {
	document.Encodable
	// String returns the encoded address.
	String() string
	protocolAddress()
}

// TransparentAddress is a t-address.
type TransparentAddress struct {
	address string
}

func NewTransparentAddress(address string) *TransparentAddress {
	return &TransparentAddress{address: address}
}

// TransparentAddressFromPubKey derives the P2PKH address of a SEC-encoded
// public key.
func TransparentAddressFromPubKey(pubKey []byte, network Network) (*TransparentAddress, error) {
	pub, err := crypto.ParsePublicKey(pubKey)
	if err != nil {
		return nil, err
	}

	return &TransparentAddress{address: crypto.P2PKHAddress(pub, network.Testnet()).String()}, nil
}

func (a *TransparentAddress) String() string { return a.address }

func (*TransparentAddress) protocolAddress() {}

// ReceiverType decodes the address and reports whether it is P2PKH or
// P2SH.
func (a *TransparentAddress) ReceiverType() (ReceiverType, error) {
	decoded, err := crypto.ParseTransparentAddress(a.address)
	if err != nil {
		return 0, err
	}
	if decoded.Kind() == crypto.P2SH {
		return ReceiverP2SH, nil
	}

	return ReceiverP2PKH, nil
}

// Validate checks the Base58Check encoding and that the prefix belongs to
// network.
func (a *TransparentAddress) Validate(network Network) error {
	decoded, err := crypto.ParseTransparentAddress(a.address)
	if err != nil {
		return err
	}
	if decoded.Testnet() != network.Testnet() {
		return ierrors.Wrapf(crypto.ErrInvalidAddress, "%s is not a %s address", a.address, network)
	}

	return nil
}

func (a *TransparentAddress) ToDocument() *document.Document {
	return document.New(a.address).AddType(TagTransparentAddress)
}

func TransparentAddressFromDocument(d *document.Document) (*TransparentAddress, error) {
	if err := d.CheckType(TagTransparentAddress); err != nil {
		return nil, err
	}

	address, err := document.ExtractSubject[string](d)
	if err != nil {
		return nil, err
	}

	return &TransparentAddress{address: address}, nil
}

// ShieldedAddress is a Sprout or Sapling z-address.
type ShieldedAddress struct {
	address     string
	diversifier *blob.Blob11
}

func NewShieldedAddress(address string) *ShieldedAddress {
	return &ShieldedAddress{address: address}
}

func (a *ShieldedAddress) String() string { return a.address }

func (*ShieldedAddress) protocolAddress() {}

// Diversifier returns the Sapling diversifier, or nil.
func (a *ShieldedAddress) Diversifier() *blob.Blob11 {
	return a.diversifier
}

func (a *ShieldedAddress) SetDiversifier(d blob.Blob11) {
	a.diversifier = &d
}

func (a *ShieldedAddress) ToDocument() *document.Document {
	return document.New(a.address).
		AddType(TagShieldedAddress).
		AddOptionalAssertion("diversifier", a.diversifier)
}

func ShieldedAddressFromDocument(d *document.Document) (*ShieldedAddress, error) {
	if err := d.CheckType(TagShieldedAddress); err != nil {
		return nil, err
	}

	address, err := document.ExtractSubject[string](d)
	if err != nil {
		return nil, err
	}
	diversifier, err := document.ExtractOptionalObject[blob.Blob11](d, "diversifier")
	if err != nil {
		return nil, err
	}

	return &ShieldedAddress{address: address, diversifier: diversifier}, nil
}

// UnifiedAddress is a u-address together with the receivers it is known
// to contain.
type UnifiedAddress struct {
	address          string
	receiverTypes    []ReceiverType
	diversifierIndex *blob.Blob11
}

func NewUnifiedAddress(address string) *UnifiedAddress {
	return &UnifiedAddress{address: address}
}

func (a *UnifiedAddress) String() string { return a.address }

func (*UnifiedAddress) protocolAddress() {}

// ReceiverTypes returns the receiver types in typecode order.
func (a *UnifiedAddress) ReceiverTypes() []ReceiverType {
	return slices.Clone(a.receiverTypes)
}

// AddReceiverType records a receiver type. Duplicates are ignored.
func (a *UnifiedAddress) AddReceiverType(t ReceiverType) {
	i, found := slices.BinarySearch(a.receiverTypes, t)
	if !found {
		a.receiverTypes = slices.Insert(a.receiverTypes, i, t)
	}
}

// HasReceiverType reports whether t is among the receivers.
func (a *UnifiedAddress) HasReceiverType(t ReceiverType) bool {
	_, found := slices.BinarySearch(a.receiverTypes, t)

	return found
}

// DiversifierIndex returns the ZIP 32 diversifier index, or nil.
func (a *UnifiedAddress) DiversifierIndex() *blob.Blob11 {
	return a.diversifierIndex
}

func (a *UnifiedAddress) SetDiversifierIndex(index blob.Blob11) {
	a.diversifierIndex = &index
}

func (a *UnifiedAddress) ToDocument() *document.Document {
	types := a.receiverTypes
	if types == nil {
		types = []ReceiverType{}
	}

	return document.New(a.address).
		AddType(TagUnifiedAddress).
		AddAssertion("receiver_types", types).
		AddOptionalAssertion("diversifier_index", a.diversifierIndex)
}

func UnifiedAddressFromDocument(d *document.Document) (*UnifiedAddress, error) {
	if err := d.CheckType(TagUnifiedAddress); err != nil {
		return nil, err
	}

	address, err := document.ExtractSubject[string](d)
	if err != nil {
		return nil, err
	}
	types, err := document.ExtractObject[[]ReceiverType](d, "receiver_types")
	if err != nil {
		return nil, err
	}
	diversifierIndex, err := document.ExtractOptionalObject[blob.Blob11](d, "diversifier_index")
	if err != nil {
		return nil, err
	}

	a := &UnifiedAddress{address: address, diversifierIndex: diversifierIndex}
	for _, t := range types {
		a.AddReceiverType(t)
	}

	return a, nil
}

// ProtocolAddressFromDocument decodes whichever protocol address d holds.
// Unknown tags fail.
func ProtocolAddressFromDocument(d *document.Document) (ProtocolAddress, error) {
	tag, err := d.Type()
	if err != nil {
		return nil, err
	}

	switch tag {
	case TagTransparentAddress:
		return TransparentAddressFromDocument(d)
	case TagShieldedAddress:
		return ShieldedAddressFromDocument(d)
	case TagUnifiedAddress:
		return UnifiedAddressFromDocument(d)
	default:
		return nil, ierrors.Wrapf(document.ErrUnknownTag, "%q is not an address", tag)
	}
}

// Address is a wallet address with its user-facing metadata.
type Address struct {
	slot
	address     ProtocolAddress
	name        string
	purpose     *string
	attachments Attachments
}

func NewAddress(address ProtocolAddress) *Address {
	return &Address{address: address}
}

func (a *Address) Address() ProtocolAddress { return a.address }

func (a *Address) SetAddress(address ProtocolAddress) { a.address = address }

// AsString returns the encoded address.
func (a *Address) AsString() string { return a.address.String() }

func (a *Address) Name() string { return a.name }

func (a *Address) SetName(name string) { a.name = name }

// Purpose returns the purpose label, or nil.
func (a *Address) Purpose() *string { return a.purpose }

func (a *Address) SetPurpose(purpose string) { a.purpose = &purpose }

// Attachments returns the vendor attachments of the address.
func (a *Address) Attachments() *Attachments { return &a.attachments }

func (a *Address) ToDocument() *document.Document {
	d := document.New(a.index).
		AddType(TagAddress).
		AddAssertion("address", a.address).
		AddAssertion("name", a.name).
		AddOptionalAssertion("purpose", a.purpose)

	return a.attachments.addTo(d)
}

func AddressFromDocument(d *document.Document) (*Address, error) {
	if err := d.CheckType(TagAddress); err != nil {
		return nil, err
	}

	index, err := document.ExtractSubject[int](d)
	if err != nil {
		return nil, ierrors.Wrap(err, "index")
	}
	address, err := document.DecodeObject(d, "address", ProtocolAddressFromDocument)
	if err != nil {
		return nil, err
	}
	name, err := document.ExtractObject[string](d, "name")
	if err != nil {
		return nil, err
	}
	purpose, err := document.ExtractOptionalObject[string](d, "purpose")
	if err != nil {
		return nil, err
	}
	attachments, err := attachmentsFromDocument(d)
	if err != nil {
		return nil, ierrors.Wrap(err, "attachments")
	}

	return &Address{
		slot:        slot{index: index},
		address:     address,
		name:        name,
		purpose:     purpose,
		attachments: attachments,
	}, nil
}
