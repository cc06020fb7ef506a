package zewif

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/document"
)

// SaplingOutputDescription is a Sapling output of a transaction, with the
// tree position and witness the wallet keeps for it when the note is
// its own.
type SaplingOutputDescription struct {
	slot
	commitment blob.U256
	position   *Position
	witness    *Witness
}

func NewSaplingOutputDescription(commitment blob.U256) *SaplingOutputDescription {
	return &SaplingOutputDescription{commitment: commitment}
}

// Commitment returns the note commitment cmu.
func (o *SaplingOutputDescription) Commitment() blob.U256 { return o.commitment }

func (o *SaplingOutputDescription) Position() *Position { return o.position }

func (o *SaplingOutputDescription) SetPosition(p Position) { o.position = &p }

func (o *SaplingOutputDescription) Witness() *Witness { return o.witness }

// SetWitness attaches a Sapling witness.
func (o *SaplingOutputDescription) SetWitness(w *Witness) error {
	if w.Protocol() != ProtocolSapling {
		return ierrors.Wrapf(ErrProtocolMismatch, "%s witness on a sapling output", w.Protocol())
	}
	o.witness = w

	return nil
}

func (o *SaplingOutputDescription) ToDocument() *document.Document {
	return document.New(o.index).
		AddType(TagSaplingOutputDescription).
		AddAssertion("commitment", o.commitment).
		AddOptionalAssertion("position", o.position).
		AddOptionalAssertion("witness", o.witness)
}

func SaplingOutputDescriptionFromDocument(d *document.Document) (*SaplingOutputDescription, error) {
	if err := d.CheckType(TagSaplingOutputDescription); err != nil {
		return nil, err
	}

	o := new(SaplingOutputDescription)

	var err error
	if o.index, err = document.ExtractSubject[int](d); err != nil {
		return nil, ierrors.Wrap(err, "index")
	}
	if o.commitment, err = document.ExtractObject[blob.U256](d, "commitment"); err != nil {
		return nil, err
	}
	if o.position, err = document.ExtractOptionalObject[Position](d, "position"); err != nil {
		return nil, err
	}
	if o.witness, _, err = document.DecodeOptionalObject(d, "witness", WitnessDecoder(ProtocolSapling)); err != nil {
		return nil, err
	}

	return o, nil
}

// SaplingSentOutput holds the plaintext of a Sapling note the wallet sent.
// It cannot be recovered from the chain and is what lets the sender prove
// the payment later.
type SaplingSentOutput struct {
	slot
	diversifier        blob.Blob11
	recipientPublicKey blob.U256
	value              Amount
	rcm                blob.U256
}

func NewSaplingSentOutput() *SaplingSentOutput {
	return new(SaplingSentOutput)
}

func (s *SaplingSentOutput) Diversifier() blob.Blob11 { return s.diversifier }

func (s *SaplingSentOutput) SetDiversifier(d blob.Blob11) { s.diversifier = d }

// RecipientPublicKey returns pk_d of the recipient address.
func (s *SaplingSentOutput) RecipientPublicKey() blob.U256 { return s.recipientPublicKey }

func (s *SaplingSentOutput) SetRecipientPublicKey(pk blob.U256) { s.recipientPublicKey = pk }

func (s *SaplingSentOutput) Value() Amount { return s.value }

func (s *SaplingSentOutput) SetValue(v Amount) { s.value = v }

// Rcm returns the note commitment randomness.
func (s *SaplingSentOutput) Rcm() blob.U256 { return s.rcm }

func (s *SaplingSentOutput) SetRcm(rcm blob.U256) { s.rcm = rcm }

// The public key predicate keeps the misspelled name used by the Rust
// zewif crate so that predicate names match across the two.
const predicateRecipientPublicKey = "receipient_public_key"

func (s *SaplingSentOutput) ToDocument() *document.Document {
	return document.New(s.index).
		AddType(TagSaplingSentOutput).
		AddAssertion("diversifier", s.diversifier).
		AddAssertion(predicateRecipientPublicKey, s.recipientPublicKey).
		AddAssertion("value", s.value).
		AddAssertion("rcm", s.rcm)
}

func SaplingSentOutputFromDocument(d *document.Document) (*SaplingSentOutput, error) {
	if err := d.CheckType(TagSaplingSentOutput); err != nil {
		return nil, err
	}

	s := new(SaplingSentOutput)

	var err error
	if s.index, err = document.ExtractSubject[int](d); err != nil {
		return nil, ierrors.Wrap(err, "index")
	}
	if s.diversifier, err = document.ExtractObject[blob.Blob11](d, "diversifier"); err != nil {
		return nil, err
	}
	if s.recipientPublicKey, err = document.ExtractObject[blob.U256](d, predicateRecipientPublicKey); err != nil {
		return nil, err
	}
	if s.value, err = document.ExtractObject[Amount](d, "value"); err != nil {
		return nil, err
	}
	if s.rcm, err = document.ExtractObject[blob.U256](d, "rcm"); err != nil {
		return nil, err
	}

	return s, nil
}
