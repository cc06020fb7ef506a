package zewif

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/document"
)

// OrchardActionDescription is an Orchard action of a transaction, with the
// tree position and witness of its output note when the wallet owns it.
type OrchardActionDescription struct {
	slot
	commitment blob.U256
	position   *Position
	witness    *Witness
}

func NewOrchardActionDescription(commitment blob.U256) *OrchardActionDescription {
	return &OrchardActionDescription{commitment: commitment}
}

// Commitment returns the extracted note commitment cmx.
func (a *OrchardActionDescription) Commitment() blob.U256 { return a.commitment }

func (a *OrchardActionDescription) Position() *Position { return a.position }

func (a *OrchardActionDescription) SetPosition(p Position) { a.position = &p }

func (a *OrchardActionDescription) Witness() *Witness { return a.witness }

// SetWitness attaches an Orchard witness.
func (a *OrchardActionDescription) SetWitness(w *Witness) error {
	if w.Protocol() != ProtocolOrchard {
		return ierrors.Wrapf(ErrProtocolMismatch, "%s witness on an orchard action", w.Protocol())
	}
	a.witness = w

	return nil
}

func (a *OrchardActionDescription) ToDocument() *document.Document {
	return document.New(a.index).
		AddType(TagOrchardActionDescription).
		AddAssertion("commitment", a.commitment).
		AddOptionalAssertion("position", a.position).
		AddOptionalAssertion("witness", a.witness)
}

func OrchardActionDescriptionFromDocument(d *document.Document) (*OrchardActionDescription, error) {
	if err := d.CheckType(TagOrchardActionDescription); err != nil {
		return nil, err
	}

	a := new(OrchardActionDescription)

	var err error
	if a.index, err = document.ExtractSubject[int](d); err != nil {
		return nil, ierrors.Wrap(err, "index")
	}
	if a.commitment, err = document.ExtractObject[blob.U256](d, "commitment"); err != nil {
		return nil, err
	}
	if a.position, err = document.ExtractOptionalObject[Position](d, "position"); err != nil {
		return nil, err
	}
	if a.witness, _, err = document.DecodeOptionalObject(d, "witness", WitnessDecoder(ProtocolOrchard)); err != nil {
		return nil, err
	}

	return a, nil
}
