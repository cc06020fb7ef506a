package zewif

import (
	"slices"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/document"
)

// JoinSplitDescription is a Sprout JoinSplit of a transaction.
type JoinSplitDescription struct {
	slot
	anchor      blob.U256
	nullifiers  []blob.U256
	commitments []blob.U256
	witness     *Witness
}

func NewJoinSplitDescription(anchor blob.U256, nullifiers, commitments []blob.U256) *JoinSplitDescription {
	return &JoinSplitDescription{
		anchor:      anchor,
		nullifiers:  slices.Clone(nullifiers),
		commitments: slices.Clone(commitments),
	}
}

// Anchor returns the Sprout tree root the JoinSplit spends against.
func (j *JoinSplitDescription) Anchor() blob.U256 { return j.anchor }

func (j *JoinSplitDescription) Nullifiers() []blob.U256 { return slices.Clone(j.nullifiers) }

func (j *JoinSplitDescription) Commitments() []blob.U256 { return slices.Clone(j.commitments) }

func (j *JoinSplitDescription) Witness() *Witness { return j.witness }

// SetWitness attaches a Sprout witness.
func (j *JoinSplitDescription) SetWitness(w *Witness) error {
	if w.Protocol() != ProtocolSprout {
		return ierrors.Wrapf(ErrProtocolMismatch, "%s witness on a joinsplit", w.Protocol())
	}
	j.witness = w

	return nil
}

func (j *JoinSplitDescription) ToDocument() *document.Document {
	return document.New(j.index).
		AddType(TagJoinSplitDescription).
		AddAssertion("anchor", j.anchor).
		AddAssertion("nullifiers", nonNil(j.nullifiers)).
		AddAssertion("commitments", nonNil(j.commitments)).
		AddOptionalAssertion("witness", j.witness)
}

func JoinSplitDescriptionFromDocument(d *document.Document) (*JoinSplitDescription, error) {
	if err := d.CheckType(TagJoinSplitDescription); err != nil {
		return nil, err
	}

	j := new(JoinSplitDescription)

	var err error
	if j.index, err = document.ExtractSubject[int](d); err != nil {
		return nil, ierrors.Wrap(err, "index")
	}
	if j.anchor, err = document.ExtractObject[blob.U256](d, "anchor"); err != nil {
		return nil, err
	}
	if j.nullifiers, err = document.ExtractObject[[]blob.U256](d, "nullifiers"); err != nil {
		return nil, err
	}
	if j.commitments, err = document.ExtractObject[[]blob.U256](d, "commitments"); err != nil {
		return nil, err
	}
	if j.witness, _, err = document.DecodeOptionalObject(d, "witness", WitnessDecoder(ProtocolSprout)); err != nil {
		return nil, err
	}
	j.nullifiers = nonEmpty(j.nullifiers)
	j.commitments = nonEmpty(j.commitments)

	return j, nil
}

// nonNil makes an empty list encode as an empty CBOR array rather than
// null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
