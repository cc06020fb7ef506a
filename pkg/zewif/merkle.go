package zewif

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/document"
	"github.com/suffix-labs/zewif/pkg/merkle"
)

// Protocol is a shielded protocol with its own note commitment tree.
type Protocol uint8

const (
	ProtocolSprout Protocol = iota
	ProtocolSapling
	ProtocolOrchard
)

var protocolNames = []string{"sprout", "sapling", "orchard"}

// ParseProtocol parses a lowercase protocol name.
func ParseProtocol(s string) (Protocol, error) {
	for i, name := range protocolNames {
		if s == name {
			return Protocol(i), nil
		}
	}

	return 0, ierrors.Wrapf(ErrProtocolMismatch, "unknown protocol %q", s)
}

func (p Protocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}

	return fmt.Sprintf("Protocol(%d)", uint8(p))
}

// Depth returns the depth of the protocol's commitment tree.
func (p Protocol) Depth() int {
	if p == ProtocolSprout {
		return merkle.SproutDepth
	}

	return merkle.SaplingDepth
}

// WitnessTag returns the type tag of the protocol's witness documents.
func (p Protocol) WitnessTag() string {
	switch p {
	case ProtocolSprout:
		return TagSproutWitness
	case ProtocolSapling:
		return TagSaplingWitness
	default:
		return TagOrchardWitness
	}
}

// Hasher returns the node hash of the protocol's tree when it is available
// without the proving libraries. Only Sprout's is.
func (p Protocol) Hasher() (merkle.Hasher, bool) {
	if p == ProtocolSprout {
		return merkle.SHA256Compress{}, true
	}

	return nil, false
}

// TreeDocument encodes a tree frontier. The subject is the depth.
func TreeDocument(t *merkle.Tree) *document.Document {
	parents := t.Parents()
	if parents == nil {
		parents = []*blob.U256{}
	}

	return document.New(t.Depth()).
		AddType(TagIncrementalMerkleTree).
		AddOptionalAssertion("left", t.Left()).
		AddOptionalAssertion("right", t.Right()).
		AddAssertion("parents", parents)
}

// TreeFromDocument decodes a tree frontier of the given depth.
func TreeFromDocument(d *document.Document, depth int) (*merkle.Tree, error) {
	if err := d.CheckType(TagIncrementalMerkleTree); err != nil {
		return nil, err
	}

	stored, err := document.ExtractSubject[int](d)
	if err != nil {
		return nil, ierrors.Wrap(err, "depth")
	}
	if stored != depth {
		return nil, ierrors.Wrapf(ErrProtocolMismatch, "tree depth %d, expected %d", stored, depth)
	}

	left, err := document.ExtractOptionalObject[blob.U256](d, "left")
	if err != nil {
		return nil, err
	}
	right, err := document.ExtractOptionalObject[blob.U256](d, "right")
	if err != nil {
		return nil, err
	}
	parents, err := document.ExtractObject[[]*blob.U256](d, "parents")
	if err != nil {
		return nil, err
	}

	return merkle.TreeFromParts(depth, left, right, parents)
}

// Witness is a note commitment witness of one protocol.
type Witness struct {
	protocol Protocol
	witness  *merkle.Witness
}

// NewWitness wraps w, which must have the protocol's depth.
func NewWitness(protocol Protocol, w *merkle.Witness) (*Witness, error) {
	if w.Depth() != protocol.Depth() {
		return nil, ierrors.Wrapf(ErrProtocolMismatch, "%s witness of depth %d", protocol, w.Depth())
	}

	return &Witness{protocol: protocol, witness: w.Clone()}, nil
}

// Protocol returns the protocol the witness belongs to.
func (w *Witness) Protocol() Protocol {
	return w.protocol
}

// Merkle returns a copy of the underlying witness.
func (w *Witness) Merkle() *merkle.Witness {
	return w.witness.Clone()
}

// Position returns the index of the witnessed leaf.
func (w *Witness) Position() uint64 {
	return w.witness.Position()
}

// ToDocument encodes the witness. The subject is the tree at the
// witnessed leaf.
func (w *Witness) ToDocument() *document.Document {
	filled := w.witness.Filled()
	if filled == nil {
		filled = []blob.U256{}
	}

	d := document.New(TreeDocument(w.witness.Tree())).
		AddType(w.protocol.WitnessTag()).
		AddAssertion("filled", filled)
	if cursor := w.witness.Cursor(); cursor != nil {
		d = d.AddAssertion("cursor", TreeDocument(cursor))
	}

	return d
}

// WitnessDecoder returns a decoder for witnesses of protocol.
func WitnessDecoder(protocol Protocol) document.DecodeFunc[*Witness] {
	return func(d *document.Document) (*Witness, error) {
		return witnessFromDocument(d, protocol)
	}
}

func witnessFromDocument(d *document.Document, protocol Protocol) (*Witness, error) {
	if err := d.CheckType(protocol.WitnessTag()); err != nil {
		return nil, err
	}

	depth := protocol.Depth()
	tree, err := TreeFromDocument(d.Subject(), depth)
	if err != nil {
		return nil, ierrors.Wrap(err, "tree")
	}

	filled, err := document.ExtractObject[[]blob.U256](d, "filled")
	if err != nil {
		return nil, err
	}

	cursor, _, err := document.DecodeOptionalObject(d, "cursor", func(d *document.Document) (*merkle.Tree, error) {
		return TreeFromDocument(d, depth)
	})
	if err != nil {
		return nil, err
	}

	w, err := merkle.WitnessFromParts(tree, filled, cursor)
	if err != nil {
		return nil, err
	}

	return &Witness{protocol: protocol, witness: w}, nil
}
