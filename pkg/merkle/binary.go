package merkle

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/parser"
)

// The binary forms below are zcashd's CDataStream serialization:
//
//	tree:    optional(left) || optional(right) || compactsize(n) || n * optional(parent)
//	witness: tree || compactsize(n) || n * filled || optional(cursor tree)
//
// where optional(x) is a 0x00 byte, or 0x01 followed by x.

func readOptionalHash(p *parser.Parser) (*blob.U256, error) {
	present, err := p.ReadOptional()
	if err != nil || !present {
		return nil, err
	}

	h, err := p.ReadBlob32()
	if err != nil {
		return nil, err
	}

	return &h, nil
}

func writeOptionalHash(w *parser.Writer, h *blob.U256) {
	w.WriteOptional(h != nil)
	if h != nil {
		w.WriteFixed(h[:])
	}
}

// ParseTree reads a serialized tree of the given depth.
func ParseTree(p *parser.Parser, depth int) (*Tree, error) {
	start := p.Offset()
	t, err := parseTree(p, depth)
	if err != nil {
		p.Seek(start)

		return nil, err
	}

	return t, nil
}

func parseTree(p *parser.Parser, depth int) (*Tree, error) {
	left, err := readOptionalHash(p)
	if err != nil {
		return nil, parser.Field("left", err)
	}

	right, err := readOptionalHash(p)
	if err != nil {
		return nil, parser.Field("right", err)
	}

	count, err := p.ReadLength()
	if err != nil {
		return nil, parser.Field("parents", err)
	}
	if count >= depth {
		return nil, structuref("tree of depth %d has %d parents", depth, count)
	}

	parents := make([]*blob.U256, count)
	for i := range parents {
		if parents[i], err = readOptionalHash(p); err != nil {
			return nil, parser.Field("parents", ierrors.Wrapf(err, "parent %d", i))
		}
	}

	return TreeFromParts(depth, left, right, parents)
}

// Write appends the serialized tree to w.
func (t *Tree) Write(w *parser.Writer) {
	writeOptionalHash(w, t.left)
	writeOptionalHash(w, t.right)
	w.WriteCompactSize(uint64(len(t.parents)))
	for _, p := range t.parents {
		writeOptionalHash(w, p)
	}
}

// Bytes returns the serialized tree.
func (t *Tree) Bytes() []byte {
	w := parser.NewWriter()
	t.Write(w)

	return w.Bytes()
}

// ParseWitness reads a serialized witness over a tree of the given depth.
func ParseWitness(p *parser.Parser, depth int) (*Witness, error) {
	start := p.Offset()
	w, err := parseWitness(p, depth)
	if err != nil {
		p.Seek(start)

		return nil, err
	}

	return w, nil
}

func parseWitness(p *parser.Parser, depth int) (*Witness, error) {
	tree, err := parseTree(p, depth)
	if err != nil {
		return nil, parser.Field("tree", err)
	}

	count, err := p.ReadLength()
	if err != nil {
		return nil, parser.Field("filled", err)
	}
	if count > depth {
		return nil, structuref("%d filled hashes exceed depth %d", count, depth)
	}

	filled := make([]blob.U256, count)
	for i := range filled {
		if filled[i], err = p.ReadBlob32(); err != nil {
			return nil, parser.Field("filled", ierrors.Wrapf(err, "hash %d", i))
		}
	}

	hasCursor, err := p.ReadOptional()
	if err != nil {
		return nil, parser.Field("cursor", err)
	}

	var cursor *Tree
	if hasCursor {
		if cursor, err = parseTree(p, depth); err != nil {
			return nil, parser.Field("cursor", err)
		}
	}

	return WitnessFromParts(tree, filled, cursor)
}

// Write appends the serialized witness to w.
func (w *Witness) Write(out *parser.Writer) {
	w.tree.Write(out)
	out.WriteCompactSize(uint64(len(w.filled)))
	for _, h := range w.filled {
		out.WriteFixed(h[:])
	}
	out.WriteOptional(w.cursor != nil)
	if w.cursor != nil {
		w.cursor.Write(out)
	}
}

// Bytes returns the serialized witness.
func (w *Witness) Bytes() []byte {
	out := parser.NewWriter()
	w.Write(out)

	return out.Bytes()
}
