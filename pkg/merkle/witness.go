package merkle

import (
	"github.com/suffix-labs/zewif/pkg/blob"
)

// Witness tracks the authentication path of one leaf as later leaves are
// appended to the tree.
//
// tree is the frontier at the moment the witnessed leaf was appended.
// filled holds the roots of the completed subtrees to the right of the
// leaf, one per level in the order they complete. cursor accumulates the
// leaves of the subtree currently being filled, at level cursorDepth; once
// it completes, its root moves to filled.
type Witness struct {
	tree        *Tree
	filled      []blob.U256
	cursor      *Tree
	cursorDepth int
}

// NewWitness starts a witness for the last leaf of tree. The tree is
// copied.
func NewWitness(tree *Tree) (*Witness, error) {
	if tree.IsEmpty() {
		return nil, ErrEmptyTree
	}

	return &Witness{tree: tree.Clone()}, nil
}

// WitnessFromParts builds a witness from its stored parts. The cursor
// depth is not stored; it is recomputed from the tree and the number of
// filled hashes.
func WitnessFromParts(tree *Tree, filled []blob.U256, cursor *Tree) (*Witness, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	if tree.IsEmpty() {
		return nil, structuref("witness tree is empty")
	}

	w := &Witness{
		tree:   tree.Clone(),
		filled: append([]blob.U256(nil), filled...),
	}

	if next := tree.NextDepth(len(filled)); next > tree.depth {
		return nil, structuref("%d filled hashes exceed depth %d", len(filled), tree.depth)
	}

	if cursor != nil {
		if cursor.depth != tree.depth {
			return nil, structuref("cursor depth %d differs from tree depth %d", cursor.depth, tree.depth)
		}
		if err := cursor.Validate(); err != nil {
			return nil, err
		}

		w.cursorDepth = tree.NextDepth(len(filled))
		if w.cursorDepth == 0 || w.cursorDepth >= tree.depth {
			return nil, structuref("cursor at invalid level %d", w.cursorDepth)
		}
		if cursor.IsEmpty() || cursor.IsComplete(w.cursorDepth) {
			return nil, structuref("cursor is not a partial subtree of level %d", w.cursorDepth)
		}
		if cursor.Size() >= 1<<w.cursorDepth {
			return nil, structuref("cursor holds %d leaves, level %d allows fewer", cursor.Size(), w.cursorDepth)
		}
		w.cursor = cursor.Clone()
	}

	return w, nil
}

// Tree returns a copy of the frontier at the witnessed leaf.
func (w *Witness) Tree() *Tree {
	return w.tree.Clone()
}

// Filled returns a copy of the filled subtree roots.
func (w *Witness) Filled() []blob.U256 {
	return append([]blob.U256(nil), w.filled...)
}

// Cursor returns a copy of the partial subtree, or nil.
func (w *Witness) Cursor() *Tree {
	if w.cursor == nil {
		return nil
	}

	return w.cursor.Clone()
}

// Depth returns the tree depth.
func (w *Witness) Depth() int {
	return w.tree.depth
}

// Position returns the index of the witnessed leaf.
func (w *Witness) Position() uint64 {
	return w.tree.Size() - 1
}

// Element returns the witnessed leaf.
func (w *Witness) Element() blob.U256 {
	leaf, _ := w.tree.Last()

	return leaf
}

// Clone returns an independent copy of w.
func (w *Witness) Clone() *Witness {
	return &Witness{
		tree:        w.tree.Clone(),
		filled:      w.Filled(),
		cursor:      w.Cursor(),
		cursorDepth: w.cursorDepth,
	}
}

// Equal reports whether two witnesses hold the same state.
func (w *Witness) Equal(other *Witness) bool {
	if !w.tree.Equal(other.tree) || len(w.filled) != len(other.filled) {
		return false
	}
	for i := range w.filled {
		if w.filled[i] != other.filled[i] {
			return false
		}
	}
	if w.cursor == nil || other.cursor == nil {
		return w.cursor == other.cursor
	}

	return w.cursor.Equal(other.cursor) && w.cursorDepth == other.cursorDepth
}

// Append records a leaf appended to the global tree after the witnessed
// one.
func (w *Witness) Append(h Hasher, leaf blob.U256) error {
	if w.cursor != nil {
		if err := w.cursor.Append(h, leaf); err != nil {
			return err
		}
		if w.cursor.IsComplete(w.cursorDepth) {
			w.filled = append(w.filled, w.cursor.RootWithFiller(h, w.cursorDepth, nil))
			w.cursor = nil
		}

		return nil
	}

	w.cursorDepth = w.tree.NextDepth(len(w.filled))
	if w.cursorDepth >= w.tree.depth {
		return ErrTreeFull
	}

	if w.cursorDepth == 0 {
		w.filled = append(w.filled, leaf)

		return nil
	}

	w.cursor = NewTree(w.tree.depth)

	return w.cursor.Append(h, leaf)
}

// partialPath returns the known siblings to the right of the leaf.
func (w *Witness) partialPath(h Hasher) []blob.U256 {
	uncles := w.Filled()
	if w.cursor != nil {
		uncles = append(uncles, w.cursor.RootWithFiller(h, w.cursorDepth, nil))
	}

	return uncles
}

// Root returns the root of the global tree as seen by the witness.
func (w *Witness) Root(h Hasher) blob.U256 {
	return w.tree.RootWithFiller(h, w.tree.depth, w.partialPath(h))
}

// Path returns the authentication path of the witnessed leaf. It always
// has exactly Depth entries.
func (w *Witness) Path(h Hasher) (Path, error) {
	return w.tree.Path(h, w.partialPath(h))
}
