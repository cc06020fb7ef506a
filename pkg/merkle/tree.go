// Package merkle implements the incremental note commitment tree and
// witness used by the shielded protocols, with the same frontier
// representation and update rules as zcashd's IncrementalMerkleTree and
// IncrementalWitness. Roots, paths, and serialized forms are bit-for-bit
// compatible with zcashd for the same hash function.
//
// A Tree stores only the right-most frontier of an append-only binary
// tree of fixed depth: an optional left and right leaf at the bottom
// level and one optional parent per level above, set only where a
// completed subtree is waiting for its right sibling.
//
// Hash functions are passed to the operations that need them, so a tree
// snapshot can be decoded, validated, and re-encoded without a hasher.
package merkle

import (
	"github.com/suffix-labs/zewif/pkg/blob"
)

// Tree is an incremental Merkle tree frontier.
type Tree struct {
	depth   int
	left    *blob.U256
	right   *blob.U256
	parents []*blob.U256
}

// NewTree returns an empty tree of the given depth. It panics if depth is
// not in [1, MaxDepth].
func NewTree(depth int) *Tree {
	checkDepth(depth)

	return &Tree{depth: depth}
}

func checkDepth(depth int) {
	if depth < 1 || depth > MaxDepth {
		panic("merkle: invalid tree depth")
	}
}

// TreeFromParts builds a tree from a stored frontier and validates it.
func TreeFromParts(depth int, left, right *blob.U256, parents []*blob.U256) (*Tree, error) {
	checkDepth(depth)

	t := &Tree{
		depth:   depth,
		left:    cloneHash(left),
		right:   cloneHash(right),
		parents: cloneHashes(parents),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks the invariants every reachable frontier satisfies.
func (t *Tree) Validate() error {
	switch {
	case len(t.parents) >= t.depth:
		return structuref("tree of depth %d has %d parents", t.depth, len(t.parents))
	case len(t.parents) > 0 && t.parents[len(t.parents)-1] == nil:
		return structuref("last parent is empty")
	case t.left == nil && t.right != nil:
		return structuref("right is set without left")
	case t.left == nil && len(t.parents) > 0:
		return structuref("parents are set without left")
	}

	return nil
}

func cloneHash(h *blob.U256) *blob.U256 {
	if h == nil {
		return nil
	}
	c := *h

	return &c
}

func cloneHashes(hs []*blob.U256) []*blob.U256 {
	if hs == nil {
		return nil
	}
	out := make([]*blob.U256, len(hs))
	for i, h := range hs {
		out[i] = cloneHash(h)
	}

	return out
}

// Clone returns an independent copy of t.
func (t *Tree) Clone() *Tree {
	return &Tree{
		depth:   t.depth,
		left:    cloneHash(t.left),
		right:   cloneHash(t.right),
		parents: cloneHashes(t.parents),
	}
}

// Depth returns the tree depth.
func (t *Tree) Depth() int {
	return t.depth
}

// Left returns a copy of the bottom-level left node, or nil.
func (t *Tree) Left() *blob.U256 {
	return cloneHash(t.left)
}

// Right returns a copy of the bottom-level right node, or nil.
func (t *Tree) Right() *blob.U256 {
	return cloneHash(t.right)
}

// Parents returns a copy of the parent frontier, lowest level first.
func (t *Tree) Parents() []*blob.U256 {
	return cloneHashes(t.parents)
}

// Equal reports whether two trees hold the same frontier.
func (t *Tree) Equal(other *Tree) bool {
	if t.depth != other.depth || !hashEqual(t.left, other.left) || !hashEqual(t.right, other.right) {
		return false
	}
	if len(t.parents) != len(other.parents) {
		return false
	}
	for i := range t.parents {
		if !hashEqual(t.parents[i], other.parents[i]) {
			return false
		}
	}

	return true
}

func hashEqual(a, b *blob.U256) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// Size returns the number of leaves appended to the tree.
func (t *Tree) Size() uint64 {
	var size uint64
	if t.left != nil {
		size++
	}
	if t.right != nil {
		size++
	}
	for i, p := range t.parents {
		if p != nil {
			size += 1 << (i + 1)
		}
	}

	return size
}

// IsEmpty reports whether nothing has been appended.
func (t *Tree) IsEmpty() bool {
	return t.left == nil
}

// IsComplete reports whether the tree holds exactly 2^depth leaves when
// viewed as a tree of the given depth.
func (t *Tree) IsComplete(depth int) bool {
	if t.left == nil || t.right == nil {
		return false
	}
	if len(t.parents) != depth-1 {
		return false
	}
	for _, p := range t.parents {
		if p == nil {
			return false
		}
	}

	return true
}

// NextDepth returns the level of the next incomplete subtree after
// skipping the first skip of them, counting from the bottom. A witness
// uses it to find the level its next filled hash belongs to.
func (t *Tree) NextDepth(skip int) int {
	if t.left == nil {
		if skip == 0 {
			return 0
		}
		skip--
	}
	if t.right == nil {
		if skip == 0 {
			return 0
		}
		skip--
	}

	d := 1
	for _, p := range t.parents {
		if p == nil {
			if skip == 0 {
				return d
			}
			skip--
		}
		d++
	}

	return d + skip
}

// Append adds a leaf, carrying completed subtrees upwards like a binary
// counter.
func (t *Tree) Append(h Hasher, leaf blob.U256) error {
	if t.IsComplete(t.depth) {
		return ErrTreeFull
	}

	switch {
	case t.left == nil:
		t.left = &leaf
	case t.right == nil:
		t.right = &leaf
	default:
		combined := h.Combine(0, *t.left, *t.right)
		t.left = &leaf
		t.right = nil

		for i := 0; i < t.depth; i++ {
			if i == len(t.parents) {
				t.parents = append(t.parents, &combined)

				break
			}
			if t.parents[i] == nil {
				t.parents[i] = &combined

				break
			}

			combined = h.Combine(i+1, *t.parents[i], combined)
			t.parents[i] = nil
		}
	}

	return nil
}

// Last returns the most recently appended leaf.
func (t *Tree) Last() (blob.U256, error) {
	switch {
	case t.right != nil:
		return *t.right, nil
	case t.left != nil:
		return *t.left, nil
	default:
		return blob.U256{}, ErrEmptyTree
	}
}

// Root returns the root of the tree at its own depth, padding every
// missing sibling with the empty subtree root of its level.
func (t *Tree) Root(h Hasher) blob.U256 {
	return t.RootWithFiller(h, t.depth, nil)
}

// RootWithFiller computes the root as a tree of the given depth, taking
// missing siblings from filler in order before falling back to empty
// subtree roots.
func (t *Tree) RootWithFiller(h Hasher, depth int, filler []blob.U256) blob.U256 {
	f := newPathFiller(h, depth, filler)

	combineLeft := f.nodeOr(t.left, 0)
	combineRight := f.nodeOr(t.right, 0)
	root := h.Combine(0, combineLeft, combineRight)

	d := 1
	for _, p := range t.parents {
		if p != nil {
			root = h.Combine(d, *p, root)
		} else {
			root = h.Combine(d, root, f.next(d))
		}
		d++
	}
	for ; d < depth; d++ {
		root = h.Combine(d, root, f.next(d))
	}

	return root
}

// Path returns the authentication path of the last appended leaf, using
// filler for siblings to its right.
func (t *Tree) Path(h Hasher, filler []blob.U256) (Path, error) {
	if t.left == nil {
		return Path{}, ErrEmptyTree
	}

	f := newPathFiller(h, t.depth, filler)
	siblings := make([]blob.U256, 0, t.depth)

	if t.right != nil {
		siblings = append(siblings, *t.left)
	} else {
		siblings = append(siblings, f.next(0))
	}

	d := 1
	for _, p := range t.parents {
		if p != nil {
			siblings = append(siblings, *p)
		} else {
			siblings = append(siblings, f.next(d))
		}
		d++
	}
	for ; d < t.depth; d++ {
		siblings = append(siblings, f.next(d))
	}

	return Path{Position: t.Size() - 1, AuthPath: siblings}, nil
}

// pathFiller supplies siblings to the right of the frontier: queued hashes
// first, then empty subtree roots.
type pathFiller struct {
	queue []blob.U256
	empty []blob.U256
}

func newPathFiller(h Hasher, depth int, queue []blob.U256) *pathFiller {
	return &pathFiller{queue: queue, empty: EmptyRoots(h, depth)}
}

func (f *pathFiller) next(level int) blob.U256 {
	if len(f.queue) > 0 {
		v := f.queue[0]
		f.queue = f.queue[1:]

		return v
	}

	return f.empty[level]
}

func (f *pathFiller) nodeOr(node *blob.U256, level int) blob.U256 {
	if node != nil {
		return *node
	}

	return f.next(level)
}
