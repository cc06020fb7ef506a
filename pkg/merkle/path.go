package merkle

import (
	"github.com/suffix-labs/zewif/pkg/blob"
)

// Path is the authentication path of a leaf: its position and the sibling
// hash at every level, leaf level first.
type Path struct {
	Position uint64
	AuthPath []blob.U256
}

// Root recomputes the tree root (the anchor) from leaf and the path.
func (p Path) Root(h Hasher, leaf blob.U256) blob.U256 {
	node := leaf
	for level, sibling := range p.AuthPath {
		if p.Position>>level&1 == 1 {
			node = h.Combine(level, sibling, node)
		} else {
			node = h.Combine(level, node, sibling)
		}
	}

	return node
}
