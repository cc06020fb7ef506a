package merkle

import (
	"encoding/binary"
	"slices"
	"sync"

	"github.com/iotaledger/hive.go/ierrors"

	blake2b "github.com/minio/blake2b-simd"

	"github.com/suffix-labs/zewif/pkg/blob"
)

// Protocol tree depths.
const (
	SproutDepth  = 29
	SaplingDepth = 32
	OrchardDepth = 32

	// MaxDepth bounds the depth of any tree so that sizes fit in a uint64.
	MaxDepth = 62
)

// Uncommitted leaves of the shielded protocols. Sprout uses the zero value.
var (
	SproutUncommitted  = blob.U256{}
	SaplingUncommitted = blob.U256{1}
	OrchardUncommitted = blob.U256{2}
)

// Hasher is the node hash of a commitment tree. Level is the height of
// the two children being combined; leaves are at level 0.
//
// Sapling (Bowe-Hopwood Pedersen) and Orchard (Sinsemilla) hashers live
// with the proving code and are supplied by the caller.
type Hasher interface {
	Combine(level int, left, right blob.U256) blob.U256
	Uncommitted() blob.U256
}

// emptyRootsCache holds levels 0 through MaxDepth for the built-in
// hashers, keyed by hasher value.
var emptyRootsCache sync.Map

// EmptyRoots returns the roots of empty subtrees for levels 0 through
// depth. Level 0 is the uncommitted leaf. Roots of SHA256Compress and
// Blake2bHasher are computed once and cached; other hashers are asked
// every time.
func EmptyRoots(h Hasher, depth int) []blob.U256 {
	switch h.(type) {
	case SHA256Compress, Blake2bHasher:
		if depth > MaxDepth {
			break
		}
		all, ok := emptyRootsCache.Load(h)
		if !ok {
			all, _ = emptyRootsCache.LoadOrStore(h, computeEmptyRoots(h, MaxDepth))
		}

		return slices.Clone(all.([]blob.U256)[:depth+1])
	}

	return computeEmptyRoots(h, depth)
}

func computeEmptyRoots(h Hasher, depth int) []blob.U256 {
	roots := make([]blob.U256, depth+1)
	roots[0] = h.Uncommitted()
	for d := 1; d <= depth; d++ {
		roots[d] = h.Combine(d-1, roots[d-1], roots[d-1])
	}

	return roots
}

// SHA256Compress is the Sprout node hash: the SHA-256 compression function
// applied to left || right from the standard initial state, with no
// padding and no length block.
type SHA256Compress struct{}

func (SHA256Compress) Combine(_ int, left, right blob.U256) blob.U256 {
	var block [64]byte
	copy(block[:32], left[:])
	copy(block[32:], right[:])

	state := sha256IV
	sha256Block(&state, &block)

	var out blob.U256
	for i, word := range state {
		binary.BigEndian.PutUint32(out[4*i:], word)
	}

	return out
}

func (SHA256Compress) Uncommitted() blob.U256 {
	return SproutUncommitted
}

// Blake2bHasher combines nodes with personalized BLAKE2b-256 over
// level || left || right. It is used for trees that are not bound to a
// consensus hash, such as fixtures and local commitment logs. The zero
// value uses no personalization and a zero uncommitted leaf.
type Blake2bHasher struct {
	personalization string
	empty           blob.U256
}

// NewBlake2bHasher returns a hasher with the given personalization, at
// most 16 bytes, and uncommitted leaf.
func NewBlake2bHasher(personalization string, empty blob.U256) (Blake2bHasher, error) {
	if len(personalization) > blake2bPersonalizationSize {
		return Blake2bHasher{}, ierrors.Wrapf(ErrInvalidHasher, "personalization is %d bytes, at most %d allowed",
			len(personalization), blake2bPersonalizationSize)
	}

	return Blake2bHasher{personalization: personalization, empty: empty}, nil
}

// MustBlake2bHasher is like NewBlake2bHasher but panics on error.
func MustBlake2bHasher(personalization string, empty blob.U256) Blake2bHasher {
	h, err := NewBlake2bHasher(personalization, empty)
	if err != nil {
		panic(err)
	}

	return h
}

const blake2bPersonalizationSize = 16

func (b Blake2bHasher) Combine(level int, left, right blob.U256) blob.U256 {
	h, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: []byte(b.personalization),
	})
	if err != nil {
		panic("merkle: BLAKE2b initialization failed: " + err.Error())
	}

	h.Write([]byte{byte(level)})
	h.Write(left[:])
	h.Write(right[:])

	var out blob.U256
	copy(out[:], h.Sum(nil))

	return out
}

func (b Blake2bHasher) Uncommitted() blob.U256 {
	return b.empty
}
