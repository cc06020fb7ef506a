package document

import (
	"bytes"
	"encoding/hex"
	"hash"
	"slices"

	blake2b "github.com/minio/blake2b-simd"
)

// Digest personalizations. Each document kind hashes under its own
// personalization so that a leaf can never collide with a node or an
// assertion holding the same bytes.
const (
	LeafDigestPersonalization      = "ZewifLeafDigest_"
	NodeDigestPersonalization      = "ZewifNodeDigest_"
	AssertionDigestPersonalization = "ZewifAssnDigest_"
)

// Digest is the BLAKE2b-256 structural digest of a document.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Compare orders digests bytewise.
func (d Digest) Compare(other Digest) int {
	return bytes.Compare(d[:], other[:])
}

func newHash(personalization string) hash.Hash {
	h, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: []byte(personalization),
	})
	if err != nil {
		panic("document: BLAKE2b initialization failed: " + err.Error())
	}

	return h
}

func sum(h hash.Hash) (digest Digest) {
	copy(digest[:], h.Sum(nil))

	return digest
}

// Digest returns the structural digest of d:
//
//	leaf:      H_leaf(cbor)
//	assertion: H_assn(H_leaf(cbor(predicate)) || digest(object))
//	node:      H_node(digest(subject) || sorted assertion digests)
//
// Two documents with the same subject and the same multiset of assertions
// have the same digest regardless of the order assertions were added.
func (d *Document) Digest() Digest {
	d.digestOnce.Do(func() {
		if d.IsLeaf() {
			h := newHash(LeafDigestPersonalization)
			h.Write(d.leaf)
			d.digest = sum(h)

			return
		}

		h := newHash(NodeDigestPersonalization)
		subject := d.subject.Digest()
		h.Write(subject[:])
		for _, a := range d.sortedAssertions() {
			digest := a.digest()
			h.Write(digest[:])
		}
		d.digest = sum(h)
	})

	return d.digest
}

func (a Assertion) digest() Digest {
	predicate := MustLeaf(a.Predicate).Digest()
	object := a.Object.Digest()

	h := newHash(AssertionDigestPersonalization)
	h.Write(predicate[:])
	h.Write(object[:])

	return sum(h)
}

// sortedAssertions returns the assertions ordered by digest, the order
// used on the wire and in the node digest.
func (d *Document) sortedAssertions() []Assertion {
	type keyed struct {
		digest    Digest
		assertion Assertion
	}

	entries := make([]keyed, len(d.assertions))
	for i, a := range d.assertions {
		entries[i] = keyed{digest: a.digest(), assertion: a}
	}
	slices.SortStableFunc(entries, func(x, y keyed) int {
		return x.digest.Compare(y.digest)
	})

	sorted := make([]Assertion, len(entries))
	for i, e := range entries {
		sorted[i] = e.assertion
	}

	return sorted
}
