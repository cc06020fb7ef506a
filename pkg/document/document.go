// Package document implements the structural document model that every
// interchange entity is encoded to.
//
// A Document is either a leaf, holding the canonical CBOR encoding of a
// single value, or a node: a subject document plus a multiset of
// assertions. Each assertion pairs a text predicate with an object
// document. The model does not order assertions; repeated predicates that
// need an order carry an embedded position (see Indexed).
//
// Documents are immutable. Every builder method returns a new Document and
// leaves the receiver untouched, so documents may be shared freely between
// goroutines.
package document

import (
	"reflect"
	"sync"
)

// PredicateIsA is the predicate carrying a document's type tag.
const PredicateIsA = "isA"

// Assertion is a single predicate/object pair of a node.
type Assertion struct {
	Predicate string
	Object    *Document
}

// Document is a leaf or a node. The zero value is not valid; use New or
// Leaf.
type Document struct {
	leaf       []byte // canonical CBOR, set for leaves only
	subject    *Document
	assertions []Assertion

	digestOnce sync.Once
	digest     Digest
}

// Encodable is implemented by every entity that has a document form.
type Encodable interface {
	ToDocument() *Document
}

// New returns a document with the given subject. A *Document subject
// produces a node wrapping it, an Encodable is converted with ToDocument,
// and any other value becomes a leaf. New panics if the value has no CBOR
// encoding, which is a programming error.
func New(subject any) *Document {
	switch s := subject.(type) {
	case *Document:
		return &Document{subject: s}
	case Encodable:
		return &Document{subject: s.ToDocument()}
	default:
		return MustLeaf(subject)
	}
}

// Leaf encodes v as a leaf document using the canonical CBOR encoding.
func Leaf(v any) (*Document, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &Document{leaf: data}, nil
}

// MustLeaf is like Leaf but panics on error.
func MustLeaf(v any) *Document {
	d, err := Leaf(v)
	if err != nil {
		panic(err)
	}

	return d
}

// objectDocument converts an assertion object to a document.
func objectDocument(v any) *Document {
	switch o := v.(type) {
	case *Document:
		return o
	case Encodable:
		return o.ToDocument()
	default:
		return MustLeaf(v)
	}
}

// isAbsent reports whether an optional object should be omitted: a nil
// interface, or a nil pointer, slice, or map.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// IsLeaf reports whether d is a leaf.
func (d *Document) IsLeaf() bool {
	return d.subject == nil
}

// LeafBytes returns the canonical CBOR encoding of a leaf, or nil for a
// node.
func (d *Document) LeafBytes() []byte {
	if !d.IsLeaf() {
		return nil
	}

	return append([]byte(nil), d.leaf...)
}

// Subject returns the subject of a node. A leaf is its own subject.
func (d *Document) Subject() *Document {
	if d.IsLeaf() {
		return d
	}

	return d.subject
}

// Assertions returns a copy of the node's assertions. Leaves have none.
func (d *Document) Assertions() []Assertion {
	return append([]Assertion(nil), d.assertions...)
}

// with returns a node sharing d's subject with the given assertions
// appended.
func (d *Document) with(added ...Assertion) *Document {
	subject := d.subject
	if d.IsLeaf() {
		subject = d
	}

	assertions := make([]Assertion, 0, len(d.assertions)+len(added))
	assertions = append(assertions, d.assertions...)
	assertions = append(assertions, added...)

	return &Document{subject: subject, assertions: assertions}
}

// AddAssertion returns a copy of d with the assertion predicate: object.
func (d *Document) AddAssertion(predicate string, object any) *Document {
	return d.with(Assertion{Predicate: predicate, Object: objectDocument(object)})
}

// AddOptionalAssertion is like AddAssertion but returns d unchanged when
// object is nil or a nil pointer.
func (d *Document) AddOptionalAssertion(predicate string, object any) *Document {
	if isAbsent(object) {
		return d
	}

	return d.AddAssertion(predicate, object)
}

// AddAssertions adds one assertion per object, all with the same
// predicate. With no objects it returns d unchanged.
func (d *Document) AddAssertions(predicate string, objects ...any) *Document {
	if len(objects) == 0 {
		return d
	}

	added := make([]Assertion, len(objects))
	for i, o := range objects {
		added[i] = Assertion{Predicate: predicate, Object: objectDocument(o)}
	}

	return d.with(added...)
}

// AddType returns a copy of d tagged with the given type.
func (d *Document) AddType(tag string) *Document {
	return d.AddAssertion(PredicateIsA, tag)
}

// AssertionsWithPredicate returns every assertion using predicate, in the
// order they are held.
func (d *Document) AssertionsWithPredicate(predicate string) []Assertion {
	var matches []Assertion
	for _, a := range d.assertions {
		if a.Predicate == predicate {
			matches = append(matches, a)
		}
	}

	return matches
}

// ObjectsForPredicate returns the objects of every assertion using
// predicate.
func (d *Document) ObjectsForPredicate(predicate string) []*Document {
	matches := d.AssertionsWithPredicate(predicate)
	objects := make([]*Document, len(matches))
	for i, a := range matches {
		objects[i] = a.Object
	}

	return objects
}

// ObjectForPredicate returns the single object for predicate. It fails
// with ErrMissingAssertion when there is none and ErrAmbiguousAssertion
// when there are several.
func (d *Document) ObjectForPredicate(predicate string) (*Document, error) {
	objects := d.ObjectsForPredicate(predicate)
	if len(objects) != 1 {
		return nil, &AssertionError{Predicate: predicate, Count: len(objects)}
	}

	return objects[0], nil
}

// OptionalObjectForPredicate returns the object for predicate, or nil when
// it is absent. More than one occurrence is an error.
func (d *Document) OptionalObjectForPredicate(predicate string) (*Document, error) {
	objects := d.ObjectsForPredicate(predicate)
	switch len(objects) {
	case 0:
		return nil, nil
	case 1:
		return objects[0], nil
	default:
		return nil, &AssertionError{Predicate: predicate, Count: len(objects)}
	}
}

// Type returns the document's type tag.
func (d *Document) Type() (string, error) {
	return ExtractObject[string](d, PredicateIsA)
}

// CheckType verifies that the document is tagged with tag.
func (d *Document) CheckType(tag string) error {
	objects := d.ObjectsForPredicate(PredicateIsA)
	if len(objects) > 1 {
		return &AssertionError{Predicate: PredicateIsA, Count: len(objects)}
	}

	var actual string
	if len(objects) == 1 {
		if err := objects[0].DecodeLeaf(&actual); err != nil {
			return &TypeMismatchError{Expected: tag}
		}
	}
	if actual != tag {
		return &TypeMismatchError{Expected: tag, Actual: actual}
	}

	return nil
}

// HasType reports whether the document is tagged with tag.
func (d *Document) HasType(tag string) bool {
	return d.CheckType(tag) == nil
}

// DecodeLeaf decodes a leaf's value into v, which must be a pointer.
func (d *Document) DecodeLeaf(v any) error {
	if !d.IsLeaf() {
		return ErrNotLeaf
	}

	return decMode.Unmarshal(d.leaf, v)
}

// Equal reports whether two documents are structurally identical.
func Equal(a, b *Document) bool {
	return a.Digest() == b.Digest()
}
