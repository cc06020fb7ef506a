package document

import (
	"bytes"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"github.com/iotaledger/hive.go/ierrors"
)

// TagLeaf is the CBOR tag wrapping every leaf value on the wire.
const TagLeaf = 201

// encMode is the CBOR encoder configured with Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Identical values always produce identical leaf
// bytes, so digests and encoded documents are reproducible.
var encMode cbor.EncMode

// decMode rejects duplicate map keys so that an assertion map can never
// carry two predicates.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("document: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		IndefLength:      cbor.IndefLengthForbidden,
		MaxNestedLevels:  256,
		MaxArrayElements: 1 << 24,
	}.DecMode()
	if err != nil {
		panic("document: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes d in its wire form. A leaf is #6.201(value). A node
// is an array whose first element is the subject and whose remaining
// elements are single-entry maps {predicate: object}, sorted by assertion
// digest.
func (d *Document) MarshalCBOR() ([]byte, error) {
	if d.IsLeaf() {
		return encMode.Marshal(cbor.RawTag{Number: TagLeaf, Content: d.leaf})
	}

	items := make([]cbor.RawMessage, 0, len(d.assertions)+1)

	subject, err := d.subject.MarshalCBOR()
	if err != nil {
		return nil, ierrors.Wrap(err, "subject")
	}
	items = append(items, subject)

	for _, a := range d.sortedAssertions() {
		object, err := a.Object.MarshalCBOR()
		if err != nil {
			return nil, ierrors.Wrap(err, a.Predicate)
		}

		entry, err := encMode.Marshal(map[string]cbor.RawMessage{a.Predicate: object})
		if err != nil {
			return nil, ierrors.Wrap(err, a.Predicate)
		}
		items = append(items, entry)
	}

	return encMode.Marshal(items)
}

// UnmarshalCBOR decodes the wire form produced by MarshalCBOR. It must be
// called on a new Document.
func (d *Document) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 {
		return ierrors.Wrap(ErrMalformedDocument, "empty input")
	}

	switch majorType := data[0] >> 5; majorType {
	case 6:
		var tag cbor.RawTag
		if err := decMode.Unmarshal(data, &tag); err != nil {
			return ierrors.Join(ErrMalformedDocument, err)
		}
		if tag.Number != TagLeaf {
			return ierrors.Wrapf(ErrMalformedDocument, "unexpected tag %d", tag.Number)
		}
		if err := checkCanonical(tag.Content); err != nil {
			return err
		}
		d.leaf = slices.Clone([]byte(tag.Content))

		return nil

	case 4:
		var items []cbor.RawMessage
		if err := decMode.Unmarshal(data, &items); err != nil {
			return ierrors.Join(ErrMalformedDocument, err)
		}
		if len(items) == 0 {
			return ierrors.Wrap(ErrMalformedDocument, "node without subject")
		}

		subject := new(Document)
		if err := subject.UnmarshalCBOR(items[0]); err != nil {
			return ierrors.Wrap(err, "subject")
		}

		assertions := make([]Assertion, 0, len(items)-1)
		for i, item := range items[1:] {
			var entry map[string]cbor.RawMessage
			if err := decMode.Unmarshal(item, &entry); err != nil {
				return ierrors.Wrapf(ErrMalformedDocument, "assertion %d: %v", i, err)
			}
			if len(entry) != 1 {
				return ierrors.Wrapf(ErrMalformedDocument, "assertion %d has %d entries", i, len(entry))
			}

			for predicate, raw := range entry {
				object := new(Document)
				if err := object.UnmarshalCBOR(raw); err != nil {
					return ierrors.Wrap(err, predicate)
				}
				assertions = append(assertions, Assertion{Predicate: predicate, Object: object})
			}
		}

		d.subject = subject
		d.assertions = assertions

		return nil

	default:
		return ierrors.Wrapf(ErrMalformedDocument, "unexpected CBOR major type %d", majorType)
	}
}

// Marshal returns the wire form of d.
func Marshal(d *Document) ([]byte, error) {
	return d.MarshalCBOR()
}

// Unmarshal parses a document from its wire form.
func Unmarshal(data []byte) (*Document, error) {
	d := new(Document)
	if err := d.UnmarshalCBOR(data); err != nil {
		return nil, err
	}

	return d, nil
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) of d's wire
// form.
func (d *Document) Diagnose() (string, error) {
	data, err := d.MarshalCBOR()
	if err != nil {
		return "", err
	}

	return cbor.Diagnose(data)
}

// LeafDiagnostic returns the diagnostic notation of a leaf value, or an
// empty string for a node.
func (d *Document) LeafDiagnostic() string {
	if !d.IsLeaf() {
		return ""
	}

	s, err := cbor.Diagnose(d.leaf)
	if err != nil {
		return "<invalid>"
	}

	return s
}

// checkCanonical rejects leaf content that is not in its Core Deterministic
// encoding. Two encodings of one value would otherwise digest differently.
func checkCanonical(content []byte) error {
	var v any
	if err := decMode.Unmarshal(content, &v); err != nil {
		return ierrors.Join(ErrMalformedDocument, err)
	}

	canonical, err := encMode.Marshal(v)
	if err != nil {
		return ierrors.Join(ErrMalformedDocument, err)
	}
	if !bytes.Equal(canonical, content) {
		return ierrors.Wrapf(ErrMalformedDocument, "leaf %x is not canonically encoded", content)
	}

	return nil
}
