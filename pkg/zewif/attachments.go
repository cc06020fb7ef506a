package zewif

import (
	"maps"
	"slices"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/document"
)

const predicateAttachment = "attachment"

// Attachment is vendor-specific data carried alongside an entity. The
// payload is opaque to the interchange format; vendor names who defined
// it and conformsTo optionally names the format it follows.
type Attachment struct {
	payload    *document.Document
	vendor     string
	conformsTo *string
}

// NewAttachment wraps payload, which may be a document, an entity or any
// CBOR-encodable value.
func NewAttachment(payload any, vendor string, conformsTo *string) *Attachment {
	return &Attachment{payload: payloadDocument(payload), vendor: vendor, conformsTo: conformsTo}
}

func payloadDocument(v any) *document.Document {
	switch p := v.(type) {
	case *document.Document:
		return p
	case document.Encodable:
		return p.ToDocument()
	default:
		return document.MustLeaf(v)
	}
}

func (a *Attachment) Payload() *document.Document { return a.payload }

func (a *Attachment) Vendor() string { return a.vendor }

// ConformsTo returns the payload format identifier, or nil.
func (a *Attachment) ConformsTo() *string { return a.conformsTo }

func (a *Attachment) ToDocument() *document.Document {
	return document.New(a.payload).
		AddAssertion("vendor", a.vendor).
		AddOptionalAssertion("conformsTo", a.conformsTo)
}

func AttachmentFromDocument(d *document.Document) (*Attachment, error) {
	if d.IsLeaf() {
		return nil, ierrors.Wrap(document.ErrMalformedDocument, "attachment without vendor")
	}

	vendor, err := document.ExtractObject[string](d, "vendor")
	if err != nil {
		return nil, err
	}
	conformsTo, err := document.ExtractOptionalObject[string](d, "conformsTo")
	if err != nil {
		return nil, err
	}

	return &Attachment{payload: d.Subject(), vendor: vendor, conformsTo: conformsTo}, nil
}

// Attachments is a set of attachments keyed by the digest of their
// document form. Adding the same attachment twice keeps one copy. The
// zero value is empty and ready to use.
type Attachments struct {
	entries map[document.Digest]*Attachment
}

// Add stores an attachment built from the arguments and returns its
// digest.
func (s *Attachments) Add(payload any, vendor string, conformsTo *string) document.Digest {
	return s.Insert(NewAttachment(payload, vendor, conformsTo))
}

// Insert stores a and returns its digest.
func (s *Attachments) Insert(a *Attachment) document.Digest {
	if s.entries == nil {
		s.entries = make(map[document.Digest]*Attachment)
	}

	digest := a.ToDocument().Digest()
	s.entries[digest] = a

	return digest
}

// Get returns the attachment with the given digest, or nil.
func (s *Attachments) Get(digest document.Digest) *Attachment {
	return s.entries[digest]
}

// Remove deletes the attachment with the given digest and returns it, or
// nil when there was none.
func (s *Attachments) Remove(digest document.Digest) *Attachment {
	a := s.entries[digest]
	delete(s.entries, digest)

	return a
}

func (s *Attachments) Clear() { clear(s.entries) }

func (s *Attachments) Len() int { return len(s.entries) }

func (s *Attachments) IsEmpty() bool { return len(s.entries) == 0 }

// All returns the attachments ordered by digest.
func (s *Attachments) All() []*Attachment {
	digests := slices.SortedFunc(maps.Keys(s.entries), document.Digest.Compare)
	all := make([]*Attachment, len(digests))
	for i, digest := range digests {
		all[i] = s.entries[digest]
	}

	return all
}

// addTo returns d with one assertion per attachment.
func (s *Attachments) addTo(d *document.Document) *document.Document {
	return d.AddAssertions(predicateAttachment, document.Objects(s.All())...)
}

func attachmentsFromDocument(d *document.Document) (Attachments, error) {
	decoded, err := document.DecodeObjects(d, predicateAttachment, AttachmentFromDocument)
	if err != nil {
		return Attachments{}, err
	}

	var s Attachments
	for _, a := range decoded {
		s.Insert(a)
	}

	return s, nil
}
