package document

import (
	"maps"
	"slices"

	"github.com/iotaledger/hive.go/ierrors"
)

// Registry maps type tags to decoders. Decoding a document whose tag is not
// registered fails with ErrUnknownTag; nothing is ever skipped silently.
//
// A Registry is populated once at start up and is safe for concurrent
// Decode calls afterwards.
type Registry struct {
	decoders map[string]DecodeFunc[any]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]DecodeFunc[any])}
}

// Register adds the decoder for tag. Registering a tag twice panics.
func Register[T any](r *Registry, tag string, decode DecodeFunc[T]) {
	if _, exists := r.decoders[tag]; exists {
		panic("document: duplicate registration for tag " + tag)
	}

	r.decoders[tag] = func(d *Document) (any, error) {
		return decode(d)
	}
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	return slices.Sorted(maps.Keys(r.decoders))
}

// Has reports whether tag is registered.
func (r *Registry) Has(tag string) bool {
	_, ok := r.decoders[tag]

	return ok
}

// Decode dispatches d to the decoder registered for its type tag.
func (r *Registry) Decode(d *Document) (any, error) {
	tag, err := d.Type()
	if err != nil {
		return nil, err
	}

	decode, ok := r.decoders[tag]
	if !ok {
		return nil, ierrors.Wrapf(ErrUnknownTag, "%q", tag)
	}

	v, err := decode(d)
	if err != nil {
		return nil, ierrors.Wrap(err, tag)
	}

	return v, nil
}
