package zewif

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/document"
)

// slot is the position of an entity inside its owning container. It is
// claimed once, when the container takes the entity, and never changes
// afterwards.
type slot struct {
	index int
	owned bool
}

// Index returns the position assigned by the owning container.
func (s *slot) Index() int { return s.index }

func (s *slot) claim(index int) error {
	if s.owned {
		return ierrors.Wrapf(ErrAlreadyOwned, "entity holds position %d", s.index)
	}
	s.index, s.owned = index, true

	return nil
}

type indexed interface {
	document.Indexed
	claim(index int) error
}

// appendIndexed claims the next position of s for v and appends it.
func appendIndexed[T indexed](s []T, v T) ([]T, error) {
	if err := v.claim(len(s)); err != nil {
		return s, err
	}

	return append(s, v), nil
}

// decodeIndexed decodes the children stored under predicate in insertion
// order and marks them as owned by the decoded container.
func decodeIndexed[T indexed](d *document.Document, predicate string, decode document.DecodeFunc[T]) ([]T, error) {
	values, err := document.DecodeIndexedObjects(d, predicate, decode)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := v.claim(v.Index()); err != nil {
			return nil, ierrors.Wrap(err, predicate)
		}
	}

	return nonEmpty(values), nil
}

// nonEmpty returns nil for an empty slice so that decoded and freshly
// built entities compare equal.
func nonEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}

	return s
}
