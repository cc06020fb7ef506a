package document

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// Indexed is implemented by entities stored under a repeating predicate.
// The index is the entity's position in its owning container; it is
// assigned by the container on insertion and restored on decode.
type Indexed interface {
	Index() int
}

// DecodeFunc decodes an entity from its document.
type DecodeFunc[T any] func(*Document) (T, error)

func typeName[T any]() string {
	var zero T

	return fmt.Sprintf("%T", zero)
}

// ExtractSubject decodes the subject leaf of d as a T.
func ExtractSubject[T any](d *Document) (T, error) {
	var v T
	if err := d.Subject().DecodeLeaf(&v); err != nil {
		var zero T

		return zero, &CoercionError{Subject: true, Target: typeName[T](), Cause: err}
	}

	return v, nil
}

// extractLeaf decodes an object leaf as a T.
func extractLeaf[T any](object *Document) (T, error) {
	var v T
	if err := object.DecodeLeaf(&v); err != nil {
		var zero T

		return zero, &CoercionError{Target: typeName[T](), Cause: err}
	}

	return v, nil
}

// ExtractObject decodes the single object leaf for predicate as a T.
func ExtractObject[T any](d *Document, predicate string) (T, error) {
	object, err := d.ObjectForPredicate(predicate)
	if err != nil {
		var zero T

		return zero, err
	}

	v, err := extractLeaf[T](object)
	if err != nil {
		return v, ierrors.Wrap(err, predicate)
	}

	return v, nil
}

// ExtractOptionalObject decodes the object leaf for predicate, returning
// nil when the predicate is absent.
func ExtractOptionalObject[T any](d *Document, predicate string) (*T, error) {
	object, err := d.OptionalObjectForPredicate(predicate)
	if err != nil || object == nil {
		return nil, err
	}

	v, err := extractLeaf[T](object)
	if err != nil {
		return nil, ierrors.Wrap(err, predicate)
	}

	return &v, nil
}

// ExtractObjects decodes every object leaf for predicate.
func ExtractObjects[T any](d *Document, predicate string) ([]T, error) {
	return DecodeObjects(d, predicate, extractLeaf[T])
}

// DecodeObject decodes the single object for predicate with decode.
// Failures are annotated with the predicate.
func DecodeObject[T any](d *Document, predicate string, decode DecodeFunc[T]) (T, error) {
	object, err := d.ObjectForPredicate(predicate)
	if err != nil {
		var zero T

		return zero, err
	}

	v, err := decode(object)
	if err != nil {
		var zero T

		return zero, ierrors.Wrap(err, predicate)
	}

	return v, nil
}

// DecodeOptionalObject is like DecodeObject but reports absence through
// ok instead of failing.
func DecodeOptionalObject[T any](d *Document, predicate string, decode DecodeFunc[T]) (v T, ok bool, err error) {
	object, err := d.OptionalObjectForPredicate(predicate)
	if err != nil || object == nil {
		return v, false, err
	}

	v, err = decode(object)
	if err != nil {
		var zero T

		return zero, false, ierrors.Wrap(err, predicate)
	}

	return v, true, nil
}

// DecodeObjects decodes every object for predicate, in the order the
// document holds them.
func DecodeObjects[T any](d *Document, predicate string, decode DecodeFunc[T]) ([]T, error) {
	objects := d.ObjectsForPredicate(predicate)
	values := make([]T, 0, len(objects))
	for _, object := range objects {
		v, err := decode(object)
		if err != nil {
			return nil, ierrors.Wrap(err, predicate)
		}
		values = append(values, v)
	}

	return values, nil
}

// DecodeIndexedObjects decodes every object for predicate and restores
// insertion order from the embedded indices. The indices must be exactly
// 0..n-1.
func DecodeIndexedObjects[T Indexed](d *Document, predicate string, decode DecodeFunc[T]) ([]T, error) {
	values, err := DecodeObjects(d, predicate, decode)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(values, func(a, b T) int {
		return cmp.Compare(a.Index(), b.Index())
	})
	for i, v := range values {
		if v.Index() != i {
			return nil, ierrors.Wrapf(ErrMalformedDocument, "%s: index %d at position %d", predicate, v.Index(), i)
		}
	}

	return values, nil
}

// Objects converts entities to assertion objects, preserving order.
func Objects[T Encodable](values []T) []any {
	return lo.Map(values, func(v T) any { return v.ToDocument() })
}
