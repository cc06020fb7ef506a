package document

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

// Decode failure kinds. Every error returned while decoding a document
// matches exactly one of them with errors.Is.
var (
	ErrTypeMismatch       = ierrors.New("type mismatch")
	ErrMissingAssertion   = ierrors.New("missing assertion")
	ErrAmbiguousAssertion = ierrors.New("ambiguous assertion")
	ErrSubjectCoercion    = ierrors.New("subject coercion failed")
	ErrObjectCoercion     = ierrors.New("object coercion failed")
	ErrUnknownTag         = ierrors.New("unknown type tag")
	ErrMalformedDocument  = ierrors.New("malformed document")
)

// TypeMismatchError is returned when a document's type tag is not the one
// the decoder expects. Actual is empty when the document has no tag.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	if e.Actual == "" {
		return fmt.Sprintf("type mismatch: expected %q, document has no type", e.Expected)
	}

	return fmt.Sprintf("type mismatch: expected %q, got %q", e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// AssertionError reports a predicate that occurs the wrong number of times.
// Count is 0 for a missing required predicate.
type AssertionError struct {
	Predicate string
	Count     int
}

func (e *AssertionError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("missing assertion %q", e.Predicate)
	}

	return fmt.Sprintf("ambiguous assertion %q: %d occurrences", e.Predicate, e.Count)
}

func (e *AssertionError) Is(target error) bool {
	if e.Count == 0 {
		return target == ErrMissingAssertion
	}

	return target == ErrAmbiguousAssertion
}

// CoercionError is returned when a leaf cannot be decoded into the
// requested Go type.
type CoercionError struct {
	Subject bool   // True for the document subject, false for an assertion object
	Target  string // Go type that was requested
	Cause   error
}

func (e *CoercionError) Error() string {
	what := "object"
	if e.Subject {
		what = "subject"
	}

	return fmt.Sprintf("cannot interpret %s as %s: %v", what, e.Target, e.Cause)
}

func (e *CoercionError) Unwrap() error {
	return e.Cause
}

func (e *CoercionError) Is(target error) bool {
	if e.Subject {
		return target == ErrSubjectCoercion
	}

	return target == ErrObjectCoercion
}

// ErrNotLeaf is returned when a leaf value is requested from a node.
var ErrNotLeaf = ierrors.New("document is not a leaf")
