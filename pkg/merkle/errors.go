package merkle

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrStructuralInvariant is returned for tree or witness snapshots that
	// no sequence of appends could have produced.
	ErrStructuralInvariant = ierrors.New("structural invariant violated")
	// ErrTreeFull is returned when appending to a tree that already holds
	// 2^depth leaves.
	ErrTreeFull = ierrors.New("tree is full")
	// ErrEmptyTree is returned when a leaf or path is requested from an
	// empty tree.
	ErrEmptyTree = ierrors.New("tree is empty")
	// ErrInvalidHasher is returned for hasher parameters the hash function
	// cannot accept.
	ErrInvalidHasher = ierrors.New("invalid hasher")
)

// StructureError describes why a snapshot was rejected.
type StructureError struct {
	Message string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: %s", ErrStructuralInvariant, e.Message)
}

func (e *StructureError) Is(target error) bool {
	return target == ErrStructuralInvariant
}

func structuref(format string, args ...any) error {
	return &StructureError{Message: fmt.Sprintf(format, args...)}
}
