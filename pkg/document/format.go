package document

import (
	"cmp"
	"slices"
	"strings"
)

// Format renders d as an indented tree for debugging:
//
//	0 [
//	    isA: "Address"
//	    name: "savings"
//	]
//
// Leaves are shown in CBOR diagnostic notation. Assertions are listed by
// predicate, ties broken by digest, so the output is deterministic.
func (d *Document) Format() string {
	var b strings.Builder
	d.format(&b, 0)

	return b.String()
}

func (d *Document) format(b *strings.Builder, depth int) {
	if d.IsLeaf() {
		b.WriteString(d.LeafDiagnostic())

		return
	}

	d.subject.format(b, depth)
	if len(d.assertions) == 0 {
		return
	}

	assertions := d.Assertions()
	slices.SortStableFunc(assertions, func(x, y Assertion) int {
		if c := cmp.Compare(x.Predicate, y.Predicate); c != 0 {
			return c
		}

		return x.Object.Digest().Compare(y.Object.Digest())
	})

	indent := strings.Repeat("    ", depth+1)
	b.WriteString(" [\n")
	for _, a := range assertions {
		b.WriteString(indent)
		b.WriteString(a.Predicate)
		b.WriteString(": ")
		a.Object.format(b, depth+1)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("    ", depth))
	b.WriteString("]")
}
