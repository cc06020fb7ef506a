// Command gen writes blob_gen.go: one fixed-width type per size.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"text/template"
)

var sizes = []int{4, 11, 20, 32, 64}

var tmpl = template.Must(template.New("blob").Parse(`// Code generated by internal/gen. DO NOT EDIT.

package blob
{{range .}}
// Blob{{.}} is an immutable {{.}}-byte value.
type Blob{{.}} [{{.}}]byte

// NewBlob{{.}} wraps an exact-length array.
func NewBlob{{.}}(data [{{.}}]byte) Blob{{.}} {
	return Blob{{.}}(data)
}

// Blob{{.}}FromSlice copies data into a Blob{{.}}. It fails with a
// *LengthError unless len(data) == {{.}}.
func Blob{{.}}FromSlice(data []byte) (Blob{{.}}, error) {
	var b Blob{{.}}
	if err := fill(b[:], data); err != nil {
		return Blob{{.}}{}, err
	}

	return b, nil
}

// Blob{{.}}FromHex parses the hex form of a Blob{{.}}.
func Blob{{.}}FromHex(s string) (Blob{{.}}, error) {
	var b Blob{{.}}
	if err := fillHex(b[:], s); err != nil {
		return Blob{{.}}{}, err
	}

	return b, nil
}

// MustBlob{{.}}FromHex is like Blob{{.}}FromHex but panics on error.
func MustBlob{{.}}FromHex(s string) Blob{{.}} {
	b, err := Blob{{.}}FromHex(s)
	if err != nil {
		panic(err)
	}

	return b
}

// Len returns {{.}}.
func (b Blob{{.}}) Len() int {
	return {{.}}
}

// Bytes returns a copy of the value.
func (b Blob{{.}}) Bytes() []byte {
	return b[:]
}

// At returns the byte at index i. It panics if i is out of range.
func (b Blob{{.}}) At(i int) byte {
	return b[i]
}

// Slice returns a copy of b[from:to]. It panics if the range is invalid.
func (b Blob{{.}}) Slice(from, to int) []byte {
	return b[from:to]
}

// IsZero reports whether every byte is zero.
func (b Blob{{.}}) IsZero() bool {
	return b == Blob{{.}}{}
}

func (b Blob{{.}}) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blob{{.}}) GoString() string {
	return "Blob{{.}}(" + b.String() + ")"
}

func (b Blob{{.}}) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Blob{{.}}) UnmarshalText(text []byte) error {
	return unmarshalHex(b[:], text)
}

func (b Blob{{.}}) MarshalCBOR() ([]byte, error) {
	return marshalBytes(b[:])
}

func (b *Blob{{.}}) UnmarshalCBOR(data []byte) error {
	return unmarshalBytes(b[:], data)
}
{{end}}`))

func main() {
	output := flag.String("output", "blob_gen.go", "output file")
	flag.Parse()

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, sizes); err != nil {
		log.Fatalf("execute template: %v", err)
	}

	src, err := format.Source(addImports(buf.Bytes()))
	if err != nil {
		log.Fatalf("format output: %v", err)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
}

// addImports inserts the import block after the package clause.
func addImports(src []byte) []byte {
	return bytes.Replace(src, []byte("package blob\n"), []byte("package blob\n\nimport \"encoding/hex\"\n"), 1)
}
