package parser

import "strconv"

// Parseable is implemented by pointer types that can fill themselves from
// a Parser.
type Parseable interface {
	ParseFrom(p *Parser) error
}

// Parse decodes a T from p and annotates any failure with field.
//
//	kind, err := parser.Parse[zewif.ReceiverType](p, "receiver_type")
func Parse[T any, PT interface {
	*T
	Parseable
}](p *Parser, field string) (T, error) {
	var value T
	start := p.Offset()
	if err := PT(&value).ParseFrom(p); err != nil {
		p.offset = start
		var zero T
		return zero, Field(field, err)
	}

	return value, nil
}

// ParseVector decodes a compact-size count followed by that many T values.
func ParseVector[T any, PT interface {
	*T
	Parseable
}](p *Parser, field string) ([]T, error) {
	start := p.Offset()
	n, err := p.ReadLength()
	if err != nil {
		return nil, Field(field, err)
	}

	values := make([]T, 0, min(n, 1024))
	for i := range n {
		v, err := Parse[T, PT](p, field)
		if err != nil {
			p.offset = start
			return nil, Field("element "+strconv.Itoa(i), err)
		}
		values = append(values, v)
	}

	return values, nil
}
