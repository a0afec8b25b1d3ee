package tuplecmp

import (
	"bytes"
	"fmt"
)

// KeyPart selects one tuple field for comparison.
type KeyPart struct {
	Field int       // field index within the tuple
	Type  FieldType // how the field decodes and compares
}

// KeyDef is an ordered list of key parts defining a total order over tuples.
// It is immutable after construction and safe for concurrent use.
type KeyDef struct {
	parts []KeyPart
	cmp   func(d *KeyDef, a, b *Tuple) int
}

// NewKeyDef builds a key definition from the given parts. The comparison
// strategy is fixed here: a definition of exactly one uint part on field 0
// gets a specialized fast path, everything else the generic part-by-part
// comparator.
func NewKeyDef(parts ...KeyPart) (*KeyDef, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("tuplecmp: key definition needs at least one part")
	}
	for _, p := range parts {
		if p.Field < 0 {
			return nil, fmt.Errorf("tuplecmp: negative field index %d in key part", p.Field)
		}
		if !p.Type.isValid() {
			return nil, fmt.Errorf("tuplecmp: unknown field type %d in key part", p.Type)
		}
	}

	d := &KeyDef{parts: append([]KeyPart(nil), parts...)}
	if len(d.parts) == 1 && d.parts[0] == (KeyPart{Field: 0, Type: Uint}) {
		d.cmp = compareFirstUint
	} else {
		d.cmp = compareParts
	}
	return d, nil
}

// NumParts returns the number of key parts.
func (d *KeyDef) NumParts() int { return len(d.parts) }

// Parts returns a copy of the key parts.
func (d *KeyDef) Parts() []KeyPart { return append([]KeyPart(nil), d.parts...) }

// Compare returns -1, 0 or 1 ordering a before, equal to or after b.
//
// This is the trusted path: every referenced field must exist in both tuples
// with the declared type, and must either lie within the indexed prefix or be
// referenced by a part whose predecessor names the preceding field index.
// Violations panic or misreport the order. Use CompareChecked when the input
// is not trusted.
func (d *KeyDef) Compare(a, b *Tuple) int { return d.cmp(d, a, b) }

// CompareChecked is Compare with the preconditions verified: field indices
// are range-checked against both tuples, markers are validated against the
// declared part types and fields past the indexed prefix are reached by
// sequential decode. It reports ErrFieldRange, ErrTypeMismatch or
// ErrMalformedMarker instead of panicking.
func (d *KeyDef) CompareChecked(a, b *Tuple) (int, error) {
	var p1, p2 int

	for i := range d.parts {
		part := &d.parts[i]

		if i == 0 || part.Field != d.parts[i-1].Field+1 {
			var err error
			if p1, err = a.fieldPos(part.Field); err != nil {
				return 0, err
			}
			if p2, err = b.fieldPos(part.Field); err != nil {
				return 0, err
			}
		} else if part.Field >= a.fieldCount || part.Field >= b.fieldCount {
			return 0, ErrFieldRange
		}

		if err := checkFieldClass(a.data[p1], part.Type); err != nil {
			return 0, err
		}
		if err := checkFieldClass(b.data[p2], part.Type); err != nil {
			return 0, err
		}

		switch part.Type {
		case String:
			s1, n1, err := DecodeString(a.data[p1:a.used])
			if err != nil {
				return 0, err
			}
			s2, n2, err := DecodeString(b.data[p2:b.used])
			if err != nil {
				return 0, err
			}
			p1, p2 = p1+n1, p2+n2
			if r := bytes.Compare(s1, s2); r != 0 {
				return r, nil
			}
		default:
			v1, n1, err := DecodeUint(a.data[p1:a.used])
			if err != nil {
				return 0, err
			}
			v2, n2, err := DecodeUint(b.data[p2:b.used])
			if err != nil {
				return 0, err
			}
			p1, p2 = p1+n1, p2+n2
			if v1 != v2 {
				return uintOrder(v1, v2), nil
			}
		}
	}
	return 0, nil
}

// --------------------------------------------------------------------

// compareParts orders two tuples part by part, stopping at the first unequal
// part. When a part references the field right after the previous part's
// field, the cursor left behind by the previous decode already points at it,
// so the offset lookup is skipped.
func compareParts(d *KeyDef, a, b *Tuple) int {
	var p1, p2 int

	for i := range d.parts {
		part := &d.parts[i]

		if i == 0 || part.Field != d.parts[i-1].Field+1 {
			p1 = a.fieldStart(part.Field)
			p2 = b.fieldStart(part.Field)
		}

		switch part.Type {
		case String:
			s1, q1 := stringAt(a.data, p1)
			s2, q2 := stringAt(b.data, p2)
			p1, p2 = q1, q2
			if r := bytes.Compare(s1, s2); r != 0 {
				return r
			}
		default:
			v1, q1 := uintAt(a.data, p1)
			v2, q2 := uintAt(b.data, p2)
			p1, p2 = q1, q2
			if v1 != v2 {
				return uintOrder(v1, v2)
			}
		}
	}
	return 0
}

// compareFirstUint is the fast path for the single-part uint-on-field-0
// definition: no part iteration, no offset slot reads.
func compareFirstUint(_ *KeyDef, a, b *Tuple) int {
	v1, _ := uintAt(a.data, a.first)
	v2, _ := uintAt(b.data, b.first)
	return uintOrder(v1, v2)
}

func uintOrder(v1, v2 uint64) int {
	switch {
	case v1 < v2:
		return -1
	case v1 > v2:
		return 1
	default:
		return 0
	}
}

// checkFieldClass verifies that the marker byte opens a field of the
// declared type.
func checkFieldClass(c byte, want FieldType) error {
	var got FieldType
	switch {
	case c <= maxFixUint,
		c == markerUint8, c == markerUint16, c == markerUint32, c == markerUint64:
		got = Uint
	case c >= markerFixStr && c <= markerFixStr|maxFixStrLen,
		c == markerStr8, c == markerStr16, c == markerStr32:
		got = String
	default:
		return ErrMalformedMarker
	}

	if got != want {
		return ErrTypeMismatch
	}
	return nil
}
