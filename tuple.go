package tuplecmp

import (
	"encoding/binary"
	"fmt"
)

// Tuple is a record with a variable number of msgpack-encoded fields and a
// partial offset index over the leading fields. A tuple is built once by
// appending fields in index order and is treated as immutable afterwards.
type Tuple struct {
	fieldCount int // number of fields appended so far
	numOffsets int // indexed prefix size
	first      int // offset of field 0, kept outside the slot region
	used       int // write cursor into data
	data       []byte
}

// NewTuple allocates a tuple with a fixed buffer of size bytes and an
// indexed prefix of a single field. Callers must size the buffer for the
// largest encoding of the fields they intend to append; UintLen, StringLen
// and the Max* constants give the per-field bounds.
func NewTuple(size int) *Tuple {
	t := &Tuple{data: make([]byte, size)}
	_ = t.Reset(1)
	return t
}

// Reset clears the tuple for rebuilding and fixes the indexed prefix size,
// i.e. the number of leading fields with a stored offset.
func (t *Tuple) Reset(numOffsets int) error {
	if numOffsets < 1 {
		return fmt.Errorf("tuplecmp: indexed prefix size must be >= 1, got %d", numOffsets)
	}

	// One slot per indexed field except field 0, which always starts
	// right after the slot region.
	slots := (numOffsets - 1) * offsetSlotSize
	if slots > len(t.data) {
		return ErrTupleFull
	}

	t.fieldCount = 0
	t.numOffsets = numOffsets
	t.first = slots
	t.used = slots
	return nil
}

// AppendUint appends an unsigned integer field.
func (t *Tuple) AppendUint(v uint64) error {
	if t.used+UintLen(v) > len(t.data) {
		return ErrTupleFull
	}

	t.markOffset()
	t.used += PutUint(t.data[t.used:], v)
	t.fieldCount++
	return nil
}

// AppendString appends a string field. The bytes are copied into the tuple
// buffer.
func (t *Tuple) AppendString(s []byte) error {
	if t.used+StringLen(len(s)) > len(t.data) {
		return ErrTupleFull
	}

	t.markOffset()
	t.used += PutString(t.data[t.used:], s)
	t.fieldCount++
	return nil
}

// FieldCount returns the number of fields appended so far.
func (t *Tuple) FieldCount() int { return t.fieldCount }

// Size returns the number of buffer bytes in use, offset slots included.
func (t *Tuple) Size() int { return t.used }

// Cap returns the fixed buffer capacity in bytes.
func (t *Tuple) Cap() int { return len(t.data) }

// Data returns the used portion of the tuple buffer. The slice aliases the
// tuple's internal memory and must not be modified.
func (t *Tuple) Data() []byte { return t.data[:t.used] }

// FieldStart returns the buffer position where field i's encoding begins.
// Only fields within the indexed prefix have a stored offset; for any other
// index ErrFieldRange is returned.
func (t *Tuple) FieldStart(i int) (int, error) {
	if i < 0 || i >= t.fieldCount || i >= t.numOffsets {
		return 0, ErrFieldRange
	}
	return t.fieldStart(i), nil
}

// UintField decodes field i as an unsigned integer. Fields past the indexed
// prefix are reached by decoding forward from the last slotted field.
func (t *Tuple) UintField(i int) (uint64, error) {
	pos, err := t.fieldPos(i)
	if err != nil {
		return 0, err
	}
	v, _, err := DecodeUint(t.data[pos:t.used])
	return v, err
}

// StringField decodes field i as a string. The returned slice aliases the
// tuple buffer. Fields past the indexed prefix are reached by decoding
// forward from the last slotted field.
func (t *Tuple) StringField(i int) ([]byte, error) {
	pos, err := t.fieldPos(i)
	if err != nil {
		return nil, err
	}
	s, _, err := DecodeString(t.data[pos:t.used])
	return s, err
}

// --------------------------------------------------------------------

// markOffset records the current write position for the field about to be
// appended, if it falls within the indexed prefix.
func (t *Tuple) markOffset() {
	if t.fieldCount == 0 {
		t.first = t.used
	} else if t.fieldCount < t.numOffsets {
		nn := (t.fieldCount - 1) * offsetSlotSize
		binary.LittleEndian.PutUint32(t.data[nn:], uint32(t.used))
	}
}

// fieldStart reads the stored offset of field i. The caller guarantees
// 0 <= i < numOffsets.
func (t *Tuple) fieldStart(i int) int {
	if i == 0 {
		return t.first
	}
	nn := (i - 1) * offsetSlotSize
	return int(binary.LittleEndian.Uint32(t.data[nn:]))
}

// fieldPos resolves the position of any valid field, decoding forward from
// the nearest stored offset when i lies past the indexed prefix.
func (t *Tuple) fieldPos(i int) (int, error) {
	if i < 0 || i >= t.fieldCount {
		return 0, ErrFieldRange
	}

	known := i
	if max := t.numOffsets - 1; known > max {
		known = max
	}

	pos := t.fieldStart(known)
	for ; known < i; known++ {
		var err error
		if pos, err = skipField(t.data, pos); err != nil {
			return 0, err
		}
	}
	return pos, nil
}
