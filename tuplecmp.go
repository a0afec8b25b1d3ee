package tuplecmp

import "errors"

// msgpack markers for the supported value subset.
const (
	markerUint8  = 0xcc
	markerUint16 = 0xcd
	markerUint32 = 0xce
	markerUint64 = 0xcf

	markerFixStr = 0xa0 // 0xa0..0xbf, length in the low 5 bits
	markerStr8   = 0xd9
	markerStr16  = 0xda
	markerStr32  = 0xdb

	maxFixUint   = 0x7f
	maxFixStrLen = 31
)

const offsetSlotSize = 4 // fixed width of one offset slot

// ErrTupleFull is returned by appends that do not fit the tuple buffer.
var ErrTupleFull = errors.New("tuplecmp: tuple buffer capacity exceeded")

// ErrMalformedMarker is returned when a decode encounters a marker byte
// outside the supported subset.
var ErrMalformedMarker = errors.New("tuplecmp: malformed field marker")

// ErrFieldRange is returned when a field index references no field of the
// tuple, or no stored offset where one is required.
var ErrFieldRange = errors.New("tuplecmp: field index out of range")

// ErrTypeMismatch is returned by checked comparisons when a key part's
// declared type does not match the encoded field.
var ErrTypeMismatch = errors.New("tuplecmp: key part type does not match field encoding")

var errShortBuffer = errors.New("tuplecmp: buffer too short for encoded value")

// --------------------------------------------------------------------

// FieldType declares how a key part decodes and compares its field.
type FieldType byte

func (t FieldType) isValid() bool {
	return t < unknownFieldType
}

// Supported field types
const (
	Uint FieldType = iota
	String
	unknownFieldType
)
