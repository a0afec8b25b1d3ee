package tuplecmp

import "encoding/binary"

// Encoded size bounds, for sizing tuple buffers.
const (
	// MaxUintLen is the largest encoded size of an unsigned integer field.
	MaxUintLen = 9
	// MaxStringOverhead is the largest marker + length prefix size of a
	// string field, on top of the raw bytes.
	MaxStringOverhead = 5
)

// UintLen returns the exact encoded size of v.
func UintLen(v uint64) int {
	switch {
	case v <= maxFixUint:
		return 1
	case v <= 0xff:
		return 2
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// StringLen returns the exact encoded size of a string of n bytes.
func StringLen(n int) int {
	switch {
	case n <= maxFixStrLen:
		return 1 + n
	case n <= 0xff:
		return 2 + n
	case n <= 0xffff:
		return 3 + n
	default:
		return 5 + n
	}
}

// PutUint encodes v into b using the smallest of the five uint forms and
// returns the number of bytes written. It panics if b is too short; use
// UintLen or MaxUintLen to size the buffer.
func PutUint(b []byte, v uint64) int {
	switch {
	case v <= maxFixUint:
		b[0] = byte(v)
		return 1
	case v <= 0xff:
		b[0] = markerUint8
		b[1] = byte(v)
		return 2
	case v <= 0xffff:
		b[0] = markerUint16
		binary.BigEndian.PutUint16(b[1:], uint16(v))
		return 3
	case v <= 0xffffffff:
		b[0] = markerUint32
		binary.BigEndian.PutUint32(b[1:], uint32(v))
		return 5
	default:
		b[0] = markerUint64
		binary.BigEndian.PutUint64(b[1:], v)
		return 9
	}
}

// PutString encodes s into b with the smallest length prefix and returns the
// number of bytes written. It panics if b is too short; use StringLen to size
// the buffer.
func PutString(b, s []byte) int {
	var n int
	switch l := len(s); {
	case l <= maxFixStrLen:
		b[0] = markerFixStr | byte(l)
		n = 1
	case l <= 0xff:
		b[0] = markerStr8
		b[1] = byte(l)
		n = 2
	case l <= 0xffff:
		b[0] = markerStr16
		binary.BigEndian.PutUint16(b[1:], uint16(l))
		n = 3
	default:
		b[0] = markerStr32
		binary.BigEndian.PutUint32(b[1:], uint32(l))
		n = 5
	}
	return n + copy(b[n:], s)
}

// DecodeUint decodes an unsigned integer field from the start of b and
// returns the value and the number of bytes consumed.
func DecodeUint(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, errShortBuffer
	}

	switch c := b[0]; c {
	case markerUint8:
		if len(b) < 2 {
			return 0, 0, errShortBuffer
		}
		return uint64(b[1]), 2, nil
	case markerUint16:
		if len(b) < 3 {
			return 0, 0, errShortBuffer
		}
		return uint64(binary.BigEndian.Uint16(b[1:])), 3, nil
	case markerUint32:
		if len(b) < 5 {
			return 0, 0, errShortBuffer
		}
		return uint64(binary.BigEndian.Uint32(b[1:])), 5, nil
	case markerUint64:
		if len(b) < 9 {
			return 0, 0, errShortBuffer
		}
		return binary.BigEndian.Uint64(b[1:]), 9, nil
	default:
		if c > maxFixUint {
			return 0, 0, ErrMalformedMarker
		}
		return uint64(c), 1, nil
	}
}

// DecodeString decodes a string field from the start of b and returns a view
// into b (no copy is made) and the number of bytes consumed.
func DecodeString(b []byte) ([]byte, int, error) {
	if len(b) == 0 {
		return nil, 0, errShortBuffer
	}

	var l, n int
	switch c := b[0]; c {
	case markerStr8:
		if len(b) < 2 {
			return nil, 0, errShortBuffer
		}
		l, n = int(b[1]), 2
	case markerStr16:
		if len(b) < 3 {
			return nil, 0, errShortBuffer
		}
		l, n = int(binary.BigEndian.Uint16(b[1:])), 3
	case markerStr32:
		if len(b) < 5 {
			return nil, 0, errShortBuffer
		}
		l, n = int(binary.BigEndian.Uint32(b[1:])), 5
	default:
		if c < markerFixStr || c > markerFixStr|maxFixStrLen {
			return nil, 0, ErrMalformedMarker
		}
		l, n = int(c&0x1f), 1
	}

	if len(b) < n+l {
		return nil, 0, errShortBuffer
	}
	return b[n : n+l], n + l, nil
}

// --------------------------------------------------------------------

// Trusted decoders for the comparator fast path. They skip validation and
// panic on malformed markers instead of returning errors.

func uintAt(b []byte, pos int) (uint64, int) {
	switch c := b[pos]; c {
	case markerUint8:
		return uint64(b[pos+1]), pos + 2
	case markerUint16:
		return uint64(binary.BigEndian.Uint16(b[pos+1:])), pos + 3
	case markerUint32:
		return uint64(binary.BigEndian.Uint32(b[pos+1:])), pos + 5
	case markerUint64:
		return binary.BigEndian.Uint64(b[pos+1:]), pos + 9
	default:
		if c > maxFixUint {
			panic(ErrMalformedMarker)
		}
		return uint64(c), pos + 1
	}
}

func stringAt(b []byte, pos int) ([]byte, int) {
	var l, n int
	switch c := b[pos]; c {
	case markerStr8:
		l, n = int(b[pos+1]), 2
	case markerStr16:
		l, n = int(binary.BigEndian.Uint16(b[pos+1:])), 3
	case markerStr32:
		l, n = int(binary.BigEndian.Uint32(b[pos+1:])), 5
	default:
		if c < markerFixStr || c > markerFixStr|maxFixStrLen {
			panic(ErrMalformedMarker)
		}
		l, n = int(c&0x1f), 1
	}
	pos += n
	return b[pos : pos+l], pos + l
}

// skipField advances past a single encoded field of either type.
func skipField(b []byte, pos int) (int, error) {
	c := b[pos]
	switch {
	case c <= maxFixUint:
		return pos + 1, nil
	case c >= markerFixStr && c <= markerFixStr|maxFixStrLen:
		return pos + 1 + int(c&0x1f), nil
	}

	switch c {
	case markerUint8:
		return pos + 2, nil
	case markerUint16:
		return pos + 3, nil
	case markerUint32:
		return pos + 5, nil
	case markerUint64:
		return pos + 9, nil
	case markerStr8:
		return pos + 2 + int(b[pos+1]), nil
	case markerStr16:
		return pos + 3 + int(binary.BigEndian.Uint16(b[pos+1:])), nil
	case markerStr32:
		return pos + 5 + int(binary.BigEndian.Uint32(b[pos+1:])), nil
	}
	return 0, ErrMalformedMarker
}
