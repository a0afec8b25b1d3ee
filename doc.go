/*
Package tuplecmp implements a compact binary tuple format, a record with a
variable number of msgpack-encoded fields, together with a partial field
offset index and key-definition based comparison.

Data Structure Documentation

Tuple

A tuple owns a single fixed-capacity byte buffer which holds, first, a region
of fixed-width offset slots for the indexed field prefix, then the encoded
fields back to back. The offset of field 0 is kept outside the slot region
since it is always the start of the payload.

	Tuple buffer layout (offN = byte offset of field N within the buffer):

	+------+------+-----+--------+------+------+------+-----+
	| off1 | off2 | ... | off#-1 | fld0 | fld1 | fld2 | ... |
	+------+------+-----+--------+------+------+------+-----+
	<------- 4-byte slots ------>
	                             ^ field 0 always starts right
	                               after the slot region

Fields at index >= the indexed prefix size have no slot and are reached by
decoding forward from the last slotted field.

Field encoding

Fields are unsigned integers or byte strings, encoded as the matching subset
of the msgpack format (https://msgpack.org/). All multi-byte values are
big-endian on the wire.

	+-----------------+------------+------------------------+
	| value           | marker     | payload                |
	+-----------------+------------+------------------------+
	| uint <= 0x7f    | the value  | none                   |
	| uint <= 2^8-1   | 0xcc       | 1 byte                 |
	| uint <= 2^16-1  | 0xcd       | 2 bytes                |
	| uint <= 2^32-1  | 0xce       | 4 bytes                |
	| uint            | 0xcf       | 8 bytes                |
	| str, len <= 31  | 0xa0 | len | len bytes              |
	| str, len < 2^8  | 0xd9       | 1-byte len + len bytes |
	| str, len < 2^16 | 0xda       | 2-byte len + len bytes |
	| str             | 0xdb       | 4-byte len + len bytes |
	+-----------------+------------+------------------------+

Key definitions

A KeyDef is an ordered list of (field index, field type) parts. Tuples are
compared part by part, lexicographically, stopping at the first unequal part.
When consecutive parts reference consecutive field indices the comparator
reuses the decode cursor left behind by the previous part instead of looking
the field up again.
*/
package tuplecmp
