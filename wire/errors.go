// Package wire implements the primitive codec for the Minecraft Java-edition
// wire protocol: variable-length integers, length-prefixed strings and byte
// arrays, fixed-width big-endian numerics, UUIDs, optionals, and tagged
// enumerations. Readers consume from a byte cursor, which advances by the
// bytes they consumed (Cursor.Offset); writers append to a sink and never fail.
package wire

import "fmt"

// ErrReadOutOfBounds is returned when a read needs more bytes than the
// source currently has available.
type ErrReadOutOfBounds struct {
	Have, Need int
}

func (e ErrReadOutOfBounds) Error() string {
	return fmt.Sprintf("wire: read out of bounds: have %d bytes, need %d", e.Have, e.Need)
}

// ErrVarIntTooLarge is returned when a v32's fifth byte still has its
// continuation bit set, i.e. a sixth byte would be needed.
type ErrVarIntTooLarge struct{}

func (ErrVarIntTooLarge) Error() string { return "wire: varint too large" }

// ErrVarLongTooLarge is returned when a v64's tenth byte still has its
// continuation bit set, i.e. an eleventh byte would be needed.
type ErrVarLongTooLarge struct{}

func (ErrVarLongTooLarge) Error() string { return "wire: varlong too large" }

// ErrUTF8 is returned when a length-prefixed string's bytes aren't valid UTF-8.
type ErrUTF8 struct{}

func (ErrUTF8) Error() string { return "wire: invalid utf-8" }
