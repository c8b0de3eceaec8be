// Adapters bridge a packet field's in-memory Go type and its wire
// representation when the two differ — e.g. a Go int32 field that's written
// as a v32, or a []byte field framed with a v32 length prefix. This mirrors
// the teacher's pluggable Codec strategy (codec.Codec / codec.GetCodec) but
// at field granularity rather than whole-message granularity: each adapter
// is a pair of pure functions. Nothing reads struct tags; the packet
// bodies in this module call the wire Read*/Write* functions directly,
// one explicit call per field.
package wire

// Adapter bundles the read/write pair for one field's wire representation.
// F is the in-memory Go type; the wire form is only the byte layout
// Read/Write implement.
type Adapter[F any] struct {
	Read  func(*Cursor) (F, error)
	Write func(*[]byte, F)
}

// I32AsV32 adapts a plain int32 field to a v32 wire encoding — the
// convention this module picks uniformly for the Open Question in spec.md
// §9/§4.1: every v32-on-the-wire field is written with an explicit adapter,
// never inferred from a distinct Go type.
var I32AsV32 = Adapter[int32]{Read: ReadV32, Write: WriteV32}

// I64AsV64 is the 64-bit counterpart of I32AsV32.
var I64AsV64 = Adapter[int64]{Read: ReadV64, Write: WriteV64}

// LengthPrefixBytes adapts a []byte field framed with a v32 length prefix.
var LengthPrefixBytes = Adapter[[]byte]{Read: ReadBytes, Write: WriteBytes}

// RemainingBytes adapts a []byte field that consumes the rest of the packet
// body with no length prefix of its own.
var RemainingBytes = Adapter[[]byte]{
	Read:  func(c *Cursor) ([]byte, error) { return ReadRest(c), nil },
	Write: WriteRest,
}

// LengthPrefixArray builds an Adapter for a homogeneous array field, given
// the element adapter.
func LengthPrefixArray[T any](elem Adapter[T]) Adapter[[]T] {
	return Adapter[[]T]{
		Read:  func(c *Cursor) ([]T, error) { return ReadArray(c, elem.Read) },
		Write: func(buf *[]byte, items []T) { WriteArray(buf, items, elem.Write) },
	}
}

// OptionLengthPrefixBytes adapts an optional length-prefixed byte field: one
// presence byte, then LengthPrefixBytes iff present.
var OptionLengthPrefixBytes = Adapter[[]byte]{
	Read: func(c *Cursor) ([]byte, error) {
		v, _, err := ReadOptional(c, ReadBytes)
		return v, err
	},
	Write: func(buf *[]byte, v []byte) {
		WriteOptional(buf, v != nil, v, WriteBytes)
	},
}
