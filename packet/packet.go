// Package packet defines the shapes a protocol packet catalog is built
// from: the Outbound/Inbound encode/decode interfaces, the opaque
// Unknown fallback for an unrecognized id, and the Descriptor a
// version catalog registers per (phase, direction, id). It replaces the
// teacher's single RPCMessage envelope (message/message.go), which
// carried one dynamic body for every request regardless of type, with a
// typed-per-packet model — this protocol's packet set is closed and
// versioned, so each one gets its own Go type instead of one envelope
// with an untyped payload.
package packet

import "mcwire/wire"

// Outbound is implemented by every packet type a connection can send.
type Outbound interface {
	// ID returns the packet's v32 discriminant for the catalog it
	// belongs to.
	ID() int32
	// WriteBody appends the packet's body (not including ID) to buf.
	WriteBody(buf *[]byte)
}

// Inbound is implemented by every packet type a connection can receive.
type Inbound interface {
	// ReadBody decodes the packet's body (not including ID) from c.
	ReadBody(c *wire.Cursor) error
}

// Any is the result of decoding one frame's payload: either a concrete
// packet satisfying both Outbound and Inbound shapes at the descriptor
// level, or Unknown if the id isn't registered for the catalog in use.
type Any interface{}

// Unknown is returned by protocol.Dispatch in place of an error when a
// packet id isn't present in the active catalog — an unrecognized id is
// data, not necessarily a protocol violation (a newer server extension,
// a plugin message namespace the client doesn't know), so decoding must
// preserve it losslessly rather than fail.
type Unknown struct {
	ID   int32
	Body []byte
}

// Descriptor binds one packet id, within one (phase, direction) slot of
// one version catalog, to the constructor and codec pair that produce
// and consume it. New() returns a fresh zero-value Inbound the catalog
// decodes into; Decode wraps the packet's own ReadBody (and the
// package-level Encode wraps WriteBody) so protocol.Catalog doesn't need
// a type switch over every packet type it carries.
type Descriptor struct {
	ID   int32
	Name string
	New  func() Inbound
}

// Decode allocates a new packet via d.New and decodes body into it.
func (d Descriptor) Decode(body []byte) (Inbound, error) {
	pkt := d.New()
	if err := pkt.ReadBody(wire.NewCursor(body)); err != nil {
		return nil, err
	}
	return pkt, nil
}

// Encode appends pkt's id and body to buf, ready for frame.Engine.WriteFrame.
func Encode(buf *[]byte, pkt Outbound) {
	wire.WriteV32(buf, pkt.ID())
	pkt.WriteBody(buf)
}
