// Package common holds packet definitions identical across every
// protocol version this module covers, so versions/v47 and
// versions/v765 both register the same Go type instead of maintaining
// near-duplicate structs. Handshake is the first packet of every
// connection and hasn't changed shape since its introduction.
package common

import (
	"strings"

	"mcwire/wire"
)

// ForgeMarker identifies a Forge/FML modded-client handshake signature
// appended to the server address field, preserved losslessly instead of
// stripped — grounded on original_source/src/handshake.rs's
// ForgeHandshake enum and its wiki.vg-documented marker strings.
type ForgeMarker int

const (
	ForgeNone ForgeMarker = iota
	ForgeVersion1           // Forge 1.7-1.12: "\0FML\0"
	ForgeVersion2           // Forge 1.13+: "\0FML2\0"
	ForgeOther              // a marker present but not one of the known ones
)

const (
	forgeMarker1 = "\x00FML\x00"
	forgeMarker2 = "\x00FML2\x00"
)

// splitForgeMarker separates a raw server_address field into the
// address proper and whichever Forge marker (if any) trails it.
// otherMarker carries the raw suffix when marker == ForgeOther, so an
// unrecognized-but-present marker round-trips exactly instead of being
// silently dropped.
func splitForgeMarker(raw string) (address string, marker ForgeMarker, otherMarker string) {
	idx := strings.IndexByte(raw, 0)
	if idx < 0 {
		return raw, ForgeNone, ""
	}
	address, suffix := raw[:idx], raw[idx:]
	switch suffix {
	case forgeMarker1:
		return address, ForgeVersion1, ""
	case forgeMarker2:
		return address, ForgeVersion2, ""
	default:
		return address, ForgeOther, suffix
	}
}

func joinForgeMarker(address string, marker ForgeMarker, otherMarker string) string {
	switch marker {
	case ForgeVersion1:
		return address + forgeMarker1
	case ForgeVersion2:
		return address + forgeMarker2
	case ForgeOther:
		return address + otherMarker
	default:
		return address
	}
}

// NextState is the Handshake packet's declared destination phase.
// Handshake carries it as a raw int32, so any value outside {1, 2, 3}
// is preserved rather than rejected, in line with the protocol's general
// tagged-enum convention (wire.TaggedEnum).
type NextState int32

const (
	NextStateStatus   NextState = 1
	NextStateLogin    NextState = 2
	NextStateTransfer NextState = 3 // modern clients transferring in from another server
)

// Handshake is packet id 0x00, the sole packet of the Handshaking
// phase, sent client-to-server. Grounded on
// original_source/src/handshake.rs's Handshake struct and its
// read_body/write_body (i32_as_v32, String, u16, NextState, and the
// address/Forge-marker split).
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       int32 // raw v32 value; compare against NextStateStatus/NextStateLogin/NextStateTransfer

	ForgeMarker      ForgeMarker
	ForgeOtherMarker string
}

func (*Handshake) ID() int32 { return 0x00 }

func (h *Handshake) ReadBody(c *wire.Cursor) error {
	pv, err := wire.ReadV32(c)
	if err != nil {
		return err
	}
	rawAddr, err := wire.ReadString(c)
	if err != nil {
		return err
	}
	port, err := wire.ReadU16(c)
	if err != nil {
		return err
	}
	next, err := wire.ReadV32(c)
	if err != nil {
		return err
	}
	addr, marker, other := splitForgeMarker(rawAddr)

	h.ProtocolVersion = pv
	h.ServerAddress = addr
	h.ServerPort = port
	h.NextState = next
	h.ForgeMarker = marker
	h.ForgeOtherMarker = other
	return nil
}

func (h *Handshake) WriteBody(buf *[]byte) {
	wire.WriteV32(buf, h.ProtocolVersion)
	wire.WriteString(buf, joinForgeMarker(h.ServerAddress, h.ForgeMarker, h.ForgeOtherMarker))
	wire.WriteU16(buf, h.ServerPort)
	wire.WriteV32(buf, h.NextState)
}
