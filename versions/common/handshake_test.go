package common

import (
	"testing"

	"mcwire/wire"
)

func TestHandshakeRoundTrip(t *testing.T) {
	h := &Handshake{
		ProtocolVersion: 765,
		ServerAddress:   "play.example.com",
		ServerPort:      25565,
		NextState:       int32(NextStateLogin),
	}
	var buf []byte
	h.WriteBody(&buf)

	got := &Handshake{}
	if err := got.ReadBody(wire.NewCursor(buf)); err != nil {
		t.Fatal(err)
	}
	if *got != *h {
		t.Fatalf("round trip: got %+v, want %+v", got, h)
	}
}

func TestHandshakeForgeMarkerRoundTrip(t *testing.T) {
	h := &Handshake{
		ProtocolVersion: 47,
		ServerAddress:   "play.example.com",
		ServerPort:      25565,
		NextState:       int32(NextStateLogin),
		ForgeMarker:     ForgeVersion2,
	}
	var buf []byte
	h.WriteBody(&buf)

	got := &Handshake{}
	if err := got.ReadBody(wire.NewCursor(buf)); err != nil {
		t.Fatal(err)
	}
	if got.ServerAddress != h.ServerAddress {
		t.Fatalf("address corrupted by marker: got %q", got.ServerAddress)
	}
	if got.ForgeMarker != ForgeVersion2 {
		t.Fatalf("forge marker lost: got %v", got.ForgeMarker)
	}
}

func TestHandshakeUnknownForgeMarkerPreserved(t *testing.T) {
	// A marker string this module doesn't recognize must still round
	// trip exactly rather than being silently dropped.
	raw := "play.example.com\x00FML3\x00"
	addr, marker, other := splitForgeMarker(raw)
	if marker != ForgeOther {
		t.Fatalf("expected ForgeOther, got %v", marker)
	}
	rejoined := joinForgeMarker(addr, marker, other)
	if rejoined != raw {
		t.Fatalf("got %q, want %q", rejoined, raw)
	}
}
