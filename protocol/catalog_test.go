package protocol

import (
	"testing"

	"mcwire/packet"
	"mcwire/wire"
)

type pingBody struct{ Payload int64 }

func (p *pingBody) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadI64(c)
	p.Payload = v
	return err
}

func (p *pingBody) WriteBody(buf *[]byte) { wire.WriteI64(buf, p.Payload) }
func (p *pingBody) ID() int32             { return 0x01 }

func TestTransitionDAG(t *testing.T) {
	if err := Transition(Handshaking, Status); err != nil {
		t.Fatalf("Handshaking -> Status should be legal: %v", err)
	}
	if err := Transition(Handshaking, Login); err != nil {
		t.Fatalf("Handshaking -> Login should be legal: %v", err)
	}
	if err := Transition(Login, Configuration); err != nil {
		t.Fatalf("Login -> Configuration should be legal: %v", err)
	}
	if err := Transition(Configuration, Play); err != nil {
		t.Fatalf("Configuration -> Play should be legal: %v", err)
	}
	if err := Transition(Status, Play); err == nil {
		t.Fatal("Status -> Play should be illegal")
	}
	if err := Transition(Play, Handshaking); err == nil {
		t.Fatal("Play -> Handshaking should be illegal")
	}
}

func TestDispatchKnownAndUnknown(t *testing.T) {
	cat := NewCatalog(765)
	cat.RegisterC2S(Status, packet.Descriptor{
		ID:   0x01,
		Name: "ping",
		New:  func() packet.Inbound { return &pingBody{} },
	})

	var body []byte
	wire.WriteI64(&body, 42)

	got, err := Dispatch(cat, Status, RoleServer, 0x01, body)
	if err != nil {
		t.Fatal(err)
	}
	pb, ok := got.(*pingBody)
	if !ok || pb.Payload != 42 {
		t.Fatalf("got %#v", got)
	}

	unk, err := Dispatch(cat, Status, RoleServer, 0x99, []byte{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	u, ok := unk.(packet.Unknown)
	if !ok || u.ID != 0x99 {
		t.Fatalf("got %#v", unk)
	}
}

func TestCanSend(t *testing.T) {
	cat := NewCatalog(765)
	cat.RegisterS2C(Status, packet.Descriptor{ID: 0x01, Name: "pong"})

	if !CanSend(cat, Status, RoleServer, 0x01) {
		t.Fatal("server should be able to send pong in Status")
	}
	if CanSend(cat, Status, RoleClient, 0x01) {
		t.Fatal("client should not be able to send pong in Status")
	}
}
