// Package v47 is the packet catalog for protocol version 47 (Minecraft
// 1.8.x): the last major version before the Netty rewrite's
// Configuration phase existed, so this catalog covers Handshaking,
// Status, and Login only — a Play packet set this old is out of scope
// for the two representative versions this module chooses to cover in
// depth (see DESIGN.md's note on catalog coverage).
package v47

import (
	"mcwire/packet"
	"mcwire/protocol"
	"mcwire/versions/common"
	"mcwire/wire"
)

const Version int32 = 47

// LoginStart is packet id 0x00 of the Login phase, client-to-server.
// Protocol 47 predates the UUID-in-LoginStart change (added in 47's
// successor versions' LoginStart), so this carries only a username,
// grounded on wiki.vg's protocol version history for 1.8.x.
type LoginStart struct{ Username string }

func (*LoginStart) ID() int32 { return 0x00 }

func (l *LoginStart) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadString(c)
	l.Username = v
	return err
}

func (l *LoginStart) WriteBody(buf *[]byte) { wire.WriteString(buf, l.Username) }

// LoginSuccess is packet id 0x02 of the Login phase, server-to-client.
// The UUID is sent as its dashed string form in this version, not the
// later 16-raw-byte encoding — grounded on the same wiki.vg history.
type LoginSuccess struct {
	UUID     string
	Username string
}

func (*LoginSuccess) ID() int32 { return 0x02 }

func (l *LoginSuccess) ReadBody(c *wire.Cursor) error {
	var err error
	if l.UUID, err = wire.ReadString(c); err != nil {
		return err
	}
	l.Username, err = wire.ReadString(c)
	return err
}

func (l *LoginSuccess) WriteBody(buf *[]byte) {
	wire.WriteString(buf, l.UUID)
	wire.WriteString(buf, l.Username)
}

func init() {
	cat := protocol.NewCatalog(Version)

	cat.RegisterC2S(protocol.Handshaking, packet.Descriptor{
		ID: 0x00, Name: "handshake",
		New: func() packet.Inbound { return &common.Handshake{} },
	})

	cat.RegisterC2S(protocol.Status, packet.Descriptor{
		ID: 0x00, Name: "status_request",
		New: func() packet.Inbound { return &common.StatusRequest{} },
	})
	cat.RegisterS2C(protocol.Status, packet.Descriptor{
		ID: 0x00, Name: "status_response",
		New: func() packet.Inbound { return &common.StatusResponse{} },
	})
	cat.RegisterC2S(protocol.Status, packet.Descriptor{
		ID: 0x01, Name: "ping_request",
		New: func() packet.Inbound { return &common.PingRequest{} },
	})
	cat.RegisterS2C(protocol.Status, packet.Descriptor{
		ID: 0x01, Name: "pong_response",
		New: func() packet.Inbound { return &common.PongResponse{} },
	})

	cat.RegisterC2S(protocol.Login, packet.Descriptor{
		ID: 0x00, Name: "login_start",
		New: func() packet.Inbound { return &LoginStart{} },
	})
	cat.RegisterS2C(protocol.Login, packet.Descriptor{
		ID: 0x00, Name: "login_disconnect",
		New: func() packet.Inbound { return &common.LoginDisconnect{} },
	})
	cat.RegisterS2C(protocol.Login, packet.Descriptor{
		ID: 0x01, Name: "encryption_request",
		New: func() packet.Inbound { return &common.EncryptionRequest{} },
	})
	cat.RegisterC2S(protocol.Login, packet.Descriptor{
		ID: 0x01, Name: "encryption_response",
		New: func() packet.Inbound { return &common.EncryptionResponse{} },
	})
	cat.RegisterS2C(protocol.Login, packet.Descriptor{
		ID: 0x02, Name: "login_success",
		New: func() packet.Inbound { return &LoginSuccess{} },
	})
	cat.RegisterS2C(protocol.Login, packet.Descriptor{
		ID: 0x03, Name: "set_compression",
		New: func() packet.Inbound { return &common.SetCompression{} },
	})

	protocol.Register(cat)
}
