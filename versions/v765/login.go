// Package v765 is the packet catalog for protocol version 765
// (Minecraft 1.20.4): a modern version with the full Handshaking,
// Status, Login, and Configuration phases, plus a representative slice
// of Play (see DESIGN.md's note on catalog coverage — the full Play
// packet set runs into the hundreds and isn't the point of this
// module; keep-alive, disconnect, and system chat cover liveness,
// termination, and server-to-client text without transcribing wiki.vg
// wholesale; Play has no plugin message here).
package v765

import (
	"mcwire/wire"

	"github.com/google/uuid"
)

const Version int32 = 765

// LoginStart is packet id 0x00 of the Login phase, client-to-server.
// Carries a UUID alongside the username, unlike the pre-1.19 shape in
// versions/v47.
type LoginStart struct {
	Username string
	UUID     uuid.UUID
}

func (*LoginStart) ID() int32 { return 0x00 }

func (l *LoginStart) ReadBody(c *wire.Cursor) error {
	var err error
	if l.Username, err = wire.ReadString(c); err != nil {
		return err
	}
	l.UUID, err = wire.ReadUUID(c)
	return err
}

func (l *LoginStart) WriteBody(buf *[]byte) {
	wire.WriteString(buf, l.Username)
	wire.WriteUUID(buf, l.UUID)
}

// Property is one entry of LoginSuccess's property array — e.g. the
// signed "textures" property carrying a player's skin.
type Property struct {
	Name      string
	Value     string
	Signature []byte // present iff non-nil
}

func readProperty(c *wire.Cursor) (Property, error) {
	var p Property
	var err error
	if p.Name, err = wire.ReadString(c); err != nil {
		return p, err
	}
	if p.Value, err = wire.ReadString(c); err != nil {
		return p, err
	}
	sig, present, err := wire.ReadOptional(c, wire.ReadString)
	if err != nil {
		return p, err
	}
	if present {
		p.Signature = []byte(sig)
	}
	return p, nil
}

func writeProperty(buf *[]byte, p Property) {
	wire.WriteString(buf, p.Name)
	wire.WriteString(buf, p.Value)
	wire.WriteOptional(buf, p.Signature != nil, string(p.Signature), wire.WriteString)
}

// LoginSuccess is packet id 0x02 of the Login phase, server-to-client.
type LoginSuccess struct {
	UUID       uuid.UUID
	Username   string
	Properties []Property
}

func (*LoginSuccess) ID() int32 { return 0x02 }

func (l *LoginSuccess) ReadBody(c *wire.Cursor) error {
	var err error
	if l.UUID, err = wire.ReadUUID(c); err != nil {
		return err
	}
	if l.Username, err = wire.ReadString(c); err != nil {
		return err
	}
	l.Properties, err = wire.ReadArray(c, readProperty)
	return err
}

func (l *LoginSuccess) WriteBody(buf *[]byte) {
	wire.WriteUUID(buf, l.UUID)
	wire.WriteString(buf, l.Username)
	wire.WriteArray(buf, l.Properties, writeProperty)
}

// LoginPluginRequest is packet id 0x04 of the Login phase, server-to-client:
// a server-modification hook a vanilla client must answer with an
// unsuccessful LoginPluginResponse rather than drop the connection.
type LoginPluginRequest struct {
	MessageID int32
	Channel   string
	Data      []byte
}

func (*LoginPluginRequest) ID() int32 { return 0x04 }

func (r *LoginPluginRequest) ReadBody(c *wire.Cursor) error {
	var err error
	if r.MessageID, err = wire.ReadV32(c); err != nil {
		return err
	}
	if r.Channel, err = wire.ReadString(c); err != nil {
		return err
	}
	r.Data = wire.ReadRest(c)
	return nil
}

func (r *LoginPluginRequest) WriteBody(buf *[]byte) {
	wire.WriteV32(buf, r.MessageID)
	wire.WriteString(buf, r.Channel)
	wire.WriteRest(buf, r.Data)
}

// LoginPluginResponse is packet id 0x02 of the Login phase, client-to-server.
type LoginPluginResponse struct {
	MessageID  int32
	Successful bool
	Data       []byte // only meaningful if Successful
}

func (*LoginPluginResponse) ID() int32 { return 0x02 }

func (r *LoginPluginResponse) ReadBody(c *wire.Cursor) error {
	var err error
	if r.MessageID, err = wire.ReadV32(c); err != nil {
		return err
	}
	data, present, err := wire.ReadOptional(c, wire.ReadRestAsBytes)
	if err != nil {
		return err
	}
	r.Successful = present
	r.Data = data
	return nil
}

func (r *LoginPluginResponse) WriteBody(buf *[]byte) {
	wire.WriteV32(buf, r.MessageID)
	wire.WriteOptional(buf, r.Successful, r.Data, wire.WriteRest)
}

// LoginAcknowledged is packet id 0x03 of the Login phase, client-to-server,
// empty body: the client's signal that it has processed LoginSuccess and
// is ready for the server to advance it to Configuration.
type LoginAcknowledged struct{}

func (*LoginAcknowledged) ID() int32                     { return 0x03 }
func (*LoginAcknowledged) ReadBody(c *wire.Cursor) error { return nil }
func (*LoginAcknowledged) WriteBody(buf *[]byte)         {}
