package v765

import "mcwire/wire"

// PlayKeepAlive is packet id 0x24 of the Play phase, server-to-client,
// and its matching client echo at id 0x18 — a liveness probe that
// conn.RunKeepAlive (conn/keepalive.go) sends on a timer; nothing in
// this module sends the echo automatically.
type PlayKeepAlive struct{ KeepAliveID int64 }

func (*PlayKeepAlive) ID() int32 { return 0x24 }

func (k *PlayKeepAlive) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadI64(c)
	k.KeepAliveID = v
	return err
}

func (k *PlayKeepAlive) WriteBody(buf *[]byte) { wire.WriteI64(buf, k.KeepAliveID) }

// PlayKeepAliveResponse is the client-to-server echo of PlayKeepAlive.
type PlayKeepAliveResponse struct{ KeepAliveID int64 }

func (*PlayKeepAliveResponse) ID() int32 { return 0x18 }

func (k *PlayKeepAliveResponse) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadI64(c)
	k.KeepAliveID = v
	return err
}

func (k *PlayKeepAliveResponse) WriteBody(buf *[]byte) { wire.WriteI64(buf, k.KeepAliveID) }

// PlayDisconnect is packet id 0x1D of the Play phase, server-to-client:
// a JSON chat component, the Play-phase counterpart of LoginDisconnect/
// ConfigurationDisconnect.
type PlayDisconnect struct{ Reason string }

func (*PlayDisconnect) ID() int32 { return 0x1D }

func (d *PlayDisconnect) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadString(c)
	d.Reason = v
	return err
}

func (d *PlayDisconnect) WriteBody(buf *[]byte) { wire.WriteString(buf, d.Reason) }

// SystemChatMessage is packet id 0x67 of the Play phase, server-to-client:
// a server-originated message (command feedback, broadcast) distinct
// from a player chat message, carried as an opaque JSON text component
// the same way StatusResponse carries its document opaquely.
type SystemChatMessage struct {
	Content string
	Overlay bool // true for the action-bar overlay, false for normal chat
}

func (*SystemChatMessage) ID() int32 { return 0x67 }

func (m *SystemChatMessage) ReadBody(c *wire.Cursor) error {
	var err error
	if m.Content, err = wire.ReadString(c); err != nil {
		return err
	}
	m.Overlay, err = wire.ReadBool(c)
	return err
}

func (m *SystemChatMessage) WriteBody(buf *[]byte) {
	wire.WriteString(buf, m.Content)
	wire.WriteBool(buf, m.Overlay)
}
