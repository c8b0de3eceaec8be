package v765

import "mcwire/wire"

// ServerboundPluginMessage carries a namespaced payload between a
// modded client and server outside of vanilla packet ids. This catalog
// registers it in the Configuration phase only; there is no Play-phase
// plugin message type here.
type ServerboundPluginMessage struct {
	Channel string
	Data    []byte
}

func (*ServerboundPluginMessage) ID() int32 { return 0x02 }

func (m *ServerboundPluginMessage) ReadBody(c *wire.Cursor) error {
	var err error
	if m.Channel, err = wire.ReadString(c); err != nil {
		return err
	}
	m.Data = wire.ReadRest(c)
	return nil
}

func (m *ServerboundPluginMessage) WriteBody(buf *[]byte) {
	wire.WriteString(buf, m.Channel)
	wire.WriteRest(buf, m.Data)
}

// ClientboundPluginMessage is the server-to-client counterpart.
type ClientboundPluginMessage struct {
	Channel string
	Data    []byte
}

func (*ClientboundPluginMessage) ID() int32 { return 0x01 }

func (m *ClientboundPluginMessage) ReadBody(c *wire.Cursor) error {
	var err error
	if m.Channel, err = wire.ReadString(c); err != nil {
		return err
	}
	m.Data = wire.ReadRest(c)
	return nil
}

func (m *ClientboundPluginMessage) WriteBody(buf *[]byte) {
	wire.WriteString(buf, m.Channel)
	wire.WriteRest(buf, m.Data)
}

// ConfigurationDisconnect is packet id 0x02 of the Configuration phase,
// server-to-client.
type ConfigurationDisconnect struct{ Reason string }

func (*ConfigurationDisconnect) ID() int32 { return 0x02 }

func (d *ConfigurationDisconnect) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadString(c)
	d.Reason = v
	return err
}

func (d *ConfigurationDisconnect) WriteBody(buf *[]byte) { wire.WriteString(buf, d.Reason) }

// FinishConfiguration is packet id 0x03 of the Configuration phase,
// server-to-client, empty body: tells the client the server is ready to
// move to Play once the client acknowledges.
type FinishConfiguration struct{}

func (*FinishConfiguration) ID() int32                     { return 0x03 }
func (*FinishConfiguration) ReadBody(c *wire.Cursor) error { return nil }
func (*FinishConfiguration) WriteBody(buf *[]byte)         {}

// AcknowledgeFinishConfiguration is packet id 0x03 of the Configuration
// phase, client-to-server, empty body: the matching acknowledgment that
// advances both peers to Play.
type AcknowledgeFinishConfiguration struct{}

func (*AcknowledgeFinishConfiguration) ID() int32                     { return 0x03 }
func (*AcknowledgeFinishConfiguration) ReadBody(c *wire.Cursor) error { return nil }
func (*AcknowledgeFinishConfiguration) WriteBody(buf *[]byte)         {}

// ConfigurationKeepAlive is packet id 0x04 of the Configuration phase,
// server-to-client, with its matching client-to-server echo at the same
// id — the Configuration phase's own keep-alive, separate from Play's.
type ConfigurationKeepAlive struct{ KeepAliveID int64 }

func (*ConfigurationKeepAlive) ID() int32 { return 0x04 }

func (k *ConfigurationKeepAlive) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadI64(c)
	k.KeepAliveID = v
	return err
}

func (k *ConfigurationKeepAlive) WriteBody(buf *[]byte) { wire.WriteI64(buf, k.KeepAliveID) }
