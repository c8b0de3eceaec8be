package common

import "mcwire/wire"

// StatusRequest is packet id 0x00 of the Status phase, client-to-server,
// with an empty body — requests the server's status JSON document.
type StatusRequest struct{}

func (*StatusRequest) ID() int32                  { return 0x00 }
func (*StatusRequest) ReadBody(c *wire.Cursor) error { return nil }
func (*StatusRequest) WriteBody(buf *[]byte)         {}

// StatusResponse is packet id 0x00 of the Status phase, server-to-client.
// The body is a single UTF-8 JSON string whose schema (version, players,
// description, favicon) is an application concern, not this protocol's —
// this module carries it as an opaque string; internal/statusping parses
// the JSON document itself via encoding/json, the same split
// the teacher's codec/json_codec.go drew between framing and payload
// encoding.
type StatusResponse struct {
	JSON string
}

func (*StatusResponse) ID() int32 { return 0x00 }

func (r *StatusResponse) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadString(c)
	r.JSON = v
	return err
}

func (r *StatusResponse) WriteBody(buf *[]byte) { wire.WriteString(buf, r.JSON) }

// PingRequest is packet id 0x01 of the Status phase, client-to-server: an
// opaque i64 payload the server must echo back unchanged in PongResponse.
type PingRequest struct{ Payload int64 }

func (*PingRequest) ID() int32 { return 0x01 }

func (p *PingRequest) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadI64(c)
	p.Payload = v
	return err
}

func (p *PingRequest) WriteBody(buf *[]byte) { wire.WriteI64(buf, p.Payload) }

// PongResponse is packet id 0x01 of the Status phase, server-to-client.
type PongResponse struct{ Payload int64 }

func (*PongResponse) ID() int32 { return 0x01 }

func (p *PongResponse) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadI64(c)
	p.Payload = v
	return err
}

func (p *PongResponse) WriteBody(buf *[]byte) { wire.WriteI64(buf, p.Payload) }
