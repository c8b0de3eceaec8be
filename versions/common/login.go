package common

import "mcwire/wire"

// EncryptionRequest is packet id 0x01 of the Login phase, server-to-client:
// begins the Diffie-Hellman-free RSA key exchange that derives the AES
// shared secret frame.Engine.SetEncryptionSecret later installs.
type EncryptionRequest struct {
	ServerID    string
	PublicKey   []byte
	VerifyToken []byte
}

func (*EncryptionRequest) ID() int32 { return 0x01 }

func (r *EncryptionRequest) ReadBody(c *wire.Cursor) error {
	var err error
	if r.ServerID, err = wire.ReadString(c); err != nil {
		return err
	}
	if r.PublicKey, err = wire.ReadBytes(c); err != nil {
		return err
	}
	r.VerifyToken, err = wire.ReadBytes(c)
	return err
}

func (r *EncryptionRequest) WriteBody(buf *[]byte) {
	wire.WriteString(buf, r.ServerID)
	wire.WriteBytes(buf, r.PublicKey)
	wire.WriteBytes(buf, r.VerifyToken)
}

// EncryptionResponse is packet id 0x01 of the Login phase, client-to-server:
// the RSA-encrypted shared secret and verify token echoed back.
type EncryptionResponse struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func (*EncryptionResponse) ID() int32 { return 0x01 }

func (r *EncryptionResponse) ReadBody(c *wire.Cursor) error {
	var err error
	if r.SharedSecret, err = wire.ReadBytes(c); err != nil {
		return err
	}
	r.VerifyToken, err = wire.ReadBytes(c)
	return err
}

func (r *EncryptionResponse) WriteBody(buf *[]byte) {
	wire.WriteBytes(buf, r.SharedSecret)
	wire.WriteBytes(buf, r.VerifyToken)
}

// SetCompression is packet id 0x03 of the Login phase, server-to-client:
// the in-band signal that tells the receiver to call
// frame.Engine.SetCompressionThreshold before decoding any further frame.
type SetCompression struct{ Threshold int32 }

func (*SetCompression) ID() int32 { return 0x03 }

func (s *SetCompression) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadV32(c)
	s.Threshold = v
	return err
}

func (s *SetCompression) WriteBody(buf *[]byte) { wire.WriteV32(buf, s.Threshold) }

// LoginDisconnect is packet id 0x00 of the Login phase, server-to-client:
// a JSON chat component explaining why the server refused the login.
type LoginDisconnect struct{ Reason string }

func (*LoginDisconnect) ID() int32 { return 0x00 }

func (d *LoginDisconnect) ReadBody(c *wire.Cursor) error {
	v, err := wire.ReadString(c)
	d.Reason = v
	return err
}

func (d *LoginDisconnect) WriteBody(buf *[]byte) { wire.WriteString(buf, d.Reason) }
