// Package frame implements the outer wire envelope of the Minecraft
// Java-edition protocol: a v32-prefixed length, an optional Zlib
// compression layer, and an optional AES-128-CFB-8 encryption layer
// wrapped around every frame. It replaces the teacher's fixed 14-byte
// magic/version/codec header (protocol/protocol.go) with this protocol's
// own framing, but keeps the same shape: peel off enough bytes to know
// the body length, read exactly that many more, hand the raw body to the
// caller.
package frame

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"mcwire/wire"
)

// ErrStreamShutdown is returned when the underlying reader reaches EOF
// with no bytes delivered mid-frame — the peer closed the connection.
type ErrStreamShutdown struct{}

func (ErrStreamShutdown) Error() string { return "frame: stream shut down" }

// ErrFrameTooLarge guards against a hostile or corrupt length prefix
// driving an unbounded allocation.
type ErrFrameTooLarge struct{ Length int }

func (e ErrFrameTooLarge) Error() string {
	return fmt.Sprintf("frame: declared length %d exceeds maximum frame size", e.Length)
}

// MaxFrameLength bounds the v32 length prefix read off the wire. The
// vanilla client/server enforces 2MiB; this is generous enough for any
// legitimate packet (the largest are chunk data packets, themselves
// below this bound) while still rejecting a garbage length prefix.
const MaxFrameLength = 2 * 1024 * 1024

// Engine extracts and emits frames over an io.ReadWriter, applying
// compression and encryption as configured. It owns an internal receive
// buffer so it can peek at a length prefix without consuming bytes the
// caller hasn't confirmed are part of a complete frame yet — the same
// ensure_next_length property the protocol was originally built around.
type Engine struct {
	rw io.ReadWriter

	recvBuf []byte // bytes received but not yet handed out as a frame

	compressionThreshold int // <0 means compression disabled
	cipher               *StreamCipher
}

// NewEngine wraps rw with framing. Compression and encryption start
// disabled; SetCompressionThreshold and SetEncryptionSecret enable them
// mid-stream, exactly where the protocol's login sequence does.
func NewEngine(rw io.ReadWriter) *Engine {
	return &Engine{rw: rw, compressionThreshold: -1}
}

// SetCompressionThreshold enables (threshold >= 0) or disables
// (threshold < 0) Zlib compression for frames at or above the given
// uncompressed body size.
func (e *Engine) SetCompressionThreshold(threshold int) {
	e.compressionThreshold = threshold
}

// SetEncryptionSecret installs an AES-128-CFB-8 cipher pair keyed (and
// IV'd) by secret, which must be exactly 16 bytes — the login sequence's
// shared secret doubles as both key and IV in this protocol, unlike a
// standard CFB construction.
func (e *Engine) SetEncryptionSecret(secret []byte) error {
	c, err := NewStreamCipher(secret)
	if err != nil {
		return err
	}
	e.cipher = c
	return nil
}

// fill reads at least one more chunk from the underlying reader into
// recvBuf, decrypting it in place if encryption is active.
func (e *Engine) fill() error {
	var chunk [4096]byte
	n, err := e.rw.Read(chunk[:])
	if n == 0 {
		if err == io.EOF || err == nil {
			return ErrStreamShutdown{}
		}
		return err
	}
	data := chunk[:n]
	if e.cipher != nil {
		e.cipher.DecryptInPlace(data)
	}
	e.recvBuf = append(e.recvBuf, data...)
	return nil
}

// ensureNextFrame blocks until recvBuf holds a full frame: a complete
// v32 length prefix followed by that many more bytes. It never discards
// a partial length prefix or a short body — fill() only appends.
func (e *Engine) ensureNextFrame() (length int, prefixLen int, err error) {
	for {
		length, prefixLen, err = peekFrameLength(e.recvBuf)
		if err == nil && len(e.recvBuf)-prefixLen >= length {
			return length, prefixLen, nil
		}
		if err != nil {
			if _, ok := err.(wire.ErrReadOutOfBounds); !ok {
				return 0, 0, err
			}
		}
		if length > MaxFrameLength {
			return 0, 0, ErrFrameTooLarge{Length: length}
		}
		if ferr := e.fill(); ferr != nil {
			return 0, 0, ferr
		}
	}
}

// peekFrameLength reads a v32 length prefix from buf through a fresh
// Cursor, leaving buf itself untouched; the caller trims recvBuf only
// once the whole frame is present.
func peekFrameLength(buf []byte) (length int, prefixLen int, err error) {
	c := wire.NewCursor(buf)
	v, err := wire.ReadV32(c)
	if err != nil {
		return 0, 0, err
	}
	return int(v), c.Offset(), nil
}

// ReadFrame blocks until one full frame has arrived, decompresses it if
// compression is active, and returns the packet payload: a v32 packet
// id followed by its body, exactly as the caller should hand it to
// protocol.Dispatch.
func (e *Engine) ReadFrame() ([]byte, error) {
	length, prefixLen, err := e.ensureNextFrame()
	if err != nil {
		return nil, err
	}
	frameBody := e.recvBuf[prefixLen : prefixLen+length]
	e.recvBuf = e.recvBuf[prefixLen+length:]

	if e.compressionThreshold < 0 {
		return append([]byte(nil), frameBody...), nil
	}
	return e.decompress(frameBody)
}

func (e *Engine) decompress(frameBody []byte) ([]byte, error) {
	c := wire.NewCursor(frameBody)
	dataLength, err := wire.ReadV32(c)
	if err != nil {
		return nil, err
	}
	rest := c.ReadRest()
	if dataLength == 0 {
		// Below the sender's compression threshold: uncompressed, passed
		// through unchanged apart from the data-length-zero marker.
		return append([]byte(nil), rest...), nil
	}
	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	out := make([]byte, 0, dataLength)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFrame compresses (if active), length-prefixes, encrypts (if
// active) and writes one frame containing payload — a packet id
// followed by its body, as produced by packet.Encode.
func (e *Engine) WriteFrame(payload []byte) error {
	body, err := e.compress(payload)
	if err != nil {
		return err
	}
	var out []byte
	wire.WriteV32(&out, int32(len(body)))
	out = append(out, body...)
	if e.cipher != nil {
		e.cipher.EncryptInPlace(out)
	}
	_, err = e.rw.Write(out)
	return err
}

func (e *Engine) compress(payload []byte) ([]byte, error) {
	if e.compressionThreshold < 0 {
		return payload, nil
	}
	var out []byte
	if len(payload) < e.compressionThreshold {
		wire.WriteV32(&out, 0)
		out = append(out, payload...)
		return out, nil
	}
	wire.WriteV32(&out, int32(len(payload)))
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(payload); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	out = append(out, compressed.Bytes()...)
	return out, nil
}
