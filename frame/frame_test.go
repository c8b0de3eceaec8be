package frame

import (
	"bytes"
	"testing"
)

// pipe is a minimal io.ReadWriter over two independent buffers, standing
// in for a net.Conn in unit tests the way the teacher's protocol_test.go
// uses a bytes.Buffer in place of a socket.
type pipe struct {
	in  *bytes.Buffer // what Read consumes
	out *bytes.Buffer // what Write appends to
}

func (p *pipe) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *pipe) Write(b []byte) (int, error) { return p.out.Write(b) }

func newLoopback() (client *Engine, wire *bytes.Buffer) {
	wire = &bytes.Buffer{}
	return NewEngine(&pipe{in: wire, out: wire}), wire
}

func TestFrameRoundTrip(t *testing.T) {
	e, _ := newLoopback()
	payload := []byte{0x00, 'h', 'e', 'l', 'l', 'o'}
	if err := e.WriteFrame(payload); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	got, err := e.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got % x, want % x", got, payload)
	}
}

func TestFrameChunkedDelivery(t *testing.T) {
	// The frame arrives split across several short Reads; ensureNextFrame
	// must keep pulling until the whole thing is available rather than
	// returning a truncated payload.
	full := &bytes.Buffer{}
	payload := bytes.Repeat([]byte{0xAB}, 10)
	tmp := NewEngine(&pipe{in: &bytes.Buffer{}, out: full})
	if err := tmp.WriteFrame(payload); err != nil {
		t.Fatal(err)
	}

	encoded := full.Bytes()
	r := &chunkedReader{data: encoded, chunkSize: 3}
	e2 := NewEngine(r)
	got, err := e2.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got % x, want % x", got, payload)
	}
}

type chunkedReader struct {
	data      []byte
	chunkSize int
}

func (r *chunkedReader) Read(b []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, nil
	}
	n := r.chunkSize
	if n > len(b) {
		n = len(b)
	}
	if n > len(r.data) {
		n = len(r.data)
	}
	copy(b, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

func (r *chunkedReader) Write(b []byte) (int, error) { return len(b), nil }

func TestFrameCompressionBelowThreshold(t *testing.T) {
	e, buf := newLoopback()
	e.SetCompressionThreshold(256)
	payload := []byte{0x00, 'h', 'i'}
	if err := e.WriteFrame(payload); err != nil {
		t.Fatal(err)
	}
	// data length prefix of 0 marks "sent uncompressed" below threshold.
	if buf.Bytes()[1] != 0x00 {
		t.Fatalf("expected data-length-0 marker, got % x", buf.Bytes())
	}
	got, err := e.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got % x, want % x", got, payload)
	}
}

func TestFrameCompressionAboveThreshold(t *testing.T) {
	e, _ := newLoopback()
	e.SetCompressionThreshold(8)
	payload := append([]byte{0x00}, bytes.Repeat([]byte{'z'}, 100)...)
	if err := e.WriteFrame(payload); err != nil {
		t.Fatal(err)
	}
	got, err := e.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got % x, want % x", got, payload)
	}
}

func TestFrameEncryption(t *testing.T) {
	e, buf := newLoopback()
	secret := bytes.Repeat([]byte{0x42}, 16)
	if err := e.SetEncryptionSecret(secret); err != nil {
		t.Fatal(err)
	}
	payload := []byte{0x00, 'h', 'i', 'd', 'd', 'e', 'n'}
	if err := e.WriteFrame(payload); err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Fatal("plaintext visible on the wire")
	}
	got, err := e.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got % x, want % x", got, payload)
	}
}

func TestFrameTooLarge(t *testing.T) {
	var prefix []byte
	// v32 encoding of a length well past MaxFrameLength.
	n := int32(MaxFrameLength + 1)
	for {
		b := byte(n & 0x7F)
		n >>= 7
		if n != 0 {
			prefix = append(prefix, b|0x80)
			continue
		}
		prefix = append(prefix, b)
		break
	}
	e := NewEngine(&pipe{in: bytes.NewBuffer(prefix), out: &bytes.Buffer{}})
	if _, err := e.ReadFrame(); err == nil {
		t.Fatal("expected ErrFrameTooLarge")
	} else if _, ok := err.(ErrFrameTooLarge); !ok {
		t.Fatalf("unexpected error %#v", err)
	}
}

func TestStreamShutdownMidFrame(t *testing.T) {
	// A length prefix declaring more bytes than will ever arrive: the
	// reader hits EOF with zero bytes on a later Read and the engine
	// must report shutdown, not silently return a short frame.
	e := NewEngine(&pipe{in: bytes.NewBuffer([]byte{0x05, 0x01, 0x02}), out: &bytes.Buffer{}})
	if _, err := e.ReadFrame(); err == nil {
		t.Fatal("expected ErrStreamShutdown")
	} else if _, ok := err.(ErrStreamShutdown); !ok {
		t.Fatalf("unexpected error %#v", err)
	}
}
