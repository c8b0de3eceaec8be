// Package conn implements the Connection facade: the single-owner,
// no-internal-locking wrapper around a frame.Engine that tracks protocol
// phase/role and enforces the catalog's send/receive rules. It adapts
// the teacher's ClientTransport (transport/client_transport.go) and
// Server (server/server.go) — both built around a fixed RPC envelope
// and reflection dispatch — into a protocol-aware connection over a
// typed packet catalog, dropping the request/response multiplexing
// those types existed for (this protocol has no seq-numbered
// request/response pairing; Play-phase packets are a stream, not an
// RPC call).
package conn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	"mcwire/frame"
	"mcwire/packet"
	"mcwire/protocol"
	"mcwire/wire"
)

// Transport is the blocking external interface a Connection is built
// over: read some bytes, or fail; write all of buf, or fail.
type Transport interface {
	ReadSome(buf []byte) (int, error)
	WriteAll(buf []byte) error
}

// ContextReadWriter is Transport's cooperative counterpart: both calls
// take a context.Context and are expected to respect its cancellation as
// a suspension point, per spec.md §5.
type ContextReadWriter interface {
	ReadSome(ctx context.Context, buf []byte) (int, error)
	WriteAll(ctx context.Context, buf []byte) error
}

// Connection is the facade a caller drives: Send/ReceiveOne/ReceiveExpected
// plus the in-band compression/encryption signals, all serialized through
// a single frame.Engine. No internal mutex — per spec.md §5, a Connection
// has exactly one owning goroutine unless split via Split().
type Connection struct {
	engine  frameEngine
	raw     *frame.Engine // the un-rate-limited engine SetInboundRateLimit wraps
	phase   protocol.Phase
	role    protocol.Role
	catalog *protocol.Catalog

	ctxAdapter *ctxIoAdapter // non-nil only for a cooperative binding

	receiveChain Interceptor // nil means ReceiveOne reads the engine directly
}

// SetReceiveInterceptor installs chain to wrap every subsequent
// ReceiveOne call — e.g. ChainInterceptors(LoggingInterceptor(log),
// TimeoutInterceptor(d)) to log and bound every receive on this
// connection without every call site routing through it explicitly.
// Server.Use sets this on each accepted Connection before handing it to
// a Handler.
func (c *Connection) SetReceiveInterceptor(chain Interceptor) {
	c.receiveChain = chain
}

// frameEngine is the subset of *frame.Engine / *frame.RateLimitedEngine
// a Connection drives — letting SetInboundRateLimit swap in the
// decorator without changing any other method on Connection.
type frameEngine interface {
	ReadFrame() ([]byte, error)
	WriteFrame(payload []byte) error
}

// SetInboundRateLimit wraps inbound frame extraction with a token-bucket
// limiter (frame.RateLimitedEngine), giving a connection — e.g. one a
// listening Server accepted, via Server.SetInboundRateLimit — a
// per-connection ceiling independent of the transport's own pacing.
func (c *Connection) SetInboundRateLimit(r float64, burst int) {
	c.engine = frame.NewRateLimited(c.raw, r, burst)
}

// ctxIoAdapter bridges a ContextReadWriter into the plain io.ReadWriter
// frame.Engine expects, threading the context.Context supplied to the
// Connection call that's currently in flight. frame.Engine predates any
// notion of per-call cancellation, so the adapter's ctx field is set
// immediately before each engine call rather than carried in the engine
// itself — a Connection is single-owner, so there's no concurrent call
// to race against.
type ctxIoAdapter struct {
	crw ContextReadWriter
	ctx context.Context
}

func (a *ctxIoAdapter) Read(p []byte) (int, error)  { return a.crw.ReadSome(a.ctx, p) }
func (a *ctxIoAdapter) Write(p []byte) (int, error) {
	if err := a.crw.WriteAll(a.ctx, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// blockingIoAdapter bridges a Transport into io.ReadWriter for the
// blocking binding.
type blockingIoAdapter struct{ t Transport }

func (a blockingIoAdapter) Read(p []byte) (int, error)  { return a.t.ReadSome(p) }
func (a blockingIoAdapter) Write(p []byte) (int, error) {
	if err := a.t.WriteAll(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewBlocking builds a Connection over a blocking Transport. The
// returned Connection starts in Handshaking phase; role defaults to
// RoleServer (the accepting side) — callers dialing out as a client
// should use NewBlockingAs(rw, protocol.RoleClient, version).
func NewBlocking(rw Transport, version int32) (*Connection, error) {
	return newConnection(blockingIoAdapter{t: rw}, protocol.RoleServer, version)
}

// NewBlockingAs is NewBlocking with an explicit role.
func NewBlockingAs(rw Transport, role protocol.Role, version int32) (*Connection, error) {
	return newConnection(blockingIoAdapter{t: rw}, role, version)
}

// NewCooperative builds a Connection over a ContextReadWriter, whose
// reads and writes see the context.Context of the Connection call in
// flight. (A listening Server binds each accepted socket with
// NewBlockingAs instead.)
func NewCooperative(crw ContextReadWriter, role protocol.Role, version int32) (*Connection, error) {
	adapter := &ctxIoAdapter{crw: crw, ctx: context.Background()}
	c, err := newConnection(adapter, role, version)
	if err != nil {
		return nil, err
	}
	c.ctxAdapter = adapter
	return c, nil
}

func newConnection(rw ioReadWriter, role protocol.Role, version int32) (*Connection, error) {
	cat, ok := protocol.VersionCatalogs[version]
	if !ok {
		return nil, fmt.Errorf("conn: no catalog registered for protocol version %d", version)
	}
	e := frame.NewEngine(rw)
	return &Connection{
		engine:  e,
		raw:     e,
		phase:   protocol.Handshaking,
		role:    role,
		catalog: cat,
	}, nil
}

// ioReadWriter is the minimal shape frame.NewEngine needs; both adapter
// types above satisfy it.
type ioReadWriter interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// Phase reports the connection's current protocol phase.
func (c *Connection) Phase() protocol.Phase { return c.phase }

// Role reports which side of the connection this value represents.
func (c *Connection) Role() protocol.Role { return c.role }

// Transition moves the connection to the next phase, validating the
// move against the fixed DAG first. Buffer state and cipher/compression
// settings carry over unchanged — only the phase marker changes.
func (c *Connection) Transition(to protocol.Phase) error {
	if err := protocol.Transition(c.phase, to); err != nil {
		return err
	}
	c.phase = to
	return nil
}

// SetCompressionThreshold forwards to the embedded frame.Engine.
// Set-once by convention (single-owner, no mutex) per spec.md §5.
func (c *Connection) SetCompressionThreshold(n int) { c.raw.SetCompressionThreshold(n) }

// SetEncryptionSecret forwards to the embedded frame.Engine.
func (c *Connection) SetEncryptionSecret(secret []byte) error {
	return c.raw.SetEncryptionSecret(secret)
}

// Send encodes pkt and writes it as one frame, after checking the
// catalog allows this (phase, role) to send pkt.ID() — a phase-illegal
// send never touches the transport.
func (c *Connection) Send(pkt packet.Outbound) error {
	if !protocol.CanSend(c.catalog, c.phase, c.role, pkt.ID()) {
		return protocol.ErrIllegalSend{Phase: c.phase, Role: c.role, ID: pkt.ID()}
	}
	var buf []byte
	packet.Encode(&buf, pkt)
	return c.engine.WriteFrame(buf)
}

// ReceiveOne blocks for one full frame and dispatches it against the
// catalog, returning either a known typed packet or protocol.Unknown.
// ctx governs Timeout for a cooperative binding; for a blocking binding
// it has no effect on the read itself (a blocking syscall can't be
// interrupted), matching spec.md §4.4's note.
func (c *Connection) ReceiveOne(ctx context.Context) (packet.Any, error) {
	if c.receiveChain != nil {
		return c.receiveChain(c.receiveOneDirect)(ctx)
	}
	return c.receiveOneDirect(ctx)
}

// receiveOneDirect is ReceiveOne's un-intercepted body: every
// Interceptor chain installed via SetReceiveInterceptor eventually
// calls down to this.
func (c *Connection) receiveOneDirect(ctx context.Context) (packet.Any, error) {
	if c.ctxAdapter != nil {
		c.ctxAdapter.ctx = ctx
	}
	raw, err := c.engine.ReadFrame()
	if err != nil {
		return nil, classifyReadError(err)
	}
	id, body, err := splitPacketID(raw)
	if err != nil {
		return nil, err
	}
	return protocol.Dispatch(c.catalog, c.phase, c.role, id, body)
}

// identifiedPacket is satisfied by every concrete packet type this
// module decodes (they all implement packet.Outbound's ID method even
// when only ever received, never sent, since New() returns the same
// zero value either direction would use) — it's the subset ReceiveExpected
// needs to report both sides of a mismatch.
type identifiedPacket interface{ ID() int32 }

// ReceiveExpected wraps ReceiveOne, requiring T to carry its own packet
// id (via ID(), same method packet.Outbound declares) so a mismatch can
// report protocol.ErrUnexpectedPacket with both the id T was built for
// and the id actually received, instead of leaving Expected zero.
// Calling ID() on T's zero value relies on every packet type here
// returning its id as a constant rather than reading a field — true of
// every type in versions/common and versions/vNNN, since a packet's id
// is fixed by the catalog it's registered under, not by its contents.
func ReceiveExpected[T identifiedPacket](c *Connection, ctx context.Context) (T, error) {
	var zero T
	expected := zero.ID()

	result, err := c.ReceiveOne(ctx)
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		got := int32(-1)
		switch r := result.(type) {
		case packet.Unknown:
			got = r.ID
		case identifiedPacket:
			got = r.ID()
		}
		return zero, protocol.ErrUnexpectedPacket{Expected: expected, Got: got}
	}
	return typed, nil
}

func splitPacketID(raw []byte) (int32, []byte, error) {
	c := wire.NewCursor(raw)
	id, err := wire.ReadV32(c)
	if err != nil {
		return 0, nil, err
	}
	return id, c.ReadRest(), nil
}

// classifyReadError maps a frame.Engine read failure onto the
// protocol package's error taxonomy, grounded on
// original_source/src/error.rs's io::Error classification.
func classifyReadError(err error) error {
	switch err.(type) {
	case frame.ErrStreamShutdown:
		return protocol.ErrStreamShutdown{}
	case frame.ErrRateLimited:
		return protocol.ErrRateLimited{}
	}
	var ne net.Error
	if errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNABORTED) || errors.Is(err, syscall.ECONNRESET) ||
		(errors.As(err, &ne) && ne.Timeout()) {
		return protocol.ErrUnexpectedDisconnect{Cause: err}
	}
	return protocol.ErrOtherTransport{Cause: err}
}
