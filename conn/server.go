package conn

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"mcwire/protocol"
)

// Handler processes one accepted Connection, starting in Handshaking
// phase as RoleServer. The server's accept loop runs Handler in its own
// goroutine per connection; Handler owns that Connection for its
// lifetime, and the server closes the underlying socket once Handler
// returns.
type Handler func(c *Connection)

// Server accepts TCP connections and dispatches each to a Handler,
// adapted from the teacher's server.Server (server/server.go): same
// accept-loop-plus-per-connection-goroutine shape and the same
// shutdown.Store/listener.Close/wg.Wait graceful-shutdown sequence, but
// with the middleware/service-registration/etcd concerns stripped out
// of Serve itself — service discovery lives in package fleet now, and
// there is no reflection-based method dispatch for Handler to drive.
type Server struct {
	listener     net.Listener
	version      int32
	interceptors []Interceptor
	rateLimit    *rateLimit

	wg       sync.WaitGroup
	shutdown atomic.Bool
}

// rateLimit holds the inbound frame budget SetInboundRateLimit applies
// to every accepted connection.
type rateLimit struct {
	r     float64
	burst int
}

// SetInboundRateLimit bounds every accepted connection's inbound frame
// rate to r frames/second with the given burst, via
// Connection.SetInboundRateLimit (frame.RateLimitedEngine) — a server
// accepting connections from untrusted clients is the natural place for
// this, unlike a dialing client (cmd/mcstatus, cmd/mcwatch) which only
// ever talks to one server it already trusts enough to query.
func (s *Server) SetInboundRateLimit(r float64, burst int) {
	s.rateLimit = &rateLimit{r: r, burst: burst}
}

// NewServer returns a Server that will build Connections against the
// catalog registered for version.
func NewServer(version int32) *Server {
	return &Server{version: version}
}

// Use registers an Interceptor every accepted Connection installs on
// its receive path, in the order added — mirroring the teacher's
// Server.Use (server/server.go), which appends to svr.middlewares for
// Chain to build into one handler at Serve time. LoggingInterceptor and
// TimeoutInterceptor are the two this module ships; Use(logging),
// Use(timeout) applies both to every Handler this Server runs.
func (s *Server) Use(i Interceptor) {
	s.interceptors = append(s.interceptors, i)
}

// Serve listens on address and runs the accept loop, calling handler
// for each accepted connection. It blocks until the listener closes.
func (s *Server) Serve(network, address string, handler Handler) error {
	listener, err := net.Listen(network, address)
	if err != nil {
		return err
	}
	s.listener = listener

	for {
		nc, err := listener.Accept()
		if err != nil {
			if s.shutdown.Load() {
				return nil
			}
			return err
		}
		go s.handleConn(nc, handler)
	}
}

func (s *Server) handleConn(nc net.Conn, handler Handler) {
	s.wg.Add(1)
	defer s.wg.Done()
	defer nc.Close()

	c, err := NewBlockingAs(netConnTransport{nc}, protocol.RoleServer, s.version)
	if err != nil {
		return
	}
	if s.rateLimit != nil {
		c.SetInboundRateLimit(s.rateLimit.r, s.rateLimit.burst)
	}
	if len(s.interceptors) > 0 {
		c.SetReceiveInterceptor(ChainInterceptors(s.interceptors...))
	}
	handler(c)
}

// Shutdown stops accepting new connections and waits up to timeout for
// in-flight handlers to return, mirroring the teacher's
// Server.Shutdown (server/server.go) minus the etcd-deregistration step
// — fleet.Registry owns that now.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.shutdown.Store(true)
	if s.listener != nil {
		s.listener.Close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("conn: timeout waiting for in-flight connections to finish")
	}
}

// netConnTransport adapts a net.Conn to the Transport interface.
type netConnTransport struct{ nc net.Conn }

func (t netConnTransport) ReadSome(buf []byte) (int, error) { return t.nc.Read(buf) }
func (t netConnTransport) WriteAll(buf []byte) error {
	_, err := t.nc.Write(buf)
	return err
}

// netConnContextTransport adapts a net.Conn to ContextReadWriter by
// driving ctx's deadline through SetReadDeadline/SetWriteDeadline —
// Go's idiom for cooperative I/O without a dedicated async runtime, per
// spec.md §4.5.
type netConnContextTransport struct{ nc net.Conn }

func (t netConnContextTransport) ReadSome(ctx context.Context, buf []byte) (int, error) {
	if dl, ok := ctx.Deadline(); ok {
		t.nc.SetReadDeadline(dl)
	} else {
		t.nc.SetReadDeadline(time.Time{})
	}
	return t.nc.Read(buf)
}

func (t netConnContextTransport) WriteAll(ctx context.Context, buf []byte) error {
	if dl, ok := ctx.Deadline(); ok {
		t.nc.SetWriteDeadline(dl)
	} else {
		t.nc.SetWriteDeadline(time.Time{})
	}
	_, err := t.nc.Write(buf)
	return err
}

// NewCooperativeConn wraps an accepted net.Conn as a cooperative
// Connection, for a Server that wants ctx-driven deadlines per
// spec.md §4.5 instead of NewBlockingAs's plain blocking reads.
func NewCooperativeConn(nc net.Conn, role protocol.Role, version int32) (*Connection, error) {
	return NewCooperative(netConnContextTransport{nc}, role, version)
}

// NewBlockingNetConn wraps a dialed net.Conn (typically the client side
// of an outgoing connection, e.g. cmd/mcstatus) as a blocking
// Connection, without requiring the caller to implement Transport
// itself.
func NewBlockingNetConn(nc net.Conn, role protocol.Role, version int32) (*Connection, error) {
	return NewBlockingAs(netConnTransport{nc}, role, version)
}
