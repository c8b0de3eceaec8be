package conn

import (
	"context"
	"sync"

	"mcwire/packet"
)

// Sender is the write half of a split Connection: safe to call from its
// own goroutine, serialized against other Senders sharing the same
// Connection only by the shared mutex mu below.
type Sender struct {
	c  *Connection
	mu *sync.Mutex
}

// Send is Connection.Send, serialized by the shared write lock.
func (s *Sender) Send(pkt packet.Outbound) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Send(pkt)
}

// Receiver is the read half of a split Connection, meant to be driven
// from a single dedicated goroutine — frame extraction is inherently
// sequential (a byte stream has one reader), the same constraint the
// teacher's recvLoop documents for ClientTransport.
type Receiver struct {
	c *Connection
}

// ReceiveOne is Connection.ReceiveOne. Unlike Send, there is no lock:
// spec.md §5 and the teacher's own recvLoop both assume exactly one
// goroutine ever calls ReceiveOne on a given Connection.
func (r *Receiver) ReceiveOne(ctx context.Context) (packet.Any, error) {
	return r.c.ReceiveOne(ctx)
}

// Split divides a Connection into independently usable halves, adapted
// from the teacher's ClientTransport/Server split between a dedicated
// read loop (recvLoop, handleConn) and a shared write lock guarding
// concurrent writers (sending sync.Mutex, writeMu in server.go). CFB-8
// keeps per-direction cipher state, so splitting never creates a data
// race over shared mutable cipher state — encryption reads happen only
// from the Receiver's goroutine, writes only through the Sender's lock.
func (c *Connection) Split() (*Sender, *Receiver) {
	mu := &sync.Mutex{}
	return &Sender{c: c, mu: mu}, &Receiver{c: c}
}
