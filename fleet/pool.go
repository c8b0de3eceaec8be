// ConnPool is a borrow/return TCP connection pool, adapted from the
// teacher's transport/pool.go. cmd/mcwatch uses one pool per fleet
// member sized to 1: a status poll is exclusive-use (request, wait for
// the paired response, done) rather than multiplexed like the teacher's
// ClientTransport, so borrow/return fits where the teacher's own
// comment says it would: "useful when connections are used exclusively
// ... rather than multiplexed."
package fleet

import (
	"fmt"
	"net"
	"sync"
)

// ConnPool manages reusable TCP connections to a single address.
type ConnPool struct {
	mu       sync.Mutex
	conns    chan *PoolConn
	addr     string
	maxConns int
	curConns int
	factory  func() (net.Conn, error)
}

// PoolConn wraps a net.Conn with pool metadata.
type PoolConn struct {
	net.Conn
	pool     *ConnPool
	unusable bool
}

// NewConnPool creates a pool that lazily dials up to maxConns
// connections to addr via factory.
func NewConnPool(addr string, maxConns int, factory func() (net.Conn, error)) *ConnPool {
	return &ConnPool{
		conns:    make(chan *PoolConn, maxConns),
		addr:     addr,
		maxConns: maxConns,
		factory:  factory,
	}
}

// Get borrows a connection, dialing a new one if the pool has room and
// none are idle, else blocking for one to be returned.
func (p *ConnPool) Get() (*PoolConn, error) {
	select {
	case conn := <-p.conns:
		if conn.unusable {
			return p.createNew()
		}
		return conn, nil
	default:
		if p.curConns < p.maxConns {
			return p.createNew()
		}
		conn := <-p.conns
		return conn, nil
	}
}

// Put returns conn to the pool, or closes it if it was marked unusable
// (e.g. after a read/write error during the poll).
func (p *ConnPool) Put(conn *PoolConn) {
	if conn.unusable {
		conn.Close()
		p.mu.Lock()
		p.curConns--
		p.mu.Unlock()
		return
	}
	p.conns <- conn
}

// MarkUnusable flags conn so the next Put discards it instead of
// returning it to circulation.
func (p *PoolConn) MarkUnusable() { p.unusable = true }

// Close shuts the pool down, closing every idle connection.
func (p *ConnPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	close(p.conns)
	for conn := range p.conns {
		conn.Close()
		p.curConns--
	}
	return nil
}

func (p *ConnPool) createNew() (*PoolConn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.curConns >= p.maxConns {
		return nil, fmt.Errorf("fleet: connection pool exhausted for %s", p.addr)
	}

	nc, err := p.factory()
	if err != nil {
		return nil, err
	}

	p.curConns++
	return &PoolConn{Conn: nc, pool: p}, nil
}
