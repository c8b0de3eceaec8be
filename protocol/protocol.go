// Package protocol implements the connection state machine: the fixed
// phase DAG, peer roles, and the per-(version, phase, direction) packet
// catalog. Where the teacher's own protocol package (protocol/protocol.go)
// was a fixed 14-byte header format, this one holds none of the framing —
// that's package frame now — and is instead the state-machine and
// dispatch-table concern the teacher split across server/service.go's
// reflection-based method lookup and registry/registry.go's service
// naming, both reworked here as a closed, statically declared table.
package protocol

import "fmt"

// Phase is a runtime marker for the connection's current protocol
// state. Go has no phantom types, so illegal transitions are caught at
// call time by Transition rather than at compile time.
type Phase int

const (
	Handshaking Phase = iota
	Status
	Login
	Configuration
	Play
)

func (p Phase) String() string {
	switch p {
	case Handshaking:
		return "Handshaking"
	case Status:
		return "Status"
	case Login:
		return "Login"
	case Configuration:
		return "Configuration"
	case Play:
		return "Play"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Role identifies which side of a connection a process is playing.
// Packet direction (c2s/s2c) is expressed relative to Role: a
// RoleServer sends what a client receives, and vice versa.
type Role int

const (
	RoleServer Role = iota
	RoleClient
)

func (r Role) String() string {
	if r == RoleServer {
		return "server"
	}
	return "client"
}

// transitions is the fixed phase DAG: Handshaking forks to Status or
// Login depending on the handshake's declared next state; Login always
// proceeds to Configuration; Configuration always proceeds to Play.
// Status and Play have no successor — a Status connection closes after
// the ping/pong exchange, and Play is terminal until the socket closes.
var transitions = map[Phase][]Phase{
	Handshaking:   {Status, Login},
	Login:         {Configuration},
	Configuration: {Play},
}

// ErrIllegalTransition reports a phase transition not present in the DAG.
type ErrIllegalTransition struct{ From, To Phase }

func (e ErrIllegalTransition) Error() string {
	return fmt.Sprintf("protocol: illegal transition %s -> %s", e.From, e.To)
}

// Transition validates that to is a legal successor of from.
func Transition(from, to Phase) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return ErrIllegalTransition{From: from, To: to}
}

// ErrIllegalSend reports an attempt to send a packet not registered for
// the sender's current (phase, role).
type ErrIllegalSend struct {
	Phase Phase
	Role  Role
	ID    int32
}

func (e ErrIllegalSend) Error() string {
	return fmt.Sprintf("protocol: packet id %d is not valid to send in phase %s as %s", e.ID, e.Phase, e.Role)
}

// ErrUnexpectedPacket reports ReceiveExpected decoding a packet other
// than the one the caller asked for.
type ErrUnexpectedPacket struct{ Expected, Got int32 }

func (e ErrUnexpectedPacket) Error() string {
	return fmt.Sprintf("protocol: expected packet id %d, got %d", e.Expected, e.Got)
}

// ErrStreamShutdown reports the peer closing the connection cleanly
// mid-read.
type ErrStreamShutdown struct{}

func (ErrStreamShutdown) Error() string { return "protocol: stream shutdown" }

// ErrUnexpectedDisconnect reports the transport reporting a disconnect
// in a way that wasn't a clean shutdown (reset, aborted, timed-out
// read) — grounded on original_source/src/error.rs's io.Error
// classification into UnexpectedDisconect vs OtherIo.
type ErrUnexpectedDisconnect struct{ Cause error }

func (e ErrUnexpectedDisconnect) Error() string {
	return fmt.Sprintf("protocol: unexpected disconnect: %v", e.Cause)
}
func (e ErrUnexpectedDisconnect) Unwrap() error { return e.Cause }

// ErrOtherTransport wraps a transport-level error that isn't one of the
// disconnect classifications above.
type ErrOtherTransport struct{ Cause error }

func (e ErrOtherTransport) Error() string {
	return fmt.Sprintf("protocol: transport error: %v", e.Cause)
}
func (e ErrOtherTransport) Unwrap() error { return e.Cause }

// ErrTimeout reports a ReceiveOne deadline (via context.Context) expiring
// before a full frame arrived.
type ErrTimeout struct{}

func (ErrTimeout) Error() string { return "protocol: receive timed out" }

// ErrRateLimited is returned by a connection whose inbound frame rate
// limiter (frame.RateLimitedEngine) rejected the next frame.
type ErrRateLimited struct{}

func (ErrRateLimited) Error() string { return "protocol: rate limited" }
