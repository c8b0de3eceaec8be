// Package statusping runs the Status-phase handshake-ping exchange
// spec.md §6 describes, shared by cmd/mcstatus (a single query) and
// cmd/mcwatch (the same exchange run against a fleet on a timer) so the
// dial/handshake/ping sequence lives in exactly one place.
package statusping

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"mcwire/conn"
	"mcwire/protocol"
	"mcwire/versions/common"
)

// Result is what a successful poll reports back to the caller.
type Result struct {
	MOTD            string
	PlayersOnline   int
	PlayersMax      int
	VersionName     string
	VersionProtocol int32
	RTT             time.Duration
}

// Poll dials addr, runs Handshake→Status→StatusRequest→Ping, and
// returns the parsed response plus round-trip latency. version is the
// protocol version announced in the handshake; a catalog for it must
// already be registered (import the relevant versions/vNNN package for
// its init side effect). The dialed connection is closed before Poll
// returns; a caller that wants to reuse or pool connections across
// calls should use PollConn instead.
func Poll(ctx context.Context, addr string, version int32, timeout time.Duration) (Result, error) {
	dialer := net.Dialer{Timeout: timeout}
	nc, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		var zero Result
		return zero, fmt.Errorf("dial %s: %w", addr, err)
	}
	defer nc.Close()

	return PollConn(ctx, nc, addr, version, timeout)
}

// PollConn runs the same Handshake→Status→StatusRequest→Ping exchange
// as Poll over an already-established nc, leaving nc open (and its
// lifecycle up to the caller) when it returns — the shape a connection
// pool needs, since a pooled *fleet.PoolConn must be returned to its
// pool rather than closed outright. addr is used only to fill the
// handshake's server_address/server_port fields, not to dial.
func PollConn(ctx context.Context, nc net.Conn, addr string, version int32, timeout time.Duration) (Result, error) {
	var zero Result

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return zero, err
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return zero, fmt.Errorf("invalid port %q: %w", portStr, err)
	}

	session, err := conn.NewBlockingNetConn(nc, protocol.RoleClient, version)
	if err != nil {
		return zero, err
	}

	if err := session.Send(&common.Handshake{
		ProtocolVersion: version,
		ServerAddress:   host,
		ServerPort:      uint16(port),
		NextState:       int32(common.NextStateStatus),
	}); err != nil {
		return zero, fmt.Errorf("send handshake: %w", err)
	}
	if err := session.Transition(protocol.Status); err != nil {
		return zero, err
	}

	if err := session.Send(&common.StatusRequest{}); err != nil {
		return zero, fmt.Errorf("send status request: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	statusPkt, err := session.ReceiveOne(ctx)
	if err != nil {
		return zero, fmt.Errorf("receive status response: %w", err)
	}
	status, ok := statusPkt.(*common.StatusResponse)
	if !ok {
		return zero, fmt.Errorf("expected StatusResponse, got %T", statusPkt)
	}
	doc, err := parseStatusJSON(status.JSON)
	if err != nil {
		doc = statusDocument{}
	}

	const pingPayload = int64(1)
	start := time.Now()
	if err := session.Send(&common.PingRequest{Payload: pingPayload}); err != nil {
		return zero, fmt.Errorf("send ping: %w", err)
	}
	pongPkt, err := session.ReceiveOne(ctx)
	if err != nil {
		return zero, fmt.Errorf("receive pong: %w", err)
	}
	rtt := time.Since(start)
	pong, ok := pongPkt.(*common.PongResponse)
	if !ok {
		return zero, fmt.Errorf("expected PongResponse, got %T", pongPkt)
	}
	if pong.Payload != pingPayload {
		return zero, fmt.Errorf("ping payload mismatch: sent %d, got %d", pingPayload, pong.Payload)
	}

	return Result{
		MOTD:            doc.motdText(),
		PlayersOnline:   doc.Players.Online,
		PlayersMax:      doc.Players.Max,
		VersionName:     doc.Version.Name,
		VersionProtocol: doc.Version.Protocol,
		RTT:             rtt,
	}, nil
}
