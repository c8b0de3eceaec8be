// Package integration_test exercises the full stack —
// dial/accept → frame → protocol → packet catalog → fleet registry —
// together, the way the teacher's own test/integration_test.go and
// test/bench_test.go exercise client→registry→balancer→transport→server
// end to end. Kept as its own directory (like the teacher's test/)
// rather than folded into one of the package-level _test.go files,
// since it spans several packages by design; unlike the teacher's
// test/, every file here is a real external test package scoped to one
// concern (this one: the whole stack over a real TCP socket), not a
// catch-all "tests" directory.
package integration_test

import (
	"context"
	"net"
	"testing"
	"time"

	"mcwire/conn"
	"mcwire/fleet"
	"mcwire/internal/statusping"
	"mcwire/protocol"
	"mcwire/versions/common"
	_ "mcwire/versions/v765"
)

// serveStatusPing runs the server side of one Handshake→Status→Ping
// exchange, the same sequence TestFullIntegrationWithEtcd's Arith
// server ran for its RPC — here it's the protocol's own status
// handshake instead of a reflected method call, since that's the
// operation this module's server side actually performs.
func serveStatusPing(t *testing.T, motd string) conn.Handler {
	return func(c *conn.Connection) {
		hs, err := conn.ReceiveExpected[*common.Handshake](c, context.Background())
		if err != nil {
			t.Errorf("server: receive handshake: %v", err)
			return
		}
		if hs.NextState != int32(common.NextStateStatus) {
			t.Errorf("server: expected NextStateStatus, got %d", hs.NextState)
			return
		}
		if err := c.Transition(protocol.Status); err != nil {
			t.Errorf("server: transition: %v", err)
			return
		}
		if _, err := conn.ReceiveExpected[*common.StatusRequest](c, context.Background()); err != nil {
			t.Errorf("server: receive status request: %v", err)
			return
		}
		if err := c.Send(&common.StatusResponse{JSON: `{"description":"` + motd + `","players":{"max":20,"online":3},"version":{"name":"1.20.4","protocol":765}}`}); err != nil {
			t.Errorf("server: send status response: %v", err)
			return
		}
		ping, err := conn.ReceiveExpected[*common.PingRequest](c, context.Background())
		if err != nil {
			t.Errorf("server: receive ping: %v", err)
			return
		}
		if err := c.Send(&common.PongResponse{Payload: ping.Payload}); err != nil {
			t.Errorf("server: send pong: %v", err)
			return
		}
	}
}

func TestFullStackStatusPingOverTCP(t *testing.T) {
	srv := conn.NewServer(765)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	go srv.Serve("tcp", addr, serveStatusPing(t, "A full-stack test server"))
	defer srv.Shutdown(2 * time.Second)
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	result, err := statusping.Poll(ctx, addr, 765, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if result.MOTD != "A full-stack test server" {
		t.Fatalf("unexpected motd: %q", result.MOTD)
	}
	if result.PlayersOnline != 3 || result.PlayersMax != 20 {
		t.Fatalf("unexpected player counts: %+v", result)
	}
	if result.RTT <= 0 {
		t.Fatal("expected a positive RTT")
	}
}

func TestFleetPollingAcrossMultipleServers(t *testing.T) {
	const fleetName = "integration-fleet"
	registry := fleet.NewInMemoryRegistry()

	addrs := make([]string, 2)
	for i, motd := range []string{"server one", "server two"} {
		srv := conn.NewServer(765)
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatal(err)
		}
		addr := ln.Addr().String()
		ln.Close()
		addrs[i] = addr

		go srv.Serve("tcp", addr, serveStatusPing(t, motd))
		defer srv.Shutdown(2 * time.Second)

		if err := registry.Register(fleetName, fleet.ServerInfo{Addr: addr, Weight: 1}); err != nil {
			t.Fatal(err)
		}
	}
	time.Sleep(50 * time.Millisecond)

	servers, err := registry.Discover(fleetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 2 {
		t.Fatalf("expect 2 registered servers, got %d", len(servers))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	seenMOTDs := map[string]bool{}
	for _, s := range servers {
		result, err := statusping.Poll(ctx, s.Addr, 765, time.Second)
		if err != nil {
			t.Fatalf("poll %s: %v", s.Addr, err)
		}
		s.MOTD = result.MOTD
		s.LatencyMS = result.RTT.Milliseconds()
		seenMOTDs[result.MOTD] = true
		if err := registry.Register(fleetName, s); err != nil {
			t.Fatal(err)
		}
	}
	if !seenMOTDs["server one"] || !seenMOTDs["server two"] {
		t.Fatalf("expected to see both servers' MOTDs, got %v", seenMOTDs)
	}

	updated, err := registry.Discover(fleetName)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range updated {
		if s.LatencyMS < 0 {
			t.Fatalf("expected a recorded latency for %s, got %d", s.Addr, s.LatencyMS)
		}
	}
}
