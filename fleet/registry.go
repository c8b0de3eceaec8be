// Package fleet tracks a set of known Minecraft servers for cmd/mcwatch:
// registration, discovery, and change notification, adapted from the
// teacher's registry package (registry/registry.go,
// registry/etcd_registry.go) with ServiceInstance's RPC-cluster fields
// replaced by per-server status fields mcwatch actually republishes
// (latency, MOTD, last-seen). Unrelated to protocol.Catalog despite the
// "registry" name the teacher used for its own package.
package fleet

import "time"

// ServerInfo describes one tracked Minecraft server and the last status
// mcwatch observed for it.
type ServerInfo struct {
	Addr      string    // "host:port"
	Weight    int       // for Balancer.Pick; unused servers default to 1
	Version   string    // free-form label, e.g. "1.20.4"
	MOTD      string    // last StatusResponse JSON's description, opaque
	LatencyMS int64     // round-trip time of the last successful ping
	LastSeen  time.Time // when the last successful poll completed
}

// Registry is the interface for tracking and discovering fleet members.
// Implementations include InMemoryRegistry (default, no external
// dependency) and EtcdRegistry (etcd.go, shared across multiple
// mcwatch processes).
type Registry interface {
	// Register adds or replaces a server's entry under fleetName.
	Register(fleetName string, info ServerInfo) error

	// Deregister removes a server's entry.
	Deregister(fleetName string, addr string) error

	// Discover returns every currently registered server for fleetName.
	Discover(fleetName string) ([]ServerInfo, error)

	// Watch returns a channel emitting the full updated server list for
	// fleetName whenever it changes. Implementations that can't observe
	// changes server-side return a channel that is never closed or
	// written to.
	Watch(fleetName string) <-chan []ServerInfo
}
