package fleet

import "sync"

// InMemoryRegistry is a process-local Registry, adapted from the
// teacher's test-only MockRegistry (client/client_test.go) promoted
// into a real, always-available implementation: cmd/mcwatch defaults to
// this when no etcd endpoints are configured.
type InMemoryRegistry struct {
	mu      sync.Mutex
	servers map[string][]ServerInfo
}

// NewInMemoryRegistry returns an empty registry.
func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{servers: make(map[string][]ServerInfo)}
}

// Register adds info, replacing any existing entry with the same Addr.
func (r *InMemoryRegistry) Register(fleetName string, info ServerInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.servers[fleetName]
	for i, existing := range list {
		if existing.Addr == info.Addr {
			list[i] = info
			return nil
		}
	}
	r.servers[fleetName] = append(list, info)
	return nil
}

func (r *InMemoryRegistry) Deregister(fleetName string, addr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.servers[fleetName]
	for i, existing := range list {
		if existing.Addr == addr {
			r.servers[fleetName] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryRegistry) Discover(fleetName string) ([]ServerInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ServerInfo, len(r.servers[fleetName]))
	copy(out, r.servers[fleetName])
	return out, nil
}

// Watch returns a channel that is never written to: InMemoryRegistry has
// no subscriber mechanism, mirroring the teacher's MockRegistry.Watch
// (client/client_test.go), which returns nil for the same reason.
func (r *InMemoryRegistry) Watch(fleetName string) <-chan []ServerInfo {
	return nil
}
