// EtcdRegistry is the etcd-backed Registry, adapted from the teacher's
// registry/etcd_registry.go: same lease+KeepAlive registration pattern
// and prefix-scan discovery, with ServiceInstance's RPC-oriented fields
// replaced by ServerInfo's polling-status fields and the key prefix
// renamed to this module's namespace.
//
//	Key:   /mcwire/fleet/{fleetName}/{Addr}
//	Value: JSON-encoded ServerInfo
package fleet

import (
	"context"
	"encoding/json"

	clientv3 "go.etcd.io/etcd/client/v3"
)

// EtcdRegistry implements Registry using etcd v3, for coordinating
// fleet membership across multiple mcwatch processes.
type EtcdRegistry struct {
	client *clientv3.Client
}

// NewEtcdRegistry dials the given etcd endpoints.
func NewEtcdRegistry(endpoints []string) (*EtcdRegistry, error) {
	c, err := clientv3.New(clientv3.Config{Endpoints: endpoints})
	if err != nil {
		return nil, err
	}
	return &EtcdRegistry{client: c}, nil
}

func keyFor(fleetName, addr string) string {
	return "/mcwire/fleet/" + fleetName + "/" + addr
}

// Register puts info under a TTL lease and starts renewing it in the
// background; the entry disappears on its own if this process dies
// without calling Deregister.
func (r *EtcdRegistry) Register(fleetName string, info ServerInfo) error {
	ctx := context.TODO()

	const ttlSeconds = 30
	lease, err := r.client.Grant(ctx, ttlSeconds)
	if err != nil {
		return err
	}

	val, err := json.Marshal(info)
	if err != nil {
		return err
	}

	if _, err := r.client.Put(ctx, keyFor(fleetName, info.Addr), string(val), clientv3.WithLease(lease.ID)); err != nil {
		return err
	}

	ch, err := r.client.KeepAlive(ctx, lease.ID)
	if err != nil {
		return err
	}
	go func() {
		for range ch {
		}
	}()
	return nil
}

// Deregister removes a server's entry immediately, ahead of its lease
// expiring.
func (r *EtcdRegistry) Deregister(fleetName string, addr string) error {
	_, err := r.client.Delete(context.TODO(), keyFor(fleetName, addr))
	return err
}

// Discover scans every key under fleetName's prefix.
func (r *EtcdRegistry) Discover(fleetName string) ([]ServerInfo, error) {
	ctx := context.TODO()
	prefix := "/mcwire/fleet/" + fleetName + "/"

	resp, err := r.client.Get(ctx, prefix, clientv3.WithPrefix())
	if err != nil {
		return nil, err
	}

	servers := make([]ServerInfo, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		var info ServerInfo
		if err := json.Unmarshal(kv.Value, &info); err != nil {
			continue
		}
		servers = append(servers, info)
	}
	return servers, nil
}

// Watch re-fetches the full list on every change under fleetName's
// prefix, rather than decoding individual etcd watch events — simpler,
// and the list is small enough that a full re-fetch is cheap.
func (r *EtcdRegistry) Watch(fleetName string) <-chan []ServerInfo {
	ctx := context.TODO()
	ch := make(chan []ServerInfo, 1)
	prefix := "/mcwire/fleet/" + fleetName + "/"

	go func() {
		watchChan := r.client.Watch(ctx, prefix, clientv3.WithPrefix())
		for range watchChan {
			servers, err := r.Discover(fleetName)
			if err != nil {
				continue
			}
			ch <- servers
		}
	}()

	return ch
}
