// Command mcwatch polls a fleet of Minecraft servers on an interval,
// republishing latency and MOTD back into a fleet.Registry — the
// expansion's "watch many servers" CLI (SPEC_FULL.md §6), generalizing
// mcstatus's single-shot query the way the teacher's Client
// (client/client.go) generalizes a single RPC call into
// discover→balance→transport→call: mcwatch polls every discovered
// member each tick, then uses the --strategy balancer only to name the
// member a connecting caller would prefer.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"mcwire/fleet"
	"mcwire/internal/statusping"
	_ "mcwire/versions/v47"
	_ "mcwire/versions/v765"
)

func main() {
	app := &cli.App{
		Name:  "mcwatch",
		Usage: "poll a fleet of Minecraft servers and republish latency/MOTD into a registry",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "fleet", Value: "default", Usage: "fleet name servers are grouped under"},
			&cli.StringSliceFlag{Name: "server", Usage: "host:port to watch; repeatable. Ignored if --etcd is set and the fleet already has members"},
			&cli.StringSliceFlag{Name: "etcd", Usage: "etcd endpoints for a shared fleet registry; omit for an in-memory, single-process registry"},
			&cli.Int64Flag{Name: "protocol", Value: 765, Usage: "protocol version to announce in the handshake"},
			&cli.DurationFlag{Name: "interval", Value: 30 * time.Second, Usage: "poll interval"},
			&cli.DurationFlag{Name: "timeout", Value: 5 * time.Second, Usage: "per-server dial/poll timeout"},
			&cli.StringFlag{Name: "strategy", Value: "round-robin", Usage: "how to pick the preferred server each tick: round-robin, weighted, or consistent-hash"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "mcwatch:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	fleetName := c.String("fleet")
	version := int32(c.Int64("protocol"))
	interval := c.Duration("interval")
	timeout := c.Duration("timeout")

	log := newLogger()
	defer log.Sync()

	registry, err := buildRegistry(c.StringSlice("etcd"))
	if err != nil {
		return err
	}

	seeds := c.StringSlice("server")
	if len(c.StringSlice("etcd")) > 0 {
		if existing, err := registry.Discover(fleetName); err == nil && len(existing) > 0 {
			seeds = nil
		}
	}
	for _, addr := range seeds {
		if err := registry.Register(fleetName, fleet.ServerInfo{Addr: addr, Weight: 1}); err != nil {
			return fmt.Errorf("register %s: %w", addr, err)
		}
	}

	balancer, err := buildBalancer(c.String("strategy"))
	if err != nil {
		return err
	}
	pools := newAddrPools()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	pollAll(ctx, registry, fleetName, version, timeout, balancer, pools, log)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			pollAll(ctx, registry, fleetName, version, timeout, balancer, pools, log)
		}
	}
}

// pollAll polls every server currently discovered under fleetName,
// republishing fresh latency/MOTD into registry, then — since a caller
// connecting to this fleet needs to pick one of possibly several
// members rather than all of them — uses balancer to name the server
// that connection should prefer this tick.
func pollAll(ctx context.Context, registry fleet.Registry, fleetName string, version int32, timeout time.Duration, balancer fleet.Balancer, pools *addrPools, log *zap.Logger) {
	servers, err := registry.Discover(fleetName)
	if err != nil {
		log.Warn("discover failed", zap.Error(err))
		return
	}

	for _, s := range servers {
		pool := pools.get(s.Addr, timeout)
		pc, err := pool.Get()
		if err != nil {
			log.Warn("pool get failed", zap.String("addr", s.Addr), zap.Error(err))
			continue
		}

		result, err := statusping.PollConn(ctx, pc, s.Addr, version, timeout)
		if err != nil {
			pc.MarkUnusable()
			pool.Put(pc)
			log.Warn("poll failed", zap.String("addr", s.Addr), zap.Error(err))
			continue
		}
		// The status/ping exchange is the entire conversation this
		// protocol's server side expects per connection; it closes
		// right after, so the connection isn't fit to hand back.
		pc.MarkUnusable()
		pool.Put(pc)

		s.MOTD = result.MOTD
		s.LatencyMS = result.RTT.Milliseconds()
		s.Version = result.VersionName
		s.LastSeen = time.Now()
		if err := registry.Register(fleetName, s); err != nil {
			log.Warn("republish failed", zap.String("addr", s.Addr), zap.Error(err))
			continue
		}

		fmt.Printf("%-24s %6dms  %s\n", s.Addr, s.LatencyMS, s.MOTD)
	}

	fresh, err := registry.Discover(fleetName)
	if err != nil || len(fresh) == 0 {
		return
	}
	pick, err := balancer.Pick(fresh)
	if err != nil {
		log.Warn("balancer pick failed", zap.String("strategy", balancer.Name()), zap.Error(err))
		return
	}
	fmt.Printf("preferred (%s): %s\n", balancer.Name(), pick.Addr)
}

// addrPools lazily builds one fleet.ConnPool per server address, sized
// to 1 connection at a time: this protocol's server side closes the
// connection right after the status/ping exchange, so a pooled
// connection is marked unusable and redialed almost every tick rather
// than genuinely reused — but the pool still gives each address its
// own borrow/dial/close lifecycle and a concurrency ceiling, which is
// the exclusive-use pattern fleet.ConnPool exists for.
type addrPools struct {
	mu     sync.Mutex
	byAddr map[string]*fleet.ConnPool
}

func newAddrPools() *addrPools { return &addrPools{byAddr: make(map[string]*fleet.ConnPool)} }

func (p *addrPools) get(addr string, timeout time.Duration) *fleet.ConnPool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pool, ok := p.byAddr[addr]; ok {
		return pool
	}
	pool := fleet.NewConnPool(addr, 1, func() (net.Conn, error) {
		return net.DialTimeout("tcp", addr, timeout)
	})
	p.byAddr[addr] = pool
	return pool
}

// buildBalancer maps the --strategy flag onto a fleet.Balancer.
// ConsistentHashBalancer needs its ring populated per tick (fleet
// membership can change), so for that strategy pollAll's discovered
// list is added fresh each call rather than once here — handled by
// wrapping it in a balancer that rebuilds the ring on every Pick.
func buildBalancer(strategy string) (fleet.Balancer, error) {
	switch strategy {
	case "round-robin":
		return &fleet.RoundRobinBalancer{}, nil
	case "weighted":
		return &fleet.WeightedRandomBalancer{}, nil
	case "consistent-hash":
		return &consistentHashPerTick{}, nil
	default:
		return nil, fmt.Errorf("unknown --strategy %q (want round-robin, weighted, or consistent-hash)", strategy)
	}
}

// consistentHashPerTick adapts fleet.ConsistentHashBalancer's key-keyed
// Pick to fleet.Balancer's list-keyed Pick: it rebuilds the ring from
// the servers passed in (fleet membership changes between ticks) and
// hashes on the fleet's own server count as the key, so the same
// membership maps to the same server each tick. A change in the member
// count also changes the key, so the pick after such a change is not
// kept close to the previous one.
type consistentHashPerTick struct{}

func (consistentHashPerTick) Pick(servers []fleet.ServerInfo) (*fleet.ServerInfo, error) {
	ring := fleet.NewConsistentHashBalancer()
	for i := range servers {
		ring.Add(&servers[i])
	}
	return ring.Pick(fmt.Sprintf("mcwatch-tick-%d", len(servers)))
}

func (consistentHashPerTick) Name() string { return "ConsistentHash" }

func buildRegistry(etcdEndpoints []string) (fleet.Registry, error) {
	if len(etcdEndpoints) == 0 {
		return fleet.NewInMemoryRegistry(), nil
	}
	return fleet.NewEtcdRegistry(splitTrim(etcdEndpoints))
}

func splitTrim(endpoints []string) []string {
	out := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		if t := strings.TrimSpace(e); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func newLogger() *zap.Logger {
	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
