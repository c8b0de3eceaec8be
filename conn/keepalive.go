package conn

import (
	"context"
	"time"

	"mcwire/packet"
)

// KeepAliveConfig parameterizes RunKeepAlive over a version's concrete
// keep-alive packet types, since those differ per protocol version and
// phase (versions/v765.PlayKeepAlive vs. versions/v765.ConfigurationKeepAlive)
// and conn must not import a specific versions/vNNN package to avoid
// hard-wiring this facade to one version.
type KeepAliveConfig struct {
	Interval time.Duration
	// NewProbe builds the outbound keep-alive packet carrying nonce.
	NewProbe func(nonce int64) packet.Outbound
	// IsEcho recognizes a decoded packet as a keep-alive echo and
	// reports the nonce it carries.
	IsEcho func(pkt packet.Any) (nonce int64, ok bool)
}

// RunKeepAlive sends a probe every Interval and blocks until ctx is
// done or the connection errors, adapted from the teacher's
// heartbeatLoop (transport/client_transport.go): same ticker-driven
// send loop, generalized from a fixed no-body heartbeat frame to a
// nonce the caller can correlate against the peer's echo. Unlike the
// teacher's version, this only sends — matching echoes arrive through
// the connection's own ReceiveOne loop and are the caller's concern to
// recognize via IsEcho, since a Connection has one reader and
// RunKeepAlive must not compete with it for frames.
func RunKeepAlive(ctx context.Context, sender *Sender, cfg KeepAliveConfig) error {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()
	var nonce int64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			nonce++
			if err := sender.Send(cfg.NewProbe(nonce)); err != nil {
				return err
			}
		}
	}
}
