package conn

import (
	"context"

	"mcwire/packet"
)

// ReceiveFunc is the function signature of a packet receive step — the
// connection-layer counterpart of the teacher's middleware.HandlerFunc
// (middleware/middleware.go), re-typed to packet.Any since there's no
// RPCMessage envelope here.
type ReceiveFunc func(ctx context.Context) (packet.Any, error)

// Interceptor wraps a ReceiveFunc the same way the teacher's
// middleware.Middleware wraps a HandlerFunc: pre-process, call next,
// post-process, or short-circuit by not calling next at all.
type Interceptor func(next ReceiveFunc) ReceiveFunc

// ChainInterceptors composes interceptors in onion-model order —
// ChainInterceptors(A, B, C)(handler) runs A before B before C before
// handler on the way in, and the reverse on the way out — grounded on
// the teacher's middleware.Chain, generalized from
// message.RPCMessage to packet.Any. Server.Use builds the chain a
// Connection installs via SetReceiveInterceptor.
func ChainInterceptors(interceptors ...Interceptor) Interceptor {
	return func(next ReceiveFunc) ReceiveFunc {
		for i := len(interceptors) - 1; i >= 0; i-- {
			next = interceptors[i](next)
		}
		return next
	}
}
