package conn

import (
	"context"
	"time"

	"mcwire/packet"
	"mcwire/protocol"
)

// TimeoutInterceptor enforces a maximum duration per ReceiveOne call,
// adapted from the teacher's TimeOutMiddleware (middleware/timeout_middleware.go):
// same race-the-handler-against-ctx.Done() shape, returning
// protocol.ErrTimeout in place of the teacher's string-error RPCMessage.
// As in the original, the underlying call is not cancelled when the
// timeout fires — a blocking Transport's Read can't be interrupted
// mid-syscall, matching spec.md §4.4's note that ctx only bounds the
// wait for a blocking binding, not the read itself.
func TimeoutInterceptor(timeout time.Duration) Interceptor {
	return func(next ReceiveFunc) ReceiveFunc {
		return func(ctx context.Context) (packet.Any, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			type result struct {
				pkt packet.Any
				err error
			}
			done := make(chan result, 1)
			go func() {
				pkt, err := next(ctx)
				done <- result{pkt, err}
			}()

			select {
			case r := <-done:
				return r.pkt, r.err
			case <-ctx.Done():
				return nil, protocol.ErrTimeout{}
			}
		}
	}
}
