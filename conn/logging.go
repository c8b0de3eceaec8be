package conn

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mcwire/packet"
)

// LoggingInterceptor records how long each ReceiveOne call took and
// whether it errored, adapted from the teacher's LoggingMiddleware
// (middleware/logging_middleware.go) — same before/after timing shape,
// re-pointed at a decoded packet.Any instead of an *message.RPCMessage
// and using the structured go.uber.org/zap logger (promoted here from
// the teacher's transitive dependency to a direct one) in place of the
// teacher's plain log.Printf, matching how the rest of this module's
// ambient logging is done.
func LoggingInterceptor(log *zap.Logger) Interceptor {
	return func(next ReceiveFunc) ReceiveFunc {
		return func(ctx context.Context) (packet.Any, error) {
			start := time.Now()
			pkt, err := next(ctx)
			fields := []zap.Field{zap.Duration("duration", time.Since(start))}
			if u, ok := pkt.(packet.Unknown); ok {
				fields = append(fields, zap.Int32("packet_id", u.ID), zap.Bool("known", false))
			}
			if err != nil {
				log.Warn("receive_one failed", append(fields, zap.Error(err))...)
			} else {
				log.Debug("receive_one", fields...)
			}
			return pkt, err
		}
	}
}
