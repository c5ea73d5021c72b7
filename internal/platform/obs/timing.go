package obs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID tags ctx with a fresh request id and returns both.
func WithRequestID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, RequestIDKey, id), id
}

// RequestID returns the id stored by WithRequestID, or "-".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return id
	}
	return "-"
}

// Time logs the duration of an operation and its error, if any.
//
//	defer obs.Time(ctx, "api.WeatherByCity")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
