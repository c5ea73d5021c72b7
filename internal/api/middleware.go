package api

import (
	"log"
	"net/http"
	"time"

	"city-explorer/internal/platform/obs"
)

// statusWriter captures the final status code and number of bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// loggingMiddleware tags each request with an id and logs status, size and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx, reqID := obs.WithRequestID(r.Context())
		w.Header().Set("X-Request-ID", reqID)

		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r.WithContext(ctx))

		log.Printf(
			"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			reqID, r.Method, r.URL.RequestURI(), sw.status, sw.bytes, time.Since(start).Milliseconds(),
		)
	})
}
