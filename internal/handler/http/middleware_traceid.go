package http

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	traceIDHeader    = "X-Trace-ID"
	maxTraceIDLength = 128
)

// withTraceID attaches a request-scoped logger carrying trace_id to the
// context and echoes the id back in the X-Trace-ID response header. A client
// supplied id is reused unless it is too long or not printable ASCII.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if !isValidTraceID(traceID) {
			traceID = uuid.NewString()
		}

		r = r.WithContext(h.logger.WithTraceID(ctx, traceID))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func isValidTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(traceID); i++ {
		if traceID[i] < 0x21 || traceID[i] > 0x7e {
			return false
		}
	}
	return true
}
