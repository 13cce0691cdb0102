package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const traceIDKey = "x-trace-id"

// withTraceID attaches a request-scoped logger carrying trace_id, taken from
// the x-trace-id metadata or generated, and returns the id in the header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	ctx = h.logger.WithTraceID(ctx, traceID)

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return handler(ctx, req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
