package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/service"
	"github.com/MKhiriev/go-notes-auth/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError converts a service error into a gRPC status. Messages of
// internal failures are not sent to the client.
func statusFromError(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)

	var authErr *service.AuthError
	switch {
	case errors.As(err, &authErr):
		return status.Error(codes.Unauthenticated, authErr.Message)
	case errors.Is(err, service.ErrInvalidDataProvided):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return status.Error(codes.Unauthenticated, service.ErrTokenIsExpiredOrInvalid.Error())
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return status.Error(codes.AlreadyExists, store.ErrEmailAlreadyExists.Error())
	case errors.Is(err, store.ErrStorageUnavailable):
		log.Err(err).Msg("storage unavailable")
		return status.Error(codes.Unavailable, "storage unavailable")
	default:
		log.Err(err).Msg("internal error")
		return status.Error(codes.Internal, "internal error")
	}
}
