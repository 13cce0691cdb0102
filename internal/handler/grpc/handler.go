package grpc

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/service"
	"github.com/MKhiriev/go-notes-auth/models"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// authorizationKey is the metadata key carrying "Bearer <token>" for Me.
const authorizationKey = "authorization"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// RegisterOn adds the auth service to s.
func (h *Handler) RegisterOn(s grpc.ServiceRegistrar) {
	s.RegisterService(&AuthServiceDesc, h)
}

// ServerOptions returns the interceptors every server hosting h must use.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging),
	}
}

func (h *Handler) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	result, err := h.services.AuthService.Login(ctx, *req)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}

	return &result, nil
}

func (h *Handler) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResult, error) {
	result, err := h.services.AuthService.Register(ctx, *req)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}

	logger.FromContext(ctx).Info().Str("email", req.Email).Msg("account created")
	return &result, nil
}

// Me returns the identity of the access token sent in the "authorization"
// metadata.
func (h *Handler) Me(ctx context.Context, _ *Empty) (*models.Identity, error) {
	tokenString, ok := bearerTokenFromMetadata(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}

	identity := token.Identity()
	return &identity, nil
}

func (h *Handler) Version(ctx context.Context, _ *Empty) (*VersionResponse, error) {
	return &VersionResponse{Version: h.services.AppInfoService.GetAppVersion(ctx)}, nil
}

func bearerTokenFromMetadata(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(authorizationKey)
	if len(values) == 0 {
		return "", false
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(values[0]), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
