package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/mock"
	"github.com/MKhiriev/go-notes-auth/internal/service"
	"github.com/MKhiriev/go-notes-auth/internal/store"
	"github.com/MKhiriev/go-notes-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// startServer serves h over an in-memory listener and returns a client
// connection to it.
func startServer(t *testing.T, h *Handler) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.RegisterOn(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func newTestHandler(t *testing.T) (*Handler, *mock.MockAuthService, *mock.MockAppInfoService) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{AuthService: authSvc, AppInfoService: appInfo}, logger.Nop())
	return h, authSvc, appInfo
}

func TestLogin(t *testing.T) {
	h, authSvc, _ := newTestHandler(t)
	want := models.LoginResult{Message: "Welcome a@b.com", AccessToken: "a", RefreshToken: "r"}
	authSvc.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "a@b.com", Password: "p"}).
		Return(want, nil)

	conn := startServer(t, h)

	var got models.LoginResult
	var header metadata.MD
	err := conn.Invoke(context.Background(), LoginMethod,
		&models.LoginRequest{Email: "a@b.com", Password: "p"}, &got, grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NotEmpty(t, header.Get(traceIDKey))
}

func TestLogin_ErrorCodes(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    codes.Code
		wantMessage string
	}{
		{
			name:        "unknown email",
			err:         &service.AuthError{Kind: service.ErrNotFound, Message: `couldn't find account with "x@y.z" email`},
			wantCode:    codes.Unauthenticated,
			wantMessage: `couldn't find account with "x@y.z" email`,
		},
		{
			name:        "wrong password",
			err:         &service.AuthError{Kind: service.ErrInvalidCredentials, Message: "check your credentials"},
			wantCode:    codes.Unauthenticated,
			wantMessage: "check your credentials",
		},
		{
			name:        "invalid data",
			err:         fmt.Errorf("%w: email is empty", service.ErrInvalidDataProvided),
			wantCode:    codes.InvalidArgument,
			wantMessage: "invalid data provided: email is empty",
		},
		{
			name:        "storage unavailable",
			err:         fmt.Errorf("lookup: %w", store.ErrStorageUnavailable),
			wantCode:    codes.Unavailable,
			wantMessage: "storage unavailable",
		},
		{
			name:        "configuration",
			err:         fmt.Errorf("%w: signing key is empty", service.ErrConfiguration),
			wantCode:    codes.Internal,
			wantMessage: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authSvc, _ := newTestHandler(t)
			authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{}, tt.err)

			conn := startServer(t, h)

			var got models.LoginResult
			err := conn.Invoke(context.Background(), LoginMethod, &models.LoginRequest{Email: "x@y.z", Password: "p"}, &got)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMessage, st.Message())
		})
	}
}

func TestRegister_AlreadyExists(t *testing.T) {
	h, authSvc, _ := newTestHandler(t)
	authSvc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.LoginResult{}, fmt.Errorf("create: %w", store.ErrEmailAlreadyExists))

	conn := startServer(t, h)

	var got models.LoginResult
	err := conn.Invoke(context.Background(), RegisterMethod, &models.RegisterRequest{Email: "a@b.com", Password: "p"}, &got)

	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestMe(t *testing.T) {
	h, authSvc, _ := newTestHandler(t)
	authSvc.EXPECT().
		ParseToken(gomock.Any(), "good").
		Return(models.Token{UserID: 7, Claims: models.TokenClaims{Email: "a@b.com"}}, nil)
	authSvc.EXPECT().
		ParseToken(gomock.Any(), "bad").
		Return(models.Token{}, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, errors.New("token is expired")))

	conn := startServer(t, h)

	t.Run("valid token", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), authorizationKey, "Bearer good")
		var got models.Identity
		require.NoError(t, conn.Invoke(ctx, MeMethod, &Empty{}, &got))
		assert.Equal(t, models.Identity{UserID: 7, Email: "a@b.com"}, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), authorizationKey, "Bearer bad")
		var got models.Identity
		err := conn.Invoke(ctx, MeMethod, &Empty{}, &got)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("missing token", func(t *testing.T) {
		var got models.Identity
		err := conn.Invoke(context.Background(), MeMethod, &Empty{}, &got)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

func TestVersion(t *testing.T) {
	h, _, appInfo := newTestHandler(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	conn := startServer(t, h)

	var got VersionResponse
	require.NoError(t, conn.Invoke(context.Background(), VersionMethod, &Empty{}, &got))
	assert.Equal(t, "1.0.0", got.Version)
}

func TestBearerTokenFromMetadata(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
		wantOK bool
	}{
		{name: "bearer", values: []string{"Bearer abc"}, want: "abc", wantOK: true},
		{name: "lowercase", values: []string{"bearer abc"}, want: "abc", wantOK: true},
		{name: "basic", values: []string{"Basic abc"}},
		{name: "no token", values: []string{"Bearer "}},
		{name: "absent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := metadata.MD{}
			if tt.values != nil {
				md.Set(authorizationKey, tt.values...)
			}
			ctx := metadata.NewIncomingContext(context.Background(), md)

			got, ok := bearerTokenFromMetadata(ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	assert.Equal(t, "json", c.Name())

	data, err := c.Marshal(&models.LoginRequest{Email: "a@b.com", Password: "p"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.com","password":"p"}`, string(data))
}
