package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/metrics"
	"github.com/MKhiriev/go-notes-auth/internal/service"
	"github.com/MKhiriev/go-notes-auth/models"
)

// fakeAuthService implements service.AuthService. Unset functions panic so a
// test fails loudly when an unexpected method is reached.
type fakeAuthService struct {
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	registerFn   func(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// recordingCollector counts the calls the transport layer makes.
type recordingCollector struct {
	metrics.Nop

	mu          sync.Mutex
	statuses    []int
	rateLimited int
}

func (c *recordingCollector) RecordHTTPStatus(statusCode int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses = append(c.statuses, statusCode)
}

func (c *recordingCollector) RecordRateLimited() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rateLimited++
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Server: config.Server{RequestTimeout: config.DefaultRequestTimeout},
	}
}

func newTestHandler(auth service.AuthService) *Handler {
	return NewHandler(&service.Services{
		AuthService:    auth,
		AppInfoService: &fakeAppInfoService{version: "1.0.0"},
	}, testConfig(), nil, nil, logger.Nop())
}

// withNopLogger puts a nop logger into the request context.
func withNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
