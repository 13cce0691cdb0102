package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/utils"
	"github.com/MKhiriev/go-notes-auth/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The address may omit the scheme, "http://" is assumed then. Every request
// carries a fresh X-Trace-ID.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(traceIDHeader) == "" {
			req.SetHeader(traceIDHeader, uuid.NewString())
		}
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts to /api/user/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error) {
	return h.authenticate(ctx, "/api/user/register", req)
}

// Login posts to /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	return h.authenticate(ctx, "/api/user/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	h.logger.Debug().Str("path", path).Str("trace_id", resp.Request.Header.Get(traceIDHeader)).Msg("authenticated")

	h.SetToken(result.AccessToken)
	return result, nil
}

// Me gets /api/user/me with the stored token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.Identity, error) {
	token := h.Token()
	if token == "" {
		return models.Identity{}, ErrNotAuthenticated
	}

	var identity models.Identity
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&identity).
		Get("/api/user/me")
	if err != nil {
		return models.Identity{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return identity, nil
}

// Version gets /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
