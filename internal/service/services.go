package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/crypto"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/metrics"
	"github.com/MKhiriev/go-notes-auth/internal/store"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds the service layer. The AuthService is decorated, outermost
// first, with metrics and input validation.
func NewServices(storages *store.Storages, cfg config.App, collector metrics.MetricsCollector, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.PasswordScheme)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	var authService AuthService = NewAuthService(storages.UserRepository, hasher, cfg.JWT, logger)
	authService = NewAuthValidationService().Wrap(authService)
	authService = NewAuthMetricsService(collector).Wrap(authService)

	logger.Debug().Str("password_scheme", hasher.Scheme()).Msg("services created")

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
