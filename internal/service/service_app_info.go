package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
)

type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService returns the service behind GET /api/version/.
// A blank version is rejected so the endpoint never answers with an empty body.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
