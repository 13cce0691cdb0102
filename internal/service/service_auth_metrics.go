package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-notes-auth/internal/metrics"
	"github.com/MKhiriev/go-notes-auth/internal/store"
	"github.com/MKhiriev/go-notes-auth/models"
)

// AuthMetricsService records login and registration outcomes for the
// wrapped AuthService.
type AuthMetricsService struct {
	inner     AuthService
	collector metrics.MetricsCollector
	now       func() time.Time
}

func NewAuthMetricsService(collector metrics.MetricsCollector) AuthServiceWrapper {
	return &AuthMetricsService{
		collector: collector,
		now:       time.Now,
	}
}

func (m *AuthMetricsService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	start := m.now()
	result, err := m.inner.Login(ctx, req)
	m.collector.RecordLogin(Outcome(err), m.now().Sub(start))

	return result, err
}

func (m *AuthMetricsService) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error) {
	result, err := m.inner.Register(ctx, req)
	m.collector.RecordRegistration(Outcome(err))

	return result, err
}

func (m *AuthMetricsService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.inner.ParseToken(ctx, tokenString)
}

func (m *AuthMetricsService) Wrap(wrapped AuthService) AuthService {
	m.inner = wrapped
	return m
}

// Outcome maps an AuthService error to a metrics outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return metrics.OutcomeInvalidCredentials
	case errors.Is(err, ErrInvalidDataProvided):
		return metrics.OutcomeInvalidData
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}
