package service

import (
	"context"

	"github.com/MKhiriev/go-notes-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService authenticates users and issues signed tokens.
type AuthService interface {
	// Login verifies the credentials and returns an access/refresh token pair.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// Register creates an account and returns a token pair for it.
	Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error)

	// ParseToken verifies a token previously issued by this service.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build and runtime information about the application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
