package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-auth/internal/validators"
	"github.com/MKhiriev/go-notes-auth/models"
)

// AuthValidationService rejects malformed credentials before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

// Login short-circuits requests without an email. They get the same
// not-found error the lookup would produce.
func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrEmptyEmail) {
			return models.LoginResult{}, newNotFoundError(req.Email)
		}
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
