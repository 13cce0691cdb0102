package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/crypto"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/store"
	"github.com/MKhiriev/go-notes-auth/internal/utils"
	"github.com/MKhiriev/go-notes-auth/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/MKhiriev/go-notes-auth/internal/service"

// authService is the concrete implementation of AuthService.
// It looks users up through a UserRepository, checks passwords with a
// PasswordHasher and signs tokens with the configured JWT settings.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	// hasher verifies stored passwords and encodes new ones.
	hasher crypto.PasswordHasher

	// settings is the signing configuration; read-only after construction.
	settings config.JWT

	tracer trace.Tracer

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, settings config.JWT, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		settings:       settings,
		tracer:         otel.Tracer(tracerName),
		logger:         logger,
	}
}

// Login authenticates an existing user and issues an access/refresh pair.
//
//  1. The account is looked up by exact email; a missing account yields
//     ErrNotFound, any other store failure is wrapped and returned.
//  2. The password is checked by the PasswordHasher; a mismatch yields
//     ErrInvalidCredentials.
//  3. Both tokens carry the claims {sub: user id, email: user email} and
//     differ only in lifetime.
//
// Signing failures are reported as ErrConfiguration.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	ctx, span := a.tracer.Start(ctx, "authService.Login")
	defer span.End()

	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("func", "*authService.Login").Msg("no account with requested email")
			return models.LoginResult{}, recordError(span, newNotFoundError(req.Email))
		}

		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.LoginResult{}, recordError(span, fmt.Errorf("user search by email failed: %w", err))
	}
	span.SetAttributes(attribute.Int64("user.id", user.UserID))

	ok, err := a.hasher.Verify(req.Password, user.Password)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Str("func", "*authService.Login").Msg("stored password cannot be verified")
	}
	if !ok {
		log.Debug().Int64("id", user.UserID).Str("func", "*authService.Login").Msg("wrong password")
		return models.LoginResult{}, recordError(span, newInvalidCredentialsError())
	}

	result, err := a.issueTokens(user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Str("func", "*authService.Login").Msg("token signing failed")
		return models.LoginResult{}, recordError(span, err)
	}

	log.Debug().Int64("id", user.UserID).Msg("user logged in")
	result.Message = "Welcome " + req.Email

	return result, nil
}

// Register creates a new account with the password encoded by the configured
// scheme and issues a token pair for it.
//
// Returns:
//   - ErrInvalidDataProvided if the password cannot be encoded.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
//   - ErrConfiguration if signing fails.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error) {
	ctx, span := a.tracer.Start(ctx, "authService.Register")
	defer span.End()

	log := logger.FromContext(ctx)

	encoded, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		if errors.Is(err, crypto.ErrEmptyPassword) {
			return models.LoginResult{}, recordError(span, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err))
		}
		return models.LoginResult{}, recordError(span, fmt.Errorf("password hashing failed: %w", err))
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Email: req.Email, Password: encoded})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.LoginResult{}, recordError(span, fmt.Errorf("user creation ended with error: %w", err))
	}
	span.SetAttributes(attribute.Int64("user.id", user.UserID))

	result, err := a.issueTokens(user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Str("func", "*authService.Register").Msg("token signing failed")
		return models.LoginResult{}, recordError(span, err)
	}

	log.Info().Int64("id", user.UserID).Msg("account created")
	result.Message = "Account created for " + user.Email

	return result, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer or audience, bad signature,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.settings)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// issueTokens signs the access and refresh tokens for user. Both carry the
// same claim set.
func (a *authService) issueTokens(user models.User) (models.LoginResult, error) {
	claims := models.NewUserClaimSet(user)

	accessToken, err := utils.SignJWTToken(claims, a.settings.AccessTokenTTL, a.settings)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: access token: %w", ErrConfiguration, err)
	}

	refreshToken, err := utils.SignJWTToken(claims, a.settings.RefreshTokenTTL, a.settings)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: refresh token: %w", ErrConfiguration, err)
	}

	return models.LoginResult{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
