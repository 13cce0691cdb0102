// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// notes-auth application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing configuration,
	// password scheme and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, TLS and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings used by the command-line client to reach
	// the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Tracing selects where OpenTelemetry spans are exported.
	Tracing Tracing `envPrefix:"TRACING_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// JWT is the signing configuration shared by every token issued or
	// verified by the process.
	JWT JWT

	// PasswordScheme selects how stored passwords are produced and verified:
	// "argon2id" (default), "bcrypt" or "plain".
	// Env: APP_PASSWORD_SCHEME
	PasswordScheme string `env:"PASSWORD_SCHEME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// JWT is the signing configuration. It is loaded once at startup and is
// read-only afterwards.
type JWT struct {
	// Issuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	Issuer string `env:"TOKEN_ISSUER"`

	// Audience is the "aud" claim embedded in every issued token.
	// Env: APP_TOKEN_AUDIENCE
	Audience string `env:"TOKEN_AUDIENCE"`

	// SigningKey is the shared HMAC secret used to sign and verify tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	SigningKey string `env:"TOKEN_SIGN_KEY"`

	// AccessTokenTTL is the lifetime of access tokens (e.g. "15m").
	// Env: APP_ACCESS_TOKEN_TTL
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL"`

	// RefreshTokenTTL is the lifetime of refresh tokens (e.g. "24h").
	// Env: APP_REFRESH_TOKEN_TTL
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL"`

	// ValidateIssuer enables the "iss" check when verifying tokens.
	// Env: APP_VALIDATE_ISSUER
	ValidateIssuer bool `env:"VALIDATE_ISSUER"`

	// ValidateAudience enables the "aud" check when verifying tokens.
	// Env: APP_VALIDATE_AUDIENCE
	ValidateAudience bool `env:"VALIDATE_AUDIENCE"`

	// ValidateLifetime enables the "exp" check when verifying tokens.
	// Env: APP_VALIDATE_LIFETIME
	ValidateLifetime bool `env:"VALIDATE_LIFETIME"`

	// RequireHTTPSMetadata requires the HTTP server to be started with TLS.
	// Env: APP_REQUIRE_HTTPS_METADATA
	RequireHTTPSMetadata bool `env:"REQUIRE_HTTPS_METADATA"`

	// ValidateIssuerSigningKey requires a signing key of at least
	// [MinSigningKeyLength] bytes at startup. Signatures are always verified.
	// Env: APP_VALIDATE_SIGNING_KEY
	ValidateIssuerSigningKey bool `env:"VALIDATE_SIGNING_KEY"`

	// SaveToken makes the auth middleware keep the raw bearer token in the
	// request context after successful verification.
	// Env: APP_SAVE_TOKEN
	SaveToken bool `env:"SAVE_TOKEN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	// Env: SERVER_TLS_CERT_FILE, SERVER_TLS_KEY_FILE
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`

	// RateLimitRPS is the number of requests per second a single client IP
	// may send to the /api/user routes. Zero disables limiting.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the token bucket size for RateLimitRPS.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// TLSEnabled reports whether both TLS files are configured.
func (s Server) TLSEnabled() bool {
	return s.TLSCertFile != "" && s.TLSKeyFile != ""
}

// DB holds connection settings for the credential store.
type DB struct {
	// DSN selects and configures the backend:
	//   - "postgres://..." or "postgresql://...": PostgreSQL via pgx;
	//   - "file:..." or a path ending in ".db": SQLite;
	//   - empty: in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings the command-line client uses to reach the server.
type Adapter struct {
	// HTTPAddress is the server address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Span exporters accepted by Tracing.Exporter.
const (
	TracingExporterNone   = "none"
	TracingExporterOTLP   = "otlp"
	TracingExporterStdout = "stdout"
)

// Tracing configures the OpenTelemetry tracer provider of the server.
type Tracing struct {
	// Exporter is "none" (default), "otlp" or "stdout".
	// Env: TRACING_EXPORTER
	Exporter string `env:"EXPORTER"`

	// Endpoint is the OTLP/HTTP collector URL, e.g.
	// "http://localhost:4318". Required for the otlp exporter.
	// Env: TRACING_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// SampleRatio is the fraction of new traces recorded, in (0, 1].
	// Env: TRACING_SAMPLE_RATIO
	SampleRatio float64 `env:"SAMPLE_RATIO"`
}

// Default values applied before any source is merged.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 24 * time.Hour
	DefaultPasswordScheme  = "argon2id"
	DefaultRequestTimeout  = 30 * time.Second
)

// MinSigningKeyLength is the shortest signing key accepted when
// ValidateIssuerSigningKey is enabled (256 bits, the HS256 block size).
const MinSigningKeyLength = 32

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are filled in for TTLs, password scheme and request timeout when
// no source sets them.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// defaults returns the configuration layer merged last; mergo only fills
// fields that are still zero.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			JWT: JWT{
				AccessTokenTTL:  DefaultAccessTokenTTL,
				RefreshTokenTTL: DefaultRefreshTokenTTL,
			},
			PasswordScheme: DefaultPasswordScheme,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Tracing: Tracing{
			Exporter:    TracingExporterNone,
			SampleRatio: 1,
		},
	}
}
