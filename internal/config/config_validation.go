// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. A server that fails
// validation must not serve any login traffic.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.JWT.Validate(); err != nil {
		return err
	}

	switch cfg.App.PasswordScheme {
	case "argon2id", "bcrypt", "plain":
	default:
		return fmt.Errorf("%w: unknown password scheme %q", ErrInvalidAppConfigs, cfg.App.PasswordScheme)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no server address configured", ErrInvalidServerConfigs)
	}

	if (cfg.Server.TLSCertFile == "") != (cfg.Server.TLSKeyFile == "") {
		return fmt.Errorf("%w: both TLS certificate and key are required", ErrInvalidServerConfigs)
	}

	if cfg.App.JWT.RequireHTTPSMetadata && !cfg.Server.TLSEnabled() {
		return fmt.Errorf("%w: https is required but TLS is not configured", ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimitRPS < 0 || cfg.Server.RateLimitBurst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}

	return cfg.Tracing.validate()
}

func (t Tracing) validate() error {
	switch t.Exporter {
	case TracingExporterNone, TracingExporterStdout:
	case TracingExporterOTLP:
		if t.Endpoint == "" {
			return fmt.Errorf("%w: otlp exporter needs an endpoint", ErrInvalidTracingConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown exporter %q", ErrInvalidTracingConfigs, t.Exporter)
	}

	if t.SampleRatio <= 0 || t.SampleRatio > 1 {
		return fmt.Errorf("%w: sample ratio must be in (0, 1]", ErrInvalidTracingConfigs)
	}

	return nil
}

// Validate checks the signing configuration: key, issuer and audience must be
// present and both TTLs at least one second, with refresh tokens outliving
// access tokens.
// Errors wrap [ErrInvalidAuthConfigs].
func (j JWT) Validate() error {
	if strings.TrimSpace(j.SigningKey) == "" {
		return fmt.Errorf("%w: empty signing key", ErrInvalidAuthConfigs)
	}

	if j.ValidateIssuerSigningKey && len(j.SigningKey) < MinSigningKeyLength {
		return fmt.Errorf("%w: signing key must be at least %d bytes", ErrInvalidAuthConfigs, MinSigningKeyLength)
	}

	if j.Issuer == "" || j.Audience == "" {
		return fmt.Errorf("%w: issuer and audience are required", ErrInvalidAuthConfigs)
	}

	// exp is encoded in whole seconds
	if j.AccessTokenTTL < time.Second || j.RefreshTokenTTL < time.Second {
		return fmt.Errorf("%w: token lifetimes must be at least one second", ErrInvalidAuthConfigs)
	}

	if j.RefreshTokenTTL-j.AccessTokenTTL < time.Second {
		return fmt.Errorf("%w: refresh token lifetime must exceed access token lifetime by at least one second", ErrInvalidAuthConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
