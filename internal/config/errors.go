package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates an unusable signing configuration
	// (for example, missing signing key, issuer or audience).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown password scheme).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, no listen address or incomplete TLS files).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidTracingConfigs indicates an unknown span exporter or an
	// unusable sample ratio.
	ErrInvalidTracingConfigs = errors.New("invalid tracing configuration")
)
