// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags("server", []string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-d", "postgres://u:p@localhost/notes",
		"-c", "/etc/notes/config.json",
		"-token-sign-key", "secret",
		"-token-issuer", "notes-api",
		"-token-audience", "notes-web",
		"-access-token-ttl", "10m",
		"-refresh-token-ttl", "12h",
		"-password-scheme", "bcrypt",
		"-request-timeout", "5s",
		"-tls-cert", "cert.pem",
		"-tls-key", "key.pem",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://u:p@localhost/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/notes/config.json", cfg.JSONFilePath)
	assert.Equal(t, JWT{
		Issuer:          "notes-api",
		Audience:        "notes-web",
		SigningKey:      "secret",
		AccessTokenTTL:  10 * time.Minute,
		RefreshTokenTTL: 12 * time.Hour,
	}, cfg.App.JWT)
	assert.Equal(t, "bcrypt", cfg.App.PasswordScheme)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.TLSEnabled())
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags("server", []string{"-config", "notes.json"})
	require.NoError(t, err)
	assert.Equal(t, "notes.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags("server", nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"-a", "not-an-address"},
		{"-access-token-ttl", "soon"},
		{"-unknown"},
	} {
		_, err := parseFlags("server", args)
		assert.Error(t, err, "args: %v", args)
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "localhost:8080"},
		{in: ":9090", want: ":9090"},
		{in: "10.0.0.1:443", want: "10.0.0.1:443"},
		{in: "localhost", wantErr: true},
		{in: "localhost:http", wantErr: true},
		{in: "localhost:0", wantErr: true},
		{in: "localhost:65536", wantErr: true},
		{in: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
