package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		wantErr error
	}{
		{name: "semver", version: "1.4.0", want: "1.4.0"},
		{name: "pre-release with build metadata", version: "v2.0.0-rc.1+3f9a2c1", want: "v2.0.0-rc.1+3f9a2c1"},
		{name: "surrounding whitespace is trimmed", version: "  0.9.1\n", want: "0.9.1"},
		{name: "empty", version: "", wantErr: ErrVersionIsNotSpecified},
		{name: "blank", version: " \t", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_IgnoresCancellation(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
