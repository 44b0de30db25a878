package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
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
		{name: "semver", version: "1.0.0"},
		{name: "pre-release with build metadata", version: "v1.2.3-beta+build.42"},
		{name: "surrounding whitespace is trimmed", version: " 2.0.1\n", want: "2.0.1"},
		{name: "empty version", version: "", wantErr: ErrVersionIsNotSpecified},
		{name: "blank version", version: "   ", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			want := tt.want
			if want == "" {
				want = tt.version
			}
			assert.Equal(t, want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_CancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "0.3.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "0.3.0", svc.GetAppVersion(ctx))
}

func TestNewServices(t *testing.T) {
	_, err := NewServices(nil, nil, nil, nil, config.StructuredConfig{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
