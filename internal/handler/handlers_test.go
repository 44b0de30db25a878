package handler

import (
	"testing"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Server
		wantErr error
	}{
		{name: "http address set", cfg: config.Server{HTTPAddress: "localhost:8080"}},
		{name: "no address", cfg: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlers, err := NewHandlers(&service.Services{}, packaging.DefaultTaxonomy(), nil, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, handlers)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, handlers.HTTP)
		})
	}
}
