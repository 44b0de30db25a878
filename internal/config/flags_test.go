package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "0.0.0.0:80", want: NetAddress{Host: "0.0.0.0", Port: 80}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-d", "postgres://localhost/waste",
		"-driver", "postgres",
		"-config", "/etc/waste.json",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-token-audience", "authenticated",
		"-request-timeout", "15s",
		"-log-level", "debug",
		"-generative-api-key", "sk",
		"-images-api-key", "img",
		"-image-workers", "5",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/waste", cfg.Storage.DB.DSN)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "/etc/waste.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "authenticated", cfg.App.TokenAudience)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "sk", cfg.Adapter.Generative.APIKey)
	assert.Equal(t, "img", cfg.Adapter.Images.APIKey)
	assert.Equal(t, 5, cfg.Workers.ImageWorkers)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nohost"})
	assert.Error(t, err)
}
