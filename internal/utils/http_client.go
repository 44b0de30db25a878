package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used by the
// outbound adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient targeting baseURL. A zero timeout
// leaves requests bounded only by their context.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
//	client := utils.NewHTTPClient("https://api.example.com", 10*time.Second)
//	resp, err := client.R().SetHeader("Accept", "application/json").Get("/users")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
