package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLength truncates provider error bodies kept in error messages.
const maxErrorBodyLength = 512

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrBadGateway,
	http.StatusGatewayTimeout:      ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError turns a non-2xx provider response into an adapter sentinel.
// Unlisted 5xx codes count as provider failures, anything else as an
// unexpected response.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	code := resp.StatusCode()
	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLength {
		body = body[:maxErrorBodyLength]
	}
	if body == "" {
		body = http.StatusText(code)
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrInternalServerError, code, body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrInvalidResponse, code, body)
}
