package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/adapter"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/mealwaste"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
)

// errorStatuses is checked in order and the first match wins, so an error
// wrapping several sentinels always maps to the same status. Caller
// problems come before resource state, upstream failures come last.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrNoUserInContext, http.StatusUnauthorized},
	{service.ErrNoUserID, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{packaging.ErrInvalidTimeRange, http.StatusBadRequest},
	{packaging.ErrInvalidDate, http.StatusBadRequest},
	{mealwaste.ErrInvalidWastePercentage, http.StatusBadRequest},
	{mealwaste.ErrInvalidQuantity, http.StatusBadRequest},

	{store.ErrLogNotFound, http.StatusNotFound},
	{store.ErrFoodItemNotFound, http.StatusNotFound},
	{store.ErrMealNotFound, http.StatusNotFound},
	{store.ErrPortionNotFound, http.StatusNotFound},
	{store.ErrLogAlreadyExists, http.StatusConflict},
	{store.ErrFoodItemAlreadyExists, http.StatusConflict},

	{adapter.ErrNotConfigured, http.StatusServiceUnavailable},
	{adapter.ErrRateLimited, http.StatusServiceUnavailable},
	{adapter.ErrBadRequest, http.StatusBadGateway},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrNotFound, http.StatusBadGateway},
	{adapter.ErrConflict, http.StatusBadGateway},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusBadGateway},
	{adapter.ErrInvalidResponse, http.StatusBadGateway},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{store.ErrLogNotSaved, http.StatusInternalServerError},
	{store.ErrFoodItemNotSaved, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server-side
// failures are reported with the generic status text only.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	http.Error(w, message, status)
}
