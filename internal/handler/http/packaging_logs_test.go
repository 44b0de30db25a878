package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/validators"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPackagingTypes(t *testing.T) {
	h := newTestHandler(t, testServices())

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/packaging/types", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var types []models.PackagingType
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &types))
	assert.Equal(t, packaging.DefaultTaxonomy().Types(), types)
}

func TestListLogs(t *testing.T) {
	svcs := testServices()
	svcs.PackagingLogService = &mockPackagingLogService{
		listFn: func(_ context.Context, userID string) ([]packaging.LogView, error) {
			assert.Equal(t, testUserID, userID)
			prev := "PLASTIC_FILM"
			return []packaging.LogView{
				{
					PackagingLog: models.PackagingLog{ID: "b", FoodItemName: "Milk", PackagingType: "GLASS", MadeSwitch: true, PreviousPackagingType: &prev},
					SwitchNotice: packaging.SwitchNotice{Message: "Sustainable Switch!", Tone: packaging.TonePositive},
				},
				{PackagingLog: models.PackagingLog{ID: "a", FoodItemName: "Bread"}, SwitchNotice: packaging.SwitchNotice{Tone: packaging.ToneNone}},
			}, nil
		},
	}

	rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodGet, "/api/packaging/logs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var logs []packaging.LogView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	require.Len(t, logs, 2)
	assert.Equal(t, "b", logs[0].ID)
	assert.True(t, logs[0].MadeSwitch)
	assert.Equal(t, packaging.TonePositive, logs[0].SwitchNotice.Tone)
	assert.Equal(t, packaging.ToneNone, logs[1].SwitchNotice.Tone)
	assert.Contains(t, rec.Body.String(), `"switch_notice":{"message":"Sustainable Switch!","tone":"positive"}`)
}

func TestListLogs_EmptyIsArray(t *testing.T) {
	rec := serve(t, newTestHandler(t, testServices()), httptest.NewRequest(http.MethodGet, "/api/packaging/logs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListLogsByDay(t *testing.T) {
	svcs := testServices()
	svcs.PackagingLogService = &mockPackagingLogService{
		listByDayFn: func(_ context.Context, _ string) ([]packaging.DayView, error) {
			return []packaging.DayView{{
				Date: "2024-03-02",
				Logs: []packaging.LogView{{PackagingLog: models.PackagingLog{ID: "a"}, SwitchNotice: packaging.SwitchNotice{Tone: packaging.ToneNone}}},
			}}, nil
		},
	}

	rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodGet, "/api/packaging/logs/by-day", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2024-03-02"`)
	assert.Contains(t, rec.Body.String(), `"switch_notice":{"message":"","tone":"none"}`)
}

func TestCreateLog(t *testing.T) {
	svcs := testServices()
	prev := "PLASTIC_FILM"
	svcs.PackagingLogService = &mockPackagingLogService{
		createFn: func(_ context.Context, userID string, input models.PackagingLogInput) (service.LogResult, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, "Milk", input.FoodItemName)
			assert.Equal(t, 2, input.Quantity)
			return service.LogResult{
				Log: models.PackagingLog{ID: testLogID, FoodItemName: "Milk", PackagingType: "GLASS", MadeSwitch: true, PreviousPackagingType: &prev},
				Classification: packaging.Classification{
					MadeSwitch: true, PreviousPackagingType: &prev, SwitchType: packaging.SwitchSustainable,
				},
				Feedback: packaging.SwitchNotice{Message: `Fantastic switch for "Milk"!`, Tone: packaging.TonePositive},
			}, nil
		},
	}

	body := `{"created_at":"2024-03-02","food_item_name":"Milk","packaging_type":"GLASS","quantity":2}`
	rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodPost, "/api/packaging/logs", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got struct {
		Log            models.PackagingLog `json:"log"`
		Classification struct {
			SwitchType string `json:"switch_type"`
		} `json:"classification"`
		Feedback struct {
			Tone string `json:"tone"`
		} `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testLogID, got.Log.ID)
	assert.Equal(t, "sustainable", got.Classification.SwitchType)
	assert.Equal(t, "positive", got.Feedback.Tone)
}

func TestCreateLog_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "malformed JSON", body: `{"food_item_name":`, wantStatus: http.StatusBadRequest},
		{name: "empty body", body: ``, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"id":"x"}`, wantStatus: http.StatusBadRequest},
		{
			name:       "validation failure",
			body:       `{"quantity":0}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidQuantity),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage failure",
			body:       `{"quantity":1}`,
			serviceErr: fmt.Errorf("error saving packaging log: %w", store.ErrLogNotSaved),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "duplicate id",
			body:       `{"quantity":1}`,
			serviceErr: store.ErrLogAlreadyExists,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := testServices()
			svcs.PackagingLogService = &mockPackagingLogService{
				createFn: func(context.Context, string, models.PackagingLogInput) (service.LogResult, error) {
					return service.LogResult{}, tt.serviceErr
				},
			}

			rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodPost, "/api/packaging/logs", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreateLog_ValidationMessageIsReturned(t *testing.T) {
	svcs := testServices()
	svcs.PackagingLogService = &mockPackagingLogService{
		createFn: func(context.Context, string, models.PackagingLogInput) (service.LogResult, error) {
			return service.LogResult{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidQuantity)
		},
	}

	rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodPost, "/api/packaging/logs", strings.NewReader(`{"quantity":0}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), validators.ErrInvalidQuantity.Error())
}

func TestCreateLog_InternalErrorIsNotLeaked(t *testing.T) {
	svcs := testServices()
	svcs.PackagingLogService = &mockPackagingLogService{
		createFn: func(context.Context, string, models.PackagingLogInput) (service.LogResult, error) {
			return service.LogResult{}, errors.New("pq: password authentication failed for user app")
		},
	}

	rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodPost, "/api/packaging/logs", strings.NewReader(`{"quantity":1}`)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUpdateLog(t *testing.T) {
	svcs := testServices()
	var gotLogID string
	svcs.PackagingLogService = &mockPackagingLogService{
		updateFn: func(_ context.Context, userID, logID string, input models.PackagingLogInput) (service.LogResult, error) {
			gotLogID = logID
			return service.LogResult{Log: models.PackagingLog{ID: logID, Quantity: input.Quantity}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/packaging/logs/"+testLogID, strings.NewReader(`{"quantity":4}`))
	rec := serve(t, newTestHandler(t, svcs), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testLogID, gotLogID)
	assert.Contains(t, rec.Body.String(), `"quantity":4`)
}

func TestUpdateLog_NotFound(t *testing.T) {
	svcs := testServices()
	svcs.PackagingLogService = &mockPackagingLogService{
		updateFn: func(context.Context, string, string, models.PackagingLogInput) (service.LogResult, error) {
			return service.LogResult{}, fmt.Errorf("error reading packaging log: %w", store.ErrLogNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/packaging/logs/"+testLogID, strings.NewReader(`{"quantity":4}`))
	rec := serve(t, newTestHandler(t, svcs), req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteLog(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", err: store.ErrLogNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid id", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidLogID), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := testServices()
			svcs.PackagingLogService = &mockPackagingLogService{
				deleteFn: func(_ context.Context, userID, logID string) error {
					assert.Equal(t, testUserID, userID)
					assert.Equal(t, testLogID, logID)
					return tt.err
				},
			}

			rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodDelete, "/api/packaging/logs/"+testLogID, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
