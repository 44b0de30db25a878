package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/validators"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFoodItems(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		wantToday     string
		wantExpiresOn string
	}{
		{name: "defaults", query: "", wantToday: "2024-03-12"},
		{name: "expiring on a date", query: "?expires_on=2024-03-14", wantToday: "2024-03-12", wantExpiresOn: "2024-03-14"},
		{name: "explicit today", query: "?today=2024-03-01", wantToday: "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := testServices()
			svcs.FoodItemService = &mockFoodItemService{
				listFn: func(_ context.Context, userID, today, expiresOn string) ([]models.FoodItemView, error) {
					assert.Equal(t, testUserID, userID)
					assert.Equal(t, tt.wantToday, today)
					assert.Equal(t, tt.wantExpiresOn, expiresOn)
					return []models.FoodItemView{{
						FoodItem:        models.FoodItem{ID: testItemID, Name: "Yoghurt", ExpiryDate: "2024-03-14"},
						Status:          models.ExpiryExpiringSoon,
						DaysUntilExpiry: 2,
					}}, nil
				},
			}

			rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodGet, "/api/inventory/items"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var items []models.FoodItemView
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
			require.Len(t, items, 1)
			assert.Equal(t, models.ExpiryExpiringSoon, items[0].Status)
			assert.Equal(t, 2, items[0].DaysUntilExpiry)
		})
	}
}

func TestListFoodItems_EmptyIsArray(t *testing.T) {
	rec := serve(t, newTestHandler(t, testServices()), httptest.NewRequest(http.MethodGet, "/api/inventory/items", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListFoodItems_BadToday(t *testing.T) {
	rec := serve(t, newTestHandler(t, testServices()), httptest.NewRequest(http.MethodGet, "/api/inventory/items?today=14.03.2024", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateFoodItem(t *testing.T) {
	svcs := testServices()
	svcs.FoodItemService = &mockFoodItemService{
		createFn: func(_ context.Context, userID string, input models.FoodItemInput, today string) (models.FoodItemView, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, "Spinach", input.Name)
			assert.Equal(t, "2024-03-13", input.ExpiryDate)
			require.NotNil(t, input.Amount)
			assert.Equal(t, "1 bag", *input.Amount)
			assert.Equal(t, "2024-03-12", today)
			return models.FoodItemView{
				FoodItem:        models.FoodItem{ID: testItemID, Name: input.Name, ExpiryDate: input.ExpiryDate, Amount: input.Amount},
				Status:          models.ExpiryExpiringSoon,
				DaysUntilExpiry: 1,
			}, nil
		},
	}

	body := `{"name":"Spinach","expiry_date":"2024-03-13","amount":"1 bag"}`
	rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodPost, "/api/inventory/items", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"`+testItemID+`"`)
	assert.Contains(t, rec.Body.String(), `"status":"expiring_soon"`)
}

func TestCreateFoodItem_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "malformed JSON", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"user_id":"x"}`, wantStatus: http.StatusBadRequest},
		{
			name:       "invalid expiry date",
			body:       `{"name":"Milk","expiry_date":"soon"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidExpiryDate),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate id",
			body:       `{"name":"Milk","expiry_date":"2024-03-20"}`,
			serviceErr: store.ErrFoodItemAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "not saved",
			body:       `{"name":"Milk","expiry_date":"2024-03-20"}`,
			serviceErr: store.ErrFoodItemNotSaved,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := testServices()
			called := false
			svcs.FoodItemService = &mockFoodItemService{
				createFn: func(context.Context, string, models.FoodItemInput, string) (models.FoodItemView, error) {
					called = true
					return models.FoodItemView{}, tt.serviceErr
				},
			}

			rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodPost, "/api/inventory/items", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.serviceErr != nil, called)
		})
	}
}

func TestDeleteFoodItem(t *testing.T) {
	svcs := testServices()
	var gotID string
	svcs.FoodItemService = &mockFoodItemService{
		deleteFn: func(_ context.Context, userID, itemID string) error {
			assert.Equal(t, testUserID, userID)
			gotID = itemID
			return nil
		},
	}

	rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodDelete, "/api/inventory/items/"+testItemID, nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, testItemID, gotID)
}

func TestDeleteFoodItem_NotFound(t *testing.T) {
	svcs := testServices()
	svcs.FoodItemService = &mockFoodItemService{
		deleteFn: func(context.Context, string, string) error {
			return store.ErrFoodItemNotFound
		},
	}

	rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodDelete, "/api/inventory/items/"+testItemID, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetExpiryAlerts(t *testing.T) {
	svcs := testServices()
	svcs.FoodItemService = &mockFoodItemService{
		alertsFn: func(_ context.Context, _ string, today string) (models.ExpiryAlerts, error) {
			assert.Equal(t, "2024-03-12", today)
			return models.ExpiryAlerts{
				Expired: []models.FoodItemView{{
					FoodItem: models.FoodItem{ID: "a", Name: "Cream", ExpiryDate: "2024-03-10"}, Status: models.ExpiryExpired, DaysUntilExpiry: -2,
				}},
				ExpiringSoon: []models.FoodItemView{},
			}, nil
		},
	}

	rec := serve(t, newTestHandler(t, svcs), httptest.NewRequest(http.MethodGet, "/api/inventory/alerts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.ExpiryAlerts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Expired, 1)
	assert.Equal(t, -2, got.Expired[0].DaysUntilExpiry)
	assert.Empty(t, got.ExpiringSoon)
	assert.Contains(t, rec.Body.String(), `"expiring_soon":[]`)
}
