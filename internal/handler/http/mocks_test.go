package http

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// ─────────────────────────────────────────────
// Mocks: service interfaces
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockAuthService struct {
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, errors.New("parseTokenFn not set")
}

type mockPackagingLogService struct {
	listFn      func(ctx context.Context, userID string) ([]packaging.LogView, error)
	listByDayFn func(ctx context.Context, userID string) ([]packaging.DayView, error)
	createFn    func(ctx context.Context, userID string, input models.PackagingLogInput) (service.LogResult, error)
	updateFn    func(ctx context.Context, userID, logID string, input models.PackagingLogInput) (service.LogResult, error)
	deleteFn    func(ctx context.Context, userID, logID string) error
}

func (m *mockPackagingLogService) List(ctx context.Context, userID string) ([]packaging.LogView, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return []packaging.LogView{}, nil
}

func (m *mockPackagingLogService) ListByDay(ctx context.Context, userID string) ([]packaging.DayView, error) {
	if m.listByDayFn != nil {
		return m.listByDayFn(ctx, userID)
	}
	return []packaging.DayView{}, nil
}

func (m *mockPackagingLogService) Create(ctx context.Context, userID string, input models.PackagingLogInput) (service.LogResult, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, input)
	}
	return service.LogResult{}, nil
}

func (m *mockPackagingLogService) Update(ctx context.Context, userID, logID string, input models.PackagingLogInput) (service.LogResult, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, logID, input)
	}
	return service.LogResult{}, nil
}

func (m *mockPackagingLogService) Delete(ctx context.Context, userID, logID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, logID)
	}
	return nil
}

type mockAnalyticsService struct {
	summariesFn  func(ctx context.Context, userID string, r packaging.TimeRange, today string) ([]models.DailySummary, error)
	scoreboardFn func(ctx context.Context, userID string) (models.Scoreboard, error)
	insightsFn   func(ctx context.Context, userID, today string) ([]models.Insight, error)
}

func (m *mockAnalyticsService) Summaries(ctx context.Context, userID string, r packaging.TimeRange, today string) ([]models.DailySummary, error) {
	if m.summariesFn != nil {
		return m.summariesFn(ctx, userID, r, today)
	}
	return []models.DailySummary{}, nil
}

func (m *mockAnalyticsService) Scoreboard(ctx context.Context, userID string) (models.Scoreboard, error) {
	if m.scoreboardFn != nil {
		return m.scoreboardFn(ctx, userID)
	}
	return models.Scoreboard{}, nil
}

func (m *mockAnalyticsService) Insights(ctx context.Context, userID, today string) ([]models.Insight, error) {
	if m.insightsFn != nil {
		return m.insightsFn(ctx, userID, today)
	}
	return []models.Insight{}, nil
}

type mockAlternativesService struct {
	suggestFn func(ctx context.Context, userID string) ([]models.PackagingAlternative, error)
}

func (m *mockAlternativesService) Suggest(ctx context.Context, userID string) ([]models.PackagingAlternative, error) {
	if m.suggestFn != nil {
		return m.suggestFn(ctx, userID)
	}
	return []models.PackagingAlternative{}, nil
}

type mockFoodItemService struct {
	listFn   func(ctx context.Context, userID, today, expiresOn string) ([]models.FoodItemView, error)
	createFn func(ctx context.Context, userID string, input models.FoodItemInput, today string) (models.FoodItemView, error)
	deleteFn func(ctx context.Context, userID, itemID string) error
	alertsFn func(ctx context.Context, userID, today string) (models.ExpiryAlerts, error)
}

func (m *mockFoodItemService) List(ctx context.Context, userID, today, expiresOn string) ([]models.FoodItemView, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, today, expiresOn)
	}
	return []models.FoodItemView{}, nil
}

func (m *mockFoodItemService) Create(ctx context.Context, userID string, input models.FoodItemInput, today string) (models.FoodItemView, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, input, today)
	}
	return models.FoodItemView{}, errors.New("createFn not set")
}

func (m *mockFoodItemService) Delete(ctx context.Context, userID, itemID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, itemID)
	}
	return nil
}

func (m *mockFoodItemService) Alerts(ctx context.Context, userID, today string) (models.ExpiryAlerts, error) {
	if m.alertsFn != nil {
		return m.alertsFn(ctx, userID, today)
	}
	return models.ExpiryAlerts{Expired: []models.FoodItemView{}, ExpiringSoon: []models.FoodItemView{}}, nil
}

type mockMealWasteService struct {
	listMealsFn   func(ctx context.Context, userID string) ([]models.Meal, error)
	addMealFn     func(ctx context.Context, userID string, input models.MealInput) (models.Meal, error)
	recordWasteFn func(ctx context.Context, userID, servingID string, input models.WasteInput) (models.Meal, error)
	deleteMealFn  func(ctx context.Context, userID, servingID string) error
	summariesFn   func(ctx context.Context, userID string, r packaging.TimeRange, today string) ([]models.WasteSummary, error)
	insightsFn    func(ctx context.Context, userID, today string) ([]models.Insight, error)
}

func (m *mockMealWasteService) ListMeals(ctx context.Context, userID string) ([]models.Meal, error) {
	if m.listMealsFn != nil {
		return m.listMealsFn(ctx, userID)
	}
	return []models.Meal{}, nil
}

func (m *mockMealWasteService) AddMeal(ctx context.Context, userID string, input models.MealInput) (models.Meal, error) {
	if m.addMealFn != nil {
		return m.addMealFn(ctx, userID, input)
	}
	return models.Meal{}, errors.New("addMealFn not set")
}

func (m *mockMealWasteService) RecordWaste(ctx context.Context, userID, servingID string, input models.WasteInput) (models.Meal, error) {
	if m.recordWasteFn != nil {
		return m.recordWasteFn(ctx, userID, servingID, input)
	}
	return models.Meal{}, errors.New("recordWasteFn not set")
}

func (m *mockMealWasteService) DeleteMeal(ctx context.Context, userID, servingID string) error {
	if m.deleteMealFn != nil {
		return m.deleteMealFn(ctx, userID, servingID)
	}
	return nil
}

func (m *mockMealWasteService) Summaries(ctx context.Context, userID string, r packaging.TimeRange, today string) ([]models.WasteSummary, error) {
	if m.summariesFn != nil {
		return m.summariesFn(ctx, userID, r, today)
	}
	return []models.WasteSummary{}, nil
}

func (m *mockMealWasteService) Insights(ctx context.Context, userID, today string) ([]models.Insight, error) {
	if m.insightsFn != nil {
		return m.insightsFn(ctx, userID, today)
	}
	return []models.Insight{}, nil
}
