package service

import (
	"context"

	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// LogResult is returned when a packaging log is created or edited: the
// stored log, how it was classified against the previous purchase of the
// same item, and the feedback to show the user.
type LogResult struct {
	Log            models.PackagingLog      `json:"log"`
	Classification packaging.Classification `json:"classification"`
	Feedback       packaging.SwitchNotice   `json:"feedback"`
}

type PackagingLogService interface {
	List(ctx context.Context, userID string) ([]packaging.LogView, error)
	ListByDay(ctx context.Context, userID string) ([]packaging.DayView, error)

	Create(ctx context.Context, userID string, input models.PackagingLogInput) (LogResult, error)
	Update(ctx context.Context, userID, logID string, input models.PackagingLogInput) (LogResult, error)
	Delete(ctx context.Context, userID, logID string) error
}

// PackagingLogServiceWrapper defines middleware composition for
// PackagingLogService. Implementations wrap an existing PackagingLogService
// to add behavior such as validation.
type PackagingLogServiceWrapper interface {
	Wrap(PackagingLogService) PackagingLogService
}

type AnalyticsService interface {
	Summaries(ctx context.Context, userID string, r packaging.TimeRange, today string) ([]models.DailySummary, error)
	Scoreboard(ctx context.Context, userID string) (models.Scoreboard, error)
	Insights(ctx context.Context, userID, today string) ([]models.Insight, error)
}

type AlternativesService interface {
	Suggest(ctx context.Context, userID string) ([]models.PackagingAlternative, error)
}

// FoodItemService manages the food inventory. today is the caller's
// calendar date used to compute expiry status.
type FoodItemService interface {
	List(ctx context.Context, userID, today, expiresOn string) ([]models.FoodItemView, error)
	Create(ctx context.Context, userID string, input models.FoodItemInput, today string) (models.FoodItemView, error)
	Delete(ctx context.Context, userID, itemID string) error
	Alerts(ctx context.Context, userID, today string) (models.ExpiryAlerts, error)
}

type FoodItemServiceWrapper interface {
	Wrap(FoodItemService) FoodItemService
}

// MealWasteService logs meals and the waste of their portions.
type MealWasteService interface {
	ListMeals(ctx context.Context, userID string) ([]models.Meal, error)
	AddMeal(ctx context.Context, userID string, input models.MealInput) (models.Meal, error)
	RecordWaste(ctx context.Context, userID, servingID string, input models.WasteInput) (models.Meal, error)
	DeleteMeal(ctx context.Context, userID, servingID string) error

	Summaries(ctx context.Context, userID string, r packaging.TimeRange, today string) ([]models.WasteSummary, error)
	Insights(ctx context.Context, userID, today string) ([]models.Insight, error)
}

type MealWasteServiceWrapper interface {
	Wrap(MealWasteService) MealWasteService
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
