package service

import (
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/internal/adapter"
	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/metrics"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/workers"
)

type Services struct {
	AuthService         AuthService
	PackagingLogService PackagingLogService
	AnalyticsService    AnalyticsService
	AlternativesService AlternativesService
	FoodItemService     FoodItemService
	MealWasteService    MealWasteService
	AppInfoService      AppInfoService
}

func NewServices(
	storages *store.Storages,
	generative adapter.GenerativeAdapter,
	images workers.ImageEnqueuer,
	engine *packaging.Engine,
	cfg config.StructuredConfig,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	logs := NewPackagingLogService(storages.PackagingLogRepository, engine, images, m, logger)

	return &Services{
		AuthService:         NewAuthService(cfg.App, logger),
		PackagingLogService: NewPackagingLogValidationService(logger).Wrap(logs),
		AnalyticsService:    NewAnalyticsService(storages.PackagingLogRepository, engine, logger),
		AlternativesService: NewAlternativesService(storages.PackagingLogRepository, engine, generative, logger),
		FoodItemService: NewFoodItemValidationService(logger).
			Wrap(NewFoodItemService(storages.FoodItemRepository, images, logger)),
		MealWasteService: NewMealWasteValidationService(logger).
			Wrap(NewMealWasteService(storages.MealRepository, logger)),
		AppInfoService:      appInfo,
	}, nil
}
