package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-waste-tracker/internal/adapter"
	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/handler"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/metrics"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/server"
	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/workers"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("waste-tracker-server")
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	m, err := metrics.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("error registering metrics: %w", err)
	}

	storages := store.NewStorages(db, log)
	taxonomy := packaging.DefaultTaxonomy()

	imageResolver := workers.NewImageResolver(
		cfg.Workers,
		adapter.NewImageLookup(cfg.Adapter.Images, log),
		storages.PackagingLogRepository,
		storages.FoodItemRepository,
		m,
		log,
	)
	background := workers.NewWorkers(imageResolver)

	services, err := service.NewServices(
		storages,
		adapter.NewGenerativeAdapter(cfg.Adapter.Generative, log),
		imageResolver,
		packaging.NewEngine(taxonomy),
		*cfg,
		m,
		log,
	)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, taxonomy, m, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	background.Run(ctx)
	err = srv.Run(ctx)

	// stop the workers even when the server failed on its own
	stop()
	background.Wait()

	return err
}
