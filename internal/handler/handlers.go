package handler

import (
	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/handler/http"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/metrics"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.Services,
	taxonomy packaging.Taxonomy,
	m *metrics.Metrics,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, taxonomy, m, logger),
	}, nil
}
