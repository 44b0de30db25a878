package http

import (
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/metrics"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/service"
)

// maxRequestBodyBytes limits JSON request bodies.
const maxRequestBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	taxonomy packaging.Taxonomy
	metrics  *metrics.Metrics

	// now is the clock used to derive "today" when the caller does not
	// send one.
	now func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, taxonomy packaging.Taxonomy, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		taxonomy: taxonomy,
		metrics:  m,
		now:      time.Now,
		logger:   logger,
	}
}
