package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
)

type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService returns the service behind /api/version. A blank
// configured version is rejected with ErrVersionIsNotSpecified.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("func", "NewAppInfoService").Str("version", version).Msg("app version registered")

	return &appInfoService{version: version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
