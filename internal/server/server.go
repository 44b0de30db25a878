package server

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/handler"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	return newServer(handlers.HTTP.Init(), cfg, logger), nil
}

func newServer(h http.Handler, cfg config.Server, logger *logger.Logger) *server {
	return &server{
		httpServer:      newHTTPServer(h, cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

func (s *server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.shutdownTimeout)
		defer cancel()
	}

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
