package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/martinjakubec/fxproxy/server/config"
	"github.com/martinjakubec/fxproxy/storage/types"
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// RateService is the cache-fill service the HTTP surface delegates to
type RateService interface {
	// Latest returns today's rates payload for the base currency
	Latest(ctx context.Context, base types.Currency) (*types.Payload, error)

	// History returns the day-by-day rates for the pair over [start, end]
	History(
		ctx context.Context,
		base types.Currency,
		target types.Currency,
		start time.Time,
		end time.Time,
	) (*types.History, error)
}

type Server struct {
	logger *slog.Logger
	config *config.Config

	rates RateService

	mux *chi.Mux
}

// New creates a new server instance
func New(rates RateService, opts ...Option) (*Server, error) {
	s := &Server{
		logger: noopLogger,
		rates:  rates,
		config: config.DefaultConfig(),
		mux:    chi.NewMux(),
	}

	// Apply the options
	for _, opt := range opts {
		opt(s)
	}

	// Validate the configuration
	if err := config.ValidateConfig(s.config); err != nil {
		return nil, fmt.Errorf("invalid configuration, %w", err)
	}

	// Set up the CORS middleware
	if s.config.CORSConfig != nil {
		corsMiddleware := cors.New(cors.Options{
			AllowedOrigins: s.config.CORSConfig.AllowedOrigins,
			AllowedMethods: s.config.CORSConfig.AllowedMethods,
			AllowedHeaders: s.config.CORSConfig.AllowedHeaders,
		})

		s.mux.Use(corsMiddleware.Handler)
	}

	s.mux.Use(httplog.RequestLogger(s.logger, &httplog.Options{
		Level:         slog.LevelInfo,
		Schema:        httplog.SchemaOTEL,
		RecoverPanics: true,
		Skip: func(_ *http.Request, respStatus int) bool {
			return respStatus == 404 || respStatus == 405
		},
	}))

	// Register the health check handler
	s.mux.Get("/health", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	s.mux.Handle("/metrics", promhttp.Handler())

	s.mux.Get("/openapi.yaml", s.OpenAPI)
	s.mux.Get("/redoc", s.Redoc)

	s.mux.Get("/supported-currencies", s.SupportedCurrencies)
	s.mux.Get("/latest/{currency}", s.Latest)
	s.mux.Get("/history", s.History)

	return s, nil
}

// Serve serves the fxproxy service
func (s *Server) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.config.ListenAddress,
		Handler:           s.mux,
		ReadHeaderTimeout: 60 * time.Second,
	}

	group, gCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer s.logger.Info("server shut down")

		ln, err := net.Listen("tcp", server.Addr)
		if err != nil {
			return err
		}

		s.logger.Info(
			fmt.Sprintf(
				"server started at %s",
				ln.Addr().String(),
			),
		)

		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	group.Go(func() error {
		<-gCtx.Done()

		s.logger.Info("server to be shutdown")

		wsCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()

		return server.Shutdown(wsCtx)
	})

	return group.Wait()
}
