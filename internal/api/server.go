package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/morlord/builders-service/internal/config"
	"github.com/morlord/builders-service/internal/services"
)

// Server exposes the dashboard JSON API.
type Server struct {
	cfg        *config.Config
	service    *services.Service
	httpServer *http.Server
}

func New(ctx context.Context, cfg *config.Config, service *services.Service) *Server {
	srv := &Server{
		cfg:     cfg,
		service: service,
	}

	srv.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      srv.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	return srv
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(observabilityMiddleware)

	r.Get("/healthcheck", s.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/builders", s.GetBuilderNames)
		r.Get("/builders/subnets", s.GetSubnets)
		r.Get("/builders/subnets/{subnetID}/stakers", s.GetSubnetStakers)
		r.Route("/dune/{queryID}", func(r chi.Router) {
			r.Get("/", s.GetAnalytics)
			r.Get("/revalidate", s.RevalidateAnalytics)
			r.Post("/revalidate", s.RevalidateAnalytics)
		})
	})

	// the dashboard is served from a different origin
	return cors.AllowAll().Handler(r)
}

func (s *Server) Start() error {
	log.Info().Str("address", s.httpServer.Addr).Msg("starting api server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server exited: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
