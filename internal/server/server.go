// Package server exposes the road graph and its collaborators over HTTP for
// the hackathon demo frontend.
//
// Routes:
//
//	GET /api/roads/nearest?x=&y=   nearest edge to a planar point
//	GET /api/roads/types           distinct road classifications with counts
//	GET /api/weather?lat=&lon=     closest-station weather observation
//	GET /api/cameras/nearest?lat=&lon=  closest traffic camera
//
// The server holds one immutable graph built at startup; it never calls
// AssignTraffic, so no synchronization around the graph is needed.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/solrun/vegakort/pkg/integrations/vedur"
	"github.com/solrun/vegakort/pkg/integrations/vegagerdin"
	"github.com/solrun/vegakort/pkg/roadgraph"
)

// Server serves road-graph queries and service lookups.
type Server struct {
	graph   *roadgraph.Graph
	weather *vedur.Client
	cameras *vegagerdin.Client
	logger  *log.Logger
}

// New creates a Server over an already-built graph. The weather and camera
// clients may be nil, which disables their routes with a 503.
func New(g *roadgraph.Graph, weather *vedur.Client, cameras *vegagerdin.Client, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{graph: g, weather: weather, cameras: cameras, logger: logger}
}

// Router builds the chi route tree with request-ID and logging middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/roads/nearest", s.handleNearestRoad)
		r.Get("/roads/types", s.handleRoadTypes)
		r.Get("/weather", s.handleWeather)
		r.Get("/cameras/nearest", s.handleNearestCamera)
	})
	return r
}

// ListenAndServe runs the server on addr until the listener fails or ctx is
// cancelled. On cancellation in-flight requests get a grace period to finish
// and the context error is returned, so a SIGINT surfaces as
// context.Canceled at the caller.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Infof("listening on %s", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

const requestIDHeader = "X-Request-Id"

// requestID assigns a UUID to every request lacking one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debugf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
