package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/partdesk-core/server/internal/router"
	logx "github.com/partdesk-core/server/pkg/logger"
)

const requestTimeout = 30 * time.Second

// Server owns the HTTP surface: the chat endpoint, health, and metrics.
type Server struct {
	Router *chi.Mux
	Port   int
}

// New wires the routes and middleware around the routing engine.
func New(port int, engine *router.Engine) *Server {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(TimeoutMiddleware(requestTimeout))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/api/chat", handleChat(engine))

	return &Server{Router: r, Port: port}
}

// Start blocks serving HTTP until the listener fails.
func (s *Server) Start() error {
	logx.Info().Int("port", s.Port).Msg("starting server")
	return http.ListenAndServe(fmt.Sprintf(":%d", s.Port), s.Router)
}
