package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Divyanshgupta04/lern-deployment/internal/generate"
	"github.com/Divyanshgupta04/lern-deployment/internal/store"
)

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	svc    *generate.Service
	events store.EventRepo
	logger *slog.Logger
}

// NewServer creates a Server. events may be nil; the usage endpoint then
// reports 503.
func NewServer(svc *generate.Service, events store.EventRepo, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, events: events, logger: logger}
}

// Routes builds the router with standard middleware.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/ai", func(r chi.Router) {
			r.Post("/questions", s.handleGenerateQuestions)
			r.Post("/analysis", s.handleAnalyzeResults)
			r.Post("/plan", s.handleGeneratePlan)
			r.Post("/chat", s.handleChat)
		})
		r.Route("/admin", func(r chi.Router) {
			r.Post("/insights", s.handleAdminInsights)
			r.Get("/usage", s.handleUsage)
		})
	})

	return r
}

// requestLogger logs one line per request with status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
