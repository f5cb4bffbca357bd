package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jobfit-ai/jobfit-server/internal/config"
	"github.com/jobfit-ai/jobfit-server/internal/fetch"
	"github.com/jobfit-ai/jobfit-server/internal/pipeline"
	"github.com/jobfit-ai/jobfit-server/internal/recommend"
	"github.com/jobfit-ai/jobfit-server/internal/server/ratelimit"
	"github.com/jobfit-ai/jobfit-server/internal/store"
)

// jobFetcher resolves a job posting URL to its description text.
type jobFetcher interface {
	JobDescription(ctx context.Context, urlStr string) (string, error)
}

// Server is the HTTP server for the resume optimization API.
type Server struct {
	httpServer  *http.Server
	store       store.Store
	processor   *pipeline.Processor
	recommender *recommend.Recommender
	fetcher     jobFetcher
	rateLimiter *ratelimit.Limiter
	log         *zap.Logger
	maxUpload   int64
}

// New creates a server wired to the given store. The caller owns the store
// and closes it after Start returns.
func New(cfg *config.Config, s store.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	recommender := recommend.New()

	srv := &Server{
		store:       s,
		processor:   pipeline.New(s, recommender, log),
		recommender: recommender,
		fetcher:     fetch.NewCachedClient(fetch.NewClient(cfg.FetchTimeout), fetch.DefaultCacheTTL),
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimitPerMinute),
		log:         log,
		maxUpload:   cfg.MaxUploadBytes,
	}

	srv.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.withRateLimit(srv.withLogging(srv.withCORS(srv.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return srv
}

// routes registers the API endpoints.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/resumes/upload", s.handleUploadResume)
	mux.HandleFunc("POST /api/resumes/manual", s.handleCreateManualResume)
	mux.HandleFunc("GET /api/resumes", s.handleListResumes)
	mux.HandleFunc("GET /api/resumes/{id}", s.handleGetResume)
	mux.HandleFunc("DELETE /api/resumes/{id}", s.handleDeleteResume)

	mux.HandleFunc("GET /api/resumes/{id}/recommendations", s.handleGetRecommendations)

	mux.HandleFunc("POST /api/resumes/{id}/tailor", s.handleTailorResume)
	mux.HandleFunc("GET /api/resumes/{id}/tailored", s.handleListTailoredResumes)
	mux.HandleFunc("GET /api/tailored/{id}", s.handleGetTailoredResume)

	mux.HandleFunc("POST /api/resumes/{id}/optimize", s.handleOptimizeResume)
	mux.HandleFunc("GET /api/resumes/{id}/optimized-content", s.handleOptimizedContent)
	mux.HandleFunc("POST /api/resumes/{id}/export", s.handleExportResume)

	mux.HandleFunc("GET /api/activities", s.handleListActivities)
	mux.HandleFunc("GET /api/dashboard/stats", s.handleDashboardStats)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	return mux
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM,
// then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.log.Info("server stopped")
	return nil
}

// Handler exposes the full middleware-wrapped handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds structured request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// withRateLimit rejects requests over the per-client limit. The health
// endpoint is never limited.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			next.ServeHTTP(w, r)
			return
		}

		info := s.rateLimiter.Allow(s.extractClientID(r))
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		}
		if !info.Allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds()+0.5)))
			}
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractClientID returns the client IP from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handlerError maps a typed error to its HTTP response.
func (s *Server) handlerError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}
	s.errorResponse(w, status, err.Error())
}
