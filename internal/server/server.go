package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/letter-studio/internal/composer"
	"github.com/jonathan/letter-studio/internal/config"
	"github.com/jonathan/letter-studio/internal/logging"
	"github.com/jonathan/letter-studio/internal/observability"
	"github.com/jonathan/letter-studio/internal/phrases"
	"github.com/jonathan/letter-studio/internal/server/middleware"
	"github.com/jonathan/letter-studio/internal/server/ratelimit"
)

// routes lists every registered path; anything else is labelled "other" in metrics.
var routes = map[string]bool{
	"/health":               true,
	"/options":              true,
	"/sample":               true,
	"/letters":              true,
	"/letters/batch":        true,
	"/letters/batch/stream": true,
	"/letters/render":       true,
	"/metrics":              true,
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	cfg         config.Config
	logger      *zap.Logger
	composer    *composer.Composer
	metrics     *observability.Metrics
	rateLimiter *ratelimit.Limiter
	now         func() time.Time
}

// New creates a new server instance. Call Close (or Start, which closes on
// shutdown) to release the rate limiter.
func New(cfg config.Config, logger *zap.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:         cfg,
		logger:      logger,
		composer:    composer.New(phrases.Default()),
		metrics:     observability.NewMetrics(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.FromConfig(cfg.RateLimit)),
		now:         time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /options", s.handleOptions)
	mux.HandleFunc("GET /sample", s.handleSample)
	mux.HandleFunc("POST /letters", s.handleGenerate)
	mux.HandleFunc("POST /letters/batch", s.handleBatch)
	mux.HandleFunc("POST /letters/batch/stream", s.handleBatchStream)
	mux.HandleFunc("POST /letters/render", s.handleRender)
	mux.Handle("GET /metrics", s.metrics.Handler())

	s.handler = middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logging(logger, s.observeRequest),
		middleware.CORS(cfg.Server.AllowedOrigins),
		s.withRateLimit,
	)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer s.Close()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Close stops background work. It does not close open connections.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

func (s *Server) observeRequest(r *http.Request, status int, elapsed time.Duration) {
	path := r.URL.Path
	if !routes[path] {
		path = "other"
	}
	s.metrics.ObserveRequest(r.Method, path, strconv.Itoa(status), elapsed)
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)

		if !allowed {
			s.metrics.RateLimitedTotal.Inc()
			s.rateLimitResponse(w, r, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractClientID extracts the client identifier from the request.
// Only RemoteAddr is trusted; forwarding headers are ignored.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":      "rate_limit_exceeded",
		"message":    "Rate limit exceeded. Please try again later.",
		"limit":      info.Limit,
		"remaining":  info.Remaining,
		"request_id": middleware.GetRequestID(r.Context()),
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		// round up so clients never retry early
		secs := int((info.RetryAfter + time.Second - 1) / time.Second)
		response["retry_after"] = secs
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}

	logging.FromContext(r.Context()).Warn("rate limit exceeded",
		zap.String("client", s.extractClientID(r)),
		zap.Int("limit", info.Limit),
	)

	s.jsonResponse(w, r, http.StatusTooManyRequests, response)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.FromContext(r.Context()).Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse maps err to a status and writes the JSON error envelope.
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request error", zap.Error(err))
	}
	s.jsonResponse(w, r, status, newErrorBody(err, middleware.GetRequestID(r.Context())))
}
