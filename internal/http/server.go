// Package http exposes the in-memory application state as a JSON API. It is
// the process boundary the web client talks to.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"finconnect/internal/cache"
	"finconnect/internal/core"
	"finconnect/internal/log"
	"finconnect/internal/services"
	"finconnect/internal/store"
)

type Server struct {
	http.Server

	store   *store.Store
	entries *services.EntryService
	logger  *log.Logger

	rateLimiter *rateLimiter

	// Read-side caches. Short TTL, cleared on every mutation that can change
	// the aggregates they serve.
	statsCache   *cache.LRUCache[core.DashboardStats]
	summaryCache *cache.LRUCache[core.ProjectSummary]

	shutdownOnce sync.Once
}

// NewServer wires routes and read caches, returning a ready-to-run server.
// rateLimit is the number of mutation requests a client may make per minute.
func NewServer(addr string, st *store.Store, entries *services.EntryService, logger *log.Logger, cacheTTL time.Duration, rateLimit int) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		store:        st,
		entries:      entries,
		logger:       logger.WithComponent(log.ComponentHTTP),
		rateLimiter:  newRateLimiter(rateLimit),
		statsCache:   cache.NewLRUCache[core.DashboardStats](8, cacheTTL),
		summaryCache: cache.NewLRUCache[core.ProjectSummary](64, cacheTTL),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /api/auth/login", s.wrap(s.handleLogin))
	mux.HandleFunc("POST /api/auth/register", s.wrap(s.handleRegister))
	mux.HandleFunc("POST /api/auth/logout", s.wrap(s.handleLogout))
	mux.HandleFunc("GET /api/auth/session", s.wrap(s.handleSession))

	mux.HandleFunc("GET /api/projects", s.wrap(s.handleListProjects))
	mux.HandleFunc("POST /api/projects", s.wrap(s.handleCreateProject))
	mux.HandleFunc("GET /api/projects/{id}", s.wrap(s.handleGetProject))
	mux.HandleFunc("PATCH /api/projects/{id}", s.wrap(s.handleUpdateProject))
	mux.HandleFunc("DELETE /api/projects/{id}", s.wrap(s.handleDeleteProject))
	mux.HandleFunc("GET /api/projects/{id}/entries", s.wrap(s.handleProjectEntries))
	mux.HandleFunc("GET /api/projects/{id}/budgets", s.wrap(s.handleProjectBudgets))
	mux.HandleFunc("PUT /api/projects/{id}/budgets", s.wrap(s.handleReplaceBudgets))
	mux.HandleFunc("GET /api/projects/{id}/summary", s.wrap(s.handleProjectSummary))

	mux.HandleFunc("GET /api/entries", s.wrap(s.handleListEntries))
	mux.HandleFunc("POST /api/entries", s.wrap(s.handleCreateEntry))
	mux.HandleFunc("GET /api/entries/{id}", s.wrap(s.handleGetEntry))
	mux.HandleFunc("PATCH /api/entries/{id}", s.wrap(s.handleUpdateEntry))
	mux.HandleFunc("DELETE /api/entries/{id}", s.wrap(s.handleDeleteEntry))

	mux.HandleFunc("GET /api/community/posts", s.wrap(s.handleListPosts))
	mux.HandleFunc("POST /api/community/posts", s.wrap(s.handleCreatePost))
	mux.HandleFunc("POST /api/community/posts/{id}/reactions", s.wrap(s.handleReactToPost))
	mux.HandleFunc("POST /api/community/posts/{id}/comments", s.wrap(s.handleAddComment))

	mux.HandleFunc("GET /api/assistant/messages", s.wrap(s.handleListMessages))
	mux.HandleFunc("POST /api/assistant/messages", s.wrap(s.handleSendMessage))
	mux.HandleFunc("DELETE /api/assistant/messages", s.wrap(s.handleClearMessages))

	mux.HandleFunc("GET /api/dashboard/stats", s.wrap(s.handleDashboardStats))
	mux.HandleFunc("GET /api/dashboard/activity", s.wrap(s.handleRecentActivity))
	mux.HandleFunc("GET /api/dashboard/projects", s.wrap(s.handleProjectSpends))

	mux.HandleFunc("GET /api/catalog/categories", s.wrap(s.handleCategories))
	mux.HandleFunc("GET /api/catalog/currencies", s.wrap(s.handleCurrencies))

	return s
}

// Caches returns the read caches for registration with a cache.Manager.
func (s *Server) Caches() []cache.Cleaner {
	return []cache.Cleaner{s.statsCache, s.summaryCache}
}

// wrap adds security headers, rate limiting and request logging.
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		s.logger.DebugContext(ctx, "request started",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldClientIP, clientIP)

		// Mutations are rate limited per client
		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP) {
			s.logger.WarnContext(ctx, "rate limit exceeded",
				log.FieldRequestID, requestID,
				log.FieldClientIP, clientIP,
				log.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		s.logger.InfoContext(ctx, "request completed",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.statusCode,
			log.FieldDuration, time.Since(start).Milliseconds())
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// invalidateAggregates clears the read caches after any write that moves
// money or projects around.
func (s *Server) invalidateAggregates() {
	s.statsCache.Clear()
	s.summaryCache.Clear()
}

// Shutdown stops the rate limiter sweep and the HTTP listener.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
