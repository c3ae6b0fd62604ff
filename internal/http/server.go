// Package http exposes the budget service as a JSON API: the three
// collection CRUD surfaces the screens call, plus the dashboard
// summary endpoint.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"budgetbuddy/internal/log"
	"budgetbuddy/internal/services"
)

type Server struct {
	http.Server

	income   *services.IncomeService
	expenses *services.ExpenseService
	budgets  *services.BudgetService
	dash     *services.DashboardService
	ready    func(context.Context) error

	rateLimiter  *rateLimiter
	shutdownOnce sync.Once
	started      time.Time
}

// NewServer configures routes and returns a ready-to-run server.
// ready is called by the readiness endpoint to probe the backing
// store.
func NewServer(addr string, income *services.IncomeService, expenses *services.ExpenseService, budgets *services.BudgetService, dash *services.DashboardService, ready func(context.Context) error) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		income:      income,
		expenses:    expenses,
		budgets:     budgets,
		dash:        dash,
		ready:       ready,
		rateLimiter: newRateLimiter(),
		started:     time.Now(),
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("GET /api/dashboard", s.with(s.handleDashboard))

	mux.HandleFunc("GET /api/income", s.with(s.handleListIncome))
	mux.HandleFunc("POST /api/income", s.with(s.handleCreateIncome))
	mux.HandleFunc("PUT /api/income/{id}", s.with(s.handleUpdateIncome))
	mux.HandleFunc("DELETE /api/income/{id}", s.with(s.handleDeleteIncome))

	mux.HandleFunc("GET /api/expenses", s.with(s.handleListExpenses))
	mux.HandleFunc("POST /api/expenses", s.with(s.handleCreateExpense))
	mux.HandleFunc("PUT /api/expenses/{id}", s.with(s.handleUpdateExpense))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.with(s.handleDeleteExpense))

	mux.HandleFunc("GET /api/budgets", s.with(s.handleListBudgets))
	mux.HandleFunc("POST /api/budgets", s.with(s.handleCreateBudget))
	mux.HandleFunc("PUT /api/budgets/{id}", s.with(s.handleUpdateBudget))
	mux.HandleFunc("DELETE /api/budgets/{id}", s.with(s.handleDeleteBudget))

	return s
}

// with adds security headers, rate limiting on mutations, and request
// logging.
func (s *Server) with(next http.HandlerFunc) http.HandlerFunc {
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

		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded",
				log.FieldClientIP, clientIP,
				log.FieldMethod, r.Method,
				log.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatus, rw.statusCode,
			log.FieldDuration, time.Since(start).Milliseconds(),
			log.FieldClientIP, clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// Shutdown gracefully stops the server and its cleanup goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
