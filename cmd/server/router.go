package main

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/roomledger/internal/middleware"
	"github.com/mmynk/roomledger/internal/service"
	"github.com/mmynk/roomledger/internal/storage"
)

// newRouter mounts both Connect services plus /metrics and /healthz.
func newRouter(store storage.Store, reg *prometheus.Registry, logger *slog.Logger, memberHeader string) http.Handler {
	rpcMetrics := middleware.NewRPCMetrics(reg)

	// Session selection runs first so logging and metrics see the member.
	interceptors := connect.WithInterceptors(
		middleware.CurrentMember(memberHeader),
		middleware.LoggingInterceptor(logger),
		rpcMetrics.Interceptor(),
	)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(loggingMiddleware(logger))
	r.Use(corsMiddleware(memberHeader))

	householdPath, householdHandler := service.NewHouseholdServiceHandler(service.NewHouseholdService(store), interceptors)
	r.Handle(householdPath+"*", householdHandler)

	ledgerPath, ledgerHandler := service.NewLedgerServiceHandler(service.NewLedgerService(store), interceptors)
	r.Handle(ledgerPath+"*", ledgerHandler)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// loggingMiddleware logs every HTTP request at debug level; RPC outcomes are
// logged by the Connect interceptor.
func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"remote_addr", r.RemoteAddr,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(memberHeader string) func(http.Handler) http.Handler {
	allowed := "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, " + memberHeader
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", allowed)
			w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
