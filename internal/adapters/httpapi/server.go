// Package httpapi exposes a watching project over HTTP: build requests,
// coordinator status, health and Prometheus metrics.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/cargokit/internal/engine/coordinator"
	"go.trai.ch/zerr"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// StatusSource reports the coordinator state served by GET /status.
type StatusSource interface {
	Snapshot() coordinator.Snapshot
}

// Server serves the HTTP endpoint of one watched project.
type Server struct {
	router  *chi.Mux
	server  *http.Server
	trigger ports.Triggerable
	status  StatusSource
	request domain.BuildRequest
	logger  ports.Logger
}

// NewServer creates a server that triggers builds of req.
// metrics may be nil, in which case /metrics is not routed.
func NewServer(
	addr string,
	req domain.BuildRequest,
	trigger ports.Triggerable,
	status StatusSource,
	metrics http.Handler,
	logger ports.Logger,
) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		trigger: trigger,
		status:  status,
		request: req,
		logger:  logger,
	}
	s.setupRoutes(metrics)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return s
}

func (s *Server) setupRoutes(metrics http.Handler) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(requestTimeout))
	s.router.Use(s.logRequests)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/status", s.handleStatus)
	s.router.Post("/build", s.handleBuild)
	if metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", metrics)
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve accepts connections on l until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(l)
	}()

	s.logger.Info("serving http on " + l.Addr().String())

	select {
	case err := <-errCh:
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", l.Addr().String())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, domain.ErrServerFailed.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return zerr.Wrap(err, domain.ErrServerFailed.Error())
	}
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", s.server.Addr)
	}
	return s.Serve(ctx, l)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug(fmt.Sprintf("%s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Microsecond)))
	})
}

// Response is the envelope of every JSON response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TriggerResponse is the payload of POST /build.
type TriggerResponse struct {
	Outcome string `json:"outcome"`
}

func writeJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: map[string]string{"status": "ok"}})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: s.status.Snapshot()})
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.trigger.OnTrigger(r.Context(), s.request, false)
	if err != nil {
		s.logger.Error(err)
		writeJSON(w, http.StatusInternalServerError, Response{Error: err.Error()})
		return
	}

	code := http.StatusOK
	if outcome == domain.OutcomeScheduled {
		code = http.StatusAccepted
	}
	writeJSON(w, code, Response{Success: true, Data: TriggerResponse{Outcome: outcome.String()}})
}
