// Package server exposes the generator panels over HTTP: an HTML page with a
// form per panel plus a plain-text API that returns generator output
// verbatim.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/goliatone/go-uekit/api"
	"github.com/goliatone/go-uekit/internal/logging"
	"github.com/goliatone/go-uekit/pkg/config"
	"github.com/goliatone/go-uekit/pkg/panels"
	"github.com/goliatone/go-uekit/pkg/renderers/vanilla"
)

// Option configures the server.
type Option func(*Server)

// WithLogger sets the structured logger used for access and error logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPage sets the page chrome (title, subtitle, notice).
func WithPage(page config.Page) Option {
	return func(s *Server) {
		s.page = page
	}
}

// WithServerConfig sets the listen address and timeouts.
func WithServerConfig(cfg config.Server) Option {
	return func(s *Server) {
		s.settings = cfg
	}
}

// WithRenderer overrides the HTML page renderer.
func WithRenderer(renderer *vanilla.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithDocument overrides the OpenAPI document served at /openapi.yaml.
func WithDocument(doc []byte) Option {
	return func(s *Server) {
		if len(doc) > 0 {
			s.document = doc
		}
	}
}

// Server routes HTTP requests to the panel registry.
type Server struct {
	registry *panels.Registry
	renderer *vanilla.Renderer
	logger   *slog.Logger
	page     config.Page
	settings config.Server
	document []byte
	router   *mux.Router
}

// New builds the router for reg.
func New(reg *panels.Registry, options ...Option) (*Server, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	defaults := config.Default()
	s := &Server{
		registry: reg,
		logger:   logging.Discard(),
		page:     defaults.Page,
		settings: defaults.Server,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.renderer == nil {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		s.renderer = renderer
	}
	if len(s.document) == 0 {
		s.document = api.Document()
	}

	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware(), accessLogMiddleware(s.logger), recoveryMiddleware(s.logger))

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/panels/{id}", s.handlePanelPage).Methods(http.MethodGet)
	r.HandleFunc("/panels/{id}", s.handlePanelSubmit).Methods(http.MethodPost)

	r.HandleFunc("/api/panels", s.handleListPanels).Methods(http.MethodGet)
	r.HandleFunc("/api/panels/{id}", s.handleGenerate).Methods(http.MethodPost)

	r.HandleFunc("/openapi.yaml", s.handleDocument).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", http.FileServer(http.FS(vanilla.AssetsFS())))).Methods(http.MethodGet)
	return r
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.settings.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.settings.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.settings.ReadTimeout,
		ReadHeaderTimeout: s.settings.ReadTimeout,
		WriteTimeout:      s.settings.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	s.logger.Info("listening", slog.String("addr", listener.Addr().String()))

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	grace := s.settings.ShutdownTimeout
	if grace <= 0 {
		grace = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	s.logger.Info("shutting down", slog.Duration("grace", grace))
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "", nil, "")
}

func (s *Server) handlePanelPage(w http.ResponseWriter, r *http.Request) {
	panel, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.renderPage(w, r, http.StatusOK, panel.ID, formValues(r.URL.Query()), "")
}

func (s *Server) handlePanelSubmit(w http.ResponseWriter, r *http.Request) {
	panel, ok := s.lookup(w, r)
	if !ok {
		return
	}
	values, err := parseValues(w, r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	s.renderPage(w, r, http.StatusOK, panel.ID, values, panel.Generate(values))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	panel, ok := s.lookup(w, r)
	if !ok {
		return
	}
	values, err := parseValues(w, r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(panel.Generate(values)))
}

func (s *Server) handleListPanels(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]any{"panels": s.registry.Descriptors()})
}

func (s *Server) handleDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.document)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (panels.Panel, bool) {
	id := mux.Vars(r)["id"]
	panel, err := s.registry.Get(id)
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, err)
		return panels.Panel{}, false
	}
	return panel, true
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, active string, values panels.Values, output string) {
	page := vanilla.Page{
		Title:    s.page.Title,
		Subtitle: s.page.Subtitle,
		Notice:   s.page.Notice,
		Panels:   s.registry.Descriptors(),
		Active:   active,
	}
	if active != "" {
		page.Values = map[string]panels.Values{active: values}
		if output != "" {
			page.Outputs = map[string]string{active: output}
		}
	}

	body, err := s.renderer.Render(r.Context(), page)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed",
			slog.String("request_id", RequestID(r.Context())),
			slog.String("error", err.Error()),
		)
	}
	if wantsJSON(r) {
		body, _ := json.Marshal(map[string]string{"error": err.Error()})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
		return
	}
	http.Error(w, err.Error(), status)
}
