// Package server serves the rendered report over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/plantlore/internal/nav"
	"github.com/ziadkadry99/plantlore/internal/report"
	"github.com/ziadkadry99/plantlore/internal/site"
	"github.com/ziadkadry99/plantlore/internal/view"
)

// Config holds server configuration.
type Config struct {
	Port      int
	AssetsDir string // directory served under /assets/
	AllowAll  bool   // allow all CORS origins (dev mode)
}

// Server renders one report per request. The report is shared read-only;
// each request gets its own navigation state.
type Server struct {
	cfg        Config
	report     *report.Report
	renderer   *site.Renderer
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for rep.
func New(cfg Config, rep *report.Report, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "."
	}
	s := &Server{
		cfg:      cfg,
		report:   rep,
		renderer: rep.Renderer.WithPaths("/", "/assets/"),
		logger:   logger,
	}
	s.router = s.buildRouter()
	s.router.Get("/", s.handleIndex)
	s.router.Get("/views/{view}", s.handleView)
	s.router.Get("/style.css", handleCSS)
	s.router.Get("/venn.svg", s.handleVenn)
	s.router.Get("/analysis.json", s.handleDocument)
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.AssetsDir))))
	return s
}

// NewStatic creates a server for a generated site directory.
func NewStatic(cfg Config, dir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{cfg: cfg, logger: logger}
	s.router = s.buildRouter()
	s.router.Handle("/*", http.FileServer(http.Dir(dir)))
	return s
}

// buildRouter creates the chi router with middleware and the health check.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderView(w, r.URL.Query().Get("view"))
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.renderView(w, chi.URLParam(r, "view"))
}

func (s *Server) renderView(w http.ResponseWriter, viewID string) {
	ctl, err := s.report.Navigation(viewID)
	if errors.Is(err, nav.ErrUnknownView) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("navigation failed", "view", viewID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	link := func(v string) string { return "/views/" + v }
	if err := s.renderer.Render(&buf, s.report.Page, ctl, link, s.report.Doc.Metadata); err != nil {
		s.logger.Error("rendering page failed", "view", viewID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(site.CSS()))
}

func (s *Server) handleVenn(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.report.Page.Canvas(view.SlotVenn).WriteSVG(&buf); err != nil {
		s.logger.Error("rendering chart failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(s.report.Doc.Raw)
}

// Addr returns the listen address.
func (s *Server) Addr() string { return fmt.Sprintf(":%d", s.cfg.Port) }

// Start begins listening on the configured port. It returns nil after a
// graceful Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("server listening", "addr", s.Addr())
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
