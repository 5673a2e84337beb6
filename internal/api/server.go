package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/imobly/docforge/internal/config"
	"github.com/imobly/docforge/internal/draft"
	"github.com/imobly/docforge/internal/registry"
)

// Server is the HTTP surface of the document engine.
type Server struct {
	router chi.Router
	reg    *registry.Snapshot
	drafts *draft.Store
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(reg *registry.Snapshot, drafts *draft.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		reg:    reg,
		drafts: drafts,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Get("/api/templates", s.handleListTemplates)
		r.Get("/api/contracts", s.handleListContracts)

		r.Get("/api/contracts/{contractID}/document", s.handleDocument)
		r.Get("/api/contracts/{contractID}/document/print", s.handlePrint)
		r.Get("/api/contracts/{contractID}/document/edit", s.handleEditView)
		r.Put("/api/contracts/{contractID}/document/body", s.handleCommitBody)
		r.Delete("/api/contracts/{contractID}/document/body", s.handleDiscardBody)

		r.Get("/api/contracts/{contractID}/export", s.handleExport)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
