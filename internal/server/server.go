package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/itsmostafa/pageindex/internal/config"
	"github.com/itsmostafa/pageindex/internal/pageindex"
)

// Server exposes read-only queries over one parsed document tree.
type Server struct {
	router chi.Router
	tree   *pageindex.Tree
	log    *slog.Logger
	cfg    config.Config
}

// New creates the HTTP server for tree. The tree is never modified, so
// handlers read it concurrently without locking.
func New(tree *pageindex.Tree, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		tree: tree,
		log:  log,
		cfg:  cfg,
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

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tree", s.handleTree)
		r.Get("/outline", s.handleOutline)
		r.Get("/nodes", s.handleNodeIDs)
		r.Get("/nodes/{nodeID}", s.handleNode)
		r.Get("/nodes/{nodeID}/children", s.handleChildren)
		r.Post("/parse", s.handleParse)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"doc_id": s.tree.DocID,
	})
}
