// internal/server/server.go
package server

import (
	"context"
	"net/http"
	"sync"

	"college-compass/internal/catalog"
	"college-compass/internal/common/config"
	"college-compass/internal/common/logger"
	"college-compass/internal/insights"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the catalog and the insight pipeline over HTTP. It owns the
// open dialogs; each dialog enforces its own one-request-in-flight rule.
type Server struct {
	cfg     *config.Config
	catalog *catalog.Store
	service *insights.Service
	logger  logger.Logger

	mu      sync.Mutex
	dialogs map[uuid.UUID]*insights.Dialog

	httpServer *http.Server
}

func New(cfg *config.Config, store *catalog.Store, service *insights.Service, log logger.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		catalog: store,
		service: service,
		logger:  log.WithFields(map[string]interface{}{"component": "http-server"}),
		dialogs: make(map[uuid.UUID]*insights.Dialog),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/colleges", s.handleListColleges)
	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/insights", s.handleSubmitInsights)
	mux.HandleFunc("POST /api/dialogs", s.handleCreateDialog)
	mux.HandleFunc("GET /api/dialogs/{id}", s.handleDialogState)
	mux.HandleFunc("POST /api/dialogs/{id}/submit", s.handleDialogSubmit)
	mux.HandleFunc("POST /api/dialogs/{id}/reset", s.handleDialogReset)
	mux.HandleFunc("DELETE /api/dialogs/{id}", s.handleDialogClose)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/", http.FileServer(http.Dir(cfg.Server.StaticDir)))

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	return s
}

// Handler exposes the routing mux for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"address": s.cfg.Server.Address,
	})
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) dialog(id uuid.UUID) (*insights.Dialog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dialogs[id]
	return d, ok
}

func (s *Server) registerDialog(d *insights.Dialog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs[d.ID] = d
}

func (s *Server) removeDialog(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dialogs, id)
}
