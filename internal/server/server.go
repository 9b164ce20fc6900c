// Package server exposes the analysis and export endpoints over HTTP
// along with the embedded chat UI.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ryar001/Stock-GPT/internal/common"
	"github.com/ryar001/Stock-GPT/internal/services/analysis"
	"github.com/ryar001/Stock-GPT/pdf"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	analysis  *analysis.Service
	pdfConfig pdf.Config
	server    *http.Server
	logger    *common.Logger
}

// NewServer creates the HTTP REST API server.
func NewServer(cfg *common.Config, svc *analysis.Service, logger *common.Logger) *Server {
	s := &Server{
		analysis:  svc,
		pdfConfig: reportConfig(cfg),
		logger:    logger,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      applyMiddleware(mux, logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // generation streams can run long
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// reportConfig maps the app-level report settings onto the renderer's
// config; zero fields keep the renderer defaults.
func reportConfig(cfg *common.Config) pdf.Config {
	return pdf.Config{
		PageSize:   cfg.Report.PageSize,
		FontFamily: cfg.Report.FontFamily,
		FontSize:   cfg.Report.FontSize,
		Margin:     cfg.Report.Margin,
	}
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
