package server

import "net/http"

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/", s.handleIndex)
}
