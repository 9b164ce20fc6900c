package server

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// handleIndex serves the embedded chat page. Anything but the root
// path is a 404 so API typos don't silently return HTML.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "UI unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
