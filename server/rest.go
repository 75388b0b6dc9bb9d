package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/umputun/exclude-pages/pkg/domain"
)

// statusHandler returns server status, 503 if the database is not reachable
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	if err := s.db.Ping(r.Context()); err != nil {
		log.Printf("[WARN] database ping failed: %v", err)
		status["status"] = "error"
		status["error"] = err.Error()
		renderJSON(w, r, http.StatusServiceUnavailable, status)
		return
	}
	renderJSON(w, r, http.StatusOK, status)
}

// apiPagesHandler returns public pages as JSON
func (s *Server) apiPagesHandler(w http.ResponseWriter, r *http.Request) {
	views, err := s.publicPages(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get public pages: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, pagesOf(views))
}

// apiAdminPagesHandler returns all pages with exclusion flags as JSON
func (s *Server) apiAdminPagesHandler(w http.ResponseWriter, r *http.Request) {
	pages, err := s.adminPages(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get admin pages: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, pages)
}

// pagesOf extracts pages from views, never returns nil to keep JSON an array
func pagesOf(views []pageView) []domain.Page {
	res := make([]domain.Page, 0, len(views))
	for _, v := range views {
		res = append(res, v.Page)
	}
	return res
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
