package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

// publicPages loads published pages and runs them through the pages filters in non-admin context
func (s *Server) publicPages(ctx context.Context) ([]pageView, error) {
	pages, err := s.db.GetPages(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}
	pages, err = s.hooks.ApplyPagesFilters(ctx, pages, false)
	if err != nil {
		return nil, fmt.Errorf("filter pages: %w", err)
	}
	gen := s.generator()
	res := make([]pageView, 0, len(pages))
	for _, p := range pages {
		res = append(res, pageView{Page: p, Link: gen.PageLink(p)})
	}
	return res, nil
}

// indexHandler displays the list of public pages
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	pages, err := s.publicPages(r.Context())
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load pages", err)
		return
	}

	data := struct {
		SiteTitle string
		Title     string
		Pages     []pageView
	}{
		SiteTitle: s.siteTitle(),
		Title:     s.siteTitle(),
		Pages:     pages,
	}

	if err := s.renderPage(w, "index.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// pageHandler displays a single published page. Excluded pages are still reachable by direct link,
// only listings are filtered.
func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := s.db.GetPageBySlug(ctx, r.PathValue("slug"))
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !page.IsPublished()) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load page", err)
		return
	}

	// navigation is a page listing too, so it goes through the filters
	nav, err := s.publicPages(ctx)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load pages", err)
		return
	}

	data := struct {
		SiteTitle string
		Title     string
		Nav       []pageView
		Content   template.HTML
	}{
		SiteTitle: s.siteTitle(),
		Title:     page.Title,
		Nav:       nav,
		Content:   template.HTML(s.sanitizer.Sanitize(page.Content)), //nolint:gosec // sanitized by bluemonday
	}

	if err := s.renderPage(w, "page.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// rssHandler serves RSS feed of public pages
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	views, err := s.publicPages(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get pages for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := s.generator().GenerateRSS(pagesOf(views), s.siteTitle())
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
