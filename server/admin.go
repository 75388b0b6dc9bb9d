package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/exclude-pages/pkg/domain"
	"github.com/umputun/exclude-pages/pkg/exclusion"
	"github.com/umputun/exclude-pages/pkg/hooks"
)

var slugCleanRegex = regexp.MustCompile(`[^a-z0-9]+`)

// pageView is a page with its public link
type pageView struct {
	domain.Page
	Link string
}

// editPageData is used by admin-edit.html
type editPageData struct {
	SiteTitle   string
	Title       string
	Page        domain.Page
	Action      string
	MainPanels  []hooks.RenderedPanel
	SidePanels  []hooks.RenderedPanel
	Error       string
	IsPublished bool
}

// adminPages loads all pages in admin context and marks excluded ones.
// Pages and the excluded set are loaded concurrently.
func (s *Server) adminPages(ctx context.Context) ([]domain.AdminPage, error) {
	var pages []domain.Page
	var excluded exclusion.Set

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.db.GetPages(gctx, false)
		if err != nil {
			return fmt.Errorf("load pages: %w", err)
		}
		if res, err = s.hooks.ApplyPagesFilters(gctx, res, true); err != nil {
			return fmt.Errorf("filter pages: %w", err)
		}
		pages = res
		return nil
	})
	g.Go(func() error {
		res, err := s.exclusions.Excluded(gctx)
		if err != nil {
			return fmt.Errorf("load excluded pages: %w", err)
		}
		excluded = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make([]domain.AdminPage, 0, len(pages))
	for _, p := range pages {
		res = append(res, domain.AdminPage{Page: p, Excluded: excluded.Has(p.ID)})
	}
	return res, nil
}

// adminPagesHandler displays all pages for management
func (s *Server) adminPagesHandler(w http.ResponseWriter, r *http.Request) {
	pages, err := s.adminPages(r.Context())
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load pages", err)
		return
	}

	data := struct {
		SiteTitle string
		Title     string
		Pages     []domain.AdminPage
	}{
		SiteTitle: s.siteTitle(),
		Title:     "Pages",
		Pages:     pages,
	}

	if err := s.renderPage(w, "admin-pages.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// adminNewPageHandler displays edit screen for a page not created yet
func (s *Server) adminNewPageHandler(w http.ResponseWriter, r *http.Request) {
	s.renderEditScreen(w, r, domain.Page{Status: domain.PageStatusDraft}, "", http.StatusOK)
}

// adminEditPageHandler displays edit screen for an existing page
func (s *Server) adminEditPageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid page ID", http.StatusBadRequest)
		return
	}

	page, err := s.db.GetPage(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load page", err)
		return
	}

	s.renderEditScreen(w, r, *page, "", http.StatusOK)
}

// adminCreatePageHandler creates a page and fires page-saved hooks
func (s *Server) adminCreatePageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	page := domain.Page{}
	if err := pageFromForm(r, &page); err != nil {
		s.renderEditScreen(w, r, page, err.Error(), http.StatusBadRequest)
		return
	}

	err := s.db.CreatePage(ctx, &page)
	if errors.Is(err, domain.ErrSlugExists) {
		s.renderEditScreen(w, r, page, domain.ErrSlugExists.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to create page", err)
		return
	}

	if err := s.hooks.FirePageSaved(ctx, page.ID, r.PostForm); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to save page", err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/admin/pages/%d/edit", page.ID), http.StatusSeeOther)
}

// adminUpdatePageHandler updates a page and fires page-saved hooks
func (s *Server) adminUpdatePageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid page ID", http.StatusBadRequest)
		return
	}

	if err = r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	page, err := s.db.GetPage(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load page", err)
		return
	}

	if err = pageFromForm(r, page); err != nil {
		s.renderEditScreen(w, r, *page, err.Error(), http.StatusBadRequest)
		return
	}

	err = s.db.UpdatePage(ctx, page)
	if errors.Is(err, domain.ErrSlugExists) {
		s.renderEditScreen(w, r, *page, domain.ErrSlugExists.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to update page", err)
		return
	}

	if err = s.hooks.FirePageSaved(ctx, page.ID, r.PostForm); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to save page", err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/admin/pages/%d/edit", page.ID), http.StatusSeeOther)
}

// adminDeletePageHandler removes a page and redirects back to the list.
// The page id may stay in the exclusion set, ids of missing pages don't affect listings.
func (s *Server) adminDeletePageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid page ID", http.StatusBadRequest)
		return
	}

	if err := s.db.DeletePage(r.Context(), id); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to delete page", err)
		return
	}
	log.Printf("[INFO] page %d deleted", id)

	http.Redirect(w, r, "/admin/", http.StatusSeeOther)
}

// renderEditScreen renders the page edit form with all registered panels
func (s *Server) renderEditScreen(w http.ResponseWriter, r *http.Request, page domain.Page, errMsg string, code int) {
	panels, err := s.hooks.RenderPanels(r.Context(), hooks.ScreenPage, page.ID)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render panels", err)
		return
	}

	data := editPageData{
		SiteTitle:   s.siteTitle(),
		Title:       "New page",
		Page:        page,
		Action:      "/admin/pages",
		Error:       errMsg,
		IsPublished: page.IsPublished(),
	}
	if page.ID > 0 {
		data.Title = "Edit " + page.Title
		data.Action = fmt.Sprintf("/admin/pages/%d", page.ID)
	}
	for _, p := range panels {
		if p.IsSide() {
			data.SidePanels = append(data.SidePanels, p)
			continue
		}
		data.MainPanels = append(data.MainPanels, p)
	}

	// status code goes before the body, so render to buffer first
	tmpl := s.pageTemplates["admin-edit.html"]
	var buf strings.Builder
	if err := tmpl.ExecuteTemplate(&buf, "admin-edit.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(buf.String()))
}

// pageFromForm applies submitted form fields to the page
func pageFromForm(r *http.Request, page *domain.Page) error {
	page.Title = strings.TrimSpace(r.PostFormValue("title"))
	page.Content = r.PostFormValue("content")

	page.Slug = makeSlug(r.PostFormValue("slug"))
	if page.Slug == "" {
		page.Slug = makeSlug(page.Title)
	}

	page.Status = domain.PageStatusDraft
	if r.PostFormValue("status") == domain.PageStatusPublish {
		page.Status = domain.PageStatusPublish
	}

	page.MenuOrder = 0
	if v := strings.TrimSpace(r.PostFormValue("menu_order")); v != "" {
		order, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid menu order %q", v)
		}
		page.MenuOrder = order
	}

	page.ParentID = 0
	if v := strings.TrimSpace(r.PostFormValue("parent_id")); v != "" {
		parent, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parent < 0 {
			return fmt.Errorf("invalid parent page %q", v)
		}
		page.ParentID = parent
	}

	if page.Title == "" {
		return errors.New("title is required")
	}
	if page.Slug == "" {
		return errors.New("slug is required")
	}
	return nil
}

// makeSlug converts a string to url-friendly slug
func makeSlug(s string) string {
	return strings.Trim(slugCleanRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-"), "-")
}
