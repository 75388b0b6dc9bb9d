package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/exclude-pages/pkg/config"
	"github.com/umputun/exclude-pages/pkg/domain"
	"github.com/umputun/exclude-pages/pkg/exclusion"
	"github.com/umputun/exclude-pages/pkg/feed"
	"github.com/umputun/exclude-pages/pkg/hooks"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database

//go:embed templates/*.html
var templatesFS embed.FS

// page templates, each one parsed together with base.html
var pageTemplateNames = []string{"index.html", "page.html", "admin-pages.html", "admin-edit.html"}

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	db         Database
	hooks      Hooks
	exclusions Exclusions
	version    string
	debug      bool

	lock          sync.Mutex
	httpServer    *http.Server
	router        *routegroup.Bundle
	pageTemplates map[string]*template.Template
	sanitizer     *bluemonday.Policy
}

// Database interface for page storage
type Database interface {
	GetPages(ctx context.Context, publishedOnly bool) ([]domain.Page, error)
	GetPage(ctx context.Context, id int64) (*domain.Page, error)
	GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error)
	CreatePage(ctx context.Context, page *domain.Page) error
	UpdatePage(ctx context.Context, page *domain.Page) error
	DeletePage(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// Hooks interface for site extension points
type Hooks interface {
	ApplyPagesFilters(ctx context.Context, pages []domain.Page, admin bool) ([]domain.Page, error)
	FirePageSaved(ctx context.Context, pageID int64, form url.Values) error
	RenderPanels(ctx context.Context, screen string, pageID int64) ([]hooks.RenderedPanel, error)
}

// Exclusions provides the current set of excluded pages for admin listings
type Exclusions interface {
	Excluded(ctx context.Context) (exclusion.Set, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetFullConfig() *config.Config
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, hk Hooks, exclusions Exclusions, version string, debug bool) *Server {
	s := &Server{
		config:        cfg,
		db:            db,
		hooks:         hk,
		exclusions:    exclusions,
		version:       version,
		debug:         debug,
		router:        routegroup.New(http.NewServeMux()),
		pageTemplates: make(map[string]*template.Template, len(pageTemplateNames)),
		sanitizer:     bluemonday.UGCPolicy(),
	}

	for _, name := range pageTemplateNames {
		s.pageTemplates[name] = template.Must(template.ParseFS(templatesFS, "templates/base.html", "templates/"+name))
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("exclude-pages", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes. Public routes list pages in non-admin context,
// admin routes are optionally protected by basic auth and list everything.
func (s *Server) setupRoutes() {
	// public site
	s.router.HandleFunc("GET /{$}", s.indexHandler)
	s.router.HandleFunc("GET /pages/{slug}", s.pageHandler)
	s.router.HandleFunc("GET /rss", s.rssHandler)

	// public API
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /pages", s.apiPagesHandler)
	})

	// admin interface
	s.router.Group().Route(func(r *routegroup.Bundle) {
		if user := s.config.GetFullConfig().Admin.User; user != "" {
			r.Use(rest.BasicAuthWithPrompt(user, s.config.GetFullConfig().Admin.Password))
		}
		r.HandleFunc("GET /admin/{$}", s.adminPagesHandler)
		r.HandleFunc("GET /admin/pages/new", s.adminNewPageHandler)
		r.HandleFunc("POST /admin/pages", s.adminCreatePageHandler)
		r.HandleFunc("GET /admin/pages/{id}/edit", s.adminEditPageHandler)
		r.HandleFunc("POST /admin/pages/{id}", s.adminUpdatePageHandler)
		r.HandleFunc("POST /admin/pages/{id}/delete", s.adminDeletePageHandler)
		r.HandleFunc("GET /api/v1/admin/pages", s.apiAdminPagesHandler)
	})
}

// renderPage renders a pre-parsed page template
func (s *Server) renderPage(w http.ResponseWriter, templateName string, data any) error {
	tmpl, ok := s.pageTemplates[templateName]
	if !ok {
		return fmt.Errorf("template %s not found", templateName)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, templateName, data)
}

// respondWithError logs the error and sends plain text error response
func (s *Server) respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	log.Printf("[ERROR] %s: %v", msg, err)
	http.Error(w, msg, code)
}

// siteTitle returns configured site title
func (s *Server) siteTitle() string {
	return s.config.GetFullConfig().Server.SiteTitle
}

// generator makes RSS generator for configured base URL
func (s *Server) generator() *feed.Generator {
	return feed.NewGenerator(s.config.GetFullConfig().Server.BaseURL)
}
