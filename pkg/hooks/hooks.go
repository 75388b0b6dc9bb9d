// Package hooks implements the site's extension points: lifecycle callbacks, the "pages fetched" filter chain,
// the "page saved" actions and the edit-screen panels. Everything is registered at startup and read-only afterwards.
package hooks

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"sort"
	"sync"

	"github.com/umputun/exclude-pages/pkg/domain"
)

// ScreenPage is the page edit screen
const ScreenPage = "page"

// Placement defines where a panel is rendered on the edit screen
type Placement int

// panel placements, rendered in this order
const (
	PlacementNormal Placement = iota
	PlacementSide
)

// Priority defines panel order within the same placement
type Priority int

// panel priorities, rendered in this order
const (
	PriorityHigh Priority = iota
	PriorityDefault
	PriorityLow
)

// PagesFilter transforms a list of fetched pages. admin is true when the list is built for the admin interface.
type PagesFilter func(ctx context.Context, pages []domain.Page, admin bool) ([]domain.Page, error)

// SaveAction is called after a page is saved, with the submitted form
type SaveAction func(ctx context.Context, pageID int64, form url.Values) error

// PanelRenderer renders a panel body for the given page, pageID is 0 for a page not created yet
type PanelRenderer func(ctx context.Context, pageID int64) (template.HTML, error)

// Panel is a block rendered on an edit screen
type Panel struct {
	ID        string
	Title     string
	Screen    string
	Placement Placement
	Priority  Priority
	Render    PanelRenderer
}

// RenderedPanel is a panel with its rendered body
type RenderedPanel struct {
	ID        string
	Title     string
	Placement Placement
	Body      template.HTML
}

// IsSide returns true for panels placed in the side column
func (p RenderedPanel) IsSide() bool {
	return p.Placement == PlacementSide
}

// Registry keeps all registered callbacks
type Registry struct {
	mu          sync.RWMutex
	onInit      []func(r *Registry)
	onAdminInit []func(r *Registry)
	filters     []PagesFilter
	saveActions []SaveAction
	panels      []Panel
}

// New makes an empty registry
func New() *Registry {
	return &Registry{}
}

// OnInit registers a callback fired by Init
func (r *Registry) OnInit(fn func(r *Registry)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onInit = append(r.onInit, fn)
}

// OnAdminInit registers a callback fired by Init after all init callbacks
func (r *Registry) OnAdminInit(fn func(r *Registry)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onAdminInit = append(r.onAdminInit, fn)
}

// Init fires init callbacks and then admin-init callbacks. Callbacks may register filters, actions and panels.
func (r *Registry) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("init hooks: %w", err)
	}

	r.mu.RLock()
	initFns := append([]func(*Registry){}, r.onInit...)
	adminFns := append([]func(*Registry){}, r.onAdminInit...)
	r.mu.RUnlock()

	for _, fn := range initFns {
		fn(r)
	}
	for _, fn := range adminFns {
		fn(r)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	log.Printf("[DEBUG] hooks initialized, filters: %d, save actions: %d, panels: %d",
		len(r.filters), len(r.saveActions), len(r.panels))
	return nil
}

// AddPagesFilter adds a filter to the "pages fetched" chain
func (r *Registry) AddPagesFilter(fn PagesFilter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, fn)
}

// AddSaveAction adds an action fired after a page is saved
func (r *Registry) AddSaveAction(fn SaveAction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveActions = append(r.saveActions, fn)
}

// AddPanel adds an edit-screen panel
func (r *Registry) AddPanel(p Panel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panels = append(r.panels, p)
}

// ApplyPagesFilters runs all filters in registration order, each one gets the output of the previous
func (r *Registry) ApplyPagesFilters(ctx context.Context, pages []domain.Page, admin bool) ([]domain.Page, error) {
	r.mu.RLock()
	filters := r.filters
	r.mu.RUnlock()

	res := pages
	for i, fn := range filters {
		var err error
		if res, err = fn(ctx, res, admin); err != nil {
			return nil, fmt.Errorf("pages filter #%d: %w", i, err)
		}
	}
	return res, nil
}

// FirePageSaved runs all save actions for the page, stops on the first error
func (r *Registry) FirePageSaved(ctx context.Context, pageID int64, form url.Values) error {
	r.mu.RLock()
	actions := r.saveActions
	r.mu.RUnlock()

	for i, fn := range actions {
		if err := fn(ctx, pageID, form); err != nil {
			return fmt.Errorf("save action #%d for page %d: %w", i, pageID, err)
		}
	}
	return nil
}

// Panels returns panels registered for the screen, ordered by placement and priority
func (r *Registry) Panels(screen string) []Panel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := []Panel{}
	for _, p := range r.panels {
		if p.Screen == screen {
			res = append(res, p)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Placement != res[j].Placement {
			return res[i].Placement < res[j].Placement
		}
		return res[i].Priority < res[j].Priority
	})
	return res
}

// RenderPanels renders all panels of the screen for the page
func (r *Registry) RenderPanels(ctx context.Context, screen string, pageID int64) ([]RenderedPanel, error) {
	panels := r.Panels(screen)
	res := make([]RenderedPanel, 0, len(panels))
	for _, p := range panels {
		body, err := p.Render(ctx, pageID)
		if err != nil {
			return nil, fmt.Errorf("render panel %s: %w", p.ID, err)
		}
		res = append(res, RenderedPanel{ID: p.ID, Title: p.Title, Placement: p.Placement, Body: body})
	}
	return res, nil
}
