package domain

import (
	"errors"
	"time"
)

// page statuses
const (
	PageStatusPublish = "publish"
	PageStatusDraft   = "draft"
)

// ErrSlugExists is returned when another page already uses the slug
var ErrSlugExists = errors.New("slug already exists")

// Page represents a publishable page managed by the site
type Page struct {
	ID        int64     `json:"id"`
	ParentID  int64     `json:"parent_id,omitempty"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content,omitempty"`
	MenuOrder int       `json:"menu_order"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPublished returns true if the page is visible on the public site
func (p Page) IsPublished() bool {
	return p.Status == PageStatusPublish
}

// AdminPage is a page as shown in the admin listing, with its exclusion state
type AdminPage struct {
	Page
	Excluded bool `json:"excluded"`
}
