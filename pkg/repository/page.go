package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/exclude-pages/pkg/domain"
)

// PageRepository handles page-related database operations
type PageRepository struct {
	db *sqlx.DB
}

// pageSQL represents a page for SQL operations
type pageSQL struct {
	ID        int64     `db:"id"`
	ParentID  int64     `db:"parent_id"`
	Title     string    `db:"title"`
	Slug      string    `db:"slug"`
	Content   string    `db:"content"`
	MenuOrder int       `db:"menu_order"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewPageRepository creates a new page repository
func NewPageRepository(db *sqlx.DB) *PageRepository {
	return &PageRepository{db: db}
}

// CreatePage inserts a new page and sets its ID and timestamps
func (r *PageRepository) CreatePage(ctx context.Context, page *domain.Page) error {
	now := time.Now().UTC().Truncate(time.Second)
	rec := r.toSQL(page)
	rec.CreatedAt, rec.UpdatedAt = now, now

	query := `
		INSERT INTO pages (parent_id, title, slug, content, menu_order, status, created_at, updated_at)
		VALUES (:parent_id, :title, :slug, :content, :menu_order, :status, :created_at, :updated_at)
	`
	result, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		return fmt.Errorf("create page: %w", slugError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	page.ID = id
	page.Status = rec.Status
	page.CreatedAt, page.UpdatedAt = now, now
	return nil
}

// GetPage retrieves a page by ID, returns sql.ErrNoRows (wrapped) if not found
func (r *PageRepository) GetPage(ctx context.Context, id int64) (*domain.Page, error) {
	var rec pageSQL
	if err := r.db.GetContext(ctx, &rec, "SELECT * FROM pages WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get page %d: %w", id, err)
	}
	return r.toDomain(&rec), nil
}

// GetPageBySlug retrieves a page by slug, returns sql.ErrNoRows (wrapped) if not found
func (r *PageRepository) GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	var rec pageSQL
	if err := r.db.GetContext(ctx, &rec, "SELECT * FROM pages WHERE slug = ?", slug); err != nil {
		return nil, fmt.Errorf("get page %q: %w", slug, err)
	}
	return r.toDomain(&rec), nil
}

// GetPages retrieves pages ordered by menu order and title
func (r *PageRepository) GetPages(ctx context.Context, publishedOnly bool) ([]domain.Page, error) {
	query := "SELECT * FROM pages"
	args := []any{}
	if publishedOnly {
		query += " WHERE status = ?"
		args = append(args, domain.PageStatusPublish)
	}
	query += " ORDER BY menu_order, title, id"

	var recs []pageSQL
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("get pages: %w", err)
	}

	pages := make([]domain.Page, len(recs))
	for i := range recs {
		pages[i] = *r.toDomain(&recs[i])
	}
	return pages, nil
}

// UpdatePage updates page fields and bumps updated_at
func (r *PageRepository) UpdatePage(ctx context.Context, page *domain.Page) error {
	now := time.Now().UTC().Truncate(time.Second)
	query := `
		UPDATE pages
		SET parent_id = ?, title = ?, slug = ?, content = ?, menu_order = ?, status = ?, updated_at = ?
		WHERE id = ?
	`
	res, err := execWithRetry(ctx, r.db, query, page.ParentID, page.Title, page.Slug, page.Content,
		page.MenuOrder, page.Status, now, page.ID)
	if err != nil {
		return fmt.Errorf("update page %d: %w", page.ID, slugError(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update page %d: %w", page.ID, sql.ErrNoRows)
	}
	page.UpdatedAt = now
	return nil
}

// DeletePage removes a page
func (r *PageRepository) DeletePage(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete page %d: %w", id, err)
	}
	return nil
}

// slugError maps unique slug violation to domain.ErrSlugExists, other errors returned as is
func slugError(err error) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed: pages.slug") {
		return domain.ErrSlugExists
	}
	return err
}

// Ping verifies the database connection
func (r *PageRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *PageRepository) toSQL(p *domain.Page) *pageSQL {
	status := p.Status
	if status == "" {
		status = domain.PageStatusDraft
	}
	return &pageSQL{
		ID:        p.ID,
		ParentID:  p.ParentID,
		Title:     p.Title,
		Slug:      p.Slug,
		Content:   p.Content,
		MenuOrder: p.MenuOrder,
		Status:    status,
	}
}

func (r *PageRepository) toDomain(p *pageSQL) *domain.Page {
	return &domain.Page{
		ID:        p.ID,
		ParentID:  p.ParentID,
		Title:     p.Title,
		Slug:      p.Slug,
		Content:   p.Content,
		MenuOrder: p.MenuOrder,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
