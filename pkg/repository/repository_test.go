package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/exclude-pages/pkg/domain"
)

// setupTestDB creates repositories on top of in-memory database
func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Page.Ping(context.Background()))
	assert.NotNil(t, repos.Page)
	assert.NotNil(t, repos.Setting)

	// schema init is idempotent
	require.NoError(t, initSchema(context.Background(), repos.DB))
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	value, err := repos.Setting.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingExcludedPages, "[5,9]"))
	value, err = repos.Setting.GetSetting(ctx, domain.SettingExcludedPages)
	require.NoError(t, err)
	assert.Equal(t, "[5,9]", value)

	require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingExcludedPages, "[5]"))
	value, err = repos.Setting.GetSetting(ctx, domain.SettingExcludedPages)
	require.NoError(t, err)
	assert.Equal(t, "[5]", value)

	var count int
	require.NoError(t, repos.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM settings"))
	assert.Equal(t, 1, count, "upsert keeps a single row")
}

func TestSettingRepository_ClosedDB(t *testing.T) {
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, repos.Close())

	_, err = repos.Setting.GetSetting(context.Background(), "key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get setting")

	err = repos.Setting.SetSetting(context.Background(), "key", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set setting")

	assert.Error(t, repos.Page.Ping(context.Background()))
}

func TestPageRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	about := &domain.Page{Title: "About", Slug: "about", Content: "<p>about</p>", MenuOrder: 2, Status: domain.PageStatusPublish}
	contact := &domain.Page{Title: "Contact", Slug: "contact", MenuOrder: 1, Status: domain.PageStatusPublish}
	draft := &domain.Page{Title: "Draft", Slug: "draft"}

	for _, p := range []*domain.Page{about, contact, draft} {
		require.NoError(t, repos.Page.CreatePage(ctx, p))
		assert.NotZero(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	}
	assert.Equal(t, domain.PageStatusDraft, draft.Status, "status defaults to draft")

	t.Run("get by id and slug", func(t *testing.T) {
		p, err := repos.Page.GetPage(ctx, about.ID)
		require.NoError(t, err)
		assert.Equal(t, "About", p.Title)
		assert.Equal(t, "<p>about</p>", p.Content)
		assert.True(t, p.IsPublished())

		p, err = repos.Page.GetPageBySlug(ctx, "contact")
		require.NoError(t, err)
		assert.Equal(t, contact.ID, p.ID)

		_, err = repos.Page.GetPage(ctx, 9999)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		_, err = repos.Page.GetPageBySlug(ctx, "nope")
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})

	t.Run("list ordered by menu order", func(t *testing.T) {
		pages, err := repos.Page.GetPages(ctx, true)
		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "Contact", pages[0].Title)
		assert.Equal(t, "About", pages[1].Title)

		all, err := repos.Page.GetPages(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		err := repos.Page.CreatePage(ctx, &domain.Page{Title: "Again", Slug: "about"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create page")
		assert.ErrorIs(t, err, domain.ErrSlugExists)

		renamed := *contact
		renamed.Slug = "about"
		err = repos.Page.UpdatePage(ctx, &renamed)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSlugExists)

		p, err := repos.Page.GetPage(ctx, contact.ID)
		require.NoError(t, err)
		assert.Equal(t, "contact", p.Slug, "failed update keeps the old slug")
	})

	t.Run("update", func(t *testing.T) {
		draft.Title = "Published now"
		draft.Status = domain.PageStatusPublish
		require.NoError(t, repos.Page.UpdatePage(ctx, draft))

		p, err := repos.Page.GetPage(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, "Published now", p.Title)
		assert.True(t, p.IsPublished())

		err = repos.Page.UpdatePage(ctx, &domain.Page{ID: 9999, Title: "x", Slug: "x", Status: domain.PageStatusDraft})
		require.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repos.Page.DeletePage(ctx, contact.ID))
		_, err := repos.Page.GetPage(ctx, contact.ID)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.True(t, isLockError(errors.New("SQLITE_BUSY: busy")))
	assert.True(t, isLockError(errors.New("database is locked")))
	assert.True(t, isLockError(errors.New("database table is locked")))
	assert.False(t, isLockError(errors.New("no such table")))
}
