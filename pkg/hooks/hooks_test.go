package hooks

import (
	"context"
	"errors"
	"html/template"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/exclude-pages/pkg/domain"
)

func TestRegistry_Init(t *testing.T) {
	reg := New()
	var order []string
	reg.OnAdminInit(func(r *Registry) {
		order = append(order, "admin")
		r.AddSaveAction(func(context.Context, int64, url.Values) error { return nil })
	})
	reg.OnInit(func(r *Registry) {
		order = append(order, "init")
		r.AddPagesFilter(func(_ context.Context, pages []domain.Page, _ bool) ([]domain.Page, error) { return pages, nil })
	})

	require.NoError(t, reg.Init(context.Background()))
	assert.Equal(t, []string{"init", "admin"}, order)
	assert.Len(t, reg.filters, 1)
	assert.Len(t, reg.saveActions, 1)

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := New().Init(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "init hooks")
	})
}

func TestRegistry_ApplyPagesFilters(t *testing.T) {
	pages := []domain.Page{{ID: 1}, {ID: 2}, {ID: 3}}

	t.Run("no filters", func(t *testing.T) {
		res, err := New().ApplyPagesFilters(context.Background(), pages, false)
		require.NoError(t, err)
		assert.Equal(t, pages, res)
	})

	t.Run("filters chained in order", func(t *testing.T) {
		reg := New()
		reg.AddPagesFilter(func(_ context.Context, pp []domain.Page, _ bool) ([]domain.Page, error) {
			return pp[1:], nil
		})
		reg.AddPagesFilter(func(_ context.Context, pp []domain.Page, admin bool) ([]domain.Page, error) {
			assert.True(t, admin)
			assert.Equal(t, []domain.Page{{ID: 2}, {ID: 3}}, pp)
			return pp[:1], nil
		})
		res, err := reg.ApplyPagesFilters(context.Background(), pages, true)
		require.NoError(t, err)
		assert.Equal(t, []domain.Page{{ID: 2}}, res)
	})

	t.Run("error stops the chain", func(t *testing.T) {
		reg := New()
		reg.AddPagesFilter(func(context.Context, []domain.Page, bool) ([]domain.Page, error) {
			return nil, errors.New("store down")
		})
		reg.AddPagesFilter(func(context.Context, []domain.Page, bool) ([]domain.Page, error) {
			t.Fatal("should not be called")
			return nil, nil
		})
		_, err := reg.ApplyPagesFilters(context.Background(), pages, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store down")
	})
}

func TestRegistry_FirePageSaved(t *testing.T) {
	reg := New()
	var got []int64
	reg.AddSaveAction(func(_ context.Context, id int64, form url.Values) error {
		got = append(got, id)
		assert.Equal(t, "1", form.Get("x"))
		return nil
	})
	require.NoError(t, reg.FirePageSaved(context.Background(), 42, url.Values{"x": {"1"}}))
	assert.Equal(t, []int64{42}, got)

	reg.AddSaveAction(func(context.Context, int64, url.Values) error { return errors.New("failed") })
	err := reg.FirePageSaved(context.Background(), 43, url.Values{"x": {"1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 43")
}

func TestRegistry_Panels(t *testing.T) {
	render := func(body string) PanelRenderer {
		return func(context.Context, int64) (template.HTML, error) { return template.HTML(body), nil }
	}

	reg := New()
	reg.AddPanel(Panel{ID: "side-low", Screen: ScreenPage, Placement: PlacementSide, Priority: PriorityLow, Render: render("a")})
	reg.AddPanel(Panel{ID: "side-high", Screen: ScreenPage, Placement: PlacementSide, Priority: PriorityHigh, Render: render("b")})
	reg.AddPanel(Panel{ID: "normal", Screen: ScreenPage, Placement: PlacementNormal, Priority: PriorityLow, Render: render("c")})
	reg.AddPanel(Panel{ID: "other", Screen: "post", Placement: PlacementNormal, Render: render("d")})
	reg.AddPanel(Panel{ID: "side-low-2", Screen: ScreenPage, Placement: PlacementSide, Priority: PriorityLow, Render: render("e")})

	panels := reg.Panels(ScreenPage)
	ids := make([]string, 0, len(panels))
	for _, p := range panels {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"normal", "side-high", "side-low", "side-low-2"}, ids)
	assert.Empty(t, reg.Panels("unknown"))

	rendered, err := reg.RenderPanels(context.Background(), ScreenPage, 5)
	require.NoError(t, err)
	require.Len(t, rendered, 4)
	assert.Equal(t, template.HTML("c"), rendered[0].Body)
	assert.False(t, rendered[0].IsSide())
	assert.True(t, rendered[1].IsSide())

	reg.AddPanel(Panel{ID: "broken", Screen: ScreenPage, Render: func(context.Context, int64) (template.HTML, error) {
		return "", errors.New("boom")
	}})
	_, err = reg.RenderPanels(context.Background(), ScreenPage, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render panel broken")
}
