package feed

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/exclude-pages/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com/")

	updated := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	pages := []domain.Page{
		{ID: 3, Title: "About", Slug: "about", Content: "<p>about us</p>", UpdatedAt: updated},
		{ID: 7, Title: "Contact & Map", Slug: "contact", Content: "call us", UpdatedAt: updated.Add(time.Hour)},
	}

	rss, err := generator.GenerateRSS(pages, "Example")
	require.NoError(t, err)

	assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, rss, `<title>Contact &amp; Map</title>`)
	assert.Contains(t, rss, `href="https://example.com/rss"`)
	assert.Contains(t, rss, `<link>https://example.com/</link>`)

	// parse it back with a real feed parser
	parsed, err := gofeed.NewParser().ParseString(rss)
	require.NoError(t, err)
	assert.Equal(t, "Example", parsed.Title)
	require.Len(t, parsed.Items, 2)

	assert.Equal(t, "About", parsed.Items[0].Title)
	assert.Equal(t, "https://example.com/pages/about", parsed.Items[0].Link)
	assert.Equal(t, "page-3", parsed.Items[0].GUID)
	assert.Equal(t, "<p>about us</p>", parsed.Items[0].Description)
	require.NotNil(t, parsed.Items[0].PublishedParsed)
	assert.True(t, updated.Equal(*parsed.Items[0].PublishedParsed))

	assert.Equal(t, "Contact & Map", parsed.Items[1].Title)
	assert.Equal(t, "page-7", parsed.Items[1].GUID)
	assert.Contains(t, rss, "<lastBuildDate>"+updated.Add(time.Hour).Format(time.RFC1123Z)+"</lastBuildDate>")
}

func TestGenerator_GenerateRSS_SanitizedDescription(t *testing.T) {
	pages := []domain.Page{{
		ID: 1, Title: "About", Slug: "about", UpdatedAt: time.Now(),
		Content: `<p onclick="steal()">hello</p><script>alert("x")</script><a href="javascript:alert(1)">link</a>`,
	}}
	rss, err := NewGenerator("https://example.com").GenerateRSS(pages, "Example")
	require.NoError(t, err)
	assert.NotContains(t, rss, "script")
	assert.NotContains(t, rss, "onclick")
	assert.NotContains(t, rss, "javascript:")

	parsed, err := gofeed.NewParser().ParseString(rss)
	require.NoError(t, err)
	require.Len(t, parsed.Items, 1)
	assert.Contains(t, parsed.Items[0].Description, "<p>hello</p>")
	assert.Contains(t, parsed.Items[0].Description, "link")
}

func TestGenerator_GenerateRSS_Empty(t *testing.T) {
	rss, err := NewGenerator("http://localhost:8080").GenerateRSS(nil, "Site")
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(rss)
	require.NoError(t, err)
	assert.Equal(t, "Site", parsed.Title)
	assert.Empty(t, parsed.Items)
}

func TestGenerator_PageLink(t *testing.T) {
	g := NewGenerator("https://example.com")
	assert.Equal(t, "https://example.com/pages/about", g.PageLink(domain.Page{Slug: "about"}))
	assert.Equal(t, "https://example.com/pages/a%20b", g.PageLink(domain.Page{Slug: "a b"}))
}
