package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/exclude-pages/pkg/domain"
)

// Generator creates RSS feeds from pages
type Generator struct {
	baseURL   string
	sanitizer *bluemonday.Policy
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL:   strings.TrimRight(baseURL, "/"),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// PageLink returns public link to the page
func (g *Generator) PageLink(p domain.Page) string {
	return fmt.Sprintf("%s/pages/%s", g.baseURL, url.PathEscape(p.Slug))
}

// GenerateRSS creates an RSS 2.0 feed from pages, pages are expected to be already filtered
func (g *Generator) GenerateRSS(pages []domain.Page, siteTitle string) (string, error) {
	rssItems := make([]*RSSItem, 0, len(pages))
	lastBuild := time.Time{}
	for _, p := range pages {
		rssItems = append(rssItems, g.convertToRSSItem(p))
		if p.UpdatedAt.After(lastBuild) {
			lastBuild = p.UpdatedAt
		}
	}
	if lastBuild.IsZero() {
		lastBuild = time.Now()
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         siteTitle,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("%s - pages", siteTitle),
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: lastBuild.Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a page to an RSS item, content is sanitized the same way as on the page view
func (g *Generator) convertToRSSItem(p domain.Page) *RSSItem {
	return &RSSItem{
		Title:       p.Title,
		Link:        g.PageLink(p),
		GUID:        fmt.Sprintf("page-%d", p.ID),
		Description: g.sanitizer.Sanitize(p.Content),
		PubDate:     p.UpdatedAt.Format(time.RFC1123Z),
	}
}
