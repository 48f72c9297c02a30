package scraper

import (
	"context"
	"net/url"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// CollectLinks fetches the index page and returns the set of film detail
// URLs found in its ranked tables. A fetch failure or a page without ranked
// tables yields an empty set, not an error.
func (s *Scraper) CollectLinks(ctx context.Context) map[string]struct{} {
	body, err := s.fetcher.Fetch(ctx, s.cfg.IndexURL)
	if err != nil {
		s.logger.Warn("index page unavailable", "url", s.cfg.IndexURL, "error", err)
		return map[string]struct{}{}
	}

	doc, err := htmlquery.Parse(strings.NewReader(body))
	if err != nil {
		s.logger.Warn("index page unparsable", "url", s.cfg.IndexURL, "error", err)
		return map[string]struct{}{}
	}

	links := extractFilmLinks(doc, s.cfg.BaseURL, s.cfg.AllTables)
	s.logger.Info("film links extracted", "count", len(links), "all_tables", s.cfg.AllTables)
	return links
}

// extractFilmLinks walks the ranked wikitable tables of the index page.
// In the first two tables the film link sits inside the row header cell's
// <i><a>; in the remaining tables it sits inside the first data cell's
// <i><a>. Rows without that nested structure contribute nothing. Hrefs are
// resolved against the base URL; the set collapses cross-table duplicates.
func extractFilmLinks(doc *html.Node, baseURL string, allTables bool) map[string]struct{} {
	links := make(map[string]struct{})

	base, err := url.Parse(baseURL)
	if err != nil {
		return links
	}

	tables := htmlquery.Find(doc, "//table[contains(@class, 'wikitable')]")
	if len(tables) == 0 {
		return links
	}
	if !allTables {
		tables = tables[:1]
	}

	for i, table := range tables {
		expr := "./th//i//a"
		if i >= 2 {
			expr = "./td[1]//i//a"
		}

		for _, row := range htmlquery.Find(table, ".//tr") {
			a := htmlquery.FindOne(row, expr)
			if a == nil {
				continue
			}
			href := htmlquery.SelectAttr(a, "href")
			if href == "" {
				continue
			}
			ref, err := url.Parse(href)
			if err != nil {
				continue
			}
			links[base.ResolveReference(ref).String()] = struct{}{}
		}
	}

	return links
}
