package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/filmboard/filmboard/internal/types"
)

// releaseLabels are the alternative row labels a film infobox may use for
// its release date, in lookup preference order.
var releaseLabels = []string{"Release date", "Release dates", "Released"}

// countryLabels are the alternative row labels for the production country.
var countryLabels = []string{"Country", "Countries"}

// ScrapeFilm fetches one detail page and parses its infobox. Returns nil on
// fetch failure or when no record could be extracted; both are per-page
// conditions that never abort the batch.
func (s *Scraper) ScrapeFilm(ctx context.Context, pageURL string) *types.FilmRecord {
	body, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil
	}

	rec, err := parseFilmPage(body, pageURL)
	if err != nil {
		s.logger.Debug("no record extracted", "url", pageURL, "reason", err)
		return nil
	}
	return rec
}

// parseFilmPage extracts a FilmRecord from detail-page HTML. A page without
// an infobox or without a title yields no record. Every other field
// degrades to nil independently.
func parseFilmPage(body, pageURL string) (*types.FilmRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, &types.ParseError{URL: pageURL, Err: err}
	}

	box := doc.Find("table.infobox").First()
	if box.Length() == 0 {
		return nil, &types.ParseError{URL: pageURL, Err: types.ErrNoInfobox}
	}

	title := strings.TrimSpace(box.Find("tr").First().Text())
	if title == "" {
		return nil, &types.ParseError{URL: pageURL, Err: types.ErrNoTitle}
	}

	rec := &types.FilmRecord{
		Title: title,
		URL:   pageURL,
	}

	if raw, ok := infoboxField(box, releaseLabels...); ok {
		if year, found := extractYear(raw); found {
			rec.ReleaseYear = types.IntPtr(year)
		}
	}
	if raw, ok := infoboxField(box, "Directed by"); ok {
		rec.Director = types.StringPtr(normalizeList(raw))
	}
	if raw, ok := infoboxField(box, "Box office"); ok {
		rec.BoxOffice = types.StringPtr(cleanMoney(raw))
	}
	if raw, ok := infoboxField(box, countryLabels...); ok {
		rec.Country = types.StringPtr(normalizeList(raw))
	}

	return rec, nil
}

// infoboxField returns the value text of the first row whose header matches
// one of the given labels, trying labels in order.
func infoboxField(box *goquery.Selection, labels ...string) (string, bool) {
	for _, label := range labels {
		var value string
		var found bool

		box.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
			th := row.Find("th").First()
			if strings.TrimSpace(th.Text()) != label {
				return true
			}
			td := row.Find("td").First()
			if td.Length() == 0 {
				return true
			}
			value = strings.TrimSpace(td.Text())
			found = true
			return false
		})

		if found {
			return value, true
		}
	}
	return "", false
}
