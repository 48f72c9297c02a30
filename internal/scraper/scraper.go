package scraper

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/filmboard/filmboard/internal/config"
	"github.com/filmboard/filmboard/internal/fetcher"
	"github.com/filmboard/filmboard/internal/types"
)

// Scraper runs the one-shot scrape: index page, detail pages, normalization.
type Scraper struct {
	fetcher fetcher.Fetcher
	cfg     *config.Scraper
	logger  *slog.Logger
}

// New creates a Scraper over a shared fetcher.
func New(f fetcher.Fetcher, cfg *config.Scraper, logger *slog.Logger) *Scraper {
	return &Scraper{
		fetcher: f,
		cfg:     cfg,
		logger:  logger.With("component", "scraper"),
	}
}

// Run executes the full pipeline: collect detail-page links, fan out one
// goroutine per link over the shared client, wait for every one, drop
// failures, and order the survivors.
func (s *Scraper) Run(ctx context.Context) []types.FilmRecord {
	linkSet := s.CollectLinks(ctx)

	urls := make([]string, 0, len(linkSet))
	for u := range linkSet {
		urls = append(urls, u)
	}
	sort.Strings(urls) // deterministic launch order across runs

	s.logger.Info("detail pages queued", "count", len(urls))

	results := make([]*types.FilmRecord, len(urls))
	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			results[i] = s.ScrapeFilm(ctx, u)
		}(i, u)
	}
	wg.Wait()

	records := make([]types.FilmRecord, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}

	SortByBoxOffice(records)

	s.logger.Info("scrape complete",
		"records", len(records),
		"dropped", len(urls)-len(records),
	)
	return records
}

// SortByBoxOffice orders records descending by the box office string field.
// The comparison is plain lexicographic on the cleaned string, so amounts of
// differing length do not order numerically. Records without a box office
// value sort last.
func SortByBoxOffice(records []types.FilmRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].BoxOfficeKey() > records[j].BoxOfficeKey()
	})
}
