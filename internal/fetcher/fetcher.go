package fetcher

import (
	"context"
)

// Fetcher retrieves page content over HTTP.
type Fetcher interface {
	// Fetch retrieves the body at the given URL. A non-2xx status or a
	// transport failure yields an error; callers treat any error as
	// "no content" for that URL.
	Fetch(ctx context.Context, rawURL string) (string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
