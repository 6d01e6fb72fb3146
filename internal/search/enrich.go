package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lepinkainen/bookhunt/internal/books"
)

// enrich issues one Hardcover detail fetch for each of the top-ranked
// records that carry a slug but still have no tropes. Bulk search results
// carry weaker tag data than the detail endpoint, and fetching details for
// every hit would be wasteful, so only the top EnrichLimit candidates get
// the expensive call. Failures are logged and skipped per candidate.
func (e *Engine) enrich(ctx context.Context, ranked []*books.Book, query string) {
	limit := e.cfg.EnrichLimit
	if limit > len(ranked) {
		limit = len(ranked)
	}

	var wg sync.WaitGroup
	for _, candidate := range ranked[:limit] {
		if candidate.HardcoverSlug == "" || len(candidate.Tropes) > 0 {
			continue
		}

		wg.Add(1)
		// Each goroutine mutates only its own record, so the batch needs
		// no locking.
		go func(b *books.Book) {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(ctx, e.cfg.ProviderTimeout)
			defer cancel()

			detail, err := e.hardcover.BookBySlug(ctx, b.HardcoverSlug)
			if err != nil {
				slog.Warn("Enrichment fetch failed", "slug", b.HardcoverSlug, "query", query, "error", err)
				return
			}
			if detail == nil {
				slog.Debug("Enrichment found no record", "slug", b.HardcoverSlug)
				return
			}

			applyHardcoverTags(b, detail)
		}(candidate)
	}
	wg.Wait()
}
