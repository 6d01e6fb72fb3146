// Package search implements the multi-source book search pipeline: a
// concurrent fan-out to three metadata providers, a sequential fold into
// deduplicated unified records, relevance ranking and a capped tag
// enrichment pass.
package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lepinkainen/bookhunt/internal/books"
	"github.com/lepinkainen/bookhunt/internal/googlebooks"
	"github.com/lepinkainen/bookhunt/internal/hardcover"
	"github.com/lepinkainen/bookhunt/internal/match"
	"github.com/lepinkainen/bookhunt/internal/openlibrary"
)

// GoogleSearcher is the slice of the Google Books client the engine needs.
type GoogleSearcher interface {
	Search(ctx context.Context, query string, opts googlebooks.SearchOptions) ([]googlebooks.Book, error)
}

// OpenLibrarySearcher is the slice of the Open Library client the engine needs.
type OpenLibrarySearcher interface {
	Search(ctx context.Context, query string, limit int) ([]openlibrary.Book, error)
}

// HardcoverSearcher is the slice of the Hardcover client the engine needs.
type HardcoverSearcher interface {
	Search(ctx context.Context, query string) ([]hardcover.Book, error)
	BookBySlug(ctx context.Context, slug string) (*hardcover.Book, error)
}

var (
	_ GoogleSearcher      = (*googlebooks.Client)(nil)
	_ OpenLibrarySearcher = (*openlibrary.Client)(nil)
	_ HardcoverSearcher   = (*hardcover.Client)(nil)
)

// Config tunes the pipeline. Zero values fall back to the defaults the
// original tuning settled on.
type Config struct {
	// FuzzyLengthRatio is the containment threshold for fuzzy title matches.
	FuzzyLengthRatio float64
	// EnrichLimit caps how many top-ranked records get a detail fetch.
	EnrichLimit int
	// MaxResults bounds per-provider search result counts.
	MaxResults int
	// ProviderTimeout bounds each provider call.
	ProviderTimeout time.Duration
	// LangRestrict narrows Google Books results to a two-letter language code.
	LangRestrict string
}

// DefaultConfig returns the standard pipeline tuning.
func DefaultConfig() Config {
	return Config{
		FuzzyLengthRatio: match.DefaultLengthRatio,
		EnrichLimit:      8,
		MaxResults:       20,
		ProviderTimeout:  10 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.FuzzyLengthRatio <= 0 {
		c.FuzzyLengthRatio = def.FuzzyLengthRatio
	}
	if c.EnrichLimit <= 0 {
		c.EnrichLimit = def.EnrichLimit
	}
	if c.MaxResults <= 0 {
		c.MaxResults = def.MaxResults
	}
	if c.ProviderTimeout <= 0 {
		c.ProviderTimeout = def.ProviderTimeout
	}
	return c
}

// Engine merges search results from the three providers into ranked,
// deduplicated unified records.
type Engine struct {
	google      GoogleSearcher
	openLibrary OpenLibrarySearcher
	hardcover   HardcoverSearcher
	fuzzy       match.Fuzzy
	cfg         Config
}

// NewEngine creates a search engine over the three provider clients.
func NewEngine(google GoogleSearcher, openLibrary OpenLibrarySearcher, hardcover HardcoverSearcher, cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		google:      google,
		openLibrary: openLibrary,
		hardcover:   hardcover,
		fuzzy:       match.NewFuzzy(cfg.FuzzyLengthRatio),
		cfg:         cfg,
	}
}

// Search runs the full pipeline for a free-text query. Provider failures
// are tolerated per source: a failed provider contributes nothing and the
// caller still gets whatever the others returned. An empty slice is a
// valid result, not an error.
func (e *Engine) Search(ctx context.Context, query string) ([]books.Book, error) {
	var (
		googleResults      []googlebooks.Book
		openLibraryResults []openlibrary.Book
		hardcoverResults   []hardcover.Book
		googleErr          error
		openLibraryErr     error
		hardcoverErr       error
	)

	// Fan out to all three providers and wait for every call to settle.
	// Each goroutine writes to its own slot, so no locking is needed.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		ctx, cancel := context.WithTimeout(ctx, e.cfg.ProviderTimeout)
		defer cancel()
		googleResults, googleErr = e.google.Search(ctx, query, googlebooks.SearchOptions{
			MaxResults:   e.cfg.MaxResults,
			OrderBy:      "relevance",
			LangRestrict: e.cfg.LangRestrict,
		})
	}()
	go func() {
		defer wg.Done()
		ctx, cancel := context.WithTimeout(ctx, e.cfg.ProviderTimeout)
		defer cancel()
		openLibraryResults, openLibraryErr = e.openLibrary.Search(ctx, query, e.cfg.MaxResults)
	}()
	go func() {
		defer wg.Done()
		ctx, cancel := context.WithTimeout(ctx, e.cfg.ProviderTimeout)
		defer cancel()
		hardcoverResults, hardcoverErr = e.hardcover.Search(ctx, query)
	}()
	wg.Wait()

	if googleErr != nil {
		slog.Warn("Provider search failed", "source", books.SourceGoogle, "query", query, "error", googleErr)
	}
	if openLibraryErr != nil {
		slog.Warn("Provider search failed", "source", books.SourceOpenLibrary, "query", query, "error", openLibraryErr)
	}
	if hardcoverErr != nil {
		slog.Warn("Provider search failed", "source", books.SourceHardcover, "query", query, "error", hardcoverErr)
	}

	// All three result sets are buffered before folding starts; the fold
	// runs in fixed priority order so arrival order never changes which
	// source wins a field.
	acc := newAccumulator()
	e.foldGoogle(acc, googleResults)
	e.foldOpenLibrary(acc, openLibraryResults)
	e.foldHardcover(acc, hardcoverResults)

	ranked := rank(acc.books())
	e.enrich(ctx, ranked, query)

	results := make([]books.Book, len(ranked))
	for i, b := range ranked {
		results[i] = *b
	}
	return results, nil
}
