// Package search implements the search command: it wires the provider
// clients together, runs the merge pipeline and renders the results.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lepinkainen/bookhunt/internal/config"
	"github.com/lepinkainen/bookhunt/internal/googlebooks"
	"github.com/lepinkainen/bookhunt/internal/hardcover"
	"github.com/lepinkainen/bookhunt/internal/openlibrary"
	booksearch "github.com/lepinkainen/bookhunt/internal/search"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Options contains all options for the search command
type Options struct {
	Query          string
	Format         Format
	LangRestrict   string
	DownloadCovers bool
	CoverDir       string
}

// Run executes a search with the given options.
func Run(opts Options) error {
	if opts.Query == "" {
		return fmt.Errorf("empty search query")
	}

	hc, err := hardcover.NewClient(config.HardcoverAPIKey)
	if err != nil {
		return fmt.Errorf("configuring hardcover client: %w", err)
	}

	engine := booksearch.NewEngine(
		googlebooks.NewClient(config.GoogleBooksAPIKey),
		openlibrary.NewClient(),
		hc,
		booksearch.Config{
			FuzzyLengthRatio: config.FuzzyLengthRatio,
			EnrichLimit:      config.EnrichLimit,
			MaxResults:       config.MaxResults,
			ProviderTimeout:  config.ProviderTimeout,
			LangRestrict:     opts.LangRestrict,
		},
	)

	ctx := context.Background()
	results, err := engine.Search(ctx, opts.Query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	slog.Debug("Search finished", "query", opts.Query, "results", len(results))

	if opts.DownloadCovers {
		downloadCovers(ctx, results, opts.CoverDir)
	}

	switch opts.Format {
	case FormatJSON:
		return writeJSON(os.Stdout, results)
	case FormatYAML:
		return writeYAML(os.Stdout, results)
	default:
		return writeText(os.Stdout, opts.Query, results)
	}
}
