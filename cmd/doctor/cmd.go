// Package doctor implements the doctor command: connectivity and
// configuration checks for every metadata provider.
package doctor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lepinkainen/bookhunt/internal/config"
	"github.com/lepinkainen/bookhunt/internal/googlebooks"
	"github.com/lepinkainen/bookhunt/internal/hardcover"
	"github.com/lepinkainen/bookhunt/internal/openlibrary"
)

const pingTimeout = 10 * time.Second

type check struct {
	name string
	ping func(ctx context.Context) error
}

// Run pings every provider and reports which ones are reachable.
// Returns an error when any check fails so the exit code reflects the
// overall health.
func Run() error {
	checks := []check{
		{name: "googlebooks", ping: googlebooks.NewClient(config.GoogleBooksAPIKey).Ping},
		{name: "openlibrary", ping: openlibrary.NewClient().Ping},
	}

	hc, err := hardcover.NewClient(config.HardcoverAPIKey)
	if err != nil {
		slog.Warn("Hardcover check skipped", "error", err)
	} else {
		checks = append(checks, check{name: "hardcover", ping: hc.Ping})
	}

	failed := 0
	for _, c := range checks {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err := c.ping(ctx)
		cancel()

		if err != nil {
			failed++
			slog.Error("Provider unreachable", "provider", c.name, "error", err)
			continue
		}
		slog.Info("Provider OK", "provider", c.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d provider checks failed", failed, len(checks))
	}
	return nil
}
