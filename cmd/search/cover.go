package search

import (
	"context"
	"log/slog"

	"github.com/lepinkainen/bookhunt/internal/books"
	"github.com/lepinkainen/bookhunt/internal/fileutil"
)

// downloadCovers fetches cover images for every result that has one.
// Failures are logged and skipped so one broken cover URL cannot fail
// the whole search.
func downloadCovers(ctx context.Context, results []books.Book, outputDir string) {
	for _, book := range results {
		if book.CoverURL == "" {
			continue
		}
		_, err := fileutil.DownloadCover(ctx, fileutil.CoverDownloadOptions{
			URL:       book.CoverURL,
			OutputDir: outputDir,
			Filename:  fileutil.CoverFilename(book.Title),
		})
		if err != nil {
			slog.Warn("Cover download failed", "title", book.Title, "url", book.CoverURL, "error", err)
		}
	}
}
