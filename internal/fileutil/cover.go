package fileutil

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

const (
	// defaultMaxWidth keeps downloaded covers at a reasonable size.
	defaultMaxWidth = 1000
	jpegQuality     = 85
)

// CoverDownloadOptions holds options for downloading a cover image.
type CoverDownloadOptions struct {
	// URL is the source URL of the cover image
	URL string
	// OutputDir is the directory where the cover will be saved
	OutputDir string
	// Filename is the name of the cover file (e.g., "Dune - cover.jpg")
	Filename string
	// Overwrite forces re-downloading even if the cover exists
	Overwrite bool
	// MaxWidth overrides the resize bound (0 uses the default)
	MaxWidth int
}

// DownloadCover fetches a cover image, resizes it when wider than the
// bound and saves it as JPEG. Returns the local path, or "" when opts.URL
// is empty. Existing files are kept unless Overwrite is set.
func DownloadCover(ctx context.Context, opts CoverDownloadOptions) (string, error) {
	if opts.URL == "" {
		return "", nil
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("creating cover directory: %w", err)
	}

	localPath := filepath.Join(opts.OutputDir, opts.Filename)
	if FileExists(localPath) && !opts.Overwrite {
		slog.Debug("Cover already exists, skipping download", "path", localPath)
		return localPath, nil
	}

	client := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return "", fmt.Errorf("creating cover request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading cover: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d downloading cover from %s", resp.StatusCode, opts.URL)
	}

	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decoding cover image: %w", err)
	}

	maxWidth := opts.MaxWidth
	if maxWidth <= 0 {
		maxWidth = defaultMaxWidth
	}
	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := imaging.Save(img, localPath, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("saving cover: %w", err)
	}

	slog.Info("Downloaded cover", "path", localPath)
	return localPath, nil
}

// CoverFilename creates a standard cover filename from a title.
// Returns: "Title - cover.jpg"
func CoverFilename(title string) string {
	return SanitizeFilename(title) + " - cover.jpg"
}
