package fileutil

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestDownloadCover(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(jpegBytes(t, 4, 6))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	path, err := DownloadCover(context.Background(), CoverDownloadOptions{
		URL:       server.URL,
		OutputDir: dir,
		Filename:  "Dune - cover.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "Dune - cover.jpg"), path)
	require.True(t, FileExists(path))
}

func TestDownloadCoverEmptyURL(t *testing.T) {
	path, err := DownloadCover(context.Background(), CoverDownloadOptions{})
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestDownloadCoverSkipsExisting(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write(jpegBytes(t, 4, 4))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	opts := CoverDownloadOptions{URL: server.URL, OutputDir: dir, Filename: "x.jpg"}

	_, err := DownloadCover(context.Background(), opts)
	require.NoError(t, err)
	_, err = DownloadCover(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, 1, hits)

	opts.Overwrite = true
	_, err = DownloadCover(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, 2, hits)
}

func TestDownloadCoverBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	_, err := DownloadCover(context.Background(), CoverDownloadOptions{
		URL:       server.URL,
		OutputDir: t.TempDir(),
		Filename:  "x.jpg",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 404")
}

func TestDownloadCoverResizesWideImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(jpegBytes(t, 40, 20))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	path, err := DownloadCover(context.Background(), CoverDownloadOptions{
		URL:       server.URL,
		OutputDir: dir,
		Filename:  "wide.jpg",
		MaxWidth:  10,
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cfg, err := jpeg.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Width)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cover.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.True(t, FileExists(path))
	require.False(t, FileExists(filepath.Join(dir, "missing.jpg")))
	require.False(t, FileExists(dir), "directories are not files")
	// Stat errors other than not-exist (here ENOTDIR from a path routed
	// through a regular file) must report false, not panic.
	require.False(t, FileExists(filepath.Join(path, "child.jpg")))
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "Dune - Messiah", SanitizeFilename("Dune: Messiah"))
	require.Equal(t, "a-b-c", SanitizeFilename(`a/b\c`))
}

func TestCoverFilename(t *testing.T) {
	require.Equal(t, "Dune - cover.jpg", CoverFilename("Dune"))
}
