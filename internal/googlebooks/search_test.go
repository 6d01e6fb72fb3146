package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	bookerrors "github.com/lepinkainen/bookhunt/internal/errors"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("", WithBaseURL(server.URL), WithRetryAttempts(1))
}

func TestSearchSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/volumes", r.URL.Path)
		require.Equal(t, "dune", r.URL.Query().Get("q"))
		require.Equal(t, "10", r.URL.Query().Get("maxResults"))
		require.Equal(t, "en", r.URL.Query().Get("langRestrict"))

		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{
				"id": "B1MsMARTkuwC",
				"volumeInfo": {
					"title": "Dune",
					"authors": ["Frank Herbert"],
					"publisher": "Penguin",
					"publishedDate": "1990-09-01",
					"description": "The sweeping tale of Arrakis.",
					"pageCount": 658,
					"categories": ["Fiction"],
					"language": "en",
					"industryIdentifiers": [
						{"type": "ISBN_10", "identifier": "0441013597"},
						{"type": "ISBN_13", "identifier": "9780441013593"}
					],
					"imageLinks": {
						"thumbnail": "http://books.google.com/books/content?id=B1MsMARTkuwC&zoom=1",
						"smallThumbnail": "http://books.google.com/books/content?id=B1MsMARTkuwC&zoom=5"
					}
				}
			}]
		}`))
	})

	books, err := client.Search(context.Background(), "dune", SearchOptions{MaxResults: 10, LangRestrict: "en"})
	require.NoError(t, err)
	require.Len(t, books, 1)

	book := books[0]
	require.Equal(t, "B1MsMARTkuwC", book.VolumeID)
	require.Equal(t, "Dune", book.Title)
	require.Equal(t, []string{"Frank Herbert"}, book.Authors)
	require.Equal(t, "9780441013593", book.ISBN13)
	require.Equal(t, "0441013597", book.ISBN10)
	require.Equal(t, 658, book.PageCount)
	require.Equal(t, "https://books.google.com/books/content?id=B1MsMARTkuwC&zoom=0", book.CoverURL)
}

func TestSearchNoResultsIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	})

	books, err := client.Search(context.Background(), "zzzz", SearchOptions{})
	require.NoError(t, err)
	require.Empty(t, books)
}

func TestSearchServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), "dune", SearchOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 500")
	require.True(t, bookerrors.IsProviderError(err))

	var pe *bookerrors.ProviderError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "google", pe.Source)
}

func TestSearchRateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), "dune", SearchOptions{})
	require.Error(t, err)
	require.True(t, bookerrors.IsRateLimitError(err))
}

func TestSearchSkipsUntitledVolumes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"totalItems": 2,
			"items": [
				{"id": "a", "volumeInfo": {}},
				{"id": "b", "volumeInfo": {"title": "Dune"}}
			]
		}`))
	})

	books, err := client.Search(context.Background(), "dune", SearchOptions{})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "b", books[0].VolumeID)
}

func TestBestCoverURL(t *testing.T) {
	require.Equal(t, "", bestCoverURL("", ""))
	require.Equal(t, "https://x/img?zoom=0", bestCoverURL("http://x/img?zoom=1", ""))
	require.Equal(t, "https://small", bestCoverURL("", "https://small"))
}
