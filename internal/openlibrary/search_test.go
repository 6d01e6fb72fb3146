package openlibrary

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
	client := NewClient(WithBaseURL(server.URL))
	client.coversBaseURL = "https://covers.openlibrary.org"
	return client
}

func TestSearchSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search.json", r.URL.Path)
		require.Equal(t, "dune", r.URL.Query().Get("q"))
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		require.NotEmpty(t, r.URL.Query().Get("fields"))

		_, _ = w.Write([]byte(`{
			"numFound": 1,
			"docs": [{
				"key": "/works/OL893415W",
				"title": "Dune",
				"author_name": ["Frank Herbert"],
				"cover_i": 11481354,
				"first_publish_year": 1965,
				"isbn": ["0441013597", "978-0441013593"],
				"language": ["eng"],
				"number_of_pages_median": 528,
				"publisher": ["Ace Books"],
				"subject": ["Science fiction", "Deserts", "Politics", "Ecology", "Spice", "Sandworms"]
			}]
		}`))
	})

	books, err := client.Search(context.Background(), "dune", 5)
	require.NoError(t, err)
	require.Len(t, books, 1)

	book := books[0]
	require.Equal(t, "OL893415W", book.OLID)
	require.Equal(t, "Dune", book.Title)
	require.Equal(t, []string{"Frank Herbert"}, book.Authors)
	require.Equal(t, "https://covers.openlibrary.org/b/id/11481354-L.jpg", book.CoverURL)
	require.Equal(t, "1965", book.PublishedDate)
	require.Equal(t, 528, book.PageCount)
	require.Equal(t, "eng", book.Language)
	require.Equal(t, "Ace Books", book.Publisher)
	require.Equal(t, "9780441013593", book.ISBN13)
	require.Equal(t, "0441013597", book.ISBN10)
	require.Len(t, book.Genres, maxGenres, "subject list must be capped")
}

func TestSearchNoResultsIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"numFound": 0, "docs": []}`))
	})

	books, err := client.Search(context.Background(), "zzzz", 5)
	require.NoError(t, err)
	require.Empty(t, books)
}

func TestSearchServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})

	_, err := client.Search(context.Background(), "dune", 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 502")
	require.True(t, bookerrors.IsProviderError(err))

	var pe *bookerrors.ProviderError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "openlibrary", pe.Source)
}

func TestPickISBNs(t *testing.T) {
	isbn13, isbn10 := pickISBNs([]string{"0441013597", "9780441013593", "9999999999999"})
	require.Equal(t, "9780441013593", isbn13)
	require.Equal(t, "0441013597", isbn10)

	isbn13, isbn10 = pickISBNs(nil)
	require.Empty(t, isbn13)
	require.Empty(t, isbn10)
}

func TestWorkID(t *testing.T) {
	require.Equal(t, "OL893415W", workID("/works/OL893415W"))
	require.Equal(t, "OL893415W", workID("OL893415W"))
}
