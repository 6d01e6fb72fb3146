package openlibrary

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	bookerrors "github.com/lepinkainen/bookhunt/internal/errors"
)

// maxGenres keeps the often sprawling Open Library subject lists down to
// the leading handful, which carry the broad genre terms.
const maxGenres = 5

// Book is the normalized shape of one Open Library search document.
type Book struct {
	OLID          string
	Title         string
	Authors       []string
	CoverURL      string
	PublishedDate string
	PageCount     int
	Language      string
	Publisher     string
	Genres        []string
	ISBN13        string
	ISBN10        string
}

// searchResponse matches the /search.json response.
type searchResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		Key                 string   `json:"key"`
		Title               string   `json:"title"`
		AuthorName          []string `json:"author_name"`
		CoverI              int      `json:"cover_i"`
		FirstPublishYear    int      `json:"first_publish_year"`
		ISBN                []string `json:"isbn"`
		Language            []string `json:"language"`
		NumberOfPagesMedian int      `json:"number_of_pages_median"`
		Publisher           []string `json:"publisher"`
		Subject             []string `json:"subject"`
	} `json:"docs"`
}

// Search queries /search.json with a free-text query. An empty result set
// returns an empty slice, never an error.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Book, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	params.Set("fields", "key,title,author_name,cover_i,first_publish_year,isbn,language,number_of_pages_median,publisher,subject")

	endpoint := fmt.Sprintf("%s/search.json?%s", c.baseURL, params.Encode())

	var response searchResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, bookerrors.NewProviderError("openlibrary", fmt.Errorf("search %q: %w", query, err))
	}

	books := make([]Book, 0, len(response.Docs))
	for _, doc := range response.Docs {
		if doc.Title == "" {
			continue
		}

		book := Book{
			OLID:      workID(doc.Key),
			Title:     doc.Title,
			Authors:   doc.AuthorName,
			PageCount: doc.NumberOfPagesMedian,
		}

		if doc.CoverI > 0 {
			book.CoverURL = fmt.Sprintf("%s/b/id/%d-L.jpg", c.coversBaseURL, doc.CoverI)
		}
		if doc.FirstPublishYear > 0 {
			book.PublishedDate = strconv.Itoa(doc.FirstPublishYear)
		}
		if len(doc.Language) > 0 {
			book.Language = doc.Language[0]
		}
		if len(doc.Publisher) > 0 {
			book.Publisher = doc.Publisher[0]
		}
		if len(doc.Subject) > maxGenres {
			book.Genres = doc.Subject[:maxGenres]
		} else {
			book.Genres = doc.Subject
		}

		book.ISBN13, book.ISBN10 = pickISBNs(doc.ISBN)

		books = append(books, book)
	}

	return books, nil
}

// workID strips the "/works/" prefix from a document key.
func workID(key string) string {
	return strings.TrimPrefix(key, "/works/")
}

// pickISBNs selects the first 13-digit and first 10-digit identifiers.
func pickISBNs(isbns []string) (isbn13, isbn10 string) {
	for _, raw := range isbns {
		isbn := strings.ReplaceAll(raw, "-", "")
		switch {
		case len(isbn) == 13 && isbn13 == "":
			isbn13 = isbn
		case len(isbn) == 10 && isbn10 == "":
			isbn10 = isbn
		}
		if isbn13 != "" && isbn10 != "" {
			break
		}
	}
	return isbn13, isbn10
}
