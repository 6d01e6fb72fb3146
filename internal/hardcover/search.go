package hardcover

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	bookerrors "github.com/lepinkainen/bookhunt/internal/errors"
)

// maxSearchTropes caps how many bulk-search tags are kept as trope
// candidates. The tags field often contains trope-like data but is not
// curated; treat it as a rough hint until a detail fetch replaces it.
const maxSearchTropes = 5

const defaultPerPage = 25

const searchQuery = `query BookSearch($query: String!, $perPage: Int!) {
  search(query: $query, query_type: "Book", per_page: $perPage) {
    results
  }
}`

// searchResults matches the typesense-style payload inside the search
// results field.
type searchResults struct {
	Hits []struct {
		Document struct {
			ID              string   `json:"id"`
			Slug            string   `json:"slug"`
			Title           string   `json:"title"`
			AuthorNames     []string `json:"author_names"`
			Genres          []string `json:"genres"`
			Moods           []string `json:"moods"`
			ContentWarnings []string `json:"content_warnings"`
			Tags            []string `json:"tags"`
			SeriesNames     []string `json:"series_names"`
			ISBNs           []string `json:"isbns"`
			ReleaseDate     string   `json:"release_date"`
			Pages           int      `json:"pages"`
			Image           struct {
				URL string `json:"url"`
			} `json:"image"`
		} `json:"document"`
	} `json:"hits"`
}

// Search runs the bulk book search. An empty result set returns an empty
// slice, never an error.
func (c *Client) Search(ctx context.Context, query string) ([]Book, error) {
	var out struct {
		Search struct {
			Results searchResults `json:"results"`
		} `json:"search"`
	}

	vars := map[string]any{"query": query, "perPage": defaultPerPage}
	if err := c.query(ctx, searchQuery, vars, &out); err != nil {
		return nil, bookerrors.NewProviderError("hardcover", fmt.Errorf("search %q: %w", query, err))
	}

	hits := out.Search.Results.Hits
	books := make([]Book, 0, len(hits))
	for _, hit := range hits {
		doc := hit.Document
		if doc.Title == "" {
			continue
		}

		book := Book{
			Slug:            doc.Slug,
			Title:           doc.Title,
			Authors:         doc.AuthorNames,
			Genres:          doc.Genres,
			Moods:           doc.Moods,
			ContentWarnings: doc.ContentWarnings,
			ReleaseDate:     doc.ReleaseDate,
			PageCount:       doc.Pages,
			CoverURL:        secureURL(doc.Image.URL),
		}

		if id, err := strconv.Atoi(doc.ID); err == nil {
			book.ID = id
		}
		if len(doc.SeriesNames) > 0 {
			book.SeriesName = doc.SeriesNames[0]
		}
		if len(doc.Tags) > maxSearchTropes {
			book.Tropes = doc.Tags[:maxSearchTropes]
		} else {
			book.Tropes = doc.Tags
		}
		for _, isbn := range doc.ISBNs {
			if len(isbn) == 13 {
				book.ISBN13 = isbn
				break
			}
		}

		books = append(books, book)
	}

	return books, nil
}

// secureURL upgrades http cover URLs to https.
func secureURL(url string) string {
	return strings.Replace(url, "http://", "https://", 1)
}
