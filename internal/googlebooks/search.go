package googlebooks

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	bookerrors "github.com/lepinkainen/bookhunt/internal/errors"
)

// volumesResponse matches the Google Books volumes list response.
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title               string   `json:"title"`
			Authors             []string `json:"authors"`
			Publisher           string   `json:"publisher"`
			PublishedDate       string   `json:"publishedDate"`
			Description         string   `json:"description"`
			PageCount           int      `json:"pageCount"`
			Categories          []string `json:"categories"`
			Language            string   `json:"language"`
			IndustryIdentifiers []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			} `json:"industryIdentifiers"`
			ImageLinks struct {
				Thumbnail      string `json:"thumbnail"`
				SmallThumbnail string `json:"smallThumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Search queries the volumes endpoint with a free-text query. An empty
// result set returns an empty slice, never an error.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]Book, error) {
	params := url.Values{}
	params.Set("q", query)
	if opts.MaxResults > 0 {
		params.Set("maxResults", strconv.Itoa(opts.MaxResults))
	}
	if opts.OrderBy != "" {
		params.Set("orderBy", opts.OrderBy)
	}
	if opts.LangRestrict != "" {
		params.Set("langRestrict", opts.LangRestrict)
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	endpoint := fmt.Sprintf("%s/volumes?%s", c.baseURL, params.Encode())

	var response volumesResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, bookerrors.NewProviderError("google", fmt.Errorf("search %q: %w", query, err))
	}

	if response.TotalItems == 0 || len(response.Items) == 0 {
		return []Book{}, nil
	}

	books := make([]Book, 0, len(response.Items))
	for _, item := range response.Items {
		vol := item.VolumeInfo
		if vol.Title == "" {
			continue
		}

		book := Book{
			VolumeID:      item.ID,
			Title:         vol.Title,
			Authors:       vol.Authors,
			Description:   vol.Description,
			PageCount:     vol.PageCount,
			Categories:    vol.Categories,
			CoverURL:      bestCoverURL(vol.ImageLinks.Thumbnail, vol.ImageLinks.SmallThumbnail),
			PublishedDate: vol.PublishedDate,
			Language:      vol.Language,
			Publisher:     vol.Publisher,
		}

		for _, ident := range vol.IndustryIdentifiers {
			switch ident.Type {
			case "ISBN_13":
				book.ISBN13 = ident.Identifier
			case "ISBN_10":
				book.ISBN10 = ident.Identifier
			}
		}

		books = append(books, book)
	}

	return books, nil
}

// bestCoverURL picks the larger thumbnail, upgrades it to https and drops
// the zoom parameter for higher quality.
func bestCoverURL(thumbnail, smallThumbnail string) string {
	coverURL := thumbnail
	if coverURL == "" {
		coverURL = smallThumbnail
	}
	if coverURL == "" {
		return ""
	}
	coverURL = strings.Replace(coverURL, "http://", "https://", 1)
	coverURL = strings.Replace(coverURL, "zoom=1", "zoom=0", 1)
	return coverURL
}
