package hardcover

import (
	"context"
	"fmt"

	bookerrors "github.com/lepinkainen/bookhunt/internal/errors"
)

const detailsQuery = `query BookBySlug($slug: String!) {
  books(where: {slug: {_eq: $slug}}, limit: 1) {
    id
    slug
    title
    description
    pages
    release_date
    cached_tags
    image {
      url
    }
    contributions {
      author {
        name
      }
    }
    book_series {
      position
      series {
        name
      }
    }
  }
}`

// cachedTag is one entry of a cached_tags bucket.
type cachedTag struct {
	Tag string `json:"tag"`
}

// bookDetail matches one row of the books detail query.
type bookDetail struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Pages       int    `json:"pages"`
	ReleaseDate string `json:"release_date"`
	// cached_tags buckets tags by category: "Genre", "Trope", "Mood",
	// "Content Warning".
	CachedTags map[string][]cachedTag `json:"cached_tags"`
	Image      struct {
		URL string `json:"url"`
	} `json:"image"`
	Contributions []struct {
		Author struct {
			Name string `json:"name"`
		} `json:"author"`
	} `json:"contributions"`
	BookSeries []struct {
		Position float64 `json:"position"`
		Series   struct {
			Name string `json:"name"`
		} `json:"series"`
	} `json:"book_series"`
}

// BookBySlug fetches the full tag-rich record for one book. Returns
// nil, nil when the slug is unknown, so callers can treat a vanished
// record like a failed enrichment rather than an error.
func (c *Client) BookBySlug(ctx context.Context, slug string) (*Book, error) {
	var out struct {
		Books []bookDetail `json:"books"`
	}

	vars := map[string]any{"slug": slug}
	if err := c.query(ctx, detailsQuery, vars, &out); err != nil {
		return nil, bookerrors.NewProviderError("hardcover", fmt.Errorf("book %q: %w", slug, err))
	}

	if len(out.Books) == 0 {
		return nil, nil
	}

	detail := out.Books[0]
	book := &Book{
		ID:              detail.ID,
		Slug:            detail.Slug,
		Title:           detail.Title,
		Description:     detail.Description,
		PageCount:       detail.Pages,
		ReleaseDate:     detail.ReleaseDate,
		CoverURL:        secureURL(detail.Image.URL),
		Genres:          tagNames(detail.CachedTags["Genre"]),
		Tropes:          tagNames(detail.CachedTags["Trope"]),
		Moods:           tagNames(detail.CachedTags["Mood"]),
		ContentWarnings: tagNames(detail.CachedTags["Content Warning"]),
	}

	for _, contribution := range detail.Contributions {
		if contribution.Author.Name != "" {
			book.Authors = append(book.Authors, contribution.Author.Name)
		}
	}

	if len(detail.BookSeries) > 0 {
		book.SeriesName = detail.BookSeries[0].Series.Name
		book.SeriesPosition = detail.BookSeries[0].Position
	}

	return book, nil
}

func tagNames(tags []cachedTag) []string {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		if t.Tag != "" {
			names = append(names, t.Tag)
		}
	}
	return names
}
