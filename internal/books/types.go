// Package books defines the unified book representation produced by the
// multi-source search pipeline.
package books

// Source identifies a metadata provider that contributed to a unified book.
type Source string

// Known providers, in merge priority order. Google Books carries the
// richest bibliographic data, Hardcover the richest tag data.
const (
	SourceGoogle      Source = "google"
	SourceOpenLibrary Source = "openlibrary"
	SourceHardcover   Source = "hardcover"
)

// Book is the merged, deduplicated representation of one logical work,
// combining fields from up to three providers. Bibliographic fields are
// first-writer-wins in provider priority order; tag lists are unioned.
type Book struct {
	// ID is a synthetic identifier prefixed by the originating source,
	// e.g. "google:zyTCAlFPjgYC" or "hardcover:the-name-of-the-wind".
	ID string `json:"id" yaml:"id"`

	// Cross-references into each provider. A book that matched in all
	// three sources carries all three.
	GoogleID      string `json:"googleId,omitempty" yaml:"googleId,omitempty"`
	OpenLibraryID string `json:"openLibraryId,omitempty" yaml:"openLibraryId,omitempty"`
	HardcoverSlug string `json:"hardcoverSlug,omitempty" yaml:"hardcoverSlug,omitempty"`

	Title         string   `json:"title" yaml:"title"`
	Authors       []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	PageCount     int      `json:"pageCount,omitempty" yaml:"pageCount,omitempty"`
	CoverURL      string   `json:"coverUrl,omitempty" yaml:"coverUrl,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty" yaml:"publishedDate,omitempty"`
	Language      string   `json:"language,omitempty" yaml:"language,omitempty"`
	Publisher     string   `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	ISBN13        string   `json:"isbn13,omitempty" yaml:"isbn13,omitempty"`
	ISBN10        string   `json:"isbn10,omitempty" yaml:"isbn10,omitempty"`

	Genres          []string `json:"genres,omitempty" yaml:"genres,omitempty"`
	Tropes          []string `json:"tropes,omitempty" yaml:"tropes,omitempty"`
	Moods           []string `json:"moods,omitempty" yaml:"moods,omitempty"`
	ContentWarnings []string `json:"contentWarnings,omitempty" yaml:"contentWarnings,omitempty"`

	SeriesName     string  `json:"seriesName,omitempty" yaml:"seriesName,omitempty"`
	SeriesPosition float64 `json:"seriesPosition,omitempty" yaml:"seriesPosition,omitempty"`

	// Sources lists the providers that contributed data, in the order
	// they were folded. Never contains duplicates.
	Sources []Source `json:"sources" yaml:"sources"`
}

// HasSource reports whether src already contributed to the book.
func (b *Book) HasSource(src Source) bool {
	for _, s := range b.Sources {
		if s == src {
			return true
		}
	}
	return false
}

// AddSource appends src to the contributing sources unless it is already
// present.
func (b *Book) AddSource(src Source) {
	if !b.HasSource(src) {
		b.Sources = append(b.Sources, src)
	}
}

// FirstAuthor returns the first author name, or "" when none are known.
func (b *Book) FirstAuthor() string {
	if len(b.Authors) == 0 {
		return ""
	}
	return b.Authors[0]
}

// UnionStrings merges additions into list, preserving order and dropping
// duplicates. Used for genre unions across sources.
func UnionStrings(list, additions []string) []string {
	seen := make(map[string]bool, len(list)+len(additions))
	out := make([]string, 0, len(list)+len(additions))
	for _, s := range list {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range additions {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
