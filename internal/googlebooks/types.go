package googlebooks

// Book is the normalized shape of one Google Books volume.
type Book struct {
	VolumeID      string
	Title         string
	Authors       []string
	Description   string
	PageCount     int
	Categories    []string
	CoverURL      string
	PublishedDate string
	Language      string
	Publisher     string
	ISBN13        string
	ISBN10        string
}

// SearchOptions tunes a volume search.
type SearchOptions struct {
	// MaxResults caps the result count (Google allows at most 40).
	MaxResults int
	// OrderBy is "relevance" (default) or "newest".
	OrderBy string
	// LangRestrict limits results to a two-letter language code.
	LangRestrict string
}
