package hardcover

// Book is the normalized shape of one Hardcover record, from either the
// bulk search or the per-slug detail query. Bulk search results carry only
// weak tag data; BookBySlug fills the full tag buckets.
type Book struct {
	ID              int
	Slug            string
	Title           string
	Authors         []string
	Description     string
	PageCount       int
	CoverURL        string
	ReleaseDate     string
	Genres          []string
	Tropes          []string
	Moods           []string
	ContentWarnings []string
	SeriesName      string
	SeriesPosition  float64
	ISBN13          string
}
