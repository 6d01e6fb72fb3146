package search

import (
	"strings"

	"github.com/lepinkainen/bookhunt/internal/books"
	"github.com/lepinkainen/bookhunt/internal/googlebooks"
	"github.com/lepinkainen/bookhunt/internal/hardcover"
	"github.com/lepinkainen/bookhunt/internal/match"
	"github.com/lepinkainen/bookhunt/internal/openlibrary"
)

// titleBlocklist drops derivative study-aid products that would otherwise
// pollute results for popular titles.
var titleBlocklist = []string{
	"summary of",
	"summary:",
	"guide to",
	"analysis of",
	"study guide",
	"cliff notes",
	"sparknotes",
}

func isBlockedTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, blocked := range titleBlocklist {
		if strings.Contains(lower, blocked) {
			return true
		}
	}
	return false
}

func firstOf(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// sameAuthor compares normalized first-author names.
func sameAuthor(a, b string) bool {
	return match.Normalize(a) == match.Normalize(b)
}

// foldGoogle folds the primary source. Google carries the richest
// bibliographic data, so its records become the base of each slot; later
// sources only fill gaps.
func (e *Engine) foldGoogle(acc *accumulator, results []googlebooks.Book) {
	for _, gb := range results {
		if isBlockedTitle(gb.Title) {
			continue
		}

		author := firstOf(gb.Authors)
		existing := acc.scan(func(b *books.Book) bool {
			return e.fuzzy.Match(b.Title, gb.Title) && sameAuthor(b.FirstAuthor(), author)
		})
		if existing == nil {
			existing = acc.lookup(dedupeKey(gb.ISBN13, gb.Title, author))
		}

		if existing != nil {
			if existing.CoverURL == "" {
				existing.CoverURL = gb.CoverURL
			}
			if existing.Description == "" {
				existing.Description = gb.Description
			}
			existing.AddSource(books.SourceGoogle)
			continue
		}

		record := &books.Book{
			ID:            "google:" + gb.VolumeID,
			GoogleID:      gb.VolumeID,
			Title:         gb.Title,
			Authors:       gb.Authors,
			Description:   gb.Description,
			PageCount:     gb.PageCount,
			CoverURL:      gb.CoverURL,
			PublishedDate: gb.PublishedDate,
			Language:      gb.Language,
			Publisher:     gb.Publisher,
			ISBN13:        gb.ISBN13,
			ISBN10:        gb.ISBN10,
			Genres:        books.UnionStrings(nil, gb.Categories),
			Sources:       []books.Source{books.SourceGoogle},
		}
		acc.insert(dedupeKey(gb.ISBN13, gb.Title, author), record)
	}
}

// foldOpenLibrary folds the secondary source: exact key lookup first, then
// a fuzzy title+author scan to catch editions whose ISBN only one source
// knows, then insert.
func (e *Engine) foldOpenLibrary(acc *accumulator, results []openlibrary.Book) {
	for _, ob := range results {
		author := firstOf(ob.Authors)

		existing := acc.lookup(dedupeKey(ob.ISBN13, ob.Title, author))
		if existing == nil {
			existing = acc.scan(func(b *books.Book) bool {
				return e.fuzzy.Match(b.Title, ob.Title) && sameAuthor(b.FirstAuthor(), author)
			})
		}

		if existing != nil {
			if existing.OpenLibraryID == "" {
				existing.OpenLibraryID = ob.OLID
			}
			if existing.CoverURL == "" {
				existing.CoverURL = ob.CoverURL
			}
			if existing.ISBN13 == "" {
				existing.ISBN13 = ob.ISBN13
			}
			existing.AddSource(books.SourceOpenLibrary)
			continue
		}

		record := &books.Book{
			ID:            "openlibrary:" + ob.OLID,
			OpenLibraryID: ob.OLID,
			Title:         ob.Title,
			Authors:       ob.Authors,
			PageCount:     ob.PageCount,
			CoverURL:      ob.CoverURL,
			PublishedDate: ob.PublishedDate,
			Language:      ob.Language,
			Publisher:     ob.Publisher,
			ISBN13:        ob.ISBN13,
			ISBN10:        ob.ISBN10,
			Genres:        books.UnionStrings(nil, ob.Genres),
			Sources:       []books.Source{books.SourceOpenLibrary},
		}
		acc.insert(dedupeKey(ob.ISBN13, ob.Title, author), record)
	}
}

// foldHardcover folds the tag source. Its author attribution is the least
// reliable of the three, so the fuzzy fallback matches on title alone.
func (e *Engine) foldHardcover(acc *accumulator, results []hardcover.Book) {
	for _, hb := range results {
		existing := acc.lookup(compositeKey(hb.Title, firstOf(hb.Authors)))
		if existing == nil {
			existing = acc.scan(func(b *books.Book) bool {
				return e.fuzzy.Match(b.Title, hb.Title)
			})
		}

		if existing != nil {
			if existing.HardcoverSlug == "" {
				existing.HardcoverSlug = hb.Slug
			}
			applyHardcoverTags(existing, &hb)
			existing.AddSource(books.SourceHardcover)
			continue
		}

		record := &books.Book{
			ID:              "hardcover:" + hb.Slug,
			HardcoverSlug:   hb.Slug,
			Title:           hb.Title,
			Authors:         hb.Authors,
			Description:     hb.Description,
			PageCount:       hb.PageCount,
			CoverURL:        hb.CoverURL,
			PublishedDate:   hb.ReleaseDate,
			ISBN13:          hb.ISBN13,
			Genres:          books.UnionStrings(nil, hb.Genres),
			Tropes:          hb.Tropes,
			Moods:           hb.Moods,
			ContentWarnings: hb.ContentWarnings,
			SeriesName:      hb.SeriesName,
			SeriesPosition:  hb.SeriesPosition,
			Sources:         []books.Source{books.SourceHardcover},
		}
		acc.insert(compositeKey(hb.Title, firstOf(hb.Authors)), record)
	}
}

// applyHardcoverTags merges a Hardcover record into an existing unified
// one: trope/mood/content-warning lists are overwritten when the incoming
// lists are non-empty (no other source supplies them), genres are unioned,
// series and cover are backfilled only when empty. Shared by the fold and
// the enrichment stage.
func applyHardcoverTags(b *books.Book, hb *hardcover.Book) {
	if len(hb.Tropes) > 0 {
		b.Tropes = hb.Tropes
	}
	if len(hb.Moods) > 0 {
		b.Moods = hb.Moods
	}
	if len(hb.ContentWarnings) > 0 {
		b.ContentWarnings = hb.ContentWarnings
	}
	if len(hb.Genres) > 0 {
		b.Genres = books.UnionStrings(b.Genres, hb.Genres)
	}
	if b.SeriesName == "" {
		b.SeriesName = hb.SeriesName
		b.SeriesPosition = hb.SeriesPosition
	}
	if b.CoverURL == "" {
		b.CoverURL = hb.CoverURL
	}
}
