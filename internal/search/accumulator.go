package search

import (
	"github.com/lepinkainen/bookhunt/internal/books"
	"github.com/lepinkainen/bookhunt/internal/match"
)

// accumulator is the insertion-ordered map the fold builds unified records
// into. It is local to one Search invocation and never shared.
type accumulator struct {
	order []*books.Book
	byKey map[string]*books.Book
}

func newAccumulator() *accumulator {
	return &accumulator{byKey: make(map[string]*books.Book)}
}

// insert registers a new record under key. Each key resolves to exactly
// one record; callers look up before inserting.
func (a *accumulator) insert(key string, b *books.Book) {
	if _, exists := a.byKey[key]; exists {
		return
	}
	a.byKey[key] = b
	a.order = append(a.order, b)
}

// lookup returns the record registered under key, or nil.
func (a *accumulator) lookup(key string) *books.Book {
	return a.byKey[key]
}

// scan walks the accumulated records in insertion order and returns the
// first one fn accepts, or nil. This is the fuzzy-match fallback path; an
// O(n) pass is fine at the tens-of-candidates scale a query produces.
func (a *accumulator) scan(fn func(*books.Book) bool) *books.Book {
	for _, b := range a.order {
		if fn(b) {
			return b
		}
	}
	return nil
}

// books returns the accumulated records in insertion order.
func (a *accumulator) books() []*books.Book {
	return a.order
}

// dedupeKey builds the identity key for a record: the ISBN-13 when
// present, otherwise a normalized title+first-author composite.
func dedupeKey(isbn13, title, firstAuthor string) string {
	if isbn13 != "" {
		return "isbn:" + isbn13
	}
	return compositeKey(title, firstAuthor)
}

// compositeKey is the normalized title+author key, used directly for the
// tag source whose records rarely carry ISBNs.
func compositeKey(title, firstAuthor string) string {
	return "title:" + match.NormalizeTitle(title) + "|" + match.Normalize(firstAuthor)
}
