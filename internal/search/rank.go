package search

import (
	"sort"

	"github.com/lepinkainen/bookhunt/internal/books"
)

// rank orders records by corroboration: more contributing sources first,
// Google-backed records before others on ties. The sort is stable, so
// records tied on both criteria keep their fold insertion order.
func rank(list []*books.Book) []*books.Book {
	sort.SliceStable(list, func(i, j int) bool {
		si, sj := len(list[i].Sources), len(list[j].Sources)
		if si != sj {
			return si > sj
		}
		gi, gj := list[i].HasSource(books.SourceGoogle), list[j].HasSource(books.SourceGoogle)
		if gi != gj {
			return gi
		}
		return false
	})
	return list
}
