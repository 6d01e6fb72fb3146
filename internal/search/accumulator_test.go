package search

import (
	"testing"

	"github.com/lepinkainen/bookhunt/internal/books"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorInsertAndLookup(t *testing.T) {
	acc := newAccumulator()
	a := &books.Book{Title: "A"}
	b := &books.Book{Title: "B"}

	acc.insert("ka", a)
	acc.insert("kb", b)

	require.Equal(t, a, acc.lookup("ka"))
	require.Nil(t, acc.lookup("missing"))
	require.Equal(t, []*books.Book{a, b}, acc.books())
}

func TestAccumulatorInsertKeepsFirstRecord(t *testing.T) {
	acc := newAccumulator()
	first := &books.Book{Title: "first"}
	acc.insert("k", first)
	acc.insert("k", &books.Book{Title: "second"})

	require.Equal(t, first, acc.lookup("k"))
	require.Len(t, acc.books(), 1)
}

func TestAccumulatorScanInsertionOrder(t *testing.T) {
	acc := newAccumulator()
	acc.insert("a", &books.Book{Title: "Dune"})
	acc.insert("b", &books.Book{Title: "Dune Messiah"})

	found := acc.scan(func(b *books.Book) bool { return true })
	require.Equal(t, "Dune", found.Title)

	require.Nil(t, acc.scan(func(b *books.Book) bool { return false }))
}

func TestDedupeKey(t *testing.T) {
	require.Equal(t, "isbn:9780441013593", dedupeKey("9780441013593", "Dune", "Frank Herbert"))
	require.Equal(t, "title:dune|frankherbert", dedupeKey("", "Dune", "Frank Herbert"))
	// Edition noise and casing collapse into the same composite key.
	require.Equal(t,
		dedupeKey("", "Dune (Deluxe Edition)", "FRANK HERBERT"),
		dedupeKey("", "Dune", "Frank Herbert"))
}
