// Package match provides the string normalization and fuzzy title matching
// used to decide whether two provider records denote the same book.
package match

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so that
// "Élodie" and "Elodie" normalize to the same key.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s, strips diacritics and drops every character that
// is not a lowercase ASCII letter or digit. The result is the comparison
// key used for dedupe and matching. Normalize is idempotent and never fails.
func Normalize(s string) string {
	folded, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		// transform errors only on malformed UTF-8; fall back to the
		// lowercased input and let the ASCII filter below handle it.
		folded = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Title noise patterns stripped before normalization. These cover the
// edition/language markers and derivative-title clutter the providers
// attach to otherwise identical works.
var (
	editionParen  = regexp.MustCompile(`\s*\([^)]*\bedition\b[^)]*\)`)
	editionSuffix = regexp.MustCompile(`\s*[-–—:]\s*[^-–—:]*\bedition\b.*$`)
	tomeMarker    = regexp.MustCompile(`\btome\s+\d+\b`)
	byAuthor      = regexp.MustCompile(`\s+by\s+[\p{L}\d .'-]+$`)
	summaryTail   = regexp.MustCompile(`\s+summary$`)
)

// CleanTitle lowercases a title and strips known noise suffixes: edition
// markers in parentheses or after a dash/colon ("(Deluxe Edition)",
// "— French Edition"), volume markers ("Tome 2"), trailing "by <author>"
// clauses and a trailing "Summary". It runs strictly before Normalize on
// every comparison path.
func CleanTitle(title string) string {
	t := strings.ToLower(title)
	t = editionParen.ReplaceAllString(t, "")
	t = editionSuffix.ReplaceAllString(t, "")
	t = tomeMarker.ReplaceAllString(t, "")
	t = byAuthor.ReplaceAllString(t, "")
	t = summaryTail.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}

// NormalizeTitle applies CleanTitle then Normalize, the canonical title key.
func NormalizeTitle(title string) string {
	return Normalize(CleanTitle(title))
}
