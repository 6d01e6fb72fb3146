package match

import "strings"

// DefaultLengthRatio is the containment length-ratio threshold. Kept from
// the original tuning; override via config rather than re-deriving.
const DefaultLengthRatio = 0.7

// Fuzzy decides whether two titles denote the same work. It is a cheap,
// explainable heuristic: exact normalized equality, else containment with
// a length-ratio guard. No edit distance.
type Fuzzy struct {
	// LengthRatio is the minimum shorter/longer length ratio (exclusive)
	// for a containment match.
	LengthRatio float64
}

// NewFuzzy returns a Fuzzy matcher, falling back to DefaultLengthRatio
// when ratio is not positive.
func NewFuzzy(ratio float64) Fuzzy {
	if ratio <= 0 {
		ratio = DefaultLengthRatio
	}
	return Fuzzy{LengthRatio: ratio}
}

// Match reports whether titles a and b refer to the same work. Both inputs
// go through CleanTitle and Normalize first. Empty normalized titles never
// match anything.
func (f Fuzzy) Match(a, b string) bool {
	na := NormalizeTitle(a)
	nb := NormalizeTitle(b)

	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	short, long := na, nb
	if len(short) > len(long) {
		short, long = long, short
	}
	if !strings.Contains(long, short) {
		return false
	}
	// Guards against short-vs-long false positives ("dune" inside
	// "dunemessiah" has ratio 0.36 and is rejected).
	return float64(len(short))/float64(len(long)) > f.LengthRatio
}
