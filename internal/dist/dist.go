// Package dist implements the domain-aware string distance used to compare
// artist, album and track titles coming from different sources (file tags,
// catalog releases, user-typed search terms).
//
// Grounded on Ambrevar-demlo/fuzzy.go: stringNorm (regexp-based punctuation
// stripping) and stringRel (length-normalized edit distance) play the same
// role there, but that file uses Damerau-Levenshtein via a third-party
// library. Here the distance combines stopword rotation with a weighted
// noise-pattern table, so it is written out in full rather than bolted onto
// a generic edit-distance dependency; see DESIGN.md for the rationale.
package dist

import (
	"regexp"
	"strings"
)

// pattern is one entry of the fixed noise-pattern table. Order is
// significant: patterns are tried in table order, and a pattern whose
// removal lowers the distance commits its rewrite before the next is tried.
type pattern struct {
	re     *regexp.Regexp
	weight float64
}

var patterns = []pattern{
	{regexp.MustCompile(`(?i)^the `), 0.1},
	{regexp.MustCompile(`(?i)[\[\(]?(ep|single)[\]\)]?`), 0.0},
	{regexp.MustCompile(`(?i)[\[\(]?(featuring|feat|ft)[. :].+`), 0.1},
	{regexp.MustCompile(`\(.*?\)`), 0.3},
	{regexp.MustCompile(`\[.*?\]`), 0.3},
	{regexp.MustCompile(`(?i)(, )?(pt\.|part) .+`), 0.2},
}

var stopwords = []string{"the", "a", "an"}

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// String returns the distance between a and b, in [0.0, 1.0]. Lower means
// more alike; 0 means the normalized forms are identical. Each noise-pattern
// penalty re-adds only a fraction (its weight, below 1) of the distance its
// removal saved, so the result never exceeds the distance of the unstripped
// strings; no clamping is applied.
func String(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	a = rotateStopword(a)
	b = rotateStopword(b)

	base := basic(a, b)
	penalty := 0.0

	for _, p := range patterns {
		na, changedA := removeFirstMatch(p.re, a)
		nb, changedB := removeFirstMatch(p.re, b)
		if !changedA && !changedB {
			continue
		}

		newBase := basic(na, nb)
		delta := base - newBase
		if delta <= 0 {
			continue
		}

		a, b, base = na, nb, newBase
		penalty += p.weight * delta
	}

	return base + penalty
}

// rotateStopword rewrites a trailing ", the"/", a"/", an" into a leading
// "the "/"a "/"an " so that "beatles, the" and "the beatles" normalize the
// same way.
func rotateStopword(s string) string {
	for _, w := range stopwords {
		suffix := ", " + w
		if strings.HasSuffix(s, suffix) {
			prefix := s[:len(s)-len(suffix)]
			return w + " " + prefix
		}
	}
	return s
}

// removeFirstMatch deletes the first match of re in s and reports whether a
// match was found.
func removeFirstMatch(re *regexp.Regexp, s string) (string, bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, false
	}
	return s[:loc[0]] + s[loc[1]:], true
}

// basic strips everything outside [a-z0-9] from x and y, then returns their
// Levenshtein distance normalized by the longer stripped length, or 0 if
// both strip to empty.
func basic(x, y string) float64 {
	x = reNonAlnum.ReplaceAllString(x, "")
	y = reNonAlnum.ReplaceAllString(y, "")

	if x == "" && y == "" {
		return 0
	}

	max := len(x)
	if len(y) > max {
		max = len(y)
	}

	return float64(levenshtein(x, y)) / float64(max)
}

// levenshtein returns the classic single-character edit distance between a
// and b (insert, delete, substitute, each cost 1).
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
