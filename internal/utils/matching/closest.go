package matching

import (
	"sort"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// DefaultMaxSuggestions caps the number of suggestions returned by Closest.
const DefaultMaxSuggestions = 3

// substitution costs the same as an insertion so a single typo is one edit.
var editOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// Similarity returns a score in [0,1]; 1 means equal ignoring case.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), editOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// Closest returns up to limit candidates whose similarity to query is at least
// minScore, best first. Ties keep candidate order.
func Closest(query string, candidates []string, minScore float64, limit int) []string {
	type scored struct {
		value string
		score float64
	}
	var hits []scored
	for _, c := range candidates {
		if s := Similarity(query, c); s >= minScore {
			hits = append(hits, scored{value: c, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.value
	}
	return out
}
