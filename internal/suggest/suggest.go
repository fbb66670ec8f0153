// Package suggest finds aliases that look like a mistyped command name.
//
// Similarity is the difflib SequenceMatcher ratio over characters, the same
// measure Python's difflib.get_close_matches uses, with a fixed floor of 0.6.
package suggest

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/gorewood/desigit/internal/alias"
)

const (
	// DefaultMax is the number of suggestions offered after an unknown alias.
	DefaultMax = 3
	// Cutoff is the minimum ratio a candidate needs to be suggested.
	Cutoff = 0.6
)

// Source provides the entries to search. *alias.Table satisfies it.
type Source interface {
	All() []alias.Entry
}

// Candidate is a ranked suggestion.
type Candidate struct {
	Alias  string  `json:"alias"`
	Target string  `json:"target"`
	Score  float64 `json:"score"`
	// Distance is the edit distance between the input and whichever name
	// (alias or git command) produced Score.
	Distance int `json:"distance"`
}

// Suggest returns up to limit alias names close to input, best first.
// The result is empty when nothing clears Cutoff.
func Suggest(src Source, input string, limit int) []string {
	ranked := Rank(src, input, limit)
	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Alias)
	}
	return names
}

// Rank is Suggest with scores and targets attached.
//
// Each entry is scored against both its alias and its git command, so typing
// the English command name ("stauts") still finds the alias that runs it.
// Ties on score go to the smaller edit distance, then to table order.
func Rank(src Source, input string, limit int) []Candidate {
	if limit <= 0 || input == "" {
		return []Candidate{}
	}

	want := chars(input)
	var found []Candidate
	for _, entry := range src.All() {
		best, name := 0.0, ""
		for _, candidate := range []string{entry.Alias, entry.Command()} {
			if score, ok := closeScore(chars(candidate), want); ok && score > best {
				best, name = score, candidate
			}
		}
		if name == "" {
			continue
		}
		found = append(found, Candidate{
			Alias:    entry.Alias,
			Target:   entry.Target,
			Score:    best,
			Distance: levenshtein.Distance(name, input, nil),
		})
	}

	slices.SortStableFunc(found, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Distance, b.Distance)
	})

	if len(found) > limit {
		found = found[:limit]
	}
	if found == nil {
		return []Candidate{}
	}
	return found
}

// Ratio returns the SequenceMatcher similarity of a and b in [0, 1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

// closeScore applies the real-quick, quick and full ratio checks in turn,
// each against Cutoff, and reports the full ratio when all pass.
func closeScore(candidate, input []string) (float64, bool) {
	m := difflib.NewMatcher(candidate, input)
	if m.RealQuickRatio() < Cutoff || m.QuickRatio() < Cutoff {
		return 0, false
	}
	score := m.Ratio()
	return score, score >= Cutoff
}

// chars splits s into one string per rune, the element type difflib works on.
func chars(s string) []string {
	return strings.Split(s, "")
}
