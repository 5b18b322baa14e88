// Package search implements the runner-name suggestion index.
//
// Matching is accent- and case-insensitive: both the query and each name are
// decomposed (NFD), stripped of combining marks, reduced to ASCII letters,
// digits and whitespace, and lower-cased. A runner matches when its folded
// name contains the folded query. Results keep store order.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/okian/racelens/internal/domain/model"
)

// MaxSuggestions caps the suggestion list.
const MaxSuggestions = 10

// Suggestions is the outcome of one query.
type Suggestions struct {
	Query   string
	Queried bool // false when the query was empty or whitespace
	Runners []model.Runner
}

// NoMatches reports a typed query that matched nothing. It stays false for an
// empty query so callers can tell "nothing typed yet" from "no results".
func (s Suggestions) NoMatches() bool {
	return s.Queried && len(s.Runners) == 0
}

// Index holds the store with pre-folded names. It is safe for concurrent use
// since nothing mutates it after New.
type Index struct {
	runners []model.Runner
	folded  []string
}

// New builds an index over runners. The slice is not copied and must not be
// modified afterwards.
func New(runners []model.Runner) *Index {
	folded := make([]string, len(runners))
	for i, r := range runners {
		folded[i] = Fold(r.Name)
	}
	return &Index{runners: runners, folded: folded}
}

// Search returns up to MaxSuggestions runners whose names contain query.
func (ix *Index) Search(query string) Suggestions {
	if strings.TrimSpace(query) == "" {
		return Suggestions{Query: query}
	}
	q := Fold(query)
	out := make([]model.Runner, 0, MaxSuggestions)
	for i, name := range ix.folded {
		if !strings.Contains(name, q) {
			continue
		}
		out = append(out, ix.runners[i])
		if len(out) == MaxSuggestions {
			break
		}
	}
	return Suggestions{Query: query, Queried: true, Runners: out}
}

// Len returns the number of indexed runners.
func (ix *Index) Len() int { return len(ix.runners) }

// Fold strips accents and anything outside [A-Za-z0-9\s], then lower-cases.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(runes.Predicate(outsideAlnumSpace)))
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

func outsideAlnumSpace(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case unicode.IsSpace(r):
		return false
	}
	return true
}
