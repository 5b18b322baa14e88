// Package results serves the full results table: the AND-combined filter,
// the landing-page overview and the store integrity check.
package results

import (
	"strings"

	"github.com/okian/racelens/internal/domain/category"
	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/internal/domain/racetime"
)

// All disables a category or gender filter.
const All = "all"

// Query holds the table filters. Empty values behave like All.
type Query struct {
	Name     string
	Category string
	Gender   string
}

// Filter returns runners matching every filter, in store order. Name matching
// is a plain case-insensitive substring test; accents are not folded here.
func Filter(runners []model.Runner, q Query) ([]model.Runner, error) {
	var gender model.Gender
	if g := strings.TrimSpace(q.Gender); g != "" && !strings.EqualFold(g, All) {
		parsed, err := model.ParseGender(g)
		if err != nil {
			return nil, err
		}
		gender = parsed
	}
	cat := q.Category
	if strings.EqualFold(strings.TrimSpace(cat), All) {
		cat = ""
	}
	name := strings.ToLower(q.Name)

	out := make([]model.Runner, 0, len(runners))
	for _, r := range runners {
		if name != "" && !strings.Contains(strings.ToLower(r.Name), name) {
			continue
		}
		if cat != "" && category.Normalize(r.Category) != cat {
			continue
		}
		if gender != "" && r.Gender != gender {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Overview is the landing-page summary.
type Overview struct {
	TotalRunners int      `json:"total_runners"`
	Categories   []string `json:"categories"`
	DistanceKm   int      `json:"distance_km"`
}

// Summarize builds the overview of a store.
func Summarize(runners []model.Runner) Overview {
	return Overview{
		TotalRunners: len(runners),
		Categories:   category.Distinct(runners),
		DistanceKm:   racetime.DistanceKm,
	}
}
