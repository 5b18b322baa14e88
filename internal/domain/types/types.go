// Package types contains common presentation types used across the application
package types

import (
	"github.com/okian/racelens/internal/domain/category"
	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/internal/domain/racetime"
)

// Row is a runner as shown in tables and suggestion lists.
type Row struct {
	Position         int     `json:"position"`
	CategoryPosition int     `json:"category_position"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	RawCategory      string  `json:"raw_category"`
	Gender           string  `json:"gender"`
	GenderShort      string  `json:"gender_short"`
	Time             string  `json:"time"`
	Pace             string  `json:"pace"`
	Score            float64 `json:"score"`
}

// NewRow formats a runner for display.
func NewRow(r model.Runner) Row {
	secs := r.Seconds()
	return Row{
		Position:         r.Position,
		CategoryPosition: r.CategoryPosition,
		Name:             r.Name,
		Category:         category.Normalize(r.Category),
		RawCategory:      r.Category,
		Gender:           string(r.Gender),
		GenderShort:      r.Gender.Short(),
		Time:             racetime.Clock(secs),
		Pace:             racetime.Pace(secs),
		Score:            r.Score,
	}
}

// Rows formats a slice of runners.
func Rows(runners []model.Runner) []Row {
	out := make([]Row, len(runners))
	for i, r := range runners {
		out[i] = NewRow(r)
	}
	return out
}
