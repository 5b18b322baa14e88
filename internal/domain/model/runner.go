// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SecondsPerDay converts a spreadsheet day-fraction into seconds.
const SecondsPerDay = 86400

// Gender is stored in the source encoding of the results sheet.
type Gender string

// Known genders.
const (
	Male   Gender = "Masculino"
	Female Gender = "Femenino"
)

// ParseGender accepts the source encoding plus common short and English forms.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "masculino", "male", "m":
		return Male, nil
	case "femenino", "female", "f":
		return Female, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGender, s)
}

// Short returns the single-letter form used by the results table; values
// that are neither Male nor Female render as "?".
func (g Gender) Short() string {
	switch g {
	case Male:
		return "M"
	case Female:
		return "F"
	default:
		return "?"
	}
}

// Rank orders Male before Female; unknown values sort last.
func (g Gender) Rank() int {
	switch g {
	case Male:
		return 0
	case Female:
		return 1
	default:
		return 2
	}
}

// UnmarshalJSON normalizes the gender on decode.
func (g *Gender) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseGender(s)
	if err != nil {
		// Malformed records are kept as-is and surface downstream.
		*g = Gender(s)
		return nil
	}
	*g = parsed
	return nil
}

// Runner is one finisher of the race.
type Runner struct {
	Name             string  `json:"nombre" yaml:"nombre"`
	Category         string  `json:"categoria" yaml:"categoria"`
	Gender           Gender  `json:"sexo" yaml:"sexo"`
	Position         int     `json:"posicion" yaml:"posicion"`
	CategoryPosition int     `json:"posicionCategoria" yaml:"posicionCategoria"`
	Time             float64 `json:"tiempo" yaml:"tiempo"` // fraction of a 24h day
	Score            float64 `json:"puntaje" yaml:"puntaje"`
}

// Seconds returns the finish time in seconds.
func (r Runner) Seconds() float64 {
	return r.Time * SecondsPerDay
}

// NormalizeGenders maps any accepted spelling to the source encoding in
// place and leaves unknown values untouched.
func NormalizeGenders(runners []Runner) {
	for i := range runners {
		if g, err := ParseGender(string(runners[i].Gender)); err == nil {
			runners[i].Gender = g
		}
	}
}
