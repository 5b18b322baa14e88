// Package analytics derives the personalized placement report for one runner:
// clock time, pace, speed, percentiles, the category winner's baseline and
// the gaps to the nearest runners ahead in the same category and gender.
package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/racelens/internal/domain/category"
	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/internal/domain/motivation"
	"github.com/okian/racelens/internal/domain/racetime"
)

// MaxAhead caps the runners-ahead list.
const MaxAhead = 10

// Ahead is one runner above the analyzed runner in its category.
type Ahead struct {
	Position         int    `json:"position"`
	CategoryPosition int    `json:"category_position"`
	Name             string `json:"name"`
	DiffSeconds      int    `json:"diff_seconds"`
	Time             string `json:"time"` // M:SS, hours dropped
	Gap              string `json:"gap"`  // M:SS
}

// Baseline is the category winner's pace and speed.
type Baseline struct {
	Name  string  `json:"name"`
	Pace  string  `json:"pace"`
	Speed float64 `json:"speed_kmh"`
}

// Report is the full analysis of one runner.
type Report struct {
	Runner             model.Runner `json:"runner"`
	Category           string       `json:"category"`
	TimeSeconds        float64      `json:"time_seconds"`
	Time               string       `json:"time"`
	Pace               string       `json:"pace"`
	Speed              float64      `json:"speed_kmh"`
	TotalRunners       int          `json:"total_runners"`
	CategoryTotal      int          `json:"category_total"`
	Winner             Baseline     `json:"winner"`
	GeneralPercentile  int          `json:"general_percentile"`
	CategoryPercentile int          `json:"category_percentile"`
	RunnersAhead       []Ahead      `json:"runners_ahead"`
	Message            string       `json:"message"`
}

// Nearest returns the closest runner ahead, if any. RunnersAhead is ordered
// by ascending category position, so the nearest is the last entry.
func (r *Report) Nearest() (Ahead, bool) {
	if r == nil || len(r.RunnersAhead) == 0 {
		return Ahead{}, false
	}
	return r.RunnersAhead[len(r.RunnersAhead)-1], true
}

// Highlights renders the quick-analysis lines. The gap line is omitted for a
// category leader.
func (r *Report) Highlights() []string {
	if r == nil {
		return nil
	}
	var lines []string
	if n, ok := r.Nearest(); ok {
		lines = append(lines, fmt.Sprintf("Estuviste a %d segundos de alcanzar la posición %d° de tu categoría (%s)",
			n.DiffSeconds, n.CategoryPosition, n.Name))
	}
	lines = append(lines,
		fmt.Sprintf("Ritmo promedio: %s min/km - Velocidad: %s km/h", r.Pace, racetime.FormatSpeed(r.Speed)),
		fmt.Sprintf("El ganador de tu categoría corrió a %s min/km (%s km/h)", r.Winner.Pace, racetime.FormatSpeed(r.Winner.Speed)),
		fmt.Sprintf("Posición en el top %d%% general y top %d%% de tu categoría", r.GeneralPercentile, r.CategoryPercentile),
		fmt.Sprintf("Puntaje obtenido: %s puntos", formatScore(r.Runner.Score)),
	)
	return lines
}

// Analyze computes the report for runner against the full store. A nil
// runner yields a nil report and no error: nothing is selected yet.
func Analyze(runner *model.Runner, all []model.Runner, picker motivation.Picker) (*Report, error) {
	if runner == nil {
		return nil, nil
	}
	if len(all) == 0 {
		return nil, ErrEmptyStore
	}

	secs := runner.Seconds()
	if !racetime.Valid(secs) {
		return nil, fmt.Errorf("%w: runner %d (%q) has tiempo %v", ErrInvalidTime, runner.Position, runner.Name, runner.Time)
	}

	key := category.KeyOf(*runner)
	peers := category.Members(all, key)
	if len(peers) == 0 {
		return nil, fmt.Errorf("%w: %q/%s", ErrEmptyCategory, key.Category, key.Gender)
	}

	winner, ok := categoryWinner(peers)
	if !ok {
		return nil, fmt.Errorf("%w: %q/%s", ErrNoCategoryWinner, key.Category, key.Gender)
	}
	winnerSecs := winner.Seconds()
	if !racetime.Valid(winnerSecs) {
		return nil, fmt.Errorf("%w: category winner %d (%q)", ErrInvalidTime, winner.Position, winner.Name)
	}

	return &Report{
		Runner:             *runner,
		Category:           key.Category,
		TimeSeconds:        secs,
		Time:               racetime.Clock(secs),
		Pace:               racetime.Pace(secs),
		Speed:              racetime.Speed(secs),
		TotalRunners:       len(all),
		CategoryTotal:      len(peers),
		Winner:             Baseline{Name: winner.Name, Pace: racetime.Pace(winnerSecs), Speed: racetime.Speed(winnerSecs)},
		GeneralPercentile:  Percentile(runner.Position, len(all)),
		CategoryPercentile: Percentile(runner.CategoryPosition, len(peers)),
		RunnersAhead:       runnersAhead(*runner, secs, peers),
		Message:            motivation.Message(picker),
	}, nil
}

// Percentile is the rounded share of the field finished behind position.
func Percentile(position, total int) int {
	return int(math.Round((1 - float64(position)/float64(total)) * 100))
}

func categoryWinner(peers []model.Runner) (model.Runner, bool) {
	for _, p := range peers {
		if p.CategoryPosition == 1 {
			return p, true
		}
	}
	return model.Runner{}, false
}

// runnersAhead keeps the MaxAhead peers closest above the runner, ordered by
// ascending category position.
func runnersAhead(runner model.Runner, secs float64, peers []model.Runner) []Ahead {
	var above []model.Runner
	for _, p := range peers {
		if p.CategoryPosition < runner.CategoryPosition {
			above = append(above, p)
		}
	}
	sort.SliceStable(above, func(i, j int) bool {
		return above[i].CategoryPosition < above[j].CategoryPosition
	})
	if len(above) > MaxAhead {
		above = above[len(above)-MaxAhead:]
	}

	out := make([]Ahead, 0, len(above))
	for _, p := range above {
		ps := p.Seconds()
		diff := secs - ps
		out = append(out, Ahead{
			Position:         p.Position,
			CategoryPosition: p.CategoryPosition,
			Name:             p.Name,
			DiffSeconds:      int(math.Floor(diff)),
			Time:             racetime.ShortClock(ps),
			Gap:              racetime.Gap(diff),
		})
	}
	return out
}

func formatScore(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}
