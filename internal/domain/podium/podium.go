// Package podium builds the per-category, per-gender top-five boards.
package podium

import (
	"sort"

	"github.com/okian/racelens/internal/domain/category"
	"github.com/okian/racelens/internal/domain/model"
)

// Size is the number of runners shown per board.
const Size = 5

// Podium is the board of one (category, gender) partition.
type Podium struct {
	Category string         `json:"category"`
	Gender   model.Gender   `json:"gender"`
	Top      []model.Runner `json:"top"`
	Total    int            `json:"total"` // untruncated partition size
}

// Build partitions runners by normalized category and gender, keeps the first
// Size runners of each by category position, and orders the boards by the
// category's numeric prefix then gender (Male first).
func Build(runners []model.Runner) []Podium {
	groups := make(map[category.Key][]model.Runner)
	var keys []category.Key
	for _, r := range runners {
		k := category.KeyOf(r)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], r)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return category.Less(keys[i], keys[j])
	})

	out := make([]Podium, 0, len(keys))
	for _, k := range keys {
		members := groups[k]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].CategoryPosition < members[j].CategoryPosition
		})
		top := members
		if len(top) > Size {
			top = top[:Size]
		}
		out = append(out, Podium{
			Category: k.Category,
			Gender:   k.Gender,
			Top:      append([]model.Runner(nil), top...),
			Total:    category.Count(runners, k),
		})
	}
	return out
}
