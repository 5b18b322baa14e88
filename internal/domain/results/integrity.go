package results

import (
	"fmt"
	"sort"

	"github.com/okian/racelens/internal/domain/category"
	"github.com/okian/racelens/internal/domain/model"
)

// Violation describes one broken store invariant.
type Violation struct {
	Rule   string `json:"rule"`
	Detail string `json:"detail"`
}

func (v Violation) String() string { return v.Rule + ": " + v.Detail }

// Rule names reported by Verify.
const (
	RuleOverallPermutation  = "overall_positions"
	RuleCategoryPermutation = "category_positions"
	RuleTimeOrder           = "time_order"
	RuleTimeRange           = "time_range"
)

// Verify checks the results-sheet invariants: overall positions are exactly
// 1..N, category positions are exactly 1..M inside each partition, finish
// times lie in (0,1) and never decrease with overall position.
func Verify(runners []model.Runner) []Violation {
	var out []Violation
	out = append(out, checkPermutation(RuleOverallPermutation, "store", positions(runners, func(r model.Runner) int { return r.Position }))...)

	groups := make(map[category.Key][]int)
	var keys []category.Key
	for _, r := range runners {
		k := category.KeyOf(r)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], r.CategoryPosition)
	}
	for _, k := range keys {
		out = append(out, checkPermutation(RuleCategoryPermutation, fmt.Sprintf("%s/%s", k.Category, k.Gender), groups[k])...)
	}

	for _, r := range runners {
		if !(r.Time > 0 && r.Time < 1) {
			out = append(out, Violation{Rule: RuleTimeRange, Detail: fmt.Sprintf("runner %d (%s) has tiempo %v", r.Position, r.Name, r.Time)})
		}
	}

	byPos := append([]model.Runner(nil), runners...)
	sort.SliceStable(byPos, func(i, j int) bool { return byPos[i].Position < byPos[j].Position })
	for i := 1; i < len(byPos); i++ {
		if byPos[i].Time < byPos[i-1].Time {
			out = append(out, Violation{Rule: RuleTimeOrder, Detail: fmt.Sprintf("position %d is faster than position %d", byPos[i].Position, byPos[i-1].Position)})
		}
	}
	return out
}

func positions(runners []model.Runner, f func(model.Runner) int) []int {
	out := make([]int, len(runners))
	for i, r := range runners {
		out[i] = f(r)
	}
	return out
}

func checkPermutation(rule, scope string, values []int) []Violation {
	n := len(values)
	seen := make([]bool, n+1)
	var out []Violation
	for _, v := range values {
		switch {
		case v < 1 || v > n:
			out = append(out, Violation{Rule: rule, Detail: fmt.Sprintf("%s: position %d outside 1..%d", scope, v, n)})
		case seen[v]:
			out = append(out, Violation{Rule: rule, Detail: fmt.Sprintf("%s: position %d repeated", scope, v)})
		default:
			seen[v] = true
		}
	}
	return out
}
