// Package category normalizes age-bracket labels and builds the
// (category, gender) partition key shared by analytics, podiums and the
// results table.
package category

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/okian/racelens/internal/domain/model"
)

// UnlabeledOrder is the sort value for labels without any digits.
const UnlabeledOrder = 999

var firstDigits = regexp.MustCompile(`\d+`)

// Normalize trims the label and lower-cases the first space-bounded " A ".
// The source sheet mixes "40 A 49" and "40 a 49"; nothing else is touched.
func Normalize(label string) string {
	return strings.Replace(strings.TrimSpace(label), " A ", " a ", 1)
}

// Key identifies a (category, gender) partition.
type Key struct {
	Category string
	Gender   model.Gender
}

// KeyOf returns the partition key of a runner.
func KeyOf(r model.Runner) Key {
	return Key{Category: Normalize(r.Category), Gender: r.Gender}
}

// OrderValue extracts the first run of digits from a label.
func OrderValue(label string) int {
	m := firstDigits.FindString(label)
	if m == "" {
		return UnlabeledOrder
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return UnlabeledOrder
	}
	return n
}

// Less orders keys by numeric prefix, then Male before Female.
func Less(a, b Key) bool {
	oa, ob := OrderValue(a.Category), OrderValue(b.Category)
	if oa != ob {
		return oa < ob
	}
	return a.Gender.Rank() < b.Gender.Rank()
}

// Members returns every runner in the partition, in store order.
func Members(runners []model.Runner, key Key) []model.Runner {
	var out []model.Runner
	for _, r := range runners {
		if KeyOf(r) == key {
			out = append(out, r)
		}
	}
	return out
}

// Count returns the partition size by filtering the full store.
func Count(runners []model.Runner, key Key) int {
	n := 0
	for _, r := range runners {
		if KeyOf(r) == key {
			n++
		}
	}
	return n
}

// Distinct returns the normalized labels present in runners, numerically
// ordered. Labels sharing a numeric prefix keep first-seen order.
func Distinct(runners []model.Runner) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range runners {
		c := Normalize(r.Category)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return OrderValue(out[i]) < OrderValue(out[j])
	})
	return out
}
