// Package racetime converts day-fraction finish times into clock, pace and
// speed figures for the fixed 10 km course.
//
// All unit splits truncate (floor) rather than round, matching the printed
// results sheet.
package racetime

import (
	"fmt"
	"math"
	"strconv"

	"github.com/okian/racelens/internal/domain/model"
)

// Course constants.
const (
	DistanceKm    = 10
	SecondsPerDay = model.SecondsPerDay
	secondsPerMin = 60
	secondsPerHr  = 3600
)

// Seconds converts a day-fraction into seconds.
func Seconds(fraction float64) float64 {
	return fraction * SecondsPerDay
}

// Clock formats seconds as H:MM:SS when at least an hour, else M:SS.
func Clock(seconds float64) string {
	h := int(math.Floor(seconds / secondsPerHr))
	m := int(math.Floor(math.Mod(seconds, secondsPerHr) / secondsPerMin))
	s := int(math.Floor(math.Mod(seconds, secondsPerMin)))
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ShortClock formats seconds as M:SS, dropping any hour component.
func ShortClock(seconds float64) string {
	m := int(math.Floor(math.Mod(seconds, secondsPerHr) / secondsPerMin))
	s := int(math.Floor(math.Mod(seconds, secondsPerMin)))
	return fmt.Sprintf("%d:%02d", m, s)
}

// PaceSeconds returns seconds per kilometre.
func PaceSeconds(seconds float64) float64 {
	return seconds / DistanceKm
}

// Pace formats the per-kilometre pace as M:SS.
func Pace(seconds float64) string {
	p := PaceSeconds(seconds)
	m := int(math.Floor(p / secondsPerMin))
	s := int(math.Floor(math.Mod(p, secondsPerMin)))
	return fmt.Sprintf("%d:%02d", m, s)
}

// Speed returns km/h rounded to one decimal place, half away from zero.
func Speed(seconds float64) float64 {
	kmh := DistanceKm / (seconds / secondsPerHr)
	return math.Round(kmh*10) / 10
}

// FormatSpeed renders a speed with exactly one decimal.
func FormatSpeed(kmh float64) string {
	return strconv.FormatFloat(kmh, 'f', 1, 64)
}

// Gap renders a time difference as minutes:seconds.
func Gap(diff float64) string {
	m := int(math.Floor(diff / secondsPerMin))
	s := int(math.Floor(math.Mod(diff, secondsPerMin)))
	return fmt.Sprintf("%d:%02d", m, s)
}

// Valid reports whether seconds can feed pace and speed derivations.
func Valid(seconds float64) bool {
	return seconds > 0 && !math.IsNaN(seconds) && !math.IsInf(seconds, 0)
}
