package analytics_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/okian/racelens/internal/domain/analytics"
	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/internal/domain/motivation"
	. "github.com/smartystreets/goconvey/convey"
)

func secs(s float64) float64 { return s / 86400 }

func TestAnalyze_TwoRunnerScenario(t *testing.T) {
	Convey("Given two runners in the same category", t, func() {
		store := []model.Runner{
			{Name: "A", Position: 1, CategoryPosition: 1, Category: "20 a 29", Gender: model.Male, Time: secs(2000), Score: 100},
			{Name: "B", Position: 2, CategoryPosition: 2, Category: "20 a 29", Gender: model.Male, Time: secs(2100), Score: 90},
		}

		Convey("When analyzing B", func() {
			rep, err := analytics.Analyze(&store[1], store, motivation.FixedPicker(0))
			So(err, ShouldBeNil)
			So(rep, ShouldNotBeNil)

			Convey("Then A is the only runner ahead, 100 seconds away", func() {
				So(len(rep.RunnersAhead), ShouldEqual, 1)
				ahead := rep.RunnersAhead[0]
				So(ahead.Name, ShouldEqual, "A")
				So(ahead.DiffSeconds, ShouldEqual, 100)
				So(ahead.Gap, ShouldEqual, "1:40")
				So(ahead.Time, ShouldEqual, "33:20")
			})

			Convey("Then the figures match the sheet", func() {
				So(rep.Time, ShouldEqual, "35:00")
				So(rep.Pace, ShouldEqual, "3:30")
				So(rep.CategoryTotal, ShouldEqual, 2)
				So(rep.TotalRunners, ShouldEqual, 2)
				So(rep.GeneralPercentile, ShouldEqual, 0)
				So(rep.CategoryPercentile, ShouldEqual, 0)
				So(rep.Winner.Name, ShouldEqual, "A")
				So(rep.Winner.Pace, ShouldEqual, "3:20")
				So(rep.Winner.Speed, ShouldEqual, 18.0)
				So(rep.Message, ShouldEqual, motivation.Catalog[0])
			})

			Convey("Then the nearest runner drives the gap line", func() {
				n, ok := rep.Nearest()
				So(ok, ShouldBeTrue)
				So(n.Name, ShouldEqual, "A")
				So(rep.Highlights()[0], ShouldContainSubstring, "100 segundos")
			})
		})

		Convey("When analyzing the category leader", func() {
			rep, err := analytics.Analyze(&store[0], store, nil)
			So(err, ShouldBeNil)

			Convey("Then nobody is ahead and the gap line is omitted", func() {
				So(rep.RunnersAhead, ShouldBeEmpty)
				_, ok := rep.Nearest()
				So(ok, ShouldBeFalse)
				So(len(rep.Highlights()), ShouldEqual, 4)
				So(rep.GeneralPercentile, ShouldEqual, 50)
				So(rep.CategoryPercentile, ShouldEqual, 50)
			})
		})
	})
}

func TestAnalyze_NoRunner(t *testing.T) {
	Convey("Given no selected runner", t, func() {
		rep, err := analytics.Analyze(nil, nil, nil)

		Convey("Then the report is empty and not an error", func() {
			So(err, ShouldBeNil)
			So(rep, ShouldBeNil)
			So(rep.Highlights(), ShouldBeNil)
		})
	})
}

func TestAnalyze_RunnersAheadWindow(t *testing.T) {
	Convey("Given a category of 15 runners plus other categories", t, func() {
		var store []model.Runner
		pos := 1
		for i := 1; i <= 15; i++ {
			store = append(store, model.Runner{
				Name: fmt.Sprintf("M%02d", i), Position: pos, CategoryPosition: i,
				Category: "30 A 39", Gender: model.Male, Time: secs(float64(1800 + 10*i)),
			})
			pos++
			store = append(store, model.Runner{
				Name: fmt.Sprintf("F%02d", i), Position: pos, CategoryPosition: i,
				Category: "30 a 39", Gender: model.Female, Time: secs(float64(1805 + 10*i)),
			})
			pos++
		}
		last := store[28] // M15

		Convey("When analyzing the last male", func() {
			rep, err := analytics.Analyze(&last, store, nil)
			So(err, ShouldBeNil)

			Convey("Then only same-gender peers count", func() {
				So(rep.CategoryTotal, ShouldEqual, 15)
				So(rep.Category, ShouldEqual, "30 a 39")
			})

			Convey("Then the ten closest peers are kept in ascending order", func() {
				So(len(rep.RunnersAhead), ShouldEqual, analytics.MaxAhead)
				So(rep.RunnersAhead[0].CategoryPosition, ShouldEqual, 5)
				So(rep.RunnersAhead[9].CategoryPosition, ShouldEqual, 14)
				for i := 1; i < len(rep.RunnersAhead); i++ {
					So(rep.RunnersAhead[i].CategoryPosition, ShouldBeGreaterThan, rep.RunnersAhead[i-1].CategoryPosition)
				}
				for _, a := range rep.RunnersAhead {
					So(strings.HasPrefix(a.Name, "M"), ShouldBeTrue)
				}
			})

			Convey("Then the nearest is one place up, ten seconds away", func() {
				n, ok := rep.Nearest()
				So(ok, ShouldBeTrue)
				So(n.CategoryPosition, ShouldEqual, 14)
				So(n.DiffSeconds, ShouldEqual, 10)
			})

			Convey("Then percentiles follow the rounding rule", func() {
				So(rep.GeneralPercentile, ShouldEqual, int(math.Round((1-29.0/30.0)*100)))
				So(rep.CategoryPercentile, ShouldEqual, 0)
			})
		})

		Convey("Then every runner's general percentile matches the formula", func() {
			for i := range store {
				rep, err := analytics.Analyze(&store[i], store, nil)
				So(err, ShouldBeNil)
				want := int(math.Round((1 - float64(store[i].Position)/float64(len(store))) * 100))
				So(rep.GeneralPercentile, ShouldEqual, want)
			}
		})
	})
}

func TestAnalyze_Errors(t *testing.T) {
	Convey("Given malformed stores", t, func() {
		Convey("When the runner is not part of the store", func() {
			store := []model.Runner{{Name: "A", Position: 1, CategoryPosition: 1, Category: "20 a 29", Gender: model.Male, Time: secs(2000)}}
			stranger := model.Runner{Name: "Z", Position: 2, CategoryPosition: 1, Category: "60 a 69", Gender: model.Female, Time: secs(3000)}
			_, err := analytics.Analyze(&stranger, store, nil)
			So(errors.Is(err, analytics.ErrEmptyCategory), ShouldBeTrue)
		})

		Convey("When the category has no winner", func() {
			store := []model.Runner{{Name: "A", Position: 1, CategoryPosition: 2, Category: "20 a 29", Gender: model.Male, Time: secs(2000)}}
			_, err := analytics.Analyze(&store[0], store, nil)
			So(errors.Is(err, analytics.ErrNoCategoryWinner), ShouldBeTrue)
		})

		Convey("When the finish time is zero", func() {
			store := []model.Runner{{Name: "A", Position: 1, CategoryPosition: 1, Category: "20 a 29", Gender: model.Male}}
			_, err := analytics.Analyze(&store[0], store, nil)
			So(errors.Is(err, analytics.ErrInvalidTime), ShouldBeTrue)
		})

		Convey("When the store is empty", func() {
			r := model.Runner{Name: "A", Time: secs(2000)}
			_, err := analytics.Analyze(&r, nil, nil)
			So(errors.Is(err, analytics.ErrEmptyStore), ShouldBeTrue)
		})
	})
}

func TestPercentile(t *testing.T) {
	Convey("Given positions in a field", t, func() {
		So(analytics.Percentile(1, 100), ShouldEqual, 99)
		So(analytics.Percentile(100, 100), ShouldEqual, 0)
		So(analytics.Percentile(1, 8), ShouldEqual, 88) // 87.5 rounds up
		So(analytics.Percentile(3, 3), ShouldEqual, 0)
	})
}
