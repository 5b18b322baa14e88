package results_test

import (
	"testing"

	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/internal/domain/results"
	. "github.com/smartystreets/goconvey/convey"
)

func store() []model.Runner {
	return []model.Runner{
		{Name: "José Pérez", Position: 1, CategoryPosition: 1, Category: "20 a 29", Gender: model.Male, Time: 2000.0 / 86400},
		{Name: "Ana Gómez", Position: 2, CategoryPosition: 1, Category: "40 A 49", Gender: model.Female, Time: 2100.0 / 86400},
		{Name: "Jose Luis", Position: 3, CategoryPosition: 2, Category: "20 a 29", Gender: model.Male, Time: 2200.0 / 86400},
		{Name: "Laura Sosa", Position: 4, CategoryPosition: 2, Category: "40 a 49 ", Gender: model.Female, Time: 2300.0 / 86400},
	}
}

func TestFilter(t *testing.T) {
	Convey("Given the results table", t, func() {
		all := store()

		Convey("When no filters are set", func() {
			got, err := results.Filter(all, results.Query{Category: results.All, Gender: results.All})
			So(err, ShouldBeNil)
			So(len(got), ShouldEqual, 4)
		})

		Convey("When filtering by name", func() {
			got, err := results.Filter(all, results.Query{Name: "JOSE"})
			So(err, ShouldBeNil)

			Convey("Then matching is case-insensitive but not accent-insensitive", func() {
				So(len(got), ShouldEqual, 1)
				So(got[0].Name, ShouldEqual, "Jose Luis")
			})
		})

		Convey("When filtering by normalized category", func() {
			got, err := results.Filter(all, results.Query{Category: "40 a 49"})
			So(err, ShouldBeNil)
			So(len(got), ShouldEqual, 2)
			So(got[0].Position, ShouldEqual, 2)
			So(got[1].Position, ShouldEqual, 4)
		})

		Convey("When combining category and gender", func() {
			got, err := results.Filter(all, results.Query{Category: "20 a 29", Gender: "Femenino"})
			So(err, ShouldBeNil)
			So(got, ShouldBeEmpty)
		})

		Convey("When the gender is unknown", func() {
			_, err := results.Filter(all, results.Query{Gender: "x"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given the store", t, func() {
		ov := results.Summarize(store())
		So(ov.TotalRunners, ShouldEqual, 4)
		So(ov.DistanceKm, ShouldEqual, 10)
		So(ov.Categories, ShouldResemble, []string{"20 a 29", "40 a 49"})
	})
}

func TestVerify(t *testing.T) {
	Convey("Given a well-formed store", t, func() {
		So(results.Verify(store()), ShouldBeEmpty)
	})

	Convey("Given a store with broken invariants", t, func() {
		bad := store()
		bad[2].Position = 2          // repeated overall position
		bad[3].CategoryPosition = 5  // outside 1..2
		bad[1].Time = 2500.0 / 86400 // slower than position 3
		v := results.Verify(bad)

		rules := map[string]int{}
		for _, x := range v {
			rules[x.Rule]++
		}

		Convey("Then each rule is reported", func() {
			So(rules[results.RuleOverallPermutation], ShouldBeGreaterThan, 0)
			So(rules[results.RuleCategoryPermutation], ShouldBeGreaterThan, 0)
			So(rules[results.RuleTimeOrder], ShouldBeGreaterThan, 0)
		})
	})

	Convey("Given a runner with a zero time", t, func() {
		bad := store()
		bad[0].Time = 0
		v := results.Verify(bad)
		So(len(v), ShouldBeGreaterThan, 0)
		So(v[0].Rule, ShouldEqual, results.RuleTimeRange)
	})
}
