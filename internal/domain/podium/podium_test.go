package podium_test

import (
	"testing"

	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/internal/domain/podium"
	. "github.com/smartystreets/goconvey/convey"
)

func fixture() []model.Runner {
	var out []model.Runner
	add := func(cat string, g model.Gender, catPos int) {
		out = append(out, model.Runner{
			Name: cat + string(g) + string(rune('0'+catPos)), Position: len(out) + 1,
			CategoryPosition: catPos, Category: cat, Gender: g, Time: float64(1800+len(out)) / 86400,
		})
	}
	// seven women 40-49, spelled two ways, out of category order
	for _, p := range []int{3, 1, 2, 7, 5, 4, 6} {
		label := "40 a 49"
		if p%2 == 0 {
			label = "40 A 49 "
		}
		add(label, model.Female, p)
	}
	add("Elite", model.Male, 1)
	add("20 a 29", model.Female, 1)
	add("40 a 49", model.Male, 1)
	add("20 a 29", model.Male, 2)
	add("20 a 29", model.Male, 1)
	return out
}

func TestBuild(t *testing.T) {
	Convey("Given a store with mixed labels and genders", t, func() {
		boards := podium.Build(fixture())

		Convey("Then boards are ordered by numeric prefix then gender", func() {
			So(len(boards), ShouldEqual, 5)
			So(boards[0].Category, ShouldEqual, "20 a 29")
			So(boards[0].Gender, ShouldEqual, model.Male)
			So(boards[1].Category, ShouldEqual, "20 a 29")
			So(boards[1].Gender, ShouldEqual, model.Female)
			So(boards[2].Category, ShouldEqual, "40 a 49")
			So(boards[2].Gender, ShouldEqual, model.Male)
			So(boards[3].Category, ShouldEqual, "40 a 49")
			So(boards[3].Gender, ShouldEqual, model.Female)
			So(boards[4].Category, ShouldEqual, "Elite")
		})

		Convey("Then each board has at most five strictly increasing entries", func() {
			for _, b := range boards {
				So(len(b.Top), ShouldBeLessThanOrEqualTo, podium.Size)
				for i := 1; i < len(b.Top); i++ {
					So(b.Top[i].CategoryPosition, ShouldBeGreaterThan, b.Top[i-1].CategoryPosition)
				}
			}
		})

		Convey("Then the normalized labels merge into one board with the full total", func() {
			women := boards[3]
			So(women.Total, ShouldEqual, 7)
			So(len(women.Top), ShouldEqual, 5)
			So(women.Top[0].CategoryPosition, ShouldEqual, 1)
			So(women.Top[4].CategoryPosition, ShouldEqual, 5)
		})

		Convey("Then men 20-29 are sorted by category position", func() {
			So(boards[0].Top[0].CategoryPosition, ShouldEqual, 1)
			So(boards[0].Total, ShouldEqual, 2)
		})
	})

	Convey("Given an empty store", t, func() {
		So(podium.Build(nil), ShouldBeEmpty)
	})
}
