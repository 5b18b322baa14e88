package types_test

import (
	"testing"

	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRow(t *testing.T) {
	Convey("Given a runner from the sheet", t, func() {
		r := model.Runner{
			Name: "Ana Gómez", Position: 12, CategoryPosition: 3,
			Category: "40 A 49 ", Gender: model.Female, Time: 3725.0 / 86400, Score: 88,
		}

		Convey("When formatting it as a row", func() {
			row := types.NewRow(r)

			Convey("Then positions and labels are carried over", func() {
				So(row.Position, ShouldEqual, 12)
				So(row.CategoryPosition, ShouldEqual, 3)
				So(row.Category, ShouldEqual, "40 a 49")
				So(row.RawCategory, ShouldEqual, "40 A 49 ")
				So(row.Gender, ShouldEqual, "Femenino")
				So(row.GenderShort, ShouldEqual, "F")
				So(row.Score, ShouldEqual, 88)
			})

			Convey("Then time and pace use the long clock", func() {
				So(row.Time, ShouldStartWith, "1:02:0")
				So(row.Pace, ShouldEqual, "6:12")
			})
		})
	})

	Convey("Given several runners", t, func() {
		rows := types.Rows([]model.Runner{{Name: "a", Time: 0.02}, {Name: "b", Time: 0.03}})
		So(len(rows), ShouldEqual, 2)
		So(rows[1].Name, ShouldEqual, "b")
	})
}
