package config_test

import (
	"testing"

	"github.com/okian/racelens/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.DataPath, convey.ShouldEqual, "data/results.json")
			convey.So(cfg.DataFormat, convey.ShouldBeEmpty)
			convey.So(cfg.DataTable, convey.ShouldEqual, "results")
			convey.So(cfg.RaceName, convey.ShouldEqual, "10K San Martín")
			convey.So(cfg.MotivationSeed, convey.ShouldEqual, 0)
			convey.So(cfg.StrictIntegrity, convey.ShouldBeFalse)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
