package config_test

import (
	"testing"

	"github.com/flowerhill/swimreports/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Course, convey.ShouldEqual, "S")
			convey.So(cfg.SheetRows, convey.ShouldEqual, 10)
			convey.So(cfg.SheetColumns, convey.ShouldEqual, 3)
			convey.So(cfg.RibbonsOutput, convey.ShouldEqual, "black_ribbons.pdf")
			convey.So(cfg.ReportTitle, convey.ShouldNotBeEmpty)
		})
	})
}
