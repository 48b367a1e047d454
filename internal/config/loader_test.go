package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/flowerhill/swimreports/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"SWIMREPORTS_CONFIG",
		"SWIMREPORTS_LOG_LEVEL",
		"SWIMREPORTS_COURSE",
		"SWIMREPORTS_SHEET_ROWS",
		"SWIMREPORTS_SHEET_COLUMNS",
		"SWIMREPORTS_REPORT_TITLE",
		"SWIMREPORTS_RIBBONS_OUTPUT",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.SheetRows, convey.ShouldEqual, 10)
				convey.So(cfg.SheetColumns, convey.ShouldEqual, 3)
				convey.So(cfg.Course, convey.ShouldEqual, "S")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SWIMREPORTS_SHEET_ROWS", "7")
			_ = os.Setenv("SWIMREPORTS_SHEET_COLUMNS", "2")
			_ = os.Setenv("SWIMREPORTS_LOG_LEVEL", "debug")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.SheetRows, convey.ShouldEqual, 7)
				convey.So(cfg.SheetColumns, convey.ShouldEqual, 2)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "sheet_rows: 5\nreport_title: Test Team Top Times\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("SWIMREPORTS_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.SheetRows, convey.ShouldEqual, 5)
				convey.So(cfg.ReportTitle, convey.ShouldEqual, "Test Team Top Times")
				convey.So(cfg.SheetColumns, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When env layers over a file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			convey.So(os.WriteFile(path, []byte("sheet_rows: 5\n"), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("SWIMREPORTS_CONFIG", path)
			_ = os.Setenv("SWIMREPORTS_SHEET_ROWS", "8")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.SheetRows, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When the configuration is invalid", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SWIMREPORTS_SHEET_ROWS", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with ErrInvalidConfig", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the course is not a known code", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SWIMREPORTS_COURSE", "X")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with ErrInvalidConfig", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SWIMREPORTS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with ErrLoadConfig", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}
