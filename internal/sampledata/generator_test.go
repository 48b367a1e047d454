package sampledata_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/flowerhill/swimreports/internal/adapters/swimtopia"
	"github.com/flowerhill/swimreports/internal/domain/model"
	"github.com/flowerhill/swimreports/internal/sampledata"
	"github.com/flowerhill/swimreports/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGeneratedExportParses(t *testing.T) {
	Convey("Given a generated sample export", t, func() {
		ctx := context.Background()
		out := filepath.Join(t.TempDir(), "report_card.csv")

		err := sampledata.Run(ctx, sampledata.Config{
			Athletes: 12,
			Meets:    4,
			Seed:     42,
			Output:   out,
		})
		So(err, ShouldBeNil)

		Convey("When parsing it as a report card", func() {
			f, err := os.Open(out)
			So(err, ShouldBeNil)
			defer f.Close()

			rc, err := swimtopia.ParseReportCard(f, model.ShortCourseMeters)

			Convey("Then every generated swim is valid", func() {
				So(err, ShouldBeNil)
				So(rc.Skipped, ShouldBeEmpty)
				So(len(rc.Records), ShouldBeGreaterThan, 0)

				for _, rec := range rc.Records {
					So(rec.Validate(), ShouldBeNil)
					So(rec.Meet.Number, ShouldBeBetweenOrEqual, 1, 4)
				}
			})
		})
	})
}

func TestGeneratorIsDeterministic(t *testing.T) {
	Convey("Given two runs with the same seed", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		a := filepath.Join(dir, "a.csv")
		b := filepath.Join(dir, "b.csv")

		cfg := sampledata.Config{Athletes: 8, Meets: 3, Seed: 7}

		cfg.Output = a
		So(sampledata.Run(ctx, cfg), ShouldBeNil)
		cfg.Output = b
		So(sampledata.Run(ctx, cfg), ShouldBeNil)

		Convey("Then the outputs are byte-identical", func() {
			dataA, err := os.ReadFile(a)
			So(err, ShouldBeNil)
			dataB, err := os.ReadFile(b)
			So(err, ShouldBeNil)
			So(bytes.Equal(dataA, dataB), ShouldBeTrue)
		})
	})
}

func TestGeneratorRejectsBadConfig(t *testing.T) {
	Convey("Given a config with no athletes", t, func() {
		err := sampledata.Run(context.Background(), sampledata.Config{
			Athletes: 0,
			Meets:    3,
			Output:   filepath.Join(t.TempDir(), "out.csv"),
		})

		Convey("Then generation fails", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
