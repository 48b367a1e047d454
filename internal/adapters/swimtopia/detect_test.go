package swimtopia_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/flowerhill/swimreports/internal/adapters/swimtopia"
	. "github.com/smartystreets/goconvey/convey"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDetectKind(t *testing.T) {
	Convey("Given CSV files of each kind", t, func() {
		dir := t.TempDir()

		bestTimes := writeFile(t, dir, "best.csv", bestTimesHeader+"\n")
		reportCard := writeFile(t, dir, "card.csv",
			strings.Join(swimtopia.ReportCardHeader(3), ",")+"\n")
		other := writeFile(t, dir, "other.csv", "a,b,c\n1,2,3\n")
		empty := writeFile(t, dir, "empty.csv", "")

		Convey("The best times export is recognized", func() {
			kind, err := swimtopia.DetectKind(bestTimes)
			So(err, ShouldBeNil)
			So(kind, ShouldEqual, swimtopia.KindBestTimes)
		})

		Convey("The report card export is recognized", func() {
			kind, err := swimtopia.DetectKind(reportCard)
			So(err, ShouldBeNil)
			So(kind, ShouldEqual, swimtopia.KindReportCard)
		})

		Convey("Anything else is unknown", func() {
			kind, err := swimtopia.DetectKind(other)
			So(err, ShouldBeNil)
			So(kind, ShouldEqual, swimtopia.KindUnknown)

			kind, err = swimtopia.DetectKind(empty)
			So(err, ShouldBeNil)
			So(kind, ShouldEqual, swimtopia.KindUnknown)
		})
	})
}

func TestFindNewest(t *testing.T) {
	Convey("Given a directory with several exports", t, func() {
		dir := t.TempDir()

		old := writeFile(t, dir, "card_old.csv",
			strings.Join(swimtopia.ReportCardHeader(2), ",")+"\n")
		newer := writeFile(t, dir, "card_new.csv",
			strings.Join(swimtopia.ReportCardHeader(3), ",")+"\n")
		best := writeFile(t, dir, "best.csv", bestTimesHeader+"\n")
		writeFile(t, dir, "notes.csv", "a,b\n")

		// Make the modification order explicit rather than racing the clock.
		base := time.Now().Add(-time.Hour)
		So(os.Chtimes(old, base, base), ShouldBeNil)
		So(os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)), ShouldBeNil)

		exports, err := swimtopia.FindNewest(dir)
		So(err, ShouldBeNil)

		Convey("The newest file of each kind wins", func() {
			So(exports.ReportCard, ShouldEqual, newer)
			So(exports.BestTimes, ShouldEqual, best)
		})
	})

	Convey("Given a directory with no exports", t, func() {
		exports, err := swimtopia.FindNewest(t.TempDir())
		So(err, ShouldBeNil)
		So(exports.ReportCard, ShouldBeEmpty)
		So(exports.BestTimes, ShouldBeEmpty)
	})
}
