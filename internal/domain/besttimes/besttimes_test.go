package besttimes_test

import (
	"testing"
	"time"

	"github.com/flowerhill/swimreports/internal/domain/besttimes"
	. "github.com/smartystreets/goconvey/convey"
)

func swim(ageGroup, swimmer, event string, secs float64) besttimes.Swim {
	return besttimes.Swim{
		AgeGroup: ageGroup,
		Swimmer:  swimmer,
		Event:    event,
		Time:     time.Duration(secs * float64(time.Second)),
	}
}

func TestReport(t *testing.T) {
	Convey("Given season bests across age groups and events", t, func() {
		swims := []besttimes.Swim{
			swim("Girls 9-10", "Maya (10)", "50 Freestyle", 40.1),
			swim("Girls 8 & Under", "Anna (8)", "25 Freestyle", 25.5),
			swim("Girls 9-10", "Iris (9)", "50 Freestyle", 38.2),
			swim("Girls 9-10", "Keira (10)", "25 Backstroke", 27.0),
			swim("Girls 8 & Under", "Emma (7)", "25 Freestyle", 24.9),
		}

		report := besttimes.Report(swims)

		Convey("Sections follow program age-group order and skip empty groups", func() {
			So(report, ShouldHaveLength, 2)
			So(report[0].AgeGroup, ShouldEqual, "Girls 8 & Under")
			So(report[1].AgeGroup, ShouldEqual, "Girls 9-10")
		})

		Convey("Events appear in canonical order within a section", func() {
			So(report[1].Events, ShouldHaveLength, 2)
			So(report[1].Events[0].Event, ShouldEqual, "50 Freestyle")
			So(report[1].Events[1].Event, ShouldEqual, "25 Backstroke")
		})

		Convey("Swimmers rank fastest first", func() {
			free := report[1].Events[0]
			So(free.Swims[0].Swimmer, ShouldEqual, "Iris (9)")
			So(free.Swims[1].Swimmer, ShouldEqual, "Maya (10)")

			under8 := report[0].Events[0]
			So(under8.Swims[0].Swimmer, ShouldEqual, "Emma (7)")
		})
	})

	Convey("Given a swim-up outside the group's regular program", t, func() {
		report := besttimes.Report([]besttimes.Swim{
			swim("Girls 8 & Under", "Anna (8)", "50 Freestyle", 50.0),
			swim("Girls 8 & Under", "Anna (8)", "25 Butterfly", 30.0),
		})

		Convey("It still slots into the canonical event order", func() {
			So(report[0].Events, ShouldHaveLength, 2)
			So(report[0].Events[0].Event, ShouldEqual, "50 Freestyle")
			So(report[0].Events[1].Event, ShouldEqual, "25 Butterfly")
		})
	})

	Convey("Given no swims", t, func() {
		So(besttimes.Report(nil), ShouldBeEmpty)
	})
}

func TestProgram(t *testing.T) {
	Convey("Given MCSL age groups", t, func() {
		Convey("8 & Under swims 25s plus the 100 IM", func() {
			So(besttimes.Program("Girls 8 & Under"), ShouldResemble, []string{
				"25 Freestyle", "25 Backstroke", "25 Breaststroke", "25 Butterfly", "100 Individual Medley",
			})
		})

		Convey("15-18 swims 100s with a 50 fly", func() {
			So(besttimes.Program("Men 15-18"), ShouldResemble, []string{
				"100 Freestyle", "100 Backstroke", "100 Breaststroke", "50 Butterfly", "100 Individual Medley",
			})
		})

		Convey("Unknown age groups have no program", func() {
			So(besttimes.Program("Masters"), ShouldBeNil)
			So(besttimes.KnownAgeGroup("Masters"), ShouldBeFalse)
			So(besttimes.KnownAgeGroup("Girls 9-10"), ShouldBeTrue)
		})
	})
}
