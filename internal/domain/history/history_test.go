package history_test

import (
	"errors"
	"testing"
	"time"

	"github.com/flowerhill/swimreports/internal/domain/history"
	"github.com/flowerhill/swimreports/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	free50 = model.Event{Stroke: model.Freestyle, Distance: 50, Course: model.ShortCourseMeters}
	back25 = model.Event{Stroke: model.Backstroke, Distance: 25, Course: model.ShortCourseMeters}
)

func swim(athlete string, event model.Event, meet int, secs float64) model.SwimRecord {
	return model.SwimRecord{
		AthleteID:   athlete,
		AthleteName: athlete,
		Event:       event,
		Meet:        model.Meet{Number: meet},
		Time:        time.Duration(secs * float64(time.Second)),
	}
}

func TestBuild(t *testing.T) {
	Convey("Given records for two athletes across meets, out of order", t, func() {
		records := []model.SwimRecord{
			swim("bob", free50, 3, 28.0),
			swim("amy", free50, 1, 30.0),
			swim("bob", free50, 1, 29.0),
			swim("amy", back25, 2, 22.0),
			swim("amy", free50, 2, 29.5),
		}

		h, err := history.Build(records)
		So(err, ShouldBeNil)

		Convey("Each key's sequence is sorted by meet number ascending", func() {
			seq := h.For("amy", free50)
			So(seq, ShouldHaveLength, 2)
			So(seq[0].Meet.Number, ShouldEqual, 1)
			So(seq[1].Meet.Number, ShouldEqual, 2)
		})

		Convey("Different events of one athlete are separate histories", func() {
			So(h.For("amy", back25), ShouldHaveLength, 1)
			So(h.Len(), ShouldEqual, 3)
		})

		Convey("An unknown key has no history", func() {
			So(h.For("cid", free50), ShouldBeNil)
		})

		Convey("Keys come back sorted and complete", func() {
			keys := h.Keys()
			So(keys, ShouldHaveLength, 3)
			So(keys[0].AthleteID, ShouldEqual, "amy")
			So(keys[0].Event, ShouldResemble, free50)
			So(keys[1].Event, ShouldResemble, back25)
			So(keys[2].AthleteID, ShouldEqual, "bob")
		})

		Convey("For hands out a copy", func() {
			seq := h.For("amy", free50)
			seq[0].Time = 0
			So(h.For("amy", free50)[0].Time, ShouldNotEqual, time.Duration(0))
		})
	})

	Convey("Given a duplicate (athlete, event, meet) triple", t, func() {
		_, err := history.Build([]model.SwimRecord{
			swim("amy", free50, 1, 30.0),
			swim("amy", free50, 1, 29.0),
		})

		Convey("The build fails with ErrDuplicateSwim naming the offender", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, history.ErrDuplicateSwim), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "amy")
			So(err.Error(), ShouldContainSubstring, "meet 1")
		})
	})

	Convey("Given no records", t, func() {
		h, err := history.Build(nil)
		So(err, ShouldBeNil)
		So(h.Len(), ShouldEqual, 0)
		So(h.Keys(), ShouldBeEmpty)
	})
}
