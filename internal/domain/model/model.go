// Package model contains domain models passed between pipeline stages.
package model

import (
	"fmt"
	"time"
)

// Stroke identifies a swim stroke as exported by Swimtopia (lowercase short form).
type Stroke string

// Strokes in canonical program order.
const (
	Freestyle        Stroke = "free"
	Backstroke       Stroke = "back"
	Breaststroke     Stroke = "breast"
	Butterfly        Stroke = "fly"
	IndividualMedley Stroke = "im"
)

// strokeNames maps the export short form to the printable name.
var strokeNames = map[Stroke]string{
	Freestyle:        "Freestyle",
	Backstroke:       "Backstroke",
	Breaststroke:     "Breaststroke",
	Butterfly:        "Butterfly",
	IndividualMedley: "Individual Medley",
}

// strokeOrder gives each stroke its rank in the canonical program order.
var strokeOrder = map[Stroke]int{
	Freestyle:        0,
	Backstroke:       1,
	Breaststroke:     2,
	Butterfly:        3,
	IndividualMedley: 4,
}

// Name returns the printable stroke name, or the raw value if unrecognized.
func (s Stroke) Name() string {
	if n, ok := strokeNames[s]; ok {
		return n
	}
	return string(s)
}

// Known reports whether the stroke is one of the five program strokes.
func (s Stroke) Known() bool {
	_, ok := strokeOrder[s]
	return ok
}

// Course is the pool length standard the times were swum (or converted) in.
type Course string

const (
	ShortCourseMeters Course = "S"
	LongCourseMeters  Course = "L"
)

// Meet is one competition referenced by the input data. Numbers are assigned
// by Swimtopia in chronological order, so they double as a time axis.
// Immutable once loaded.
type Meet struct {
	Number int
	Date   string
	Name   string
}

// Event is a value type used as a grouping key; two events are equal iff
// stroke, distance, and course all match.
type Event struct {
	Stroke   Stroke
	Distance int
	Course   Course
}

// String renders the event the way it appears on a label, e.g. "50M Freestyle".
func (e Event) String() string {
	return fmt.Sprintf("%dM %s", e.Distance, e.Stroke.Name())
}

// Less orders events canonically: program stroke order first, then distance
// ascending. Used for label ordering, not for equality.
func (e Event) Less(other Event) bool {
	if so, oo := strokeOrder[e.Stroke], strokeOrder[other.Stroke]; so != oo {
		return so < oo
	}
	if e.Distance != other.Distance {
		return e.Distance < other.Distance
	}
	return e.Course < other.Course
}

// SwimRecord is one swim by one athlete in one event at one meet.
type SwimRecord struct {
	AthleteID   string
	AthleteName string
	AgeGroup    string
	Age         string
	Event       Event
	Meet        Meet
	Time        time.Duration
}

// Validate checks that the recorded time is a well-formed positive duration.
func (r SwimRecord) Validate() error {
	if r.Time <= 0 {
		return fmt.Errorf("%w: athlete %s event %s meet %d: %v",
			ErrInvalidTime, r.AthleteID, r.Event, r.Meet.Number, r.Time)
	}
	return nil
}

// Ribbon is a swim at the target meet that newly set a personal best.
// PreviousBest is nil for an athlete's first-ever swim in the event.
type Ribbon struct {
	AthleteName  string
	Age          string
	AgeGroup     string
	Event        Event
	Meet         Meet
	Time         time.Duration
	PreviousBest *time.Duration
}

// Drop returns how much the swim improved the previous best, or zero for a
// first-ever swim.
func (r Ribbon) Drop() time.Duration {
	if r.PreviousBest == nil {
		return 0
	}
	return *r.PreviousBest - r.Time
}

// FormatTime renders a swim time the way meet programs print them:
// m:ss.cc at or above one minute, ss.cc below.
func FormatTime(d time.Duration) string {
	centis := d.Round(10 * time.Millisecond)
	secs := centis.Seconds()
	if secs >= 60 {
		m := int(secs) / 60
		return fmt.Sprintf("%d:%05.2f", m, secs-float64(m)*60)
	}
	return fmt.Sprintf("%.2f", secs)
}
