// Package ribbons decides which swims at a target meet earned a black ribbon:
// a new personal best as of that meet.
package ribbons

import (
	"github.com/flowerhill/swimreports/internal/domain/history"
	"github.com/flowerhill/swimreports/internal/domain/model"
)

// Skipped reports one record excluded from the determination, with the reason.
// Skips are data-quality findings, not failures; the run continues without
// the record.
type Skipped struct {
	Record model.SwimRecord
	Reason error
}

// Track replays every athlete-event history up to and including the target
// meet and returns a ribbon for each swim at the target meet that strictly
// improved the athlete's best from all earlier meets.
//
// Only swims at or before the target meet participate, so the determination
// is correct even when invoked for a historical meet. A tie with the prior
// best does not qualify. A first-ever swim in an event always qualifies; its
// ribbon carries a nil previous best.
//
// Records with non-positive times are excluded and reported via the skipped
// list rather than aborting the run. Output order follows the sorted key
// order of the history, so identical input always yields identical output.
func Track(h *history.History, target model.Meet) ([]model.Ribbon, []Skipped) {
	var awards []model.Ribbon
	var skipped []Skipped

	for _, k := range h.Keys() {
		best := model.SwimRecord{}
		haveBest := false

		for _, swim := range h.For(k.AthleteID, k.Event) {
			if swim.Meet.Number > target.Number {
				break
			}
			if err := swim.Validate(); err != nil {
				skipped = append(skipped, Skipped{Record: swim, Reason: err})
				continue
			}

			improved := !haveBest || swim.Time < best.Time

			if swim.Meet.Number == target.Number && improved {
				r := model.Ribbon{
					AthleteName: swim.AthleteName,
					Age:         swim.Age,
					AgeGroup:    swim.AgeGroup,
					Event:       swim.Event,
					Meet:        swim.Meet,
					Time:        swim.Time,
				}
				if haveBest {
					prev := best.Time
					r.PreviousBest = &prev
				}
				awards = append(awards, r)
			}

			if improved {
				best = swim
				haveBest = true
			}
		}
	}

	return awards, skipped
}
