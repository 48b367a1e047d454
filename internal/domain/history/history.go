// Package history groups swim records by (athlete, event) and orders each
// group chronologically, using meet number as the time axis.
package history

import (
	"fmt"
	"sort"

	"github.com/flowerhill/swimreports/internal/domain/model"
)

// Key identifies one athlete-event history.
type Key struct {
	AthleteID string
	Event     model.Event
}

// History holds the per-key chronological swim sequences for one run.
// Each sequence is strictly increasing in meet number once built.
type History struct {
	byKey map[Key][]model.SwimRecord
}

// Build groups records by (athlete, event) and sorts each group by meet
// number ascending. A duplicate (athlete, event, meet) triple is ambiguous
// input and fails the build; silently picking one of the two times would
// corrupt the best-time history.
func Build(records []model.SwimRecord) (*History, error) {
	byKey := make(map[Key][]model.SwimRecord)
	for _, r := range records {
		k := Key{AthleteID: r.AthleteID, Event: r.Event}
		byKey[k] = append(byKey[k], r)
	}

	for k, seq := range byKey {
		sort.SliceStable(seq, func(i, j int) bool {
			return seq[i].Meet.Number < seq[j].Meet.Number
		})
		for i := 1; i < len(seq); i++ {
			if seq[i].Meet.Number == seq[i-1].Meet.Number {
				return nil, fmt.Errorf("%w: athlete %s (%s) event %s meet %d",
					ErrDuplicateSwim, k.AthleteID, seq[i].AthleteName, k.Event, seq[i].Meet.Number)
			}
		}
		byKey[k] = seq
	}

	return &History{byKey: byKey}, nil
}

// For returns the chronological sequence for one athlete-event key, or nil
// if the key has no swims. The slice is a copy.
func (h *History) For(athleteID string, event model.Event) []model.SwimRecord {
	seq := h.byKey[Key{AthleteID: athleteID, Event: event}]
	if seq == nil {
		return nil
	}
	out := make([]model.SwimRecord, len(seq))
	copy(out, seq)
	return out
}

// Keys returns every (athlete, event) pair present, sorted so that iteration
// order is stable across runs.
func (h *History) Keys() []Key {
	keys := make([]Key, 0, len(h.byKey))
	for k := range h.byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].AthleteID != keys[j].AthleteID {
			return keys[i].AthleteID < keys[j].AthleteID
		}
		return keys[i].Event.Less(keys[j].Event)
	})
	return keys
}

// Len returns the number of athlete-event histories.
func (h *History) Len() int {
	return len(h.byKey)
}
