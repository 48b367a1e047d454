// Package besttimes assembles the season best-times ranking report: for each
// MCSL age group and its event program, every swimmer's best time in
// ascending order.
package besttimes

import (
	"fmt"
	"sort"
	"time"
)

// AgeGroups in program order.
var AgeGroups = []string{
	"Girls 8 & Under",
	"Boys 8 & Under",
	"Girls 9-10",
	"Boys 9-10",
	"Girls 11-12",
	"Boys 11-12",
	"Girls 13-14",
	"Boys 13-14",
	"Women 15-18",
	"Men 15-18",
}

var strokes = []string{
	"Freestyle",
	"Backstroke",
	"Breaststroke",
	"Butterfly",
	"Individual Medley",
}

var strokeDistances = map[string][]int{
	"Freestyle":         {25, 50, 100},
	"Backstroke":        {25, 50, 100},
	"Breaststroke":      {25, 50, 100},
	"Butterfly":         {25, 50},
	"Individual Medley": {100},
}

// ageGroupDistances lists, per age group, the distance swum for each stroke
// in program order. MCSL rules: longer distances as the swimmers age up.
var ageGroupDistances = map[string][]int{
	"Girls 8 & Under": {25, 25, 25, 25, 100},
	"Boys 8 & Under":  {25, 25, 25, 25, 100},
	"Girls 9-10":      {50, 25, 25, 25, 100},
	"Boys 9-10":       {50, 25, 25, 25, 100},
	"Girls 11-12":     {50, 50, 50, 50, 100},
	"Boys 11-12":      {50, 50, 50, 50, 100},
	"Girls 13-14":     {50, 50, 50, 50, 100},
	"Boys 13-14":      {50, 50, 50, 50, 100},
	"Women 15-18":     {100, 100, 100, 50, 100},
	"Men 15-18":       {100, 100, 100, 50, 100},
}

// AllEvents is every event name in canonical order, used to sequence the
// report sections.
var AllEvents = allEvents()

func allEvents() []string {
	var out []string
	for _, s := range strokes {
		for _, d := range strokeDistances[s] {
			out = append(out, fmt.Sprintf("%d %s", d, s))
		}
	}
	return out
}

// Swim is one row of the best-times export: a swimmer's season best in one
// event.
type Swim struct {
	AgeGroup string
	Swimmer  string
	Event    string
	Time     time.Duration
	Date     string
	Meet     string
}

// Ranking lists one event's swimmers, fastest first.
type Ranking struct {
	Event string
	Swims []Swim
}

// Section groups one age group's event rankings.
type Section struct {
	AgeGroup string
	Events   []Ranking
}

// Report builds the ranked report: one section per age group in program
// order, one ranking per event in canonical order, swimmers by time
// ascending. Events outside the group's regular program (swim-ups) are kept
// and slot into the canonical order. Age groups with no swims are omitted.
func Report(swims []Swim) []Section {
	byGroup := make(map[string]map[string][]Swim)
	for _, s := range swims {
		if byGroup[s.AgeGroup] == nil {
			byGroup[s.AgeGroup] = make(map[string][]Swim)
		}
		byGroup[s.AgeGroup][s.Event] = append(byGroup[s.AgeGroup][s.Event], s)
	}

	var sections []Section
	for _, ag := range AgeGroups {
		events := byGroup[ag]
		if len(events) == 0 {
			continue
		}
		sec := Section{AgeGroup: ag}
		for _, e := range AllEvents {
			swims, ok := events[e]
			if !ok {
				continue
			}
			sort.SliceStable(swims, func(i, j int) bool { return swims[i].Time < swims[j].Time })
			sec.Events = append(sec.Events, Ranking{Event: e, Swims: swims})
		}
		sections = append(sections, sec)
	}
	return sections
}

// Program returns the regular event list for an age group, e.g.
// "50 Freestyle". Unknown age groups get an empty program.
func Program(ageGroup string) []string {
	distances, ok := ageGroupDistances[ageGroup]
	if !ok {
		return nil
	}
	out := make([]string, len(strokes))
	for i, s := range strokes {
		out[i] = fmt.Sprintf("%d %s", distances[i], s)
	}
	return out
}

// KnownAgeGroup reports whether the age group is part of the MCSL program.
func KnownAgeGroup(ag string) bool {
	_, ok := ageGroupDistances[ag]
	return ok
}
