// Package sampledata generates a synthetic Athlete Report Card export for
// demos and local testing, without touching a real Swimtopia account.
package sampledata

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/flowerhill/swimreports/internal/adapters/swimtopia"
	"github.com/flowerhill/swimreports/internal/domain/besttimes"
	"github.com/flowerhill/swimreports/pkg/logger"
)

// Config controls the shape of the generated export.
type Config struct {
	Athletes int
	Meets    int
	Seed     int64
	Output   string
}

// Generation tuning constants: base times per distance, how much swimmers
// improve between meets, and how often a meet is missed.
const (
	baseSecondsPer25m    = 22.0
	athleteSpreadSeconds = 14.0
	meetDropSeconds      = 0.6
	noiseSeconds         = 1.2
	missedMeetChance     = 0.15
)

var firstNames = []string{
	"Anna", "Ben", "Clara", "Diego", "Emma", "Felix", "Grace", "Henry",
	"Iris", "Jack", "Keira", "Liam", "Maya", "Noah", "Olive", "Peter",
}

var lastNames = []string{
	"Abbott", "Brennan", "Chen", "Davis", "Escobar", "Fowler", "Gupta",
	"Hanlon", "Ito", "Jensen", "Klein", "Lopez",
}

var ageGroups = []struct {
	name string
	age  int
}{
	{"Girls 8 & Under", 8},
	{"Boys 8 & Under", 7},
	{"Girls 9-10", 10},
	{"Boys 9-10", 9},
	{"Girls 11-12", 12},
	{"Boys 11-12", 11},
}

// Run writes a synthetic report card CSV for cfg.Athletes swimmers across
// cfg.Meets meets. The same seed always yields the same file.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Athletes <= 0 || cfg.Meets <= 0 {
		return fmt.Errorf("athletes and meets must be positive")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", cfg.Output, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(swimtopia.ReportCardHeader(cfg.Meets)); err != nil {
		return err
	}

	rows := 0
	for a := 0; a < cfg.Athletes; a++ {
		group := ageGroups[a%len(ageGroups)]
		first := firstNames[a%len(firstNames)]
		last := lastNames[(a/len(firstNames))%len(lastNames)]
		athleteID := fmt.Sprintf("A%04d", a+1)

		for _, event := range besttimes.Program(group.name) {
			var distance int
			var stroke string
			if _, err := fmt.Sscanf(event, "%d", &distance); err != nil {
				continue
			}
			stroke = strokeShort(event)

			row := athleteRow(rng, athleteRowInput{
				ageGroup:  group.name,
				athleteID: athleteID,
				first:     first,
				last:      last,
				age:       group.age,
				distance:  distance,
				stroke:    stroke,
				meets:     cfg.Meets,
			})
			if err := w.Write(row); err != nil {
				return err
			}
			rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	logger.Get().Info(ctx, "sample export written",
		logger.String("output", cfg.Output),
		logger.Int("athletes", cfg.Athletes),
		logger.Int("meets", cfg.Meets),
		logger.Int("rows", rows))
	return nil
}

type athleteRowInput struct {
	ageGroup  string
	athleteID string
	first     string
	last      string
	age       int
	distance  int
	stroke    string
	meets     int
}

// athleteRow builds one (athlete, event) row: per-meet results trending
// faster over the season, with noise and the occasional missed meet.
func athleteRow(rng *rand.Rand, in athleteRowInput) []string {
	row := []string{
		in.ageGroup,
		in.athleteID,
		in.last,
		in.first,
		in.last + ", " + in.first,
		strconv.Itoa(in.age),
		strconv.Itoa(in.distance),
		in.stroke,
	}

	base := baseSecondsPer25m*float64(in.distance)/25.0 + rng.Float64()*athleteSpreadSeconds
	results := 0
	var totalSecs float64
	for m := 0; m < in.meets; m++ {
		if rng.Float64() < missedMeetChance {
			row = append(row, "", "", "", "", "", "")
			continue
		}
		secs := base - float64(m)*meetDropSeconds + rng.Float64()*noiseSeconds
		results++
		totalSecs += secs
		row = append(row,
			fmt.Sprintf("Meet %d", m+1),
			formatClock(secs),
			strconv.FormatFloat(secs, 'f', 2, 64),
			"", // Improved: recomputed by the consumer, left blank
			"0",
			fmt.Sprintf("06/%02d/2026", 7+m*7),
		)
	}

	row = append(row,
		strconv.Itoa(results),
		"0",
		"0",
		"0",
		"0",
	)
	return row
}

func formatClock(secs float64) string {
	if secs >= 60 {
		m := int(secs) / 60
		return fmt.Sprintf("%d:%05.2f", m, secs-float64(m)*60)
	}
	return strconv.FormatFloat(secs, 'f', 2, 64)
}

// strokeShort maps a program event name to the export's stroke short form.
func strokeShort(event string) string {
	switch {
	case strings.Contains(event, "Individual Medley"):
		return "IM"
	case strings.Contains(event, "Backstroke"):
		return "Back"
	case strings.Contains(event, "Breaststroke"):
		return "Breast"
	case strings.Contains(event, "Butterfly"):
		return "Fly"
	default:
		return "Free"
	}
}
